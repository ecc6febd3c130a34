package leave

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an update or delete targets a request that no
// longer exists.
var ErrNotFound = errors.New("leave request not found")

type Store interface {
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	Get(ctx context.Context, id string) (LeaveRequest, error)
	Create(ctx context.Context, userID string, rec LeaveRequest) (LeaveRequest, error)
	Update(ctx context.Context, id string, rec LeaveRequest) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error
}
