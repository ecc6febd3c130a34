package leave

import "context"

type Service struct {
	Store Store
}

func NewService(store Store) *Service {
	return &Service{Store: store}
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error) {
	return s.Store.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id string) (LeaveRequest, error) {
	return s.Store.Get(ctx, id)
}

// Create validates the payload and stores a new request. Status is always
// forced to PENDING; the server, not the caller, owns status assignment.
func (s *Service) Create(ctx context.Context, userID string, payload RequestPayload) (LeaveRequest, error) {
	if err := payload.Validate(); err != nil {
		return LeaveRequest{}, err
	}
	rec := LeaveRequest{
		Type:      payload.Type,
		Reason:    payload.Reason,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		Duration:  payload.Duration,
		Status:    StatusPending,
	}
	return s.Store.Create(ctx, userID, rec)
}

// Update replaces type, reason, dates and duration wholesale. The stored
// status is kept unless the payload echoes a different valid one, matching
// the pass-through semantics of the update endpoint.
func (s *Service) Update(ctx context.Context, id string, payload RequestPayload) (LeaveRequest, error) {
	if err := payload.Validate(); err != nil {
		return LeaveRequest{}, err
	}
	existing, err := s.Store.Get(ctx, id)
	if err != nil {
		return LeaveRequest{}, err
	}
	status := existing.Status
	if payload.Status != "" {
		status = payload.Status
	}
	rec := LeaveRequest{
		ID:        id,
		Type:      payload.Type,
		Reason:    payload.Reason,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		Duration:  payload.Duration,
		Status:    status,
	}
	return s.Store.Update(ctx, id, rec)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}
