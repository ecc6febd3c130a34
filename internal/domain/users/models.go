package users

import (
	"context"
	"errors"
	"strings"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrInvalidPayload = errors.New("invalid user payload")
)

// User never carries the password hash across the API boundary; the hash
// lives only in the store.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdatePayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (p RegisterPayload) Validate() error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Email) == "" {
		return ErrInvalidPayload
	}
	if !strings.Contains(p.Email, "@") {
		return ErrInvalidPayload
	}
	if len(p.Password) < 8 {
		return ErrInvalidPayload
	}
	return nil
}

type Store interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, string, error)
	Create(ctx context.Context, user User, passwordHash string) (User, error)
	Update(ctx context.Context, id string, payload UpdatePayload) (User, error)
	Delete(ctx context.Context, id string) error
}
