package users

import (
	"context"
	"strings"

	"leavedesk/internal/domain/auth"
)

type Service struct {
	Store Store
}

func NewService(store Store) *Service {
	return &Service{Store: store}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.Store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.Store.Get(ctx, id)
}

// Register creates a user with the EMPLOYEE role and an active status.
// Role elevation is an admin operation via Update, never self-service.
func (s *Service) Register(ctx context.Context, payload RegisterPayload) (User, error) {
	if err := payload.Validate(); err != nil {
		return User{}, err
	}
	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		return User{}, err
	}
	user := User{
		Name:   strings.TrimSpace(payload.Name),
		Email:  strings.ToLower(strings.TrimSpace(payload.Email)),
		Role:   RoleEmployee,
		Status: "ACTIVE",
	}
	return s.Store.Create(ctx, user, hash)
}

// Authenticate verifies credentials and returns the matching user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	user, hash, err := s.Store.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return User{}, err
	}
	if err := auth.CheckPassword(hash, password); err != nil {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (s *Service) Update(ctx context.Context, id string, payload UpdatePayload) (User, error) {
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Email) == "" {
		return User{}, ErrInvalidPayload
	}
	return s.Store.Update(ctx, id, payload)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}
