package users

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterNormalizesAndDefaults(t *testing.T) {
	svc := NewService(NewMemoryStore())

	user, err := svc.Register(context.Background(), RegisterPayload{
		Name:     "  Jordan Blake ",
		Email:    " Jordan@Example.Test ",
		Password: "Stronger123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Jordan Blake" {
		t.Fatalf("expected trimmed name, got %q", user.Name)
	}
	if user.Email != "jordan@example.test" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.Role != RoleEmployee {
		t.Fatalf("expected EMPLOYEE role, got %q", user.Role)
	}
}

func TestRegisterRejectsWeakPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload RegisterPayload
	}{
		{name: "missing name", payload: RegisterPayload{Email: "a@b.test", Password: "Stronger123"}},
		{name: "bad email", payload: RegisterPayload{Name: "A", Email: "not-an-email", Password: "Stronger123"}},
		{name: "short password", payload: RegisterPayload{Name: "A", Email: "a@b.test", Password: "short"}},
	}

	svc := NewService(NewMemoryStore())
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.payload); !errors.Is(err, ErrInvalidPayload) {
				t.Fatalf("expected ErrInvalidPayload, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryStore())
	payload := RegisterPayload{Name: "A", Email: "a@b.test", Password: "Stronger123"}

	if _, err := svc.Register(context.Background(), payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(context.Background(), payload); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewMemoryStore())
	_, err := svc.Register(context.Background(), RegisterPayload{
		Name:     "A",
		Email:    "a@b.test",
		Password: "Stronger123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "A@B.Test", "Stronger123"); err != nil {
		t.Fatalf("expected login with case-insensitive email, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "a@b.test", "wrong-pass"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for bad password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "ghost@b.test", "Stronger123"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown email, got %v", err)
	}
}
