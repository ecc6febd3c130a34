package users

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu     sync.Mutex
	users  map[string]User
	hashes map[string]string
	order  []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]User),
		hashes: make(map[string]string),
	}
}

func (s *MemoryStore) List(_ context.Context) ([]User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []User
	for _, id := range s.order {
		if u, ok := s.users[id]; ok {
			list = append(list, u)
		}
	}
	return list, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, s.hashes[u.ID], nil
		}
	}
	return User{}, "", ErrNotFound
}

func (s *MemoryStore) Create(_ context.Context, user User, passwordHash string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return User{}, ErrEmailTaken
		}
	}
	user.ID = uuid.NewString()
	s.users[user.ID] = user
	s.hashes[user.ID] = passwordHash
	s.order = append(s.order, user.ID)
	return user, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, payload UpdatePayload) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	u.Name = payload.Name
	u.Email = payload.Email
	if payload.Role != "" {
		u.Role = payload.Role
	}
	s.users[id] = u
	return u, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	delete(s.hashes, id)
	return nil
}
