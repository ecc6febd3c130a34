package leave

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore backs the demo mode and the test suites. Insertion order is
// preserved so list results are deterministic, matching the created_at
// ordering of the Postgres store.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]LeaveRequest
	owners  map[string]string
	order   []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]LeaveRequest),
		owners:  make(map[string]string),
	}
}

func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var requests []LeaveRequest
	for _, id := range s.order {
		if s.owners[id] != userID {
			continue
		}
		if rec, ok := s.records[id]; ok {
			requests = append(requests, rec)
		}
	}
	return requests, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return LeaveRequest{}, ErrNotFound
	}
	return rec, nil
}

func (s *MemoryStore) Create(_ context.Context, userID string, rec LeaveRequest) (LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = uuid.NewString()
	s.records[rec.ID] = rec
	s.owners[rec.ID] = userID
	s.order = append(s.order, rec.ID)
	return rec, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, rec LeaveRequest) (LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return LeaveRequest{}, ErrNotFound
	}
	rec.ID = id
	s.records[id] = rec
	return rec, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	delete(s.owners, id)
	return nil
}
