// Package failure is the sink for claim notifications that took the error path.
package failure

import (
	"context"
	"slices"
	"sync"

	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/store"
)

// InMemoryStore keeps failed notifications in arrival order.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []models.FailedNotification
	ids     map[string]struct{}
}

// NewInMemory constructs an empty sink.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{ids: make(map[string]struct{})}
}

// Create appends f. An id already present is ignored, as in the Postgres sink.
func (s *InMemoryStore) Create(_ context.Context, f *models.FailedNotification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[f.ID]; ok {
		return nil
	}
	s.ids[f.ID] = struct{}{}
	record := *f
	record.Payload = slices.Clone(f.Payload)
	s.records = append(s.records, record)
	return nil
}

// List returns up to limit failures newest first, restricted to codes when given.
func (s *InMemoryStore) List(_ context.Context, codes []string, limit int) ([]*models.FailedNotification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit = store.Limit(limit)
	out := make([]*models.FailedNotification, 0)
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		r := s.records[i]
		if len(codes) > 0 && !slices.Contains(codes, r.ErrorCode) {
			continue
		}
		out = append(out, &r)
	}
	return out, nil
}
