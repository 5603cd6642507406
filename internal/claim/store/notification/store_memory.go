// Package notification persists the audit trail of received claim notifications.
package notification

import (
	"context"
	"sort"
	"sync"

	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/store"
)

// InMemoryStore keeps notifications in process memory.
type InMemoryStore struct {
	mu     sync.RWMutex
	byID   map[string]models.ClaimNotification
	byKey  map[string][]string
	serial map[string]int
	next   int
}

// NewInMemory constructs an empty store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		byID:   make(map[string]models.ClaimNotification),
		byKey:  make(map[string][]string),
		serial: make(map[string]int),
	}
}

// Create stores n unless a record with the same ID exists, and returns the stored
// record either way.
func (s *InMemoryStore) Create(_ context.Context, n *models.ClaimNotification) (*models.ClaimNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byID[n.ID]; ok {
		return &existing, nil
	}
	s.byID[n.ID] = *n
	s.byKey[n.Key] = append(s.byKey[n.Key], n.ID)
	s.serial[n.ID] = s.next
	s.next++

	stored := *n
	return &stored, nil
}

// ListByKey returns up to limit notifications for key, newest first.
func (s *InMemoryStore) ListByKey(_ context.Context, key string, limit int) ([]*models.ClaimNotification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byKey[key]
	out := make([]*models.ClaimNotification, 0, len(ids))
	for _, id := range ids {
		n := s.byID[id]
		out = append(out, &n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ReceivedAt.Equal(out[j].ReceivedAt) {
			return out[i].ReceivedAt.After(out[j].ReceivedAt)
		}
		return s.serial[out[i].ID] > s.serial[out[j].ID]
	})

	if limit = store.Limit(limit); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
