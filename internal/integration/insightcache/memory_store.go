package insightcache

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// memoryStore implements the adapter.InsightStore interface in process
// memory. It backs deployments without Redis; contents are lost on
// restart, which only costs a regeneration.
type memoryStore struct {
	mu       sync.RWMutex
	insights map[uuid.UUID][]entity.Insight
}

// NewMemoryStore creates a new in-memory insight store.
func NewMemoryStore() adapter.InsightStore {
	return &memoryStore{insights: make(map[uuid.UUID][]entity.Insight)}
}

// Replace overwrites the stored insight list for a user.
func (s *memoryStore) Replace(_ context.Context, userID uuid.UUID, insights []entity.Insight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]entity.Insight, len(insights))
	copy(copied, insights)
	s.insights[userID] = copied
	return nil
}

// List retrieves the stored insight list for a user.
func (s *memoryStore) List(_ context.Context, userID uuid.UUID) ([]entity.Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.insights[userID]
	if !ok {
		return []entity.Insight{}, nil
	}

	copied := make([]entity.Insight, len(stored))
	copy(copied, stored)
	return copied, nil
}

// Clear removes all stored insights for a user.
func (s *memoryStore) Clear(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.insights, userID)
	return nil
}
