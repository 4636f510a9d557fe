// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/domain/entity"
)

// InsightStore defines the interface for the volatile insight cache.
// Insights are not persisted to the database; they live here until
// cleared or replaced by the next explicit generation.
type InsightStore interface {
	// Replace overwrites the stored insight list for a user.
	Replace(ctx context.Context, userID uuid.UUID, insights []entity.Insight) error

	// List retrieves the stored insight list for a user. An empty slice
	// means nothing has been generated since the last clear.
	List(ctx context.Context, userID uuid.UUID) ([]entity.Insight, error)

	// Clear removes all stored insights for a user.
	Clear(ctx context.Context, userID uuid.UUID) error
}
