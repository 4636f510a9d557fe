package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
)

// ClearInsightsInput represents the input for clearing stored insights.
type ClearInsightsInput struct {
	UserID uuid.UUID
}

// ClearInsightsUseCase empties the insight store for a user. Nothing is
// regenerated implicitly afterwards.
type ClearInsightsUseCase struct {
	store adapter.InsightStore
}

// NewClearInsightsUseCase creates a new ClearInsightsUseCase instance.
func NewClearInsightsUseCase(store adapter.InsightStore) *ClearInsightsUseCase {
	return &ClearInsightsUseCase{store: store}
}

// Execute clears the stored insights.
func (uc *ClearInsightsUseCase) Execute(ctx context.Context, input ClearInsightsInput) error {
	if err := uc.store.Clear(ctx, input.UserID); err != nil {
		return fmt.Errorf("failed to clear insights: %w", err)
	}

	return nil
}
