package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// ListInsightsInput represents the input for listing stored insights.
type ListInsightsInput struct {
	UserID uuid.UUID
}

// ListInsightsOutput represents the output of listing stored insights.
type ListInsightsOutput struct {
	Insights []entity.Insight
}

// ListInsightsUseCase returns whatever the store currently holds. An
// empty list after a clear stays empty until an explicit regenerate.
type ListInsightsUseCase struct {
	store adapter.InsightStore
}

// NewListInsightsUseCase creates a new ListInsightsUseCase instance.
func NewListInsightsUseCase(store adapter.InsightStore) *ListInsightsUseCase {
	return &ListInsightsUseCase{store: store}
}

// Execute lists the stored insights.
func (uc *ListInsightsUseCase) Execute(ctx context.Context, input ListInsightsInput) (*ListInsightsOutput, error) {
	insights, err := uc.store.List(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	if insights == nil {
		insights = []entity.Insight{}
	}

	return &ListInsightsOutput{Insights: insights}, nil
}
