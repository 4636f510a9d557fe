package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// GenerateInsightsInput represents the input for rule-based generation.
// WindowDays overrides the configured sprint window when non-nil.
type GenerateInsightsInput struct {
	UserID     uuid.UUID
	WindowDays *int
}

// GenerateInsightsOutput represents the output of rule-based generation.
type GenerateInsightsOutput struct {
	Insights []entity.Insight
	Source   entity.InsightSource
}

// GenerateInsightsUseCase runs the rule set over fresh aggregates and
// replaces the stored list.
type GenerateInsightsUseCase struct {
	loader
	store adapter.InsightStore
	cfg   RuleConfig
}

// NewGenerateInsightsUseCase creates a new GenerateInsightsUseCase instance.
func NewGenerateInsightsUseCase(
	taskRepo adapter.TaskRepository,
	habitRepo adapter.HabitRepository,
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	journalRepo adapter.JournalRepository,
	timeEntryRepo adapter.TimeEntryRepository,
	store adapter.InsightStore,
	cfg RuleConfig,
) *GenerateInsightsUseCase {
	return &GenerateInsightsUseCase{
		loader: loader{
			taskRepo:        taskRepo,
			habitRepo:       habitRepo,
			transactionRepo: transactionRepo,
			goalRepo:        goalRepo,
			journalRepo:     journalRepo,
			timeEntryRepo:   timeEntryRepo,
		},
		store: store,
		cfg:   cfg,
	}
}

// Execute regenerates the insight list and stores it.
func (uc *GenerateInsightsUseCase) Execute(ctx context.Context, input GenerateInsightsInput) (*GenerateInsightsOutput, error) {
	cfg := uc.cfg
	if input.WindowDays != nil && *input.WindowDays >= 0 {
		cfg.SprintWindowDays = *input.WindowDays
	}

	now := time.Now().UTC()

	agg, err := uc.loadAggregates(ctx, input.UserID, cfg, now)
	if err != nil {
		return nil, err
	}

	insights := Generate(agg, cfg, now)

	if err := uc.store.Replace(ctx, input.UserID, insights); err != nil {
		return nil, fmt.Errorf("failed to store insights: %w", err)
	}

	return &GenerateInsightsOutput{Insights: insights, Source: entity.InsightSourceRules}, nil
}
