package insight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// GenerateAIInsightsInput represents the input for AI-backed generation.
type GenerateAIInsightsInput struct {
	UserID uuid.UUID
}

// GenerateAIInsightsOutput represents the output of AI-backed
// generation. Source reports which path actually produced the list.
type GenerateAIInsightsOutput struct {
	Insights []entity.Insight
	Source   entity.InsightSource
}

// GenerateAIInsightsUseCase asks the AI service for insights and falls
// back to the rule set on any failure. The fallback result is stored
// the same way, so a degraded AI never leaves the list stale.
type GenerateAIInsightsUseCase struct {
	loader
	aiService adapter.AIService
	store     adapter.InsightStore
	cfg       RuleConfig
}

// NewGenerateAIInsightsUseCase creates a new GenerateAIInsightsUseCase instance.
func NewGenerateAIInsightsUseCase(
	taskRepo adapter.TaskRepository,
	habitRepo adapter.HabitRepository,
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	journalRepo adapter.JournalRepository,
	timeEntryRepo adapter.TimeEntryRepository,
	aiService adapter.AIService,
	store adapter.InsightStore,
	cfg RuleConfig,
) *GenerateAIInsightsUseCase {
	return &GenerateAIInsightsUseCase{
		loader: loader{
			taskRepo:        taskRepo,
			habitRepo:       habitRepo,
			transactionRepo: transactionRepo,
			goalRepo:        goalRepo,
			journalRepo:     journalRepo,
			timeEntryRepo:   timeEntryRepo,
		},
		aiService: aiService,
		store:     store,
		cfg:       cfg,
	}
}

// Execute generates insights via the AI service, falling back to rules.
func (uc *GenerateAIInsightsUseCase) Execute(ctx context.Context, input GenerateAIInsightsInput) (*GenerateAIInsightsOutput, error) {
	now := time.Now().UTC()

	insights, source := uc.generate(ctx, input.UserID, now)

	if err := uc.store.Replace(ctx, input.UserID, insights); err != nil {
		return nil, fmt.Errorf("failed to store insights: %w", err)
	}

	return &GenerateAIInsightsOutput{Insights: insights, Source: source}, nil
}

func (uc *GenerateAIInsightsUseCase) generate(ctx context.Context, userID uuid.UUID, now time.Time) ([]entity.Insight, entity.InsightSource) {
	if uc.aiService.IsAvailable() {
		snapshot, err := uc.loadSnapshot(ctx, userID, now)
		if err == nil {
			insights, aiErr := uc.aiService.GenerateInsights(ctx, snapshot)
			if aiErr == nil {
				for i := range insights {
					insights[i].GeneratedAt = now
				}
				return insights, entity.InsightSourceAI
			}
			slog.Warn("AI insight generation failed, falling back to rules",
				"userID", userID,
				"error", aiErr,
			)
		} else {
			slog.Warn("Failed to build AI snapshot, falling back to rules",
				"userID", userID,
				"error", err,
			)
		}
	}

	agg, err := uc.loadAggregates(ctx, userID, uc.cfg, now)
	if err != nil {
		slog.Error("Failed to load aggregates for fallback rules", "userID", userID, "error", err)
		return []entity.Insight{}, entity.InsightSourceRules
	}

	return Generate(agg, uc.cfg, now), entity.InsightSourceRules
}
