package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// GetBriefingInput represents the input for the daily briefing.
type GetBriefingInput struct {
	UserID uuid.UUID
}

// GetBriefingOutput represents the output of the daily briefing.
type GetBriefingOutput struct {
	Briefing string
	Source   entity.InsightSource
}

// GetBriefingUseCase composes a short narrative daily briefing. The AI
// service writes it when available; otherwise a deterministic local
// template renders the same figures.
type GetBriefingUseCase struct {
	loader
	aiService adapter.AIService
}

// NewGetBriefingUseCase creates a new GetBriefingUseCase instance.
func NewGetBriefingUseCase(
	taskRepo adapter.TaskRepository,
	habitRepo adapter.HabitRepository,
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	journalRepo adapter.JournalRepository,
	timeEntryRepo adapter.TimeEntryRepository,
	aiService adapter.AIService,
) *GetBriefingUseCase {
	return &GetBriefingUseCase{
		loader: loader{
			taskRepo:        taskRepo,
			habitRepo:       habitRepo,
			transactionRepo: transactionRepo,
			goalRepo:        goalRepo,
			journalRepo:     journalRepo,
			timeEntryRepo:   timeEntryRepo,
		},
		aiService: aiService,
	}
}

// Execute builds the briefing.
func (uc *GetBriefingUseCase) Execute(ctx context.Context, input GetBriefingInput) (*GetBriefingOutput, error) {
	now := time.Now().UTC()

	snapshot, err := uc.loadSnapshot(ctx, input.UserID, now)
	if err != nil {
		return nil, err
	}

	if uc.aiService.IsAvailable() {
		briefing, aiErr := uc.aiService.GenerateBriefing(ctx, snapshot)
		if aiErr == nil && briefing != "" {
			return &GetBriefingOutput{Briefing: briefing, Source: entity.InsightSourceAI}, nil
		}
		slog.Warn("AI briefing failed, falling back to local template",
			"userID", input.UserID,
			"error", aiErr,
		)
	}

	return &GetBriefingOutput{
		Briefing: localBriefing(snapshot),
		Source:   entity.InsightSourceRules,
	}, nil
}

// localBriefing renders the snapshot through a fixed template so the
// endpoint stays useful without an AI key.
func localBriefing(snap adapter.LifeSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Good morning. Your life score sits at %d (%s).", snap.LifeScore, snap.LifeState)

	if snap.TaskStats.PendingCount > 0 {
		fmt.Fprintf(&b, " You have %d open tasks", snap.TaskStats.PendingCount)
		if snap.TaskStats.OverdueCount > 0 {
			fmt.Fprintf(&b, ", %d of them overdue", snap.TaskStats.OverdueCount)
		}
		b.WriteString(".")
	} else {
		b.WriteString(" Your task list is clear.")
	}

	if snap.HabitStats.TotalCount > 0 {
		fmt.Fprintf(&b, " %d of %d habits are done today.",
			snap.HabitStats.CompletedTodayCount, snap.HabitStats.TotalCount)
	}

	if !snap.FinanceStats.Expenses.IsZero() {
		fmt.Fprintf(&b, " Month-to-date spending is %s against %s income.",
			snap.FinanceStats.Expenses.StringFixed(2), snap.FinanceStats.Income.StringFixed(2))
	}

	if snap.TimeStats.DeepFocusMinutes > 0 {
		fmt.Fprintf(&b, " You logged %d deep focus minutes this week.", snap.TimeStats.DeepFocusMinutes)
	}

	return b.String()
}
