package lifestate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/application/usecase/finance"
	"github.com/lifeos/backend/internal/application/usecase/habit"
	"github.com/lifeos/backend/internal/application/usecase/journal"
	"github.com/lifeos/backend/internal/application/usecase/task"
	"github.com/lifeos/backend/internal/domain/entity"
)

// MoodSampleSize is how many recent journal entries feed the wellbeing
// sub-score.
const MoodSampleSize = 7

// GetLifeStateInput represents the input for life state retrieval.
type GetLifeStateInput struct {
	UserID uuid.UUID
}

// GetLifeStateOutput represents the output of life state retrieval.
type GetLifeStateOutput struct {
	State *entity.LifeState
}

// GetLifeStateUseCase assembles the cross-domain aggregates and derives
// the life score, band and trend.
type GetLifeStateUseCase struct {
	taskRepo        adapter.TaskRepository
	habitRepo       adapter.HabitRepository
	transactionRepo adapter.TransactionRepository
	journalRepo     adapter.JournalRepository
}

// NewGetLifeStateUseCase creates a new GetLifeStateUseCase instance.
func NewGetLifeStateUseCase(
	taskRepo adapter.TaskRepository,
	habitRepo adapter.HabitRepository,
	transactionRepo adapter.TransactionRepository,
	journalRepo adapter.JournalRepository,
) *GetLifeStateUseCase {
	return &GetLifeStateUseCase{
		taskRepo:        taskRepo,
		habitRepo:       habitRepo,
		transactionRepo: transactionRepo,
		journalRepo:     journalRepo,
	}
}

// Execute computes the current life state for a user.
func (uc *GetLifeStateUseCase) Execute(ctx context.Context, input GetLifeStateInput) (*GetLifeStateOutput, error) {
	now := time.Now().UTC()

	tasks, err := uc.taskRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	taskStats := task.ComputeStats(tasks, now)

	habits, err := uc.habitRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	habitStats := habit.ComputeStats(habits, now)

	monthStart := finance.PeriodStart(entity.FinancePeriodMonth, now)
	transactions, err := uc.transactionRepo.FindByUserSince(ctx, input.UserID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	financeStats := finance.ComputeStats(transactions, monthStart)

	entries, err := uc.journalRepo.FindRecent(ctx, input.UserID, MoodSampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal entries: %w", err)
	}

	score, breakdown := ComputeScore(ScoreInputs{
		TotalTasks:      taskStats.TotalCount,
		CompletedTasks:  taskStats.CompletedCount,
		TotalHabits:     habitStats.TotalCount,
		HabitsDoneToday: habitStats.CompletedTodayCount,
		AverageStreak:   habitStats.AverageStreak,
		Income:          financeStats.Income,
		Expenses:        financeStats.Expenses,
		MoodAverage:     journal.RecentMoodAverage(entries),
	})

	weekAgo := now.Add(-7 * 24 * time.Hour)
	twoWeeksAgo := now.Add(-14 * 24 * time.Hour)

	recent, err := uc.taskRepo.CountCompletedBetween(ctx, input.UserID, weekAgo, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent completions: %w", err)
	}
	previous, err := uc.taskRepo.CountCompletedBetween(ctx, input.UserID, twoWeeksAgo, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to count prior completions: %w", err)
	}

	name, color, description := StateFor(score)

	return &GetLifeStateOutput{State: &entity.LifeState{
		Score:       score,
		State:       name,
		Color:       color,
		Description: description,
		Trend:       TrendFor(recent, previous),
		Breakdown:   breakdown,
	}}, nil
}
