package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/application/usecase/finance"
	"github.com/lifeos/backend/internal/application/usecase/goal"
	"github.com/lifeos/backend/internal/application/usecase/habit"
	"github.com/lifeos/backend/internal/application/usecase/journal"
	"github.com/lifeos/backend/internal/application/usecase/lifestate"
	"github.com/lifeos/backend/internal/application/usecase/task"
	"github.com/lifeos/backend/internal/application/usecase/timetracking"
	"github.com/lifeos/backend/internal/domain/entity"
)

// loader assembles the cross-domain aggregates both generation paths
// feed on.
type loader struct {
	taskRepo        adapter.TaskRepository
	habitRepo       adapter.HabitRepository
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	journalRepo     adapter.JournalRepository
	timeEntryRepo   adapter.TimeEntryRepository
}

// loadAggregates gathers the figures the rule set reads. The sprint
// window bounds the completed-task count; zero means all-time.
func (l *loader) loadAggregates(ctx context.Context, userID uuid.UUID, cfg RuleConfig, now time.Time) (Aggregates, error) {
	var agg Aggregates

	habits, err := l.habitRepo.FindByUser(ctx, userID)
	if err != nil {
		return agg, fmt.Errorf("failed to load habits: %w", err)
	}
	for _, h := range habits {
		agg.Habits = append(agg.Habits, entity.HabitWithStreak{
			Habit:          h,
			Streak:         habit.Streak(h.Completions, now),
			CompletedToday: habit.CompletedOn(h.Completions, now),
		})
	}

	if cfg.SprintWindowDays > 0 {
		since := now.Add(-time.Duration(cfg.SprintWindowDays) * 24 * time.Hour)
		agg.CompletedTasks, err = l.taskRepo.CountCompletedSince(ctx, userID, since)
	} else {
		agg.CompletedTasks, err = l.taskRepo.CountCompletedSince(ctx, userID, time.Time{})
	}
	if err != nil {
		return agg, fmt.Errorf("failed to count completed tasks: %w", err)
	}

	weekStart := finance.PeriodStart(entity.FinancePeriodWeek, now)
	transactions, err := l.transactionRepo.FindByUserSince(ctx, userID, weekStart)
	if err != nil {
		return agg, fmt.Errorf("failed to load transactions: %w", err)
	}
	agg.WeeklyExpenses = finance.ComputeStats(transactions, weekStart).Expenses

	agg.Goals, err = l.goalRepo.FindByUser(ctx, userID)
	if err != nil {
		return agg, fmt.Errorf("failed to load goals: %w", err)
	}

	agg.RecentJournal, err = l.journalRepo.FindRecent(ctx, userID, LowMoodSampleSize)
	if err != nil {
		return agg, fmt.Errorf("failed to load journal entries: %w", err)
	}
	agg.RecentMoodAverage = journal.RecentMoodAverage(agg.RecentJournal)
	agg.JournalEntriesTotal = len(agg.RecentJournal)

	return agg, nil
}

// loadSnapshot gathers the wider stats bundle handed to the AI service.
func (l *loader) loadSnapshot(ctx context.Context, userID uuid.UUID, now time.Time) (adapter.LifeSnapshot, error) {
	var snap adapter.LifeSnapshot

	tasks, err := l.taskRepo.FindByUser(ctx, userID)
	if err != nil {
		return snap, fmt.Errorf("failed to load tasks: %w", err)
	}
	snap.TaskStats = task.ComputeStats(tasks, now)

	habits, err := l.habitRepo.FindByUser(ctx, userID)
	if err != nil {
		return snap, fmt.Errorf("failed to load habits: %w", err)
	}
	snap.HabitStats = habit.ComputeStats(habits, now)

	monthStart := finance.PeriodStart(entity.FinancePeriodMonth, now)
	transactions, err := l.transactionRepo.FindByUserSince(ctx, userID, monthStart)
	if err != nil {
		return snap, fmt.Errorf("failed to load transactions: %w", err)
	}
	snap.FinanceStats = finance.ComputeStats(transactions, monthStart)

	weekStart, weekEnd := timetracking.WeekBounds(now)
	entries, err := l.timeEntryRepo.FindByFilter(ctx, adapter.TimeEntryFilter{
		UserID:    userID,
		StartDate: &weekStart,
		EndDate:   &weekEnd,
	})
	if err != nil {
		return snap, fmt.Errorf("failed to load time entries: %w", err)
	}
	snap.TimeStats = timetracking.ComputeStats(entries, weekStart, weekEnd, true)

	goals, err := l.goalRepo.FindByUser(ctx, userID)
	if err != nil {
		return snap, fmt.Errorf("failed to load goals: %w", err)
	}
	snap.GoalStats = goal.ComputeStats(goals)

	recentJournal, err := l.journalRepo.FindRecent(ctx, userID, LowMoodSampleSize)
	if err != nil {
		return snap, fmt.Errorf("failed to load journal entries: %w", err)
	}
	snap.MoodAverage = journal.RecentMoodAverage(recentJournal)

	score, _ := lifestate.ComputeScore(lifestate.ScoreInputs{
		TotalTasks:      snap.TaskStats.TotalCount,
		CompletedTasks:  snap.TaskStats.CompletedCount,
		TotalHabits:     snap.HabitStats.TotalCount,
		HabitsDoneToday: snap.HabitStats.CompletedTodayCount,
		AverageStreak:   snap.HabitStats.AverageStreak,
		Income:          snap.FinanceStats.Income,
		Expenses:        snap.FinanceStats.Expenses,
		MoodAverage:     snap.MoodAverage,
	})
	name, _, _ := lifestate.StateFor(score)
	snap.LifeScore = score
	snap.LifeState = string(name)

	return snap, nil
}
