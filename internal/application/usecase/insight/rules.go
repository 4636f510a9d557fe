// Package insight contains the rule-based and AI-backed insight use cases.
package insight

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifeos/backend/internal/domain/entity"
)

// Thresholds for the rule set.
const (
	StreakAchievementDays = 7
	SprintTaskThreshold   = 10
	WeeklySpendThreshold  = 500
	StalledGoalProgress   = 25
	LowMoodSampleSize     = 7
	LowMoodThreshold      = 5.0
)

// RuleConfig tunes rule evaluation. SprintWindowDays bounds the
// Productive Sprint rule: 0 counts completions all-time, N counts the
// last N days.
type RuleConfig struct {
	SprintWindowDays int
}

// Aggregates condenses the per-domain figures the rules read.
type Aggregates struct {
	Habits              []entity.HabitWithStreak
	CompletedTasks      int // within the sprint window
	WeeklyExpenses      decimal.Decimal
	Goals               []*entity.Goal
	RecentJournal       []*entity.JournalEntry // newest first
	RecentMoodAverage   float64
	JournalEntriesTotal int
}

// Generate evaluates every rule in declaration order. Rules fire
// independently; nothing is deduplicated across rules. IDs are
// deterministic per rule and subject so regenerating over unchanged data
// yields an identical list.
func Generate(agg Aggregates, cfg RuleConfig, now time.Time) []entity.Insight {
	insights := []entity.Insight{}

	for _, h := range agg.Habits {
		if h.Streak > StreakAchievementDays {
			insights = append(insights, entity.Insight{
				ID:       fmt.Sprintf("habit-streak-%s", h.Habit.ID),
				Type:     entity.InsightTypeAchievement,
				Severity: entity.InsightSeverityInfo,
				Icon:     "flame",
				Title:    fmt.Sprintf("%d-day streak on %s", h.Streak, h.Habit.Name),
				Content: fmt.Sprintf("You've kept %s going for %d days straight. Consistency like this compounds.",
					h.Habit.Name, h.Streak),
				GeneratedAt: now,
			})
		}
	}

	if agg.CompletedTasks > SprintTaskThreshold {
		content := fmt.Sprintf("You've completed %d tasks. That's serious momentum.", agg.CompletedTasks)
		if cfg.SprintWindowDays > 0 {
			content = fmt.Sprintf("You've completed %d tasks in the last %d days. That's serious momentum.",
				agg.CompletedTasks, cfg.SprintWindowDays)
		}
		insights = append(insights, entity.Insight{
			ID:          "productive-sprint",
			Type:        entity.InsightTypeAchievement,
			Severity:    entity.InsightSeverityInfo,
			Icon:        "rocket",
			Title:       "Productive Sprint",
			Content:     content,
			GeneratedAt: now,
		})
	}

	if agg.WeeklyExpenses.GreaterThan(decimal.NewFromInt(WeeklySpendThreshold)) {
		insights = append(insights, entity.Insight{
			ID:       "high-weekly-spending",
			Type:     entity.InsightTypeWarning,
			Severity: entity.InsightSeverityWarning,
			Icon:     "alert-triangle",
			Title:    "High spending this week",
			Content: fmt.Sprintf("You've spent %s in the last 7 days, above the %d threshold. Worth a look at where it went.",
				agg.WeeklyExpenses.StringFixed(2), WeeklySpendThreshold),
			Actionable:  true,
			GeneratedAt: now,
		})
	}

	for _, g := range agg.Goals {
		if g.Status == entity.GoalStatusActive && g.Progress < StalledGoalProgress {
			insights = append(insights, entity.Insight{
				ID:       "stalled-goals",
				Type:     entity.InsightTypeRecommendation,
				Severity: entity.InsightSeverityInfo,
				Icon:     "target",
				Title:    "A goal needs a push",
				Content: fmt.Sprintf("'%s' is still under %d%% progress. Breaking it into a smaller next step usually helps.",
					g.Title, StalledGoalProgress),
				Actionable:  true,
				GeneratedAt: now,
			})
			break
		}
	}

	if agg.JournalEntriesTotal >= LowMoodSampleSize && agg.RecentMoodAverage < LowMoodThreshold && agg.RecentMoodAverage > 0 {
		insights = append(insights, entity.Insight{
			ID:       "low-mood-week",
			Type:     entity.InsightTypeWellbeing,
			Severity: entity.InsightSeverityWarning,
			Icon:     "heart",
			Title:    "Mood has been low lately",
			Content: fmt.Sprintf("Your average mood over the last %d entries is %.1f. Consider scheduling something restorative.",
				LowMoodSampleSize, agg.RecentMoodAverage),
			Actionable:  true,
			GeneratedAt: now,
		})
	}

	return insights
}
