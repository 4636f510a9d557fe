package assistant

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	// A Saturday.
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("spent dollars on lunch parses as food expense", func(t *testing.T) {
		intent := Parse("spent $45 on lunch", now)

		if intent.Intent != IntentExpense {
			t.Fatalf("expected expense, got %s", intent.Intent)
		}
		if intent.Parameters["amount"] != 45.0 {
			t.Errorf("expected amount 45, got %v", intent.Parameters["amount"])
		}
		if intent.Parameters["category"] != "food" {
			t.Errorf("expected category food, got %v", intent.Parameters["category"])
		}
		if intent.Confidence != 0.85 {
			t.Errorf("expected confidence 0.85, got %v", intent.Confidence)
		}
	})

	t.Run("dollar sign alone triggers the expense branch", func(t *testing.T) {
		intent := Parse("$12.50 for parking", now)

		if intent.Intent != IntentExpense {
			t.Fatalf("expected expense, got %s", intent.Intent)
		}
		if intent.Parameters["amount"] != 12.5 {
			t.Errorf("expected amount 12.5, got %v", intent.Parameters["amount"])
		}
		if intent.Parameters["category"] != "transport" {
			t.Errorf("expected category transport, got %v", intent.Parameters["category"])
		}
	})

	t.Run("unknown merchandise falls to the other category", func(t *testing.T) {
		intent := Parse("bought a lamp for $30", now)
		if intent.Parameters["category"] != "other" {
			t.Errorf("expected category other, got %v", intent.Parameters["category"])
		}
	})

	t.Run("category keywords resolve in declared order", func(t *testing.T) {
		intent := Parse("spent $10 on coffee for the uber driver", now)
		if intent.Parameters["category"] != "food" {
			t.Errorf("expected category food, got %v", intent.Parameters["category"])
		}
	})

	t.Run("tomorrow resolves to the next day", func(t *testing.T) {
		intent := Parse("remind me to submit the report tomorrow", now)

		if intent.Intent != IntentTask {
			t.Fatalf("expected task, got %s", intent.Intent)
		}
		if intent.Parameters["due_date"] != "2025-03-16" {
			t.Errorf("expected due 2025-03-16, got %v", intent.Parameters["due_date"])
		}
	})

	t.Run("weekday resolves to the next strictly-future occurrence", func(t *testing.T) {
		intent := Parse("need to call the dentist on monday", now)
		if intent.Parameters["due_date"] != "2025-03-17" {
			t.Errorf("expected due 2025-03-17, got %v", intent.Parameters["due_date"])
		}
	})

	t.Run("naming today's weekday lands a full week out", func(t *testing.T) {
		intent := Parse("need to clean the garage on saturday", now)
		if intent.Parameters["due_date"] != "2025-03-22" {
			t.Errorf("expected due 2025-03-22, got %v", intent.Parameters["due_date"])
		}
	})

	t.Run("finish with a weekday deadline lands on the task branch", func(t *testing.T) {
		intent := Parse("finish the report by friday", now)

		if intent.Intent != IntentTask {
			t.Fatalf("expected task, got %s", intent.Intent)
		}
		if intent.Parameters["due_date"] != "2025-03-21" {
			t.Errorf("expected due 2025-03-21, got %v", intent.Parameters["due_date"])
		}
	})

	t.Run("complete counts as an action verb", func(t *testing.T) {
		intent := Parse("complete the tax forms tomorrow", now)

		if intent.Intent != IntentTask {
			t.Fatalf("expected task, got %s", intent.Intent)
		}
		if intent.Parameters["due_date"] != "2025-03-16" {
			t.Errorf("expected due 2025-03-16, got %v", intent.Parameters["due_date"])
		}
	})

	t.Run("study session normalizes hours to minutes", func(t *testing.T) {
		intent := Parse("studied spanish for 2 hours", now)

		if intent.Intent != IntentStudySession {
			t.Fatalf("expected study_session, got %s", intent.Intent)
		}
		if intent.Parameters["duration_minutes"] != 120 {
			t.Errorf("expected 120 minutes, got %v", intent.Parameters["duration_minutes"])
		}
		if intent.Parameters["subject"] != "spanish" {
			t.Errorf("expected subject spanish, got %v", intent.Parameters["subject"])
		}
	})

	t.Run("habit completion phrasing", func(t *testing.T) {
		intent := Parse("did my morning run today", now)

		if intent.Intent != IntentHabitCompletion {
			t.Fatalf("expected habit_completion, got %s", intent.Intent)
		}
		if intent.Parameters["completed"] != true {
			t.Errorf("expected completed true, got %v", intent.Parameters["completed"])
		}
		if intent.Parameters["habit"] != "morning run" {
			t.Errorf("expected habit 'morning run', got %v", intent.Parameters["habit"])
		}
	})

	t.Run("completed my still reads as a habit, not a task", func(t *testing.T) {
		intent := Parse("completed my morning workout", now)

		if intent.Intent != IntentHabitCompletion {
			t.Fatalf("expected habit_completion, got %s", intent.Intent)
		}
		if intent.Parameters["habit"] != "morning workout" {
			t.Errorf("expected habit 'morning workout', got %v", intent.Parameters["habit"])
		}
	})

	t.Run("mood phrasing maps through the keyword ladder", func(t *testing.T) {
		tests := []struct {
			text string
			mood int
		}{
			{"feeling great today", 9},
			{"i feel terrible", 1},
			{"feeling okay i guess", 5},
		}
		for _, tt := range tests {
			intent := Parse(tt.text, now)
			if intent.Intent != IntentJournal {
				t.Fatalf("expected journal for %q, got %s", tt.text, intent.Intent)
			}
			if intent.Parameters["mood"] != tt.mood {
				t.Errorf("%q: expected mood %d, got %v", tt.text, tt.mood, intent.Parameters["mood"])
			}
		}
	})

	t.Run("unmatched text falls back to a bare task", func(t *testing.T) {
		intent := Parse("water the plants", now)

		if intent.Intent != IntentTask {
			t.Fatalf("expected task fallback, got %s", intent.Intent)
		}
		if intent.Confidence != 0.5 {
			t.Errorf("expected confidence 0.5, got %v", intent.Confidence)
		}
		if intent.Parameters["title"] != "water the plants" {
			t.Errorf("expected the raw text as title, got %v", intent.Parameters["title"])
		}
	})
}
