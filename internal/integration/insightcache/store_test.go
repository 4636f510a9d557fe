package insightcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

func sampleInsights() []entity.Insight {
	return []entity.Insight{
		{
			ID:          "habit-streak-" + uuid.NewString(),
			Type:        entity.InsightTypeAchievement,
			Severity:    entity.InsightSeverityInfo,
			Icon:        "🔥",
			Title:       "Streak Master",
			Content:     "12-day streak on Morning Run. Keep it going!",
			GeneratedAt: time.Now().UTC().Truncate(time.Second),
		},
		{
			ID:          "high-weekly-spending",
			Type:        entity.InsightTypeWarning,
			Severity:    entity.InsightSeverityWarning,
			Icon:        "💸",
			Title:       "High Spending Alert",
			Content:     "You spent $612.00 this week.",
			Actionable:  true,
			GeneratedAt: time.Now().UTC().Truncate(time.Second),
		},
	}
}

func runStoreTests(t *testing.T, store adapter.InsightStore) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("list before any replace returns empty slice", func(t *testing.T) {
		insights, err := store.List(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if insights == nil || len(insights) != 0 {
			t.Errorf("expected empty slice, got %v", insights)
		}
	})

	t.Run("replace then list roundtrips", func(t *testing.T) {
		want := sampleInsights()
		if err := store.Replace(ctx, userID, want); err != nil {
			t.Fatalf("replace failed: %v", err)
		}

		got, err := store.List(ctx, userID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d insights, got %d", len(want), len(got))
		}
		if got[0].ID != want[0].ID || got[1].Title != want[1].Title {
			t.Errorf("insights did not roundtrip: got %+v", got)
		}
	})

	t.Run("replace overwrites previous list", func(t *testing.T) {
		if err := store.Replace(ctx, userID, sampleInsights()[:1]); err != nil {
			t.Fatalf("replace failed: %v", err)
		}

		got, err := store.List(ctx, userID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 insight after overwrite, got %d", len(got))
		}
	})

	t.Run("clear removes everything for the user", func(t *testing.T) {
		if err := store.Clear(ctx, userID); err != nil {
			t.Fatalf("clear failed: %v", err)
		}

		got, err := store.List(ctx, userID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty list after clear, got %d", len(got))
		}
	})

	t.Run("users are isolated", func(t *testing.T) {
		other := uuid.New()
		if err := store.Replace(ctx, other, sampleInsights()); err != nil {
			t.Fatalf("replace failed: %v", err)
		}

		got, err := store.List(ctx, userID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no insights for cleared user, got %d", len(got))
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mini.Close()

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	defer client.Close()

	runStoreTests(t, NewRedisStore(client, time.Hour))
}
