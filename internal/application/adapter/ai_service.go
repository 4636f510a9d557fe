// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/lifeos/backend/internal/domain/entity"
)

// LifeSnapshot condenses the cross-domain aggregates handed to the AI
// service as generation context.
type LifeSnapshot struct {
	TaskStats    entity.TaskStats
	HabitStats   entity.HabitStats
	FinanceStats entity.FinanceStats
	TimeStats    entity.TimeStats
	GoalStats    entity.GoalStats
	MoodAverage  float64
	LifeScore    int
	LifeState    string
}

// ParsedIntent is the structured result of natural language parsing.
type ParsedIntent struct {
	Intent     string
	Confidence float64
	Parameters map[string]any
	Message    string
}

// AIService defines the interface for AI-backed generation. All methods
// return errors wrapping domainerror.ErrAIServiceUnavailable when the
// provider is not configured; callers fall back to local paths.
type AIService interface {
	// GenerateInsights produces an insight list from a life snapshot.
	GenerateInsights(ctx context.Context, snapshot LifeSnapshot) ([]entity.Insight, error)

	// GenerateBriefing produces a short narrative daily briefing.
	GenerateBriefing(ctx context.Context, snapshot LifeSnapshot) (string, error)

	// ParseIntent extracts a structured intent from free-form text.
	ParseIntent(ctx context.Context, text string) (*ParsedIntent, error)

	// IsAvailable reports whether the provider is configured.
	IsAvailable() bool
}
