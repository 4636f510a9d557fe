// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"
)

// InsightType classifies what an insight is about.
type InsightType string

const (
	InsightTypeAchievement    InsightType = "achievement"
	InsightTypeWarning        InsightType = "warning"
	InsightTypeRecommendation InsightType = "recommendation"
	InsightTypeWellbeing      InsightType = "wellbeing"
)

// InsightSeverity grades how urgent an insight is.
type InsightSeverity string

const (
	InsightSeverityInfo     InsightSeverity = "info"
	InsightSeverityWarning  InsightSeverity = "warning"
	InsightSeverityCritical InsightSeverity = "critical"
)

// InsightSource records which path produced an insight list.
type InsightSource string

const (
	InsightSourceRules InsightSource = "rules"
	InsightSourceAI    InsightSource = "ai"
)

// Insight represents a derived, human-readable observation over the
// current aggregates. Insights are never persisted to the database; they
// live in the insight store until cleared or regenerated.
//
// The ID is deterministic per rule and subject so that regenerating over
// unchanged data yields an identical list.
type Insight struct {
	ID          string          `json:"id"`
	Type        InsightType     `json:"type"`
	Severity    InsightSeverity `json:"severity"`
	Icon        string          `json:"icon"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Actionable  bool            `json:"actionable"`
	GeneratedAt time.Time       `json:"generated_at"`
}
