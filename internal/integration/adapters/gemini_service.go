// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lifeos/backend/config"
	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// GeminiService implements the adapter.AIService interface using Google
// Gemini. A fresh client is created per call so that a missing or rotated
// API key never leaves a stale connection around.
type GeminiService struct {
	apiKey    string
	modelName string
	timeout   time.Duration
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(cfg config.AIConfig) *GeminiService {
	return &GeminiService{
		apiKey:    cfg.GeminiAPIKey,
		modelName: cfg.Model,
		timeout:   cfg.Timeout,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateInsights asks Gemini for an insight list derived from the snapshot.
func (s *GeminiService) GenerateInsights(ctx context.Context, snapshot adapter.LifeSnapshot) ([]entity.Insight, error) {
	content, err := s.generate(ctx, s.buildInsightPrompt(snapshot), true)
	if err != nil {
		return nil, err
	}

	var raw []geminiInsight
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrAIResponseUnparsable, err)
	}

	now := time.Now().UTC()
	insights := make([]entity.Insight, 0, len(raw))
	for i, r := range raw {
		if r.Title == "" || r.Content == "" {
			continue
		}
		insights = append(insights, entity.Insight{
			ID:          fmt.Sprintf("ai-%d-%d", now.Unix(), i),
			Type:        normalizeInsightType(r.Type),
			Severity:    normalizeInsightSeverity(r.Severity),
			Icon:        r.Icon,
			Title:       r.Title,
			Content:     r.Content,
			Actionable:  r.Actionable,
			GeneratedAt: now,
		})
	}
	return insights, nil
}

// GenerateBriefing asks Gemini for a short narrative daily briefing.
func (s *GeminiService) GenerateBriefing(ctx context.Context, snapshot adapter.LifeSnapshot) (string, error) {
	content, err := s.generate(ctx, s.buildBriefingPrompt(snapshot), false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// ParseIntent asks Gemini to extract a structured intent from free-form text.
func (s *GeminiService) ParseIntent(ctx context.Context, text string) (*adapter.ParsedIntent, error) {
	content, err := s.generate(ctx, s.buildIntentPrompt(text), true)
	if err != nil {
		return nil, err
	}

	var raw geminiIntent
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrAIResponseUnparsable, err)
	}
	if raw.Intent == "" {
		return nil, fmt.Errorf("%w: missing intent field", domainerror.ErrAIResponseUnparsable)
	}

	return &adapter.ParsedIntent{
		Intent:     raw.Intent,
		Confidence: raw.Confidence,
		Parameters: raw.Parameters,
		Message:    raw.Message,
	}, nil
}

// generate runs a single prompt through the model and returns the cleaned
// text content of the first candidate.
func (s *GeminiService) generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("%w: gemini api key is not configured", domainerror.ErrAIServiceUnavailable)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create client: %v", domainerror.ErrAIServiceUnavailable, err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	if jsonOutput {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerror.ErrAIServiceUnavailable, err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", domainerror.ErrAIResponseUnparsable)
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return "", fmt.Errorf("%w: no text content in response", domainerror.ErrAIResponseUnparsable)
	}

	// Strip markdown code fences the model sometimes wraps JSON in.
	textContent = strings.TrimSpace(textContent)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	return strings.TrimSpace(textContent), nil
}

// geminiInsight represents the raw insight shape returned by Gemini.
type geminiInsight struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	Icon       string `json:"icon"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Actionable bool   `json:"actionable"`
}

// geminiIntent represents the raw intent shape returned by Gemini.
type geminiIntent struct {
	Intent     string         `json:"intent"`
	Confidence float64        `json:"confidence"`
	Parameters map[string]any `json:"parameters"`
	Message    string         `json:"message"`
}

func normalizeInsightType(t string) entity.InsightType {
	switch entity.InsightType(t) {
	case entity.InsightTypeAchievement, entity.InsightTypeWarning,
		entity.InsightTypeRecommendation, entity.InsightTypeWellbeing:
		return entity.InsightType(t)
	default:
		return entity.InsightTypeRecommendation
	}
}

func normalizeInsightSeverity(sev string) entity.InsightSeverity {
	switch entity.InsightSeverity(sev) {
	case entity.InsightSeverityInfo, entity.InsightSeverityWarning, entity.InsightSeverityCritical:
		return entity.InsightSeverity(sev)
	default:
		return entity.InsightSeverityInfo
	}
}

// buildInsightPrompt creates the insight generation prompt.
func (s *GeminiService) buildInsightPrompt(snapshot adapter.LifeSnapshot) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal life coach analyzing a user's tracked life data. Produce between 2 and 5 concise, specific insights.

Each insight must have:
- "type": one of "achievement", "warning", "recommendation", "wellbeing"
- "severity": one of "info", "warning", "critical"
- "icon": a single emoji
- "title": short headline, max 8 words
- "content": one or two sentences referencing the actual numbers below
- "actionable": true when the user should act on it

RULES:
- Never invent numbers that are not in the data.
- Prefer the most significant observations over generic advice.
- Respond with ONLY a JSON array of insight objects, no extra text.

`)
	s.writeSnapshot(&sb, snapshot)
	return sb.String()
}

// buildBriefingPrompt creates the daily briefing prompt.
func (s *GeminiService) buildBriefingPrompt(snapshot adapter.LifeSnapshot) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal assistant writing a short daily briefing for a single user based on their tracked life data. Write 3 to 5 sentences in the second person, friendly but direct. Mention the life score, the most urgent item, and one encouragement grounded in the numbers. Respond with plain text only, no markdown.

`)
	s.writeSnapshot(&sb, snapshot)
	return sb.String()
}

// buildIntentPrompt creates the natural language intent extraction prompt.
func (s *GeminiService) buildIntentPrompt(text string) string {
	var sb strings.Builder

	sb.WriteString(`Extract a structured intent from the user's message for a life tracking app.

Respond with a single JSON object:
{
  "intent": "expense" | "task" | "study_session" | "habit_completion" | "journal" | "unknown",
  "confidence": 0.0-1.0,
  "parameters": { intent-specific fields },
  "message": "short confirmation sentence for the user"
}

Parameter fields per intent:
- expense: "amount" (number), "category" (string), "description" (string)
- task: "title" (string), "deadline" (ISO date or null)
- study_session: "subject" (string), "duration_minutes" (number)
- habit_completion: "habit_name" (string)
- journal: "mood" (1-10), "content" (string)

Use "unknown" with confidence 0.5 when the message fits no intent.

USER MESSAGE:
`)
	sb.WriteString(text)
	return sb.String()
}

// writeSnapshot renders the cross-domain aggregates as prompt context.
func (s *GeminiService) writeSnapshot(sb *strings.Builder, snapshot adapter.LifeSnapshot) {
	sb.WriteString("LIFE DATA:\n")
	fmt.Fprintf(sb, "- Life score: %d (%s)\n", snapshot.LifeScore, snapshot.LifeState)
	fmt.Fprintf(sb, "- Tasks: %d total, %d completed, %d pending, %d overdue, %d completed today\n",
		snapshot.TaskStats.TotalCount, snapshot.TaskStats.CompletedCount,
		snapshot.TaskStats.PendingCount, snapshot.TaskStats.OverdueCount,
		snapshot.TaskStats.CompletedTodayCount)
	fmt.Fprintf(sb, "- Habits: %d total, %d done today, average streak %.1f days, longest streak %d days\n",
		snapshot.HabitStats.TotalCount, snapshot.HabitStats.CompletedTodayCount,
		snapshot.HabitStats.AverageStreak, snapshot.HabitStats.LongestStreak)
	fmt.Fprintf(sb, "- Finance this month: income %s, expenses %s, balance %s across %d transactions\n",
		snapshot.FinanceStats.Income.StringFixed(2), snapshot.FinanceStats.Expenses.StringFixed(2),
		snapshot.FinanceStats.Balance.StringFixed(2), snapshot.FinanceStats.TransactionCount)
	fmt.Fprintf(sb, "- Time this week: %d minutes tracked, %d deep focus minutes, avg %d minutes/day\n",
		snapshot.TimeStats.TotalMinutes, snapshot.TimeStats.DeepFocusMinutes,
		snapshot.TimeStats.AvgDailyMinutes)
	fmt.Fprintf(sb, "- Goals: %d total, average progress %d%%\n",
		snapshot.GoalStats.TotalCount, snapshot.GoalStats.AvgProgress)
	if snapshot.MoodAverage > 0 {
		fmt.Fprintf(sb, "- Recent mood average: %.1f/10\n", snapshot.MoodAverage)
	} else {
		sb.WriteString("- Recent mood average: no journal entries yet\n")
	}
}
