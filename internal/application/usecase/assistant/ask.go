package assistant

import (
	"context"
	"log/slog"
	"time"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// AskInput represents the input for the AI-first assistant.
type AskInput struct {
	Text string
}

// AskOutput represents the output of the AI-first assistant. Source
// reports which parser produced the intent.
type AskOutput struct {
	Intent *adapter.ParsedIntent
	Source entity.InsightSource
}

// AskUseCase tries the AI service first and falls back to the local
// parser on any failure, so the endpoint never errors on parse trouble.
type AskUseCase struct {
	aiService adapter.AIService
}

// NewAskUseCase creates a new AskUseCase instance.
func NewAskUseCase(aiService adapter.AIService) *AskUseCase {
	return &AskUseCase{aiService: aiService}
}

// Execute parses the text, AI first.
func (uc *AskUseCase) Execute(ctx context.Context, input AskInput) (*AskOutput, error) {
	if input.Text == "" {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeEmptyAssistantInput,
			"input text cannot be empty",
			domainerror.ErrEmptyAssistantInput,
		)
	}

	if uc.aiService.IsAvailable() {
		intent, err := uc.aiService.ParseIntent(ctx, input.Text)
		if err == nil && intent != nil {
			return &AskOutput{Intent: intent, Source: entity.InsightSourceAI}, nil
		}
		slog.Warn("AI intent parsing failed, falling back to local parser", "error", err)
	}

	return &AskOutput{
		Intent: Parse(input.Text, time.Now().UTC()),
		Source: entity.InsightSourceRules,
	}, nil
}
