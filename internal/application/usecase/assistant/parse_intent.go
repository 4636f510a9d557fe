package assistant

import (
	"context"
	"time"

	"github.com/lifeos/backend/internal/application/adapter"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// ParseIntentInput represents the input for local intent parsing.
type ParseIntentInput struct {
	Text string
}

// ParseIntentOutput represents the output of local intent parsing.
type ParseIntentOutput struct {
	Intent *adapter.ParsedIntent
}

// ParseIntentUseCase runs the local regex parser only, never the AI.
type ParseIntentUseCase struct{}

// NewParseIntentUseCase creates a new ParseIntentUseCase instance.
func NewParseIntentUseCase() *ParseIntentUseCase {
	return &ParseIntentUseCase{}
}

// Execute parses the text locally.
func (uc *ParseIntentUseCase) Execute(_ context.Context, input ParseIntentInput) (*ParseIntentOutput, error) {
	if input.Text == "" {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeEmptyAssistantInput,
			"input text cannot be empty",
			domainerror.ErrEmptyAssistantInput,
		)
	}

	return &ParseIntentOutput{Intent: Parse(input.Text, time.Now().UTC())}, nil
}
