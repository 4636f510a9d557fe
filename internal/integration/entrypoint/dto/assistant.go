// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/lifeos/backend/internal/application/adapter"

// AssistantRequest represents the request body for the assistant endpoints.
type AssistantRequest struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

// ParsedIntentResponse represents a parsed intent in API responses.
type ParsedIntentResponse struct {
	Intent     string         `json:"intent"`
	Confidence float64        `json:"confidence"`
	Parameters map[string]any `json:"parameters"`
	Message    string         `json:"message"`
	Source     string         `json:"source,omitempty"`
}

// ToParsedIntentResponse converts a ParsedIntent to a ParsedIntentResponse DTO.
func ToParsedIntentResponse(intent *adapter.ParsedIntent, source string) ParsedIntentResponse {
	parameters := intent.Parameters
	if parameters == nil {
		parameters = map[string]any{}
	}

	return ParsedIntentResponse{
		Intent:     intent.Intent,
		Confidence: intent.Confidence,
		Parameters: parameters,
		Message:    intent.Message,
		Source:     source,
	}
}
