package llms

import (
	"context"
)

// ProviderType is the type of provider.
type ProviderType string

const (
	// ProviderOpenRouter is the free-tier OpenAI-compatible gateway.
	ProviderOpenRouter ProviderType = "OPENROUTER"
	// ProviderGemini is the paid Google Gemini API.
	ProviderGemini ProviderType = "GEMINI"
)

// Model is the interface all provider clients implement. A Model returned by the
// router is bound to one concrete provider, model identifier, default temperature
// and retry budget; the caller owns it from then on.
type Model interface {
	// GetProviderType returns the type of provider.
	GetProviderType() ProviderType
	// GetModelName returns the provider-side model identifier the client is bound to.
	GetModelName() string
	// GenerateContent asks the model to generate content from a sequence of messages.
	GenerateContent(ctx context.Context, messages []Message, options ...CallOption) (*ContentResponse, error)
}
