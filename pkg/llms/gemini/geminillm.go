// Package gemini implements a paid-tier LLM client for the Google Gemini API.
// See https://ai.google.dev/ for more details.
package gemini

import (
	"context"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"

	"github.com/anhhai680/gemini-fullstack-langgraph-quickstart/pkg/llms"
)

// ErrEmptyResponse is returned when the Gemini API returns no candidates.
var ErrEmptyResponse = errors.New("empty response")

const (
	RoleModel = "model"
	RoleUser  = "user"
)

// Gemini is a type that represents a Google Gemini API client.
type Gemini struct {
	client *genai.Client
	opts   Options
}

var _ llms.Model = (*Gemini)(nil)

// New creates a new Gemini client.
func New(ctx context.Context, opts ...Option) (*Gemini, error) {
	clientOptions := DefaultOptions()
	for _, opt := range opts {
		opt(&clientOptions)
	}
	clientOptions.EnsureAuthPresent()

	cfg := &genai.ClientConfig{
		APIKey:      clientOptions.APIKey,
		Credentials: clientOptions.Credentials,
		HTTPClient:  clientOptions.HTTPClient,
		Backend:     genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}

	return &Gemini{
		client: client,
		opts:   clientOptions,
	}, nil
}

// GetProviderType implements the Model interface.
func (g *Gemini) GetProviderType() llms.ProviderType {
	return llms.ProviderGemini
}

// GetModelName implements the Model interface.
func (g *Gemini) GetModelName() string {
	return g.opts.DefaultModel
}

// GenerateContent implements the Model interface. Failed calls are retried up
// to the client's MaxRetries budget; the genai SDK does not retry on its own.
func (g *Gemini) GenerateContent(ctx context.Context, messages []llms.Message, options ...llms.CallOption) (*llms.ContentResponse, error) {
	opts := llms.CallOptions{
		Model:       g.opts.DefaultModel,
		Temperature: g.opts.DefaultTemperature,
		MaxTokens:   g.opts.DefaultMaxTokens,
	}
	for _, opt := range options {
		opt(&opts)
	}

	config := &genai.GenerateContentConfig{
		Temperature:   genai.Ptr(float32(opts.Temperature)),
		StopSequences: opts.StopWords,
	}
	if opts.MaxTokens > 0 {
		config.MaxOutputTokens = int32(opts.MaxTokens)
	}

	var contents []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case llms.RoleSystem:
			config.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: msg.Text}},
			}
		case llms.RoleHuman:
			contents = append(contents, &genai.Content{
				Role:  RoleUser,
				Parts: []*genai.Part{{Text: msg.Text}},
			})
		case llms.RoleAI:
			contents = append(contents, &genai.Content{
				Role:  RoleModel,
				Parts: []*genai.Part{{Text: msg.Text}},
			})
		default:
			return nil, errors.Errorf("role %v not supported", msg.Role)
		}
	}

	var resp *genai.GenerateContentResponse
	var err error
	for attempt := 0; attempt <= g.opts.MaxRetries; attempt++ {
		resp, err = g.client.Models.GenerateContent(ctx, opts.Model, contents, config)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return nil, errors.Wrap(err, "gemini generate content canceled")
		}
	}
	if err != nil {
		return nil, errors.Wrap(err, "gemini generate content failed")
	}
	if len(resp.Candidates) == 0 {
		return nil, ErrEmptyResponse
	}

	choices := make([]*llms.ContentChoice, len(resp.Candidates))
	for i, c := range resp.Candidates {
		var text string
		if c.Content != nil {
			for _, part := range c.Content.Parts {
				text += part.Text
			}
		}
		choices[i] = &llms.ContentChoice{
			Content:    text,
			StopReason: string(c.FinishReason),
		}
		if resp.UsageMetadata != nil {
			choices[i].GenerationInfo = map[string]any{
				"CompletionTokens": resp.UsageMetadata.CandidatesTokenCount,
				"PromptTokens":     resp.UsageMetadata.PromptTokenCount,
				"TotalTokens":      resp.UsageMetadata.TotalTokenCount,
			}
		}
	}
	return &llms.ContentResponse{Choices: choices}, nil
}
