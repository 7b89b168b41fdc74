// Package openrouter implements a free-tier LLM client for the OpenRouter
// gateway, which exposes an OpenAI-compatible chat-completions API. Responses are
// never streamed: a partial response is useless to the routing layer, which
// classifies construction and validation failures from complete error messages.
package openrouter

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/anhhai680/gemini-fullstack-langgraph-quickstart/pkg/llms"
)

// ErrEmptyResponse is returned when the gateway returns no choices.
var ErrEmptyResponse = errors.New("empty response")

// LLM is an OpenRouter chat client bound to one model.
type LLM struct {
	client openai.Client
	opts   options
}

var _ llms.Model = (*LLM)(nil)

// New returns a new OpenRouter LLM. It fails when no API token is supplied
// either explicitly or via the OPENROUTER_API_KEY environment variable.
func New(opts ...Option) (*LLM, error) {
	o := options{
		baseURL:        DefaultBaseURL,
		maxRetries:     DefaultMaxRetries,
		requestTimeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.token == "" {
		o.token = os.Getenv(tokenEnvVarName)
	}
	if o.token == "" {
		return nil, errors.New("OPENROUTER_API_KEY environment variable is required")
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(o.token),
		option.WithBaseURL(o.baseURL),
		option.WithMaxRetries(o.maxRetries),
		option.WithRequestTimeout(o.requestTimeout),
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(o.httpClient))
	}

	return &LLM{
		client: openai.NewClient(clientOpts...),
		opts:   o,
	}, nil
}

// GetProviderType implements the Model interface.
func (o *LLM) GetProviderType() llms.ProviderType {
	return llms.ProviderOpenRouter
}

// GetModelName implements the Model interface.
func (o *LLM) GetModelName() string {
	return o.opts.model
}

// GenerateContent implements the Model interface.
func (o *LLM) GenerateContent(ctx context.Context, messages []llms.Message, options ...llms.CallOption) (*llms.ContentResponse, error) {
	opts := llms.CallOptions{
		Model:       o.opts.model,
		Temperature: o.opts.defaultTemperature,
	}
	for _, opt := range options {
		opt(&opts)
	}

	chatMsgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case llms.RoleSystem:
			chatMsgs = append(chatMsgs, openai.SystemMessage(msg.Text))
		case llms.RoleHuman:
			chatMsgs = append(chatMsgs, openai.UserMessage(msg.Text))
		case llms.RoleAI:
			chatMsgs = append(chatMsgs, openai.AssistantMessage(msg.Text))
		default:
			return nil, errors.Errorf("role %v not supported", msg.Role)
		}
	}

	req := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(opts.Model),
		Messages:    chatMsgs,
		Temperature: openai.Float(opts.Temperature),
	}
	if opts.MaxTokens > 0 {
		req.MaxCompletionTokens = openai.Int(int64(opts.MaxTokens))
	}
	if len(opts.StopWords) > 0 {
		req.Stop = openai.ChatCompletionNewParamsStopUnion{OfStringArray: opts.StopWords}
	}

	result, err := o.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "openrouter chat completion failed")
	}
	if len(result.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	choices := make([]*llms.ContentChoice, len(result.Choices))
	for i, c := range result.Choices {
		choices[i] = &llms.ContentChoice{
			Content:    c.Message.Content,
			StopReason: string(c.FinishReason),
			GenerationInfo: map[string]any{
				"CompletionTokens": result.Usage.CompletionTokens,
				"PromptTokens":     result.Usage.PromptTokens,
				"TotalTokens":      result.Usage.TotalTokens,
			},
		}
	}
	return &llms.ContentResponse{Choices: choices}, nil
}
