package openrouter

import (
	"net/http"
	"time"
)

const (
	tokenEnvVarName = "OPENROUTER_API_KEY" //nolint:gosec

	// DefaultBaseURL is the OpenRouter OpenAI-compatible endpoint.
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultRequestTimeout bounds every request so a hung gateway cannot stall
	// the fallback decision.
	DefaultRequestTimeout = 60 * time.Second
	// DefaultMaxRetries is the transport-level retry budget.
	DefaultMaxRetries = 2
)

type options struct {
	token              string
	model              string
	baseURL            string
	defaultTemperature float64
	maxRetries         int
	requestTimeout     time.Duration
	httpClient         *http.Client
}

// Option is a functional option for the OpenRouter client.
type Option func(*options)

// WithToken passes the OpenRouter API token to the client. If not set, the token
// is read from the OPENROUTER_API_KEY environment variable.
func WithToken(token string) Option {
	return func(opts *options) {
		opts.token = token
	}
}

// WithModel passes the provider-side model identifier the client is bound to.
func WithModel(model string) Option {
	return func(opts *options) {
		opts.model = model
	}
}

// WithBaseURL passes the base url to the client. If not set, DefaultBaseURL is used.
func WithBaseURL(baseURL string) Option {
	return func(opts *options) {
		opts.baseURL = baseURL
	}
}

// WithDefaultTemperature sets the sampling temperature used when a call does not
// specify one.
func WithDefaultTemperature(temperature float64) Option {
	return func(opts *options) {
		opts.defaultTemperature = temperature
	}
}

// WithMaxRetries sets the transport-level retry budget. If not set,
// DefaultMaxRetries is used.
func WithMaxRetries(maxRetries int) Option {
	return func(opts *options) {
		opts.maxRetries = maxRetries
	}
}

// WithRequestTimeout overrides DefaultRequestTimeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(opts *options) {
		opts.requestTimeout = timeout
	}
}

// WithHTTPClient allows setting a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *options) {
		opts.httpClient = client
	}
}
