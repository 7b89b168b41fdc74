package gemini

import (
	"net/http"
	"os"

	"cloud.google.com/go/auth"
)

const apiKeyEnvVarName = "GEMINI_API_KEY" //nolint:gosec

// Options is a set of options for the Gemini client.
type Options struct {
	DefaultModel       string
	DefaultTemperature float64
	DefaultMaxTokens   int
	MaxRetries         int
	APIKey             string
	Credentials        *auth.Credentials
	HTTPClient         *http.Client
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		DefaultModel:       "gemini-2.0-flash",
		DefaultTemperature: 0.7,
		DefaultMaxTokens:   8192,
		MaxRetries:         2,
	}
}

// EnsureAuthPresent attempts to ensure that the client has authentication
// information. If it does not, it will attempt to use the GEMINI_API_KEY
// environment variable.
func (o *Options) EnsureAuthPresent() {
	if o.APIKey == "" && o.Credentials == nil {
		if key := os.Getenv(apiKeyEnvVarName); key != "" {
			WithAPIKey(key)(o)
		}
	}
}

type Option func(*Options)

// WithAPIKey passes the API KEY (token) to the client.
func WithAPIKey(apiKey string) Option {
	return func(opts *Options) {
		opts.APIKey = apiKey
	}
}

// WithCredentials authenticates API calls with the given service account or
// refresh token JSON credentials instead of an API key.
func WithCredentials(credentials *auth.Credentials) Option {
	return func(opts *Options) {
		if credentials == nil {
			return
		}
		opts.Credentials = credentials
	}
}

// WithHTTPClient uses the provided HTTP client to make requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

// WithDefaultModel passes a default content model name to the client. This
// model name is used if not explicitly provided in specific client invocations.
func WithDefaultModel(defaultModel string) Option {
	return func(opts *Options) {
		opts.DefaultModel = defaultModel
	}
}

// WithDefaultTemperature sets the sampling temperature used when a call does
// not specify one.
func WithDefaultTemperature(defaultTemperature float64) Option {
	return func(opts *Options) {
		opts.DefaultTemperature = defaultTemperature
	}
}

// WithDefaultMaxTokens sets the maximum token count for the model.
func WithDefaultMaxTokens(maxTokens int) Option {
	return func(opts *Options) {
		opts.DefaultMaxTokens = maxTokens
	}
}

// WithMaxRetries sets how many times a failed generation call is retried.
func WithMaxRetries(maxRetries int) Option {
	return func(opts *Options) {
		opts.MaxRetries = maxRetries
	}
}
