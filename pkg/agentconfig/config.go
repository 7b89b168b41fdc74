package agentconfig

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/anhhai680/gemini-fullstack-langgraph-quickstart", "agentconfig")

// ErrUnknownRole is returned when a caller asks for a role outside the fixed set.
var ErrUnknownRole = errors.New("unknown role")

// Role is one of the logical generation stages a caller may request a client for.
type Role string

const (
	// RoleQueryGenerator generates the initial search queries.
	RoleQueryGenerator Role = "query_generator"
	// RoleReflection evaluates gathered results and decides on followups.
	RoleReflection Role = "reflection"
	// RoleAnswer composes the final answer.
	RoleAnswer Role = "answer"
)

// Environment variable names, derived by upper-casing the configuration field names.
const (
	EnvQueryGeneratorModel    = "QUERY_GENERATOR_MODEL"
	EnvReflectionModel        = "REFLECTION_MODEL"
	EnvAnswerModel            = "ANSWER_MODEL"
	EnvUseOpenRouter          = "USE_OPENROUTER"
	EnvGeminiAPIKey           = "GEMINI_API_KEY"
	EnvNumberOfInitialQueries = "NUMBER_OF_INITIAL_QUERIES"
	EnvMaxResearchLoops       = "MAX_RESEARCH_LOOPS"
)

// DefaultModel is the model requested for every role unless overridden.
const DefaultModel = "gpt-oss-20b"

// Configuration holds the routing intent for one session. Read-only after New.
type Configuration struct {
	// QueryGeneratorModel is the model requested for query generation.
	QueryGeneratorModel string
	// ReflectionModel is the model requested for reflection.
	ReflectionModel string
	// AnswerModel is the model requested for answer composition.
	AnswerModel string
	// UseOpenRouter prefers free-tier routing for catalog models.
	UseOpenRouter bool
	// GeminiAPIKey is the paid-provider credential used for fallback.
	GeminiAPIKey string
	// NumberOfInitialQueries is the number of initial search queries to generate.
	NumberOfInitialQueries int
	// MaxResearchLoops is the maximum number of research loops to perform.
	MaxResearchLoops int
}

// LookupEnvFunc looks up an environment value, reporting whether it is set.
type LookupEnvFunc func(key string) (string, bool)

type builder struct {
	lookupEnv LookupEnvFunc

	queryGeneratorModel    *string
	reflectionModel        *string
	answerModel            *string
	useOpenRouter          *bool
	geminiAPIKey           *string
	numberOfInitialQueries *int
	maxResearchLoops       *int
}

// Option overrides one configuration value, taking precedence over the environment.
type Option func(*builder)

// WithLookupEnv injects the environment lookup used during construction.
// Defaults to os.LookupEnv.
func WithLookupEnv(lookup LookupEnvFunc) Option {
	return func(b *builder) {
		b.lookupEnv = lookup
	}
}

// WithQueryGeneratorModel overrides the query-generator model name.
func WithQueryGeneratorModel(model string) Option {
	return func(b *builder) {
		b.queryGeneratorModel = &model
	}
}

// WithReflectionModel overrides the reflection model name.
func WithReflectionModel(model string) Option {
	return func(b *builder) {
		b.reflectionModel = &model
	}
}

// WithAnswerModel overrides the answer model name.
func WithAnswerModel(model string) Option {
	return func(b *builder) {
		b.answerModel = &model
	}
}

// WithUseOpenRouter overrides the free-tier preference.
func WithUseOpenRouter(use bool) Option {
	return func(b *builder) {
		b.useOpenRouter = &use
	}
}

// WithGeminiAPIKey overrides the paid-provider credential.
func WithGeminiAPIKey(key string) Option {
	return func(b *builder) {
		b.geminiAPIKey = &key
	}
}

// WithNumberOfInitialQueries overrides the number of initial search queries.
func WithNumberOfInitialQueries(n int) Option {
	return func(b *builder) {
		b.numberOfInitialQueries = &n
	}
}

// WithMaxResearchLoops overrides the maximum number of research loops.
func WithMaxResearchLoops(n int) Option {
	return func(b *builder) {
		b.maxResearchLoops = &n
	}
}

// New builds a Configuration. Precedence per field: explicit Option, then
// environment variable, then built-in default.
func New(opts ...Option) *Configuration {
	b := &builder{
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(b)
	}

	cfg := &Configuration{
		QueryGeneratorModel:    b.stringValue(b.queryGeneratorModel, EnvQueryGeneratorModel, DefaultModel),
		ReflectionModel:        b.stringValue(b.reflectionModel, EnvReflectionModel, DefaultModel),
		AnswerModel:            b.stringValue(b.answerModel, EnvAnswerModel, DefaultModel),
		UseOpenRouter:          b.boolValue(b.useOpenRouter, EnvUseOpenRouter, true),
		GeminiAPIKey:           b.stringValue(b.geminiAPIKey, EnvGeminiAPIKey, ""),
		NumberOfInitialQueries: b.intValue(b.numberOfInitialQueries, EnvNumberOfInitialQueries, 3),
		MaxResearchLoops:       b.intValue(b.maxResearchLoops, EnvMaxResearchLoops, 2),
	}
	return cfg
}

// ModelForRole returns the model name requested for a role.
func (c *Configuration) ModelForRole(role Role) (string, error) {
	switch role {
	case RoleQueryGenerator:
		return c.QueryGeneratorModel, nil
	case RoleReflection:
		return c.ReflectionModel, nil
	case RoleAnswer:
		return c.AnswerModel, nil
	}
	return "", errors.WithMessagef(ErrUnknownRole, "role: %q", role)
}

func (b *builder) stringValue(override *string, env, def string) string {
	if override != nil {
		return *override
	}
	if v, ok := b.lookupEnv(env); ok && v != "" {
		return v
	}
	return def
}

func (b *builder) boolValue(override *bool, env string, def bool) bool {
	if override != nil {
		return *override
	}
	if v, ok := b.lookupEnv(env); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			logger.KV(xlog.WARNING, "reason", "invalid_bool", "env", env, "value", v)
			return def
		}
		return parsed
	}
	return def
}

func (b *builder) intValue(override *int, env string, def int) int {
	if override != nil {
		return *override
	}
	if v, ok := b.lookupEnv(env); ok && v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			logger.KV(xlog.WARNING, "reason", "invalid_int", "env", env, "value", v)
			return def
		}
		return parsed
	}
	return def
}
