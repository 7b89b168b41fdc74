package llmrouter

import (
	"context"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"

	"github.com/anhhai680/gemini-fullstack-langgraph-quickstart/pkg/agentconfig"
	"github.com/anhhai680/gemini-fullstack-langgraph-quickstart/pkg/catalog"
	"github.com/anhhai680/gemini-fullstack-langgraph-quickstart/pkg/llms"
	"github.com/anhhai680/gemini-fullstack-langgraph-quickstart/pkg/llms/gemini"
	"github.com/anhhai680/gemini-fullstack-langgraph-quickstart/pkg/llms/openrouter"
	"github.com/anhhai680/gemini-fullstack-langgraph-quickstart/pkg/metricskey"
)

var logger = xlog.NewPackageLogger("github.com/anhhai680/gemini-fullstack-langgraph-quickstart", "llmrouter")

// DefaultPaidModel is the fixed paid model used for every free-tier fallback,
// regardless of the originally requested name.
const DefaultPaidModel = "gemini-2.0-flash"

const freeTierKeyEnvVarName = "OPENROUTER_API_KEY" //nolint:gosec

var (
	// ErrUnknownModel means a model classified as free-tier is missing from the
	// catalog; the catalog and role configuration are out of sync.
	ErrUnknownModel = errors.New("model not present in free-tier catalog")
	// ErrProviderUnavailable means the paid provider client could not be
	// constructed. There is no further fallback below the paid tier, so this is
	// the only failure CreateClient surfaces for recognized roles.
	ErrProviderUnavailable = errors.New("paid provider unavailable")
)

// FreeTierConstructor builds a free-tier client for a catalog entry.
type FreeTierConstructor func(ctx context.Context, entry *catalog.Entry, apiKey string, temperature float64, maxRetries int) (llms.Model, error)

// PaidConstructor builds a paid-tier client for a model identifier.
type PaidConstructor func(ctx context.Context, model, apiKey string, temperature float64, maxRetries int) (llms.Model, error)

// NewFreeTierLLM is a wrapper for CreateFreeTierLLM to allow for overriding the
// default implementation.
var NewFreeTierLLM FreeTierConstructor = CreateFreeTierLLM

// NewPaidLLM is a wrapper for CreatePaidLLM to allow for overriding the default
// implementation.
var NewPaidLLM PaidConstructor = CreatePaidLLM

// CreateFreeTierLLM builds an OpenRouter client bound to the entry's
// provider-side model identifier. Streaming stays disabled and the request
// timeout fixed so fallback decisions never see a partial response.
func CreateFreeTierLLM(_ context.Context, entry *catalog.Entry, apiKey string, temperature float64, maxRetries int) (llms.Model, error) {
	return openrouter.New(
		openrouter.WithToken(apiKey),
		openrouter.WithModel(entry.Model),
		openrouter.WithDefaultTemperature(temperature),
		openrouter.WithMaxRetries(maxRetries),
	)
}

// CreatePaidLLM builds a Gemini client.
func CreatePaidLLM(ctx context.Context, model, apiKey string, temperature float64, maxRetries int) (llms.Model, error) {
	return gemini.New(ctx,
		gemini.WithAPIKey(apiKey),
		gemini.WithDefaultModel(model),
		gemini.WithDefaultTemperature(temperature),
		gemini.WithMaxRetries(maxRetries),
	)
}

// Router resolves roles to concrete LLM clients. Safe for concurrent use.
type Router struct {
	cfg       *agentconfig.Configuration
	catalog   *catalog.Catalog
	breaker   *Breaker
	lookupEnv agentconfig.LookupEnvFunc

	newFreeTier FreeTierConstructor
	newPaid     PaidConstructor
}

// Option configures a Router.
type Option func(*Router)

// WithCatalog replaces the default free-tier catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(r *Router) {
		r.catalog = c
	}
}

// WithLookupEnv injects the environment lookup used to check free-tier
// credential presence. Defaults to os.LookupEnv.
func WithLookupEnv(lookup agentconfig.LookupEnvFunc) Option {
	return func(r *Router) {
		r.lookupEnv = lookup
	}
}

// WithFreeTierConstructor overrides the free-tier client constructor.
func WithFreeTierConstructor(newLLM FreeTierConstructor) Option {
	return func(r *Router) {
		r.newFreeTier = newLLM
	}
}

// WithPaidConstructor overrides the paid-tier client constructor.
func WithPaidConstructor(newLLM PaidConstructor) Option {
	return func(r *Router) {
		r.newPaid = newLLM
	}
}

// New creates a Router for one session.
func New(cfg *agentconfig.Configuration, opts ...Option) *Router {
	r := &Router{
		cfg:         cfg,
		catalog:     catalog.Default(),
		breaker:     NewBreaker(),
		lookupEnv:   os.LookupEnv,
		newFreeTier: NewFreeTierLLM,
		newPaid:     NewPaidLLM,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateClient resolves a role to a configured client. It fails only with
// ErrUnknownRole for an unrecognized role, ErrUnknownModel when the catalog and
// configuration disagree, or ErrProviderUnavailable when even the paid tier
// cannot be constructed; every free-tier failure degrades to the paid provider.
func (r *Router) CreateClient(ctx context.Context, role agentconfig.Role, temperature float64, maxRetries int) (llms.Model, error) {
	defer metricskey.PerfCreateClient.MeasureSince(time.Now(), string(role))

	modelName, err := r.cfg.ModelForRole(role)
	if err != nil {
		return nil, err
	}

	if !r.cfg.UseOpenRouter || !r.catalog.Has(modelName) {
		logger.KV(xlog.DEBUG, "status", "routing_paid", "role", role, "model", modelName)
		return r.createPaid(ctx, modelName, temperature, maxRetries)
	}

	apiKey, ok := r.lookupEnv(freeTierKeyEnvVarName)
	if !ok || apiKey == "" {
		logger.KV(xlog.WARNING,
			"status", "fallback",
			"reason", "missing_api_key",
			"role", role,
			"model", modelName)
		metricskey.StatsRouterFallbacks.IncrCounter(1, "missing_api_key")
		return r.createPaid(ctx, DefaultPaidModel, temperature, maxRetries)
	}

	if r.breaker.IsSuspended(modelName) {
		logger.KV(xlog.DEBUG,
			"status", "fallback",
			"reason", "circuit_open",
			"role", role,
			"model", modelName)
		metricskey.StatsRouterFallbacks.IncrCounter(1, "circuit_open")
		return r.createPaid(ctx, DefaultPaidModel, temperature, maxRetries)
	}

	entry, err := r.catalog.Lookup(modelName)
	if err != nil {
		return nil, errors.Mark(err, ErrUnknownModel)
	}

	model, err := r.newFreeTier(ctx, entry, apiKey, temperature, maxRetries)
	if err == nil {
		logger.KV(xlog.DEBUG,
			"status", "created_llm",
			"provider", llms.ProviderOpenRouter,
			"role", role,
			"model", entry.Model)
		metricskey.StatsRouterClientsCreated.IncrCounter(1, string(llms.ProviderOpenRouter), entry.Model)
		return model, nil
	}

	kind := ClassifyFailure(err.Error())
	switch kind {
	case KindInsufficientCredits:
		r.breaker.Suspend(modelName)
		metricskey.StatsRouterBreakerTripped.IncrCounter(1, modelName)
		logger.KV(xlog.ERROR,
			"reason", "insufficient_credits",
			"role", role,
			"model", modelName,
			"hint", "add credits at https://openrouter.ai/settings/credits",
			"err", err.Error())
	case KindAuthenticationFailure:
		logger.KV(xlog.ERROR,
			"reason", "authentication_failure",
			"role", role,
			"model", modelName,
			"hint", "check the OPENROUTER_API_KEY environment variable",
			"err", err.Error())
	default:
		logger.KV(xlog.ERROR,
			"reason", "free_tier_failed",
			"role", role,
			"model", modelName,
			"err", err.Error())
	}
	metricskey.StatsRouterFallbacks.IncrCounter(1, kind.String())
	return r.createPaid(ctx, DefaultPaidModel, temperature, maxRetries)
}

// ResetCircuitBreaker clears all free-tier suspensions so suspended models are
// tried again. Idempotent, safe to call when nothing is suspended.
func (r *Router) ResetCircuitBreaker() {
	r.breaker.Reset()
	metricskey.StatsRouterBreakerReset.IncrCounter(1)
	logger.KV(xlog.DEBUG, "status", "breaker_reset")
}

// FreeTierModels returns the logical names of the known free-tier models.
func (r *Router) FreeTierModels() []string {
	return r.catalog.Names()
}

func (r *Router) createPaid(ctx context.Context, modelName string, temperature float64, maxRetries int) (llms.Model, error) {
	model, err := r.newPaid(ctx, modelName, r.cfg.GeminiAPIKey, temperature, maxRetries)
	if err != nil {
		return nil, errors.Mark(
			errors.Wrapf(err, "failed to create paid-tier client for model %q", modelName),
			ErrProviderUnavailable)
	}
	logger.KV(xlog.DEBUG,
		"status", "created_llm",
		"provider", llms.ProviderGemini,
		"model", modelName)
	metricskey.StatsRouterClientsCreated.IncrCounter(1, string(llms.ProviderGemini), modelName)
	return model, nil
}
