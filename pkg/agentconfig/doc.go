// Package agentconfig provides the per-session routing configuration of the
// research agent: which model each generation role requests, whether free-tier
// routing through OpenRouter is preferred, and the paid-provider credential.
// Values are resolved once at construction with explicit overrides taking
// precedence over environment variables, which take precedence over defaults.
package agentconfig
