// Package llmrouter resolves a generation role to a concrete, configured LLM
// client. Free-tier catalog models are served through OpenRouter when the session
// prefers them and a credential is present; every free-tier failure is classified
// and degraded to the paid Gemini provider, so a caller almost always receives a
// usable client. A session-scoped circuit breaker remembers free-tier models that
// ran out of credits and skips them for the rest of the session.
package llmrouter
