// Package llms provides unified support for interacting with the Language Model
// providers used by the research agent. It defines the Model interface returned by
// the routing layer, the message and response types exchanged with a provider, and
// the call options shared by all provider implementations.
//
// Each subpackage contains one provider-specific client: openrouter for the
// OpenAI-compatible free-tier gateway, gemini for the Google Gemini API.
package llms
