package llmrouter

import (
	"strings"
)

// Kind classifies a free-tier provider failure.
type Kind int

const (
	// KindOther is any failure not recognized below.
	KindOther Kind = iota
	// KindInsufficientCredits means the free-tier quota is exhausted.
	KindInsufficientCredits
	// KindAuthenticationFailure means the free-tier credential was rejected.
	KindAuthenticationFailure
)

func (k Kind) String() string {
	switch k {
	case KindInsufficientCredits:
		return "insufficient_credits"
	case KindAuthenticationFailure:
		return "authentication_failure"
	}
	return "other"
}

// ClassifyFailure maps a provider error message to a Kind by case-insensitive
// substring match. The substrings are a heuristic observed from OpenRouter
// responses, not a contract with the upstream provider.
func ClassifyFailure(message string) Kind {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "insufficient credits") || strings.Contains(m, "402"):
		return KindInsufficientCredits
	case strings.Contains(m, "authentication") || strings.Contains(m, "401"):
		return KindAuthenticationFailure
	}
	return KindOther
}
