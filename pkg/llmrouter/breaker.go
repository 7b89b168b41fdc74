package llmrouter

import (
	"sync"
)

// Breaker is session-scoped memory of free-tier models known to be exhausted.
// It never persists across restarts: quota windows reset out-of-band.
type Breaker struct {
	mu        sync.Mutex
	suspended map[string]bool
}

// NewBreaker returns a Breaker with no suspensions.
func NewBreaker() *Breaker {
	return &Breaker{
		suspended: make(map[string]bool),
	}
}

// Suspend marks a model as exhausted for the remainder of the session.
// Redundant suspensions are harmless.
func (b *Breaker) Suspend(model string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.suspended[model] = true
}

// IsSuspended reports whether a model is currently suspended.
func (b *Breaker) IsSuspended(model string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.suspended[model]
}

// Reset clears all suspensions. Idempotent.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.suspended = make(map[string]bool)
}
