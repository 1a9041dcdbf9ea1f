package checkout

import "sync"

// Outcome is the terminal result of one checkout attempt.
type Outcome string

const (
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeFailed    Outcome = "failed"
	// OutcomeAbandoned: the visitor closed the checkout UI. Not an
	// error; the booking stays unconfirmed and retryable.
	OutcomeAbandoned Outcome = "abandoned"
)

// Completions tracks checkout attempts by bookingId from registration
// until the provider's asynchronous callback (or the visitor's
// dismissal) resolves them. The first resolution wins; later ones are
// no-ops. There is no timeout: an attempt stays pending until the
// visitor acts again. The registry is process-local and resets on
// restart.
type Completions struct {
	mu       sync.Mutex
	pending  map[int64]struct{}
	resolved map[int64]Outcome
}

func NewCompletions() *Completions {
	return &Completions{
		pending:  make(map[int64]struct{}),
		resolved: make(map[int64]Outcome),
	}
}

// Register opens an attempt for a booking. Re-registering the same
// bookingId restarts the attempt; an earlier resolution is discarded.
func (c *Completions) Register(bookingID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending[bookingID] = struct{}{}
	delete(c.resolved, bookingID)
}

// Resolve completes a pending attempt. Returns false when nothing is
// pending for the bookingId (already resolved, or never registered).
func (c *Completions) Resolve(bookingID int64, outcome Outcome) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pending[bookingID]; !ok {
		return false
	}
	delete(c.pending, bookingID)
	c.resolved[bookingID] = outcome
	return true
}

// Pending reports whether an attempt is still awaiting its callback.
func (c *Completions) Pending(bookingID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[bookingID]
	return ok
}

// Outcome returns the terminal result of a resolved attempt.
func (c *Completions) Outcome(bookingID int64) (Outcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out, ok := c.resolved[bookingID]
	return out, ok
}
