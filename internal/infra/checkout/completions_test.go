//go:build unit

package checkout_test

import (
	"testing"

	"easebooking/internal/infra/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionsFirstResolutionWins(t *testing.T) {
	c := checkout.NewCompletions()

	c.Register(42)
	require.True(t, c.Pending(42))

	assert.True(t, c.Resolve(42, checkout.OutcomeConfirmed))
	assert.False(t, c.Pending(42))

	out, ok := c.Outcome(42)
	require.True(t, ok)
	assert.Equal(t, checkout.OutcomeConfirmed, out)

	// second resolution finds nothing pending and changes nothing
	assert.False(t, c.Resolve(42, checkout.OutcomeFailed))
	out, _ = c.Outcome(42)
	assert.Equal(t, checkout.OutcomeConfirmed, out)
}

func TestCompletionsResolveUnknownBooking(t *testing.T) {
	c := checkout.NewCompletions()
	assert.False(t, c.Resolve(999, checkout.OutcomeAbandoned))

	_, ok := c.Outcome(999)
	assert.False(t, ok)
}

func TestCompletionsReregisterRestartsAttempt(t *testing.T) {
	c := checkout.NewCompletions()

	c.Register(7)
	require.True(t, c.Resolve(7, checkout.OutcomeFailed))

	c.Register(7)
	assert.True(t, c.Pending(7))
	_, ok := c.Outcome(7)
	assert.False(t, ok, "an earlier resolution is discarded on restart")

	require.True(t, c.Resolve(7, checkout.OutcomeConfirmed))
	out, _ := c.Outcome(7)
	assert.Equal(t, checkout.OutcomeConfirmed, out)
}

func TestCompletionsDismiss(t *testing.T) {
	c := checkout.NewCompletions()

	c.Register(11)
	require.True(t, c.Resolve(11, checkout.OutcomeAbandoned))

	out, ok := c.Outcome(11)
	require.True(t, ok)
	assert.Equal(t, checkout.OutcomeAbandoned, out)
}
