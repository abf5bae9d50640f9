package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newTestBreaker(threshold int) (*CircuitBreaker, *time.Time) {
	now := time.Unix(1_700_000_000, 0)
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: threshold,
		RecoveryTimeout:  10 * time.Second,
		SuccessThreshold: 2,
	})
	cb.now = func() time.Time { return now }
	return cb, &now
}

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(3)

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Call(func() error { return errBoom }), errBoom)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Call(func() error { called = true; return nil })

	var cbErr *CircuitBreakerError
	require.ErrorAs(t, err, &cbErr)
	assert.Equal(t, StateOpen, cbErr.State)
	assert.False(t, called, "open circuit must not call through")
}

func TestCircuitBreakerSuccessResetsFailures(t *testing.T) {
	cb, _ := newTestBreaker(3)

	_ = cb.Call(func() error { return errBoom })
	_ = cb.Call(func() error { return errBoom })
	require.NoError(t, cb.Call(func() error { return nil }))

	assert.Equal(t, 0, cb.Failures())
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreakerRecovery(t *testing.T) {
	cb, now := newTestBreaker(1)

	_ = cb.Call(func() error { return errBoom })
	require.Equal(t, StateOpen, cb.State())

	*now = now.Add(11 * time.Second)
	require.NoError(t, cb.Call(func() error { return nil }))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Call(func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	cb, now := newTestBreaker(1)

	_ = cb.Call(func() error { return errBoom })
	*now = now.Add(11 * time.Second)

	assert.ErrorIs(t, cb.Call(func() error { return errBoom }), errBoom)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreakerResetAndStats(t *testing.T) {
	cb, _ := newTestBreaker(1)

	_ = cb.Call(func() error { return errBoom })
	assert.Equal(t, "open", cb.Stats()["state"])

	cb.Reset()
	assert.Equal(t, map[string]interface{}{"state": "closed", "failures": 0}, cb.Stats())
}
