package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream failed")

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(settings Settings) (*Breaker, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	b := New("test", settings)
	b.now = clock.now
	return b, clock
}

func fail() (string, error)    { return "", errUpstream }
func succeed() (string, error) { return "ok", nil }

func TestBreakerStateTransitions(t *testing.T) {
	tests := []struct {
		name          string
		settings      Settings
		requests      []bool // true = success, false = failure
		expectedState State
	}{
		{
			name:          "stays closed on successes",
			settings:      Settings{FailureThreshold: 2},
			requests:      []bool{true, true, true},
			expectedState: StateClosed,
		},
		{
			name:          "opens after consecutive failures",
			settings:      Settings{FailureThreshold: 3},
			requests:      []bool{false, false, false},
			expectedState: StateOpen,
		},
		{
			name:          "success resets the failure streak",
			settings:      Settings{FailureThreshold: 3},
			requests:      []bool{false, false, true, false, false},
			expectedState: StateClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBreaker(tt.settings)
			for _, ok := range tt.requests {
				if ok {
					_, _ = Call(b, succeed)
				} else {
					_, _ = Call(b, fail)
				}
			}
			assert.Equal(t, tt.expectedState, b.State())
		})
	}
}

func TestOpenCircuitFailsFast(t *testing.T) {
	b, _ := newTestBreaker(Settings{FailureThreshold: 1})
	_, _ = Call(b, fail)
	require.Equal(t, StateOpen, b.State())

	called := false
	_, err := Call(b, func() (string, error) {
		called = true
		return "", nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestHalfOpenRecovery(t *testing.T) {
	b, clock := newTestBreaker(Settings{FailureThreshold: 1, Cooldown: time.Minute})
	_, _ = Call(b, fail)

	clock.advance(time.Minute)
	assert.Equal(t, StateHalfOpen, b.State())

	out, err := Call(b, succeed)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, StateClosed, b.State())
}

func TestHalfOpenFailureReopens(t *testing.T) {
	b, clock := newTestBreaker(Settings{FailureThreshold: 1, Cooldown: time.Minute})
	_, _ = Call(b, fail)
	clock.advance(time.Minute)

	_, err := Call(b, fail)
	assert.ErrorIs(t, err, errUpstream)
	assert.Equal(t, StateOpen, b.State())
}

func TestHalfOpenAdmitsLimitedProbes(t *testing.T) {
	b, clock := newTestBreaker(Settings{FailureThreshold: 1, Cooldown: time.Second, HalfOpenProbes: 1})
	_, _ = Call(b, fail)
	clock.advance(time.Second)

	// Admit one probe without recording its result yet.
	require.NoError(t, b.admit())
	assert.ErrorIs(t, b.admit(), ErrTooManyRequests)
}

func TestCancellationIsNotAFailure(t *testing.T) {
	b, _ := newTestBreaker(Settings{FailureThreshold: 1})
	_, err := Call(b, func() (string, error) { return "", context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, b.State())
}

func TestStateChangeCallback(t *testing.T) {
	var transitions []string
	b, _ := newTestBreaker(Settings{
		FailureThreshold: 1,
		OnStateChange: func(name string, from, to State) {
			transitions = append(transitions, name+":"+from.String()+"->"+to.String())
		},
	})
	_, _ = Call(b, fail)
	assert.Equal(t, []string{"test:closed->open"}, transitions)
	assert.Equal(t, "unknown", State(42).String())
}

func TestCancelledProbeKeepsCircuitHalfOpen(t *testing.T) {
	b, clock := newTestBreaker(Settings{FailureThreshold: 1, Cooldown: time.Minute})
	_, _ = Call(b, fail)
	clock.advance(time.Minute)
	require.Equal(t, StateHalfOpen, b.State())

	_, err := Call(b, func() (string, error) { return "", context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateHalfOpen, b.State())

	// The slot was released, so the next probe is admitted and decides.
	_, err = Call(b, succeed)
	require.NoError(t, err)
	assert.Equal(t, StateClosed, b.State())
}

func TestCancellationKeepsFailureStreak(t *testing.T) {
	b, _ := newTestBreaker(Settings{FailureThreshold: 2})
	_, _ = Call(b, fail)
	_, _ = Call(b, func() (string, error) { return "", context.Canceled })
	_, _ = Call(b, fail)

	assert.Equal(t, StateOpen, b.State())
}
