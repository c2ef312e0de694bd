package probe_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiefind-client/probe"
)

func TestContinue(t *testing.T) {
	cases := []struct {
		attempt, max int
		want         bool
	}{
		{1, 3, true},
		{2, 3, true},
		{3, 3, false},
		{1, 1, false},
		{5, 3, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, probe.Continue(tc.attempt, tc.max),
			"attempt %d of %d", tc.attempt, tc.max)
	}
}

func TestRunSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	p := &probe.Prober{
		Check:       func(context.Context) error { calls++; return nil },
		Delay:       probe.NoDelay(),
		MaxAttempts: 3,
		Log:         zerolog.Nop(),
	}
	result := p.Run(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Attempts)
	assert.NoError(t, result.Err)
	assert.Equal(t, 1, calls)
}

func TestRunRecoversBeforeBudgetExhausted(t *testing.T) {
	calls := 0
	var delays []int
	p := &probe.Prober{
		Check: func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		},
		Delay:       func(attempt int) time.Duration { delays = append(delays, attempt); return 0 },
		MaxAttempts: 5,
		Log:         zerolog.Nop(),
	}
	result := p.Run(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Attempts)
	// Delay runs between attempts, not after the final one
	assert.Equal(t, []int{1, 2}, delays)
}

func TestRunReturnsLastErrorOnExhaustion(t *testing.T) {
	calls := 0
	lastErr := errors.New("attempt 3")
	p := &probe.Prober{
		Check: func(context.Context) error {
			calls++
			if calls == 3 {
				return lastErr
			}
			return errors.New("earlier failure")
		},
		Delay:       probe.NoDelay(),
		MaxAttempts: 3,
		Log:         zerolog.Nop(),
	}
	result := p.Run(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, lastErr, result.Err)
	assert.Equal(t, 3, calls)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &probe.Prober{
		Check:       func(context.Context) error { t.Fatal("check must not run"); return nil },
		Delay:       probe.NoDelay(),
		MaxAttempts: 3,
		Log:         zerolog.Nop(),
	}
	result := p.Run(ctx)

	require.False(t, result.Success)
	assert.ErrorIs(t, result.Err, context.Canceled)
}

func TestRunDefaultsAttemptBudget(t *testing.T) {
	calls := 0
	p := &probe.Prober{
		Check:       func(context.Context) error { calls++; return errors.New("down") },
		Delay:       probe.NoDelay(),
		MaxAttempts: 0,
		Log:         zerolog.Nop(),
	}
	result := p.Run(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, probe.DefaultAttempts, calls)
}
