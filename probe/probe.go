// Package probe implements the startup connectivity check: a bounded
// sequence of reachability attempts against the backend. The outcome is
// advisory only — it drives the connectivity badge and never blocks the
// rest of the application.
package probe

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultAttempts is the attempt bound used when none is configured.
const DefaultAttempts = 3

// Continue decides whether another attempt is allowed after `attempt`
// attempts have failed. Pure, so the retry policy tests without a network.
func Continue(attempt, maxAttempts int) bool {
	return attempt < maxAttempts
}

// DelayFunc returns how long to wait before the next attempt.
type DelayFunc func(attempt int) time.Duration

// FixedDelay waits the same duration between every attempt.
func FixedDelay(d time.Duration) DelayFunc {
	return func(int) time.Duration { return d }
}

// NoDelay retries immediately. Used in tests.
func NoDelay() DelayFunc {
	return func(int) time.Duration { return 0 }
}

// Result is the probe outcome. Err holds the last attempt's error when
// Success is false.
type Result struct {
	Success  bool
	Attempts int
	Err      error
}

// Prober runs the bounded reachability check.
type Prober struct {
	Check       func(ctx context.Context) error
	Delay       DelayFunc
	MaxAttempts int
	Log         zerolog.Logger
}

// Run attempts Check up to MaxAttempts times, stopping on the first
// success. Context cancellation ends the probe early with the context error.
func (p *Prober) Run(ctx context.Context) Result {
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultAttempts
	}
	delay := p.Delay
	if delay == nil {
		delay = FixedDelay(500 * time.Millisecond)
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return Result{Attempts: attempt - 1, Err: err}
		}
		lastErr = p.Check(ctx)
		if lastErr == nil {
			p.Log.Info().Int("attempt", attempt).Msg("backend reachable")
			return Result{Success: true, Attempts: attempt}
		}
		p.Log.Warn().Err(lastErr).Int("attempt", attempt).Int("maxAttempts", maxAttempts).
			Msg("backend connectivity check failed")
		if !Continue(attempt, maxAttempts) {
			return Result{Attempts: attempt, Err: lastErr}
		}
		select {
		case <-ctx.Done():
			return Result{Attempts: attempt, Err: ctx.Err()}
		case <-time.After(delay(attempt)):
		}
	}
}
