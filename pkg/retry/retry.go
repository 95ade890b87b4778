// Package retry repeats failing calls to remote services.
package retry

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Policy describes how many times and how often a call is repeated.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int

	// Delay is the pause before the second attempt.
	Delay time.Duration

	// Step is added to the pause after every failed attempt.
	Step time.Duration

	// Retryable decides if an error is worth another attempt. If nil,
	// every error except context cancellation is retried.
	Retryable func(error) bool
}

// New creates a Policy with a fixed delay between attempts.
func New(attempts int, delay time.Duration) Policy {
	return Policy{MaxAttempts: attempts, Delay: delay}
}

// Do calls fn until it succeeds, returns a non-retryable error, the
// attempts are exhausted, or the context is cancelled. It returns the
// last error received from fn.
func (p Policy) Do(ctx context.Context, name string, fn func() error) error {
	attempts := max(p.MaxAttempts, 1)
	delay := p.Delay

	var err error
	for i := 1; i <= attempts; i++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		err = fn()
		if err == nil || !p.retryable(err) {
			return err
		}
		if i == attempts {
			break
		}

		slog.Warn("Call failed, retrying",
			"call", name,
			"attempt", i,
			"max_attempts", attempts,
			"delay", delay.String(),
			"error", err,
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay += p.Step
	}

	slog.Error("Call failed, giving up",
		"call", name,
		"attempts", attempts,
		"error", err,
	)
	return err
}

func (p Policy) retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}
