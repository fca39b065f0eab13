// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package backoff provides exponential backoff with jitter for retrying operations.
package backoff

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// Policy configures Retry.
type Policy struct {
	// MaxAttempts is the maximum number of calls, including the first.
	MaxAttempts int
	// InitialDelay is the base delay before the second call.
	InitialDelay time.Duration
	// MaxDelay caps the base delay as it doubles.
	MaxDelay time.Duration
}

// Validate returns an error if the Policy cannot be used.
func (p Policy) Validate() error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", p.MaxAttempts)
	}
	if p.InitialDelay < 0 {
		return fmt.Errorf("initial delay must not be negative, got %v", p.InitialDelay)
	}
	if p.MaxDelay < p.InitialDelay {
		return fmt.Errorf("max delay %v is less than initial delay %v", p.MaxDelay, p.InitialDelay)
	}
	return nil
}

// ErrAttemptsExhausted is wrapped by the error Retry returns when every attempt
// failed with a retryable error.
var ErrAttemptsExhausted = errors.New("attempts exhausted")

// Retry calls f repeatedly until it succeeds, returns a non-retryable error,
// or the policy's maximum number of attempts is reached. Between attempts, it
// waits with exponential backoff and jitter.
//
// f returns the result, whether the error is retryable, and any error.
// If retryable is true and err is non-nil, Retry will wait and try again.
// If retryable is false, Retry returns immediately with the error.
func Retry[T any](
	ctx context.Context,
	policy Policy,
	f func(ctx context.Context, attempt int) (T, bool, error),
) (T, error) {
	var zero T
	if err := policy.Validate(); err != nil {
		return zero, err
	}
	delay := policy.InitialDelay
	for attempt := range policy.MaxAttempts {
		result, retryable, err := f(ctx, attempt)
		if err == nil {
			return result, nil
		}
		if !retryable {
			return zero, err
		}
		// Don't wait after the last attempt.
		if attempt == policy.MaxAttempts-1 {
			return zero, fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, policy.MaxAttempts, err)
		}
		// Wait with jitter: random duration between delay/2 and delay.
		jitteredDelay := delay/2 + time.Duration(rand.Int64N(int64(delay/2+1)))
		timer := time.NewTimer(jitteredDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
		// Exponential backoff, capped at MaxDelay.
		delay *= 2
		if delay > policy.MaxDelay {
			delay = policy.MaxDelay
		}
	}
	return zero, fmt.Errorf("%w after %d attempts", ErrAttemptsExhausted, policy.MaxAttempts)
}
