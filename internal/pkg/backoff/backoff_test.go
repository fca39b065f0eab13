// Copyright 2026 Peter Edge
//
// All rights reserved.

package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testPolicy = Policy{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     2 * time.Millisecond,
}

func TestRetrySucceedsAfterRetryableErrors(t *testing.T) {
	t.Parallel()
	var calls int
	result, err := Retry(
		context.Background(),
		testPolicy,
		func(_ context.Context, attempt int) (string, bool, error) {
			calls++
			if attempt < 2 {
				return "", true, errors.New("busy")
			}
			return "done", false, nil
		},
	)
	require.NoError(t, err)
	require.Equal(t, "done", result)
	require.Equal(t, 3, calls)
}

func TestRetryStopsOnNonRetryableError(t *testing.T) {
	t.Parallel()
	permanent := errors.New("invalid token")
	var calls int
	_, err := Retry(
		context.Background(),
		testPolicy,
		func(context.Context, int) (int, bool, error) {
			calls++
			return 0, false, permanent
		},
	)
	require.ErrorIs(t, err, permanent)
	require.NotErrorIs(t, err, ErrAttemptsExhausted)
	require.Equal(t, 1, calls)
}

func TestRetryExhausted(t *testing.T) {
	t.Parallel()
	busy := errors.New("busy")
	var calls int
	_, err := Retry(
		context.Background(),
		testPolicy,
		func(context.Context, int) (int, bool, error) {
			calls++
			return 0, true, busy
		},
	)
	require.ErrorIs(t, err, ErrAttemptsExhausted)
	require.ErrorIs(t, err, busy)
	require.Equal(t, 3, calls)
}

func TestRetryContextCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	_, err := Retry(
		ctx,
		Policy{MaxAttempts: 5, InitialDelay: time.Hour, MaxDelay: time.Hour},
		func(context.Context, int) (int, bool, error) {
			cancel()
			return 0, true, errors.New("busy")
		},
	)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPolicyValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, testPolicy.Validate())
	require.Error(t, Policy{MaxAttempts: 0}.Validate())
	require.Error(t, Policy{MaxAttempts: 1, InitialDelay: -time.Second}.Validate())
	require.Error(t, Policy{MaxAttempts: 1, InitialDelay: time.Second, MaxDelay: time.Millisecond}.Validate())
	_, err := Retry(
		context.Background(),
		Policy{},
		func(context.Context, int) (int, bool, error) {
			return 1, false, nil
		},
	)
	require.Error(t, err)
}
