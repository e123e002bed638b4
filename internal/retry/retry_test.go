package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errBoom = errors.New("boom")

func recordingConfig(retryable func(error) bool, delays *[]time.Duration) Config {
	return Config{
		MaxAttempts: 5,
		BaseDelay:   4 * time.Second,
		MaxDelay:    30 * time.Second,
		Retryable:   retryable,
		Sleep: func(_ context.Context, d time.Duration) error {
			*delays = append(*delays, d)
			return nil
		},
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	var delays []time.Duration
	cfg := recordingConfig(func(error) bool { return true }, &delays)

	calls := 0
	got, err := Do(context.Background(), cfg, zap.NewNop().Sugar(), "op", func(context.Context) (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, got)
	require.Equal(t, 1, calls)
	require.Empty(t, delays)
}

func TestDo_RecoversAfterTransientFailures(t *testing.T) {
	var delays []time.Duration
	cfg := recordingConfig(func(error) bool { return true }, &delays)

	calls := 0
	got, err := Do(context.Background(), cfg, zap.NewNop().Sugar(), "op", func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errBoom
		}
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", got)
	require.Equal(t, 3, calls)
	require.Equal(t, []time.Duration{4 * time.Second, 8 * time.Second}, delays)
}

func TestDo_ExhaustionReturnsLastError(t *testing.T) {
	var delays []time.Duration
	cfg := recordingConfig(func(error) bool { return true }, &delays)

	calls := 0
	_, err := Do(context.Background(), cfg, zap.NewNop().Sugar(), "op", func(context.Context) (int, error) {
		calls++
		return 0, errBoom
	})
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 5, calls)
	// four waits between five attempts, doubling and capped at 30s
	require.Equal(t, []time.Duration{4 * time.Second, 8 * time.Second, 16 * time.Second, 30 * time.Second}, delays)
}

func TestDo_NonRetryableStopsImmediately(t *testing.T) {
	var delays []time.Duration
	cfg := recordingConfig(func(err error) bool { return !errors.Is(err, errBoom) }, &delays)

	calls := 0
	_, err := Do(context.Background(), cfg, zap.NewNop().Sugar(), "op", func(context.Context) (int, error) {
		calls++
		return 0, errBoom
	})
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 1, calls)
	require.Empty(t, delays)
}

func TestDo_NilPredicateDisablesRetries(t *testing.T) {
	cfg := Config{MaxAttempts: 5, BaseDelay: time.Millisecond}

	calls := 0
	_, err := Do(context.Background(), cfg, zap.NewNop().Sugar(), "op", func(context.Context) (int, error) {
		calls++
		return 0, errBoom
	})
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 1, calls)
}

func TestDo_ContextCanceledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := Config{
		MaxAttempts: 5,
		BaseDelay:   time.Hour,
		Retryable:   func(error) bool { return true },
	}

	cancel()
	_, err := Do(ctx, cfg, zap.NewNop().Sugar(), "op", func(context.Context) (int, error) {
		return 0, errBoom
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDelay_DoublesAndCaps(t *testing.T) {
	cfg := Config{BaseDelay: 4 * time.Second, MaxDelay: 30 * time.Second}

	require.Equal(t, 4*time.Second, Delay(1, cfg))
	require.Equal(t, 8*time.Second, Delay(2, cfg))
	require.Equal(t, 16*time.Second, Delay(3, cfg))
	require.Equal(t, 30*time.Second, Delay(4, cfg))
	require.Equal(t, 30*time.Second, Delay(10, cfg))
}

func TestDelay_JitterStaysWithinBounds(t *testing.T) {
	cfg := Config{BaseDelay: 4 * time.Second, MaxDelay: 30 * time.Second, Jitter: true}

	for i := 0; i < 100; i++ {
		d := Delay(2, cfg)
		require.GreaterOrEqual(t, d, 4*time.Second)
		require.LessOrEqual(t, d, 8*time.Second)
	}
}
