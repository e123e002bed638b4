// Package retry provides a bounded exponential-backoff wrapper for
// fallible operations, parameterized by an error classification predicate.
package retry

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Config defines the retry policy applied by Do.
type Config struct {
	// MaxAttempts bounds the total number of executions, first try included.
	MaxAttempts int
	// BaseDelay is the wait before the first retry; it doubles each attempt.
	BaseDelay time.Duration
	// MaxDelay caps the backoff delay.
	MaxDelay time.Duration
	// Jitter randomizes each delay in [delay/2, delay) to avoid lockstep retries.
	Jitter bool
	// Retryable decides whether an error is worth another attempt.
	// A nil predicate disables retries entirely.
	Retryable func(error) bool
	// Sleep waits between attempts. Nil means a ctx-aware time.After wait.
	// Tests inject a recorder here.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Default returns the policy used when configuration is absent.
func Default(retryable func(error) bool) Config {
	return Config{
		MaxAttempts: 5,
		BaseDelay:   4 * time.Second,
		MaxDelay:    30 * time.Second,
		Jitter:      true,
		Retryable:   retryable,
	}
}

// Do executes fn, retrying on errors accepted by cfg.Retryable with
// exponential backoff. Errors rejected by the predicate propagate on first
// occurrence. After exhausting attempts the last error is returned unchanged.
func Do[T any](ctx context.Context, cfg Config, log *zap.SugaredLogger, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			if attempt > 1 {
				log.Infow("operation recovered", "op", op, "attempt", attempt)
			}
			return result, nil
		}

		lastErr = err
		if cfg.Retryable == nil || !cfg.Retryable(err) {
			return zero, err
		}
		if attempt == attempts {
			break
		}

		delay := Delay(attempt, cfg)
		log.Warnw("retrying operation", "op", op, "attempt", attempt, "delay", delay, "error", err)
		if err := sleep(ctx, cfg, delay); err != nil {
			return zero, err
		}
	}

	log.Errorw("retries exhausted", "op", op, "attempts", attempts, "error", lastErr)
	return zero, lastErr
}

// Delay returns the backoff before the retry following the given attempt
// (1-based): BaseDelay doubled per attempt, capped at MaxDelay.
func Delay(attempt int, cfg Config) time.Duration {
	delay := cfg.BaseDelay << (attempt - 1)
	if cfg.MaxDelay > 0 && (delay > cfg.MaxDelay || delay < cfg.BaseDelay) {
		delay = cfg.MaxDelay
	}
	if cfg.Jitter {
		delay = delay/2 + time.Duration(rand.Int63n(int64(delay/2)+1))
	}
	return delay
}

func sleep(ctx context.Context, cfg Config, d time.Duration) error {
	if cfg.Sleep != nil {
		return cfg.Sleep(ctx, d)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
