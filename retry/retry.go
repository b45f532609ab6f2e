// Package retry provides bounded exponential backoff for remote API calls.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Config holds retry configuration.
type Config struct {
	// MaxRetries is the maximum number of retry attempts after the first failure.
	MaxRetries int
	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration
	// MaxBackoff caps the delay between retries.
	MaxBackoff time.Duration
	// Multiplier is the exponential backoff multiplier.
	Multiplier float64

	// Sleep waits for the given duration or until the context is done.
	// Nil means the default timer-based sleep. Tests inject a recorder here.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultConfig returns the backoff schedule used for YouTube Data API calls:
// waits of 2s, 4s, 8s, 16s, 30s before giving up.
func DefaultConfig() Config {
	return Config{
		MaxRetries:     5,
		InitialBackoff: 2 * time.Second,
		MaxBackoff:     30 * time.Second,
		Multiplier:     2.0,
	}
}

// Classifier reports whether an error is transient and worth retrying.
type Classifier func(error) bool

// ExhaustedError wraps the last error after the retry ceiling was reached.
type ExhaustedError struct {
	Retries int
	Err     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry: gave up after %d retries: %v", e.Retries, e.Err)
}

func (e *ExhaustedError) Unwrap() error { return e.Err }

// Do executes fn, retrying transient failures with exponential backoff.
// Errors the classifier rejects are returned immediately; context
// cancellation is never retried. After MaxRetries retries the last error is
// returned wrapped in an *ExhaustedError.
func Do(ctx context.Context, cfg Config, transient Classifier, fn func(context.Context) error) error {
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = defaultSleep
	}

	backoff := cfg.InitialBackoff
	var lastErr error

	for attempt := 0; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if transient == nil || !transient(err) {
			return err
		}
		lastErr = err

		if attempt >= cfg.MaxRetries {
			return &ExhaustedError{Retries: cfg.MaxRetries, Err: lastErr}
		}

		wait := backoff
		if wait > cfg.MaxBackoff {
			wait = cfg.MaxBackoff
		}
		if err := sleep(ctx, wait); err != nil {
			return err
		}

		backoff = time.Duration(float64(backoff) * cfg.Multiplier)
		if backoff > cfg.MaxBackoff {
			backoff = cfg.MaxBackoff
		}
	}
}

func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
