package util

import (
	"context"
	"time"

	"cartera/internal/domain"
)

// Retry runs fn up to maxAttempts times, sleeping baseDelay, 2x, 4x,
// ... between attempts. Only transient upstream errors (rate limits,
// 5xx) are retried; validation and auth errors fail immediately.
func Retry(ctx context.Context, maxAttempts int, baseDelay time.Duration, fn func() error) error {
	var err error
	delay := baseDelay
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
		err = fn()
		if err == nil {
			return nil
		}
		if !domain.IsTransient(err) {
			return err
		}
	}
	return err
}
