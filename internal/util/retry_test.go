package util

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cartera/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("retries transient errors until success", func(t *testing.T) {
		attempts := 0
		err := Retry(ctx, 3, time.Millisecond, func() error {
			attempts++
			if attempts < 3 {
				return domain.TransientError{Err: fmt.Errorf("rate limited")}
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 3, attempts)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		attempts := 0
		err := Retry(ctx, 3, time.Millisecond, func() error {
			attempts++
			return domain.TransientError{Err: fmt.Errorf("upstream 503")}
		})
		require.Error(t, err)
		require.True(t, domain.IsTransient(err))
		require.Equal(t, 3, attempts)
	})

	t.Run("does not retry non-transient errors", func(t *testing.T) {
		attempts := 0
		err := Retry(ctx, 5, time.Millisecond, func() error {
			attempts++
			return domain.TokenExpiredError{Provider: domain.Provider_IOL}
		})
		require.Error(t, err)
		require.True(t, domain.IsTokenExpired(err))
		require.Equal(t, 1, attempts)
	})
}
