package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cartera/internal/cache"
	"cartera/internal/domain"
	"cartera/pkg/dolarapi"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type stubMepClient struct {
	resp  *dolarapi.RateResponse
	err   error
	calls int
}

func (c *stubMepClient) GetMepRate(ctx context.Context) (*dolarapi.RateResponse, error) {
	c.calls++
	return c.resp, c.err
}

func Test_exchangeRateRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("caches upstream rate for the ttl", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
		client := &stubMepClient{
			resp: &dolarapi.RateResponse{Venta: 1047.5, FechaActualizacion: clock.now},
		}
		handler := &exchangeRateRepositoryHandler{
			Client: client,
			Cache:  cache.NewTTL[domain.ExchangeRate](clock, rateCacheTTL),
		}

		first := handler.GetExchangeRate(ctx)
		require.Equal(t, "1047.5", first.Rate.String())
		require.False(t, first.Fallback)

		handler.GetExchangeRate(ctx)
		require.Equal(t, 1, client.calls)

		clock.now = clock.now.Add(rateCacheTTL + time.Second)
		handler.GetExchangeRate(ctx)
		require.Equal(t, 2, client.calls)
	})

	t.Run("falls back when upstream is down", func(t *testing.T) {
		clock := &fakeClock{now: time.Now()}
		handler := &exchangeRateRepositoryHandler{
			Client: &stubMepClient{err: fmt.Errorf("connection refused")},
			Cache:  cache.NewTTL[domain.ExchangeRate](clock, rateCacheTTL),
		}

		rate := handler.GetExchangeRate(ctx)
		require.True(t, rate.Fallback)
		require.True(t, rate.Rate.Equal(fallbackMepRate))
	})

	t.Run("fallback responses are not cached", func(t *testing.T) {
		clock := &fakeClock{now: time.Now()}
		client := &stubMepClient{err: fmt.Errorf("503")}
		handler := &exchangeRateRepositoryHandler{
			Client: client,
			Cache:  cache.NewTTL[domain.ExchangeRate](clock, rateCacheTTL),
		}

		handler.GetExchangeRate(ctx)
		handler.GetExchangeRate(ctx)
		require.Equal(t, 2, client.calls)
	})
}
