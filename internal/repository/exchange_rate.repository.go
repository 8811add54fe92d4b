package repository

import (
	"context"
	"net/http"
	"time"

	"cartera/internal/cache"
	"cartera/internal/domain"
	"cartera/internal/logger"
	"cartera/pkg/dolarapi"

	"github.com/shopspring/decimal"
)

// fallbackMepRate is used when the upstream rate source is down. It
// is deliberately conservative; a stale-but-roughly-right rate beats
// failing the whole aggregation.
var fallbackMepRate = decimal.NewFromInt(1100)

const rateCacheTTL = 5 * time.Minute
const rateCacheKey = "usd-ars-mep"

type ExchangeRateRepository interface {
	GetExchangeRate(ctx context.Context) domain.ExchangeRate
}

type mepRateClient interface {
	GetMepRate(ctx context.Context) (*dolarapi.RateResponse, error)
}

type exchangeRateRepositoryHandler struct {
	Client mepRateClient
	Cache  *cache.TTL[domain.ExchangeRate]
}

func NewExchangeRateRepository(httpClient *http.Client, clock cache.Clock) ExchangeRateRepository {
	return &exchangeRateRepositoryHandler{
		Client: dolarapi.Client{HttpClient: httpClient},
		Cache:  cache.NewTTL[domain.ExchangeRate](clock, rateCacheTTL),
	}
}

// GetExchangeRate returns the cached MEP rate, refreshing it through
// the upstream when the TTL lapses. It never fails: an unavailable
// upstream yields the hardcoded fallback rate, flagged as such.
func (h *exchangeRateRepositoryHandler) GetExchangeRate(ctx context.Context) domain.ExchangeRate {
	if rate, ok := h.Cache.Get(rateCacheKey); ok {
		return rate
	}

	log := logger.FromContext(ctx)

	resp, err := h.Client.GetMepRate(ctx)
	if err != nil || resp == nil || resp.Venta <= 0 {
		log.Warnf("falling back to hardcoded exchange rate: %v", err)
		return domain.ExchangeRate{
			Rate:      fallbackMepRate,
			UpdatedAt: time.Now().UTC(),
			Fallback:  true,
		}
	}

	rate := domain.ExchangeRate{
		Rate:      decimal.NewFromFloat(resp.Venta),
		UpdatedAt: resp.FechaActualizacion,
	}
	h.Cache.Set(rateCacheKey, rate)

	return rate
}
