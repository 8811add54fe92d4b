package service

import (
	"context"
	"sync"

	"cartera/internal/domain"
	"cartera/internal/fx"
	"cartera/internal/logger"
	"cartera/internal/repository"

	"github.com/shopspring/decimal"
)

type PortfolioService interface {
	GetPortfolio(ctx context.Context, displayCurrency domain.Currency) (*domain.AggregatedPortfolio, error)
}

type portfolioServiceHandler struct {
	IolRepository          repository.IolRepository
	PpiRepository          repository.PpiRepository
	BinanceRepository      repository.BinanceRepository
	QuoteRepository        repository.QuoteRepository
	ExchangeRateRepository repository.ExchangeRateRepository
}

func NewPortfolioService(
	iolRepository repository.IolRepository,
	ppiRepository repository.PpiRepository,
	binanceRepository repository.BinanceRepository,
	quoteRepository repository.QuoteRepository,
	exchangeRateRepository repository.ExchangeRateRepository,
) PortfolioService {
	return portfolioServiceHandler{
		IolRepository:          iolRepository,
		PpiRepository:          ppiRepository,
		BinanceRepository:      binanceRepository,
		QuoteRepository:        quoteRepository,
		ExchangeRateRepository: exchangeRateRepository,
	}
}

type providerFetchResult struct {
	index  int
	status domain.ProviderStatus
	assets []domain.PortfolioAsset
}

// GetPortfolio runs the full aggregation pipeline: concurrent provider
// fetches, quote overlay, display-currency conversion, allocations.
// A provider failing contributes an empty list and a disconnected
// status rather than failing the request; partial portfolios are the
// expected degraded mode.
func (h portfolioServiceHandler) GetPortfolio(ctx context.Context, displayCurrency domain.Currency) (*domain.AggregatedPortfolio, error) {
	log := logger.FromContext(ctx)

	type providerFetch struct {
		provider domain.Provider
		fetch    func(context.Context) ([]domain.PortfolioAsset, error)
	}
	// fixed order: output concatenation follows this, not completion
	fetches := []providerFetch{
		{domain.Provider_IOL, h.IolRepository.GetPortfolio},
		{domain.Provider_PPI, h.PpiRepository.GetBalancesAndPositions},
		{domain.Provider_Binance, h.BinanceRepository.GetBalancesAndPositions},
	}

	results := make([]providerFetchResult, len(fetches))
	var wg sync.WaitGroup
	for i, f := range fetches {
		wg.Add(1)
		go func(i int, f providerFetch) {
			defer wg.Done()
			assets, err := f.fetch(ctx)
			status := domain.ProviderStatus{Provider: f.provider, Connected: true}
			if err != nil {
				log.Warnf("provider %s fetch failed: %v", f.provider, err)
				status.Connected = false
				status.Expired = domain.IsTokenExpired(err)
				status.Error = err.Error()
				assets = []domain.PortfolioAsset{}
			}
			results[i] = providerFetchResult{index: i, status: status, assets: assets}
		}(i, f)
	}
	wg.Wait()

	merged := []domain.PortfolioAsset{}
	statuses := []domain.ProviderStatus{}
	for _, res := range results {
		merged = append(merged, res.assets...)
		statuses = append(statuses, res.status)
	}

	quotes, err := h.QuoteRepository.GetQuotes(ctx, quoteRequestsFor(merged))
	if err != nil {
		// quote refresh is best-effort; stale prices still render
		log.Warnf("quote refresh incomplete: %v", err)
	}
	merged = OverlayQuotes(merged, quotes)

	rate := h.ExchangeRateRepository.GetExchangeRate(ctx)
	merged = ApplyDisplayCurrency(merged, displayCurrency, rate.Rate)
	merged, total := ApplyAllocations(merged)

	return &domain.AggregatedPortfolio{
		Assets:          merged,
		Statuses:        statuses,
		DisplayCurrency: displayCurrency,
		TotalValue:      total,
		ExchangeRate:    rate,
	}, nil
}

// quoteRequestsFor collects one quote lookup per distinct non-cash
// ticker, preserving first-encounter order.
func quoteRequestsFor(assets []domain.PortfolioAsset) []repository.QuoteRequest {
	seen := map[string]bool{}
	requests := []repository.QuoteRequest{}
	for _, a := range assets {
		if a.Category == domain.AssetCategory_Cash || seen[a.Ticker] {
			continue
		}
		seen[a.Ticker] = true
		requests = append(requests, repository.QuoteRequest{
			Ticker:   a.Ticker,
			Category: a.Category,
		})
	}
	return requests
}

// ApplyDisplayCurrency fills the display* fields by converting each
// monetary field at the given rate. The original-currency fields stay
// untouched for audit and display toggling.
func ApplyDisplayCurrency(assets []domain.PortfolioAsset, displayCurrency domain.Currency, rate decimal.Decimal) []domain.PortfolioAsset {
	out := make([]domain.PortfolioAsset, 0, len(assets))
	for _, asset := range assets {
		updated := asset
		updated.DisplayPrice = fx.Convert(asset.CurrentPrice, asset.Currency, displayCurrency, rate)
		updated.DisplayAvgPrice = fx.Convert(asset.AveragePrice, asset.Currency, displayCurrency, rate)
		updated.DisplayValue = fx.Convert(asset.CurrentValue, asset.Currency, displayCurrency, rate)
		updated.DisplayPnl = fx.Convert(asset.Pnl, asset.Currency, displayCurrency, rate)
		out = append(out, updated)
	}
	return out
}

// ApplyAllocations computes each position's share of the total display
// value, in percent. A zero-value portfolio yields zero allocations,
// never NaN.
func ApplyAllocations(assets []domain.PortfolioAsset) ([]domain.PortfolioAsset, decimal.Decimal) {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.DisplayValue)
	}

	out := make([]domain.PortfolioAsset, 0, len(assets))
	for _, asset := range assets {
		updated := asset
		if total.Sign() > 0 {
			updated.Allocation = asset.DisplayValue.
				Div(total).
				Mul(decimal.NewFromInt(100)).
				InexactFloat64()
		} else {
			updated.Allocation = 0
		}
		out = append(out, updated)
	}
	return out, total
}
