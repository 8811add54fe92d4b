package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cartera/internal/domain"
	"cartera/internal/logger"
	"cartera/internal/mapping"
	"cartera/pkg/binance"

	"github.com/shopspring/decimal"
)

// dustThresholdUsd is the materiality floor for exchange balances.
// Rows valued below it are excluded from aggregation.
var dustThresholdUsd = decimal.NewFromInt(1)

type BinanceRepository interface {
	GetBalancesAndPositions(ctx context.Context) ([]domain.PortfolioAsset, error)
}

type binanceAccountClient interface {
	GetAccount(ctx context.Context) (*binance.AccountResponse, error)
	GetPrices(ctx context.Context, symbols []string) ([]binance.TickerPrice, error)
}

type binanceRepositoryHandler struct {
	Client binanceAccountClient
}

func NewBinanceRepository(httpClient *http.Client, apiKey, apiSecret string) BinanceRepository {
	return binanceRepositoryHandler{
		Client: binance.NewClient(httpClient, apiKey, apiSecret),
	}
}

func (h binanceRepositoryHandler) GetBalancesAndPositions(ctx context.Context) ([]domain.PortfolioAsset, error) {
	log := logger.FromContext(ctx)

	account, err := h.Client.GetAccount(ctx)
	if err != nil {
		return nil, classifyBinanceError(err)
	}

	held := []binance.Balance{}
	pairSymbols := []string{}
	for _, b := range account.Balances {
		asset := strings.ToUpper(strings.TrimSpace(b.Asset))
		if asset == "" {
			continue
		}
		held = append(held, b)
		if mapping.MapBinanceCategory(asset) != domain.AssetCategory_Cash {
			pairSymbols = append(pairSymbols, asset+"USDT")
		}
	}

	prices := map[string]decimal.Decimal{}
	if len(pairSymbols) > 0 {
		tickers, err := h.Client.GetPrices(ctx, pairSymbols)
		if err != nil {
			// balances are still worth returning at last-known zero
			// prices only if pricing is broken for everything; treat a
			// pricing failure as a provider failure instead
			return nil, classifyBinanceError(err)
		}
		for _, tp := range tickers {
			price, err := decimal.NewFromString(tp.Price)
			if err != nil {
				log.Warnf("skipping unparseable binance price for %s: %v", tp.Symbol, err)
				continue
			}
			prices[strings.TrimSuffix(tp.Symbol, "USDT")] = price
		}
	}

	assets := []domain.PortfolioAsset{}
	for _, b := range held {
		asset := strings.ToUpper(strings.TrimSpace(b.Asset))
		price, ok := prices[asset]
		if !ok {
			if mapping.MapBinanceCategory(asset) == domain.AssetCategory_Cash {
				// stablecoins are valued at par
				price = decimal.NewFromInt(1)
			} else {
				log.Warnf("no usd price for binance asset %s, skipping", asset)
				continue
			}
		}

		mapped, ok := mapping.MapBinanceBalance(b, price)
		if !ok {
			continue
		}
		if mapped.CurrentValue.LessThan(dustThresholdUsd) {
			continue
		}
		assets = append(assets, mapped)
	}

	return assets, nil
}

func classifyBinanceError(err error) error {
	var apiErr binance.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			return domain.TokenExpiredError{Provider: domain.Provider_Binance}
		case apiErr.StatusCode == http.StatusTooManyRequests ||
			apiErr.StatusCode == http.StatusTeapot || // binance uses 418 for auto-bans
			apiErr.StatusCode >= 500:
			return domain.TransientError{Err: err}
		}
	}
	return fmt.Errorf("failed to fetch binance balances: %w", err)
}
