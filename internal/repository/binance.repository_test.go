package repository

import (
	"context"
	"testing"

	"cartera/internal/domain"
	"cartera/pkg/binance"

	"github.com/stretchr/testify/require"
)

type stubBinanceClient struct {
	account          *binance.AccountResponse
	accountErr       error
	prices           []binance.TickerPrice
	pricesErr        error
	requestedSymbols []string
}

func (s *stubBinanceClient) GetAccount(ctx context.Context) (*binance.AccountResponse, error) {
	return s.account, s.accountErr
}

func (s *stubBinanceClient) GetPrices(ctx context.Context, symbols []string) ([]binance.TickerPrice, error) {
	s.requestedSymbols = symbols
	return s.prices, s.pricesErr
}

func TestBinanceGetBalancesAndPositions(t *testing.T) {
	ctx := context.Background()

	t.Run("drops dust balances", func(t *testing.T) {
		client := &stubBinanceClient{
			account: &binance.AccountResponse{Balances: []binance.Balance{
				{Asset: "BTC", Free: "0.5", Locked: "0"},
				{Asset: "DOGE", Free: "5", Locked: "0"},
			}},
			prices: []binance.TickerPrice{
				{Symbol: "BTCUSDT", Price: "60000"},
				{Symbol: "DOGEUSDT", Price: "0.1"},
			},
		}
		handler := binanceRepositoryHandler{Client: client}

		assets, err := handler.GetBalancesAndPositions(ctx)
		require.NoError(t, err)

		// DOGE is worth 0.50 USD, below the materiality floor
		require.Len(t, assets, 1)
		require.Equal(t, "BTC", assets[0].Ticker)
		require.Equal(t, "30000", assets[0].CurrentValue.String())
	})

	t.Run("prices stablecoins at par without requesting a pair", func(t *testing.T) {
		client := &stubBinanceClient{
			account: &binance.AccountResponse{Balances: []binance.Balance{
				{Asset: "USDT", Free: "100", Locked: "50"},
				{Asset: "ETH", Free: "2", Locked: "0"},
			}},
			prices: []binance.TickerPrice{
				{Symbol: "ETHUSDT", Price: "2500"},
			},
		}
		handler := binanceRepositoryHandler{Client: client}

		assets, err := handler.GetBalancesAndPositions(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"ETHUSDT"}, client.requestedSymbols)

		require.Len(t, assets, 2)
		require.Equal(t, "USDT", assets[0].Ticker)
		require.Equal(t, domain.AssetCategory_Cash, assets[0].Category)
		require.Equal(t, "150", assets[0].CurrentValue.String())
		require.Equal(t, "50", assets[0].Locked.String())
		require.Equal(t, "ETH", assets[1].Ticker)
	})

	t.Run("skips assets with no usd price", func(t *testing.T) {
		client := &stubBinanceClient{
			account: &binance.AccountResponse{Balances: []binance.Balance{
				{Asset: "OBSCURE", Free: "1000", Locked: "0"},
				{Asset: "BTC", Free: "1", Locked: "0"},
			}},
			prices: []binance.TickerPrice{
				{Symbol: "BTCUSDT", Price: "60000"},
			},
		}
		handler := binanceRepositoryHandler{Client: client}

		assets, err := handler.GetBalancesAndPositions(ctx)
		require.NoError(t, err)
		require.Len(t, assets, 1)
		require.Equal(t, "BTC", assets[0].Ticker)
	})

	t.Run("skips unparseable prices", func(t *testing.T) {
		client := &stubBinanceClient{
			account: &binance.AccountResponse{Balances: []binance.Balance{
				{Asset: "BTC", Free: "1", Locked: "0"},
			}},
			prices: []binance.TickerPrice{
				{Symbol: "BTCUSDT", Price: "not-a-number"},
			},
		}
		handler := binanceRepositoryHandler{Client: client}

		assets, err := handler.GetBalancesAndPositions(ctx)
		require.NoError(t, err)
		require.Empty(t, assets)
	})

	t.Run("classifies auth failures as token expired", func(t *testing.T) {
		client := &stubBinanceClient{
			accountErr: binance.APIError{StatusCode: 401, Body: "unauthorized"},
		}
		handler := binanceRepositoryHandler{Client: client}

		_, err := handler.GetBalancesAndPositions(ctx)
		require.True(t, domain.IsTokenExpired(err))
	})

	t.Run("classifies auto-bans as transient", func(t *testing.T) {
		client := &stubBinanceClient{
			accountErr: binance.APIError{StatusCode: 418, Body: "banned"},
		}
		handler := binanceRepositoryHandler{Client: client}

		_, err := handler.GetBalancesAndPositions(ctx)
		require.True(t, domain.IsTransient(err))
	})
}
