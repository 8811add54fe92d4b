package service

import (
	"testing"

	"cartera/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOverlayQuotes(t *testing.T) {
	positions := []domain.PortfolioAsset{
		{
			ID:           "iol-GGAL",
			Ticker:       "GGAL",
			Quantity:     decimal.NewFromInt(10),
			AveragePrice: decimal.NewFromInt(4000),
			CurrentPrice: decimal.NewFromInt(5000),
			CurrentValue: decimal.NewFromInt(50000),
			HasCostBasis: true,
		},
		{
			ID:           "ppi-AAPL",
			Ticker:       "AAPL",
			Quantity:     decimal.NewFromInt(2),
			CurrentPrice: decimal.NewFromInt(18000),
			CurrentValue: decimal.NewFromInt(36000),
		},
	}

	quotes := map[string]domain.Quote{
		"GGAL": {
			Ticker:        "GGAL",
			Price:         decimal.NewFromInt(5500),
			ChangePercent: 2.5,
			PreviousClose: decimal.NewFromInt(5366),
		},
	}

	out := OverlayQuotes(positions, quotes)
	require.Len(t, out, 2)

	t.Run("matching quote refreshes price, value and pnl", func(t *testing.T) {
		require.Equal(t, "5500", out[0].CurrentPrice.String())
		require.Equal(t, "55000", out[0].CurrentValue.String())
		require.Equal(t, "15000", out[0].Pnl.String())
		require.InDelta(t, 37.5, out[0].PnlPercent, 1e-9)
		require.NotNil(t, out[0].DailyChange)
		require.InDelta(t, 2.5, *out[0].DailyChange, 1e-9)
	})

	t.Run("position without a quote keeps provider price", func(t *testing.T) {
		require.Equal(t, "18000", out[1].CurrentPrice.String())
		require.Equal(t, "36000", out[1].CurrentValue.String())
		require.Nil(t, out[1].DailyChange)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		require.Equal(t, "5000", positions[0].CurrentPrice.String())
		require.Nil(t, positions[0].DailyChange)
	})

	t.Run("zero-price quotes are ignored", func(t *testing.T) {
		out := OverlayQuotes(positions, map[string]domain.Quote{
			"GGAL": {Ticker: "GGAL", Price: decimal.Zero},
		})
		require.Equal(t, "5000", out[0].CurrentPrice.String())
		require.Nil(t, out[0].DailyChange)
	})
}
