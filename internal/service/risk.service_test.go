package service

import (
	"context"
	"testing"

	"cartera/internal/domain"
	"cartera/internal/repository"
	"cartera/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newRiskHandler() riskServiceHandler {
	return riskServiceHandler{
		TickerMetaRepository: repository.NewTickerMetaRepository(),
	}
}

func asset(ticker string, value float64) domain.PortfolioAsset {
	return domain.PortfolioAsset{
		Ticker:       ticker,
		DisplayValue: decimal.NewFromFloat(value),
	}
}

func TestGetBreakdown(t *testing.T) {
	ctx := context.Background()
	handler := newRiskHandler()

	t.Run("zero-value portfolio returns empty groups", func(t *testing.T) {
		out := handler.GetBreakdown(ctx, []domain.PortfolioAsset{
			asset("GGAL", 0),
			asset("AAPL", 0),
		})
		require.Empty(t, out.BySector)
		require.Empty(t, out.ByCountry)
		require.Empty(t, out.ByCorrelationGroup)
	})

	t.Run("us banks cluster concentrates at 100 percent", func(t *testing.T) {
		out := handler.GetBreakdown(ctx, []domain.PortfolioAsset{
			asset("JPM", 40),
			asset("BAC", 40),
			asset("C", 10),
			asset("WFC", 10),
		})

		require.Len(t, out.ByCorrelationGroup, 1)
		group := out.ByCorrelationGroup[0]
		require.Equal(t, "US Banks", group.Name)
		require.Equal(t, []string{"JPM", "BAC", "C", "WFC"}, group.Tickers)
		require.InDelta(t, 100, group.Allocation, 1e-9)
		require.True(t, group.IsConcentrated)
	})

	t.Run("concentration threshold is strictly greater than 30", func(t *testing.T) {
		// JPM (US Banks) vs AAPL (US Tech): 30.00 / 70.00
		out := handler.GetBreakdown(ctx, []domain.PortfolioAsset{
			asset("JPM", 30),
			asset("AAPL", 70),
		})
		groups := map[string]domain.GroupAllocation{}
		for _, g := range out.ByCorrelationGroup {
			groups[g.Name] = g
		}
		require.InDelta(t, 30.0, groups["US Banks"].Allocation, 1e-9)
		require.False(t, groups["US Banks"].IsConcentrated)
		require.True(t, groups["US Tech"].IsConcentrated)

		// 30.01 / 69.99 tips it over
		out = handler.GetBreakdown(ctx, []domain.PortfolioAsset{
			asset("JPM", 30.01),
			asset("AAPL", 69.99),
		})
		for _, g := range out.ByCorrelationGroup {
			groups[g.Name] = g
		}
		require.InDelta(t, 30.01, groups["US Banks"].Allocation, 1e-9)
		require.True(t, groups["US Banks"].IsConcentrated)
	})

	t.Run("groups sort descending with stable ties", func(t *testing.T) {
		// equal allocations: encounter order is preserved
		out := handler.GetBreakdown(ctx, []domain.PortfolioAsset{
			asset("GGAL", 25), // AR Banks
			asset("YPF", 25),  // AR Energy
			asset("AAPL", 50), // US Tech
		})

		require.Len(t, out.ByCorrelationGroup, 3)
		require.Equal(t, "US Tech", out.ByCorrelationGroup[0].Name)
		require.Equal(t, "AR Banks", out.ByCorrelationGroup[1].Name)
		require.Equal(t, "AR Energy", out.ByCorrelationGroup[2].Name)
	})

	t.Run("unknown tickers land in default buckets", func(t *testing.T) {
		out := handler.GetBreakdown(ctx, []domain.PortfolioAsset{
			asset("ZZZZ", 100),
		})
		require.Equal(t, "Unknown", out.BySector[0].Name)
		require.Equal(t, "Unknown", out.ByCountry[0].Name)
		require.Equal(t, "Uncorrelated", out.ByCorrelationGroup[0].Name)
	})

	t.Run("allocations are rounded to 2 decimals", func(t *testing.T) {
		// 1/3 split: 33.33 repeating must round, not truncate oddly
		out := handler.GetBreakdown(ctx, []domain.PortfolioAsset{
			asset("JPM", 1),
			asset("AAPL", 2),
		})
		groups := map[string]float64{}
		for _, g := range out.BySector {
			groups[g.Name] = g.Allocation
		}
		require.InDelta(t, 33.33, groups["Financials"], 1e-9)
		require.InDelta(t, 66.67, groups["Technology"], 1e-9)
	})
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	handler := newRiskHandler()

	positions := []domain.PortfolioAsset{
		{Ticker: "JPM", DisplayValue: decimal.NewFromInt(40), DailyChange: util.Float64Pointer(2)},
		{Ticker: "BAC", DisplayValue: decimal.NewFromInt(60), DailyChange: util.Float64Pointer(4)},
		{Ticker: "ZZZZ", DisplayValue: decimal.NewFromInt(1)}, // no quote, excluded from stats
	}
	breakdown := handler.GetBreakdown(ctx, positions)
	summary := handler.GetSummary(ctx, positions, breakdown)

	require.InDelta(t, 3, summary.MeanDailyChangePercent, 1e-9)
	require.Greater(t, summary.DailyChangeStdev, 0.0)
	// US Banks holds ~99% of value across sector/country/correlation views
	require.Contains(t, summary.ConcentratedGroups, "US Banks")
	require.Contains(t, summary.ConcentratedGroups, "Financials")
	require.Contains(t, summary.ConcentratedGroups, "United States")
}
