package api

import (
	"testing"

	"cartera/internal/domain"
	"cartera/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_parseDisplayCurrency(t *testing.T) {
	out, err := parseDisplayCurrency("")
	require.NoError(t, err)
	require.Equal(t, domain.Currency_USD, out)

	out, err = parseDisplayCurrency("ars")
	require.NoError(t, err)
	require.Equal(t, domain.Currency_ARS, out)

	out, err = parseDisplayCurrency(" USD ")
	require.NoError(t, err)
	require.Equal(t, domain.Currency_USD, out)

	_, err = parseDisplayCurrency("EUR")
	require.Error(t, err)
}

func Test_toAssetResponse(t *testing.T) {
	asset := domain.PortfolioAsset{
		ID:              "iol-GGAL",
		Provider:        domain.Provider_IOL,
		Ticker:          "GGAL",
		Currency:        domain.Currency_ARS,
		Quantity:        decimal.NewFromInt(10),
		AveragePrice:    decimal.NewFromInt(4000),
		CurrentPrice:    decimal.NewFromInt(5000),
		CurrentValue:    decimal.NewFromInt(50000),
		DailyChange:     util.Float64Pointer(1.5),
		DisplayPrice:    decimal.NewFromFloat(4.55),
		DisplayAvgPrice: decimal.NewFromFloat(3.64),
		DisplayValue:    decimal.NewFromFloat(45.5),
		Allocation:      12.5,
	}

	out := toAssetResponse(asset)
	require.Equal(t, "iol-GGAL", out.ID)
	require.Equal(t, 4.55, out.DisplayPrice)
	require.Equal(t, 3.64, out.DisplayAvgPrice)
	require.Equal(t, 45.5, out.DisplayValue)
	require.Equal(t, 1.5, *out.DailyChange)
	require.Equal(t, 12.5, out.Allocation)
}

func Test_parseProvider(t *testing.T) {
	for _, valid := range []string{"iol", "ppi", "binance"} {
		out, err := parseProvider(valid)
		require.NoError(t, err)
		require.Equal(t, domain.Provider(valid), out)
	}

	_, err := parseProvider("robinhood")
	require.Error(t, err)
}
