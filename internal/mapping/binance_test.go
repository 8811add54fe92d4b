package mapping

import (
	"testing"

	"cartera/internal/domain"
	"cartera/pkg/binance"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCryptoName(t *testing.T) {
	require.Equal(t, "Bitcoin", CryptoName("BTC"))
	require.Equal(t, "Bitcoin", CryptoName("btc"))
	require.Equal(t, "Tether", CryptoName("USDT"))
	// unknown tickers pass through as their own name
	require.Equal(t, "SHIB", CryptoName("shib"))
}

func TestMapBinanceCategory(t *testing.T) {
	require.Equal(t, domain.AssetCategory_Crypto, MapBinanceCategory("BTC"))
	require.Equal(t, domain.AssetCategory_Cash, MapBinanceCategory("USDT"))
	require.Equal(t, domain.AssetCategory_Cash, MapBinanceCategory("usdc"))
	require.Equal(t, domain.AssetCategory_Crypto, MapBinanceCategory("NOTACOIN"))
}

func TestMapBinanceBalance(t *testing.T) {
	t.Run("maps free plus locked", func(t *testing.T) {
		asset, ok := MapBinanceBalance(binance.Balance{
			Asset:  "BTC",
			Free:   "0.5",
			Locked: "0.25",
		}, decimal.NewFromInt(60000))
		require.True(t, ok)

		require.Equal(t, "binance-BTC", asset.ID)
		require.Equal(t, "Bitcoin", asset.Name)
		require.Equal(t, domain.Currency_USD, asset.Currency)
		require.Equal(t, "0.75", asset.Quantity.String())
		require.Equal(t, "45000", asset.CurrentValue.String())
		require.Equal(t, "0.25", asset.Locked.String())
		// spot balances carry no cost basis
		require.False(t, asset.HasCostBasis)
		require.True(t, asset.Pnl.IsZero())
	})

	t.Run("drops zero balances", func(t *testing.T) {
		_, ok := MapBinanceBalance(binance.Balance{Asset: "ETH", Free: "0", Locked: "0"}, decimal.NewFromInt(3000))
		require.False(t, ok)
	})

	t.Run("drops unparseable rows", func(t *testing.T) {
		_, ok := MapBinanceBalance(binance.Balance{Asset: "ETH", Free: "abc", Locked: "0"}, decimal.Zero)
		require.False(t, ok)
		_, ok = MapBinanceBalance(binance.Balance{Asset: "", Free: "1", Locked: "0"}, decimal.Zero)
		require.False(t, ok)
	})
}
