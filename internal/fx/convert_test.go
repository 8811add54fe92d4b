package fx

import (
	"testing"

	"cartera/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	rate := decimal.NewFromInt(1000)

	t.Run("same currency is identity", func(t *testing.T) {
		v := decimal.NewFromFloat(123.45)
		require.True(t, v.Equal(Convert(v, domain.Currency_USD, domain.Currency_USD, rate)))
		require.True(t, v.Equal(Convert(v, domain.Currency_ARS, domain.Currency_ARS, rate)))
	})

	t.Run("ars to usd divides by rate", func(t *testing.T) {
		out := Convert(decimal.NewFromInt(700), domain.Currency_ARS, domain.Currency_USD, rate)
		require.True(t, decimal.NewFromFloat(0.7).Equal(out), "got %s", out)
	})

	t.Run("usd to ars multiplies by rate", func(t *testing.T) {
		out := Convert(decimal.NewFromInt(300), domain.Currency_USD, domain.Currency_ARS, rate)
		require.True(t, decimal.NewFromInt(300000).Equal(out), "got %s", out)
	})

	t.Run("round trip", func(t *testing.T) {
		rates := []decimal.Decimal{
			decimal.NewFromFloat(0.5),
			decimal.NewFromInt(1),
			decimal.NewFromFloat(1047.33),
			decimal.NewFromInt(100000),
		}
		v := decimal.NewFromFloat(982.17)
		for _, r := range rates {
			there := Convert(v, domain.Currency_USD, domain.Currency_ARS, r)
			back := Convert(there, domain.Currency_ARS, domain.Currency_USD, r)
			require.InDelta(t, v.InexactFloat64(), back.InexactFloat64(), 1e-9, "rate %s", r)
		}
	})

	t.Run("zero rate passes through", func(t *testing.T) {
		v := decimal.NewFromInt(50)
		out := Convert(v, domain.Currency_ARS, domain.Currency_USD, decimal.Zero)
		require.True(t, v.Equal(out))
	})
}
