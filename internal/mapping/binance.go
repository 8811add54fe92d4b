package mapping

import (
	"strings"

	"cartera/internal/domain"
	"cartera/pkg/binance"

	"github.com/shopspring/decimal"
)

// cryptoNames is the fixed ticker to display-name table. Tickers
// absent from it pass through as their own name.
var cryptoNames = map[string]string{
	"BTC":   "Bitcoin",
	"ETH":   "Ethereum",
	"BNB":   "BNB",
	"SOL":   "Solana",
	"XRP":   "XRP",
	"ADA":   "Cardano",
	"DOGE":  "Dogecoin",
	"DOT":   "Polkadot",
	"MATIC": "Polygon",
	"AVAX":  "Avalanche",
	"LINK":  "Chainlink",
	"LTC":   "Litecoin",
	"USDT":  "Tether",
	"USDC":  "USD Coin",
	"DAI":   "Dai",
}

// stablecoins are treated as cash rather than crypto exposure.
var stablecoins = map[string]bool{
	"USDT":  true,
	"USDC":  true,
	"DAI":   true,
	"BUSD":  true,
	"FDUSD": true,
}

func CryptoName(ticker string) string {
	if name, ok := cryptoNames[strings.ToUpper(ticker)]; ok {
		return name
	}
	return strings.ToUpper(ticker)
}

func MapBinanceCategory(asset string) domain.AssetCategory {
	if stablecoins[strings.ToUpper(asset)] {
		return domain.AssetCategory_Cash
	}
	return domain.AssetCategory_Crypto
}

// MapBinanceBalance converts one spot balance row plus its USD price
// into a canonical asset. The second return is false for rows that
// should be dropped (empty asset, zero quantity, unparseable
// amounts). Binance reports no cost basis for spot balances, so
// averagePrice is zero and pnl stays zero.
func MapBinanceBalance(b binance.Balance, priceUsd decimal.Decimal) (domain.PortfolioAsset, bool) {
	ticker := strings.ToUpper(strings.TrimSpace(b.Asset))
	if ticker == "" {
		return domain.PortfolioAsset{}, false
	}

	free, err := decimal.NewFromString(b.Free)
	if err != nil {
		return domain.PortfolioAsset{}, false
	}
	locked, err := decimal.NewFromString(b.Locked)
	if err != nil {
		return domain.PortfolioAsset{}, false
	}
	quantity := free.Add(locked)
	if quantity.Sign() <= 0 {
		return domain.PortfolioAsset{}, false
	}

	asset := domain.PortfolioAsset{
		ID:           domain.AssetID(domain.Provider_Binance, ticker),
		Provider:     domain.Provider_Binance,
		Ticker:       ticker,
		Name:         CryptoName(ticker),
		Category:     MapBinanceCategory(ticker),
		Currency:     domain.Currency_USD,
		Quantity:     quantity,
		AveragePrice: decimal.Zero,
		CurrentPrice: priceUsd,
		CurrentValue: quantity.Mul(priceUsd),
		HasCostBasis: false,
		Locked:       locked,
	}
	return asset, true
}
