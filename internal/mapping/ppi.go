package mapping

import (
	"strings"

	"cartera/internal/domain"
	"cartera/pkg/ppi"

	"github.com/shopspring/decimal"
)

var ppiCategoryTable = []struct {
	substring string
	category  domain.AssetCategory
}{
	{"cedear", domain.AssetCategory_Cedear},
	{"disponibilidad", domain.AssetCategory_Cash},
	{"moneda", domain.AssetCategory_Cash},
	{"cash", domain.AssetCategory_Cash},
	{"accion", domain.AssetCategory_Stock},
	{"bono", domain.AssetCategory_Stock},
	{"letra", domain.AssetCategory_Stock},
	{"fondo", domain.AssetCategory_Stock},
}

func MapPpiCategory(instrumentType string) domain.AssetCategory {
	normalized := strings.ToLower(strings.TrimSpace(instrumentType))
	for _, entry := range ppiCategoryTable {
		if strings.Contains(normalized, entry.substring) {
			return entry.category
		}
	}
	return domain.AssetCategory_Stock
}

func MapPpiCurrency(currency string) domain.Currency {
	normalized := strings.ToLower(currency)
	if strings.Contains(normalized, "dolar") ||
		strings.Contains(normalized, "dollar") ||
		strings.Contains(normalized, "usd") {
		return domain.Currency_USD
	}
	return domain.Currency_ARS
}

// MapPpiBalance flattens the grouped availability buckets into
// canonical assets, dropping empty tickers and non-positive holdings.
func MapPpiBalance(resp *ppi.BalanceResponse) []domain.PortfolioAsset {
	assets := []domain.PortfolioAsset{}
	if resp == nil {
		return assets
	}
	for _, group := range resp.GroupedAvailability {
		for _, inst := range group.Availability {
			ticker := strings.ToUpper(strings.TrimSpace(inst.Symbol))
			if ticker == "" || inst.Amount <= 0 {
				continue
			}
			quantity := decimal.NewFromFloat(inst.Amount)
			currentPrice := decimal.NewFromFloat(inst.Price)
			averagePrice := decimal.NewFromFloat(inst.AveragePrice)

			name := strings.TrimSpace(inst.Description)
			if name == "" {
				name = ticker
			}

			category := MapPpiCategory(inst.Type)
			if category == domain.AssetCategory_Stock && inst.Type == "" {
				// groups without row-level types carry the class on
				// the bucket name instead
				category = MapPpiCategory(group.Name)
			}

			asset := domain.PortfolioAsset{
				ID:           domain.AssetID(domain.Provider_PPI, ticker),
				Provider:     domain.Provider_PPI,
				Ticker:       ticker,
				Name:         name,
				Category:     category,
				Currency:     MapPpiCurrency(inst.Currency),
				Quantity:     quantity,
				AveragePrice: averagePrice,
				CurrentPrice: currentPrice,
				CurrentValue: quantity.Mul(currentPrice),
				HasCostBasis: averagePrice.Sign() > 0,
			}
			asset.RecomputePnl()
			assets = append(assets, asset)
		}
	}
	return assets
}
