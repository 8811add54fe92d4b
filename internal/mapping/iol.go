// Package mapping holds the per-provider decision tables that
// translate raw broker records into the canonical portfolio asset
// shape. Every function here is pure and total: any value the
// upstream API can emit maps deterministically, with an explicit
// fallback for unrecognized labels.
package mapping

import (
	"strings"

	"cartera/internal/domain"
	"cartera/pkg/iol"

	"github.com/shopspring/decimal"
)

// iolCategoryTable maps substrings of IOL's instrument-type labels.
// Order matters: first match wins. Bonds, letras and funds are
// deliberately collapsed into the stock bucket.
var iolCategoryTable = []struct {
	substring string
	category  domain.AssetCategory
}{
	{"cedear", domain.AssetCategory_Cedear},
	{"moneda", domain.AssetCategory_Cash},
	{"caucion", domain.AssetCategory_Cash},
	{"accion", domain.AssetCategory_Stock},
	{"titulospublicos", domain.AssetCategory_Stock},
	{"letra", domain.AssetCategory_Stock},
	{"obligacion", domain.AssetCategory_Stock},
	{"fondo", domain.AssetCategory_Stock},
}

func MapIolCategory(tipo string) domain.AssetCategory {
	normalized := strings.ToLower(strings.TrimSpace(tipo))
	for _, entry := range iolCategoryTable {
		if strings.Contains(normalized, entry.substring) {
			return entry.category
		}
	}
	return domain.AssetCategory_Stock
}

// MapIolCurrency maps IOL's currency labels. IOL spells dollars a few
// different ways ("dolar_Estadounidense", "Dolares divisa"); anything
// that mentions dollars is USD, everything else is pesos.
func MapIolCurrency(moneda string) domain.Currency {
	normalized := strings.ToLower(moneda)
	if strings.Contains(normalized, "dolar") || strings.Contains(normalized, "dollar") {
		return domain.Currency_USD
	}
	return domain.Currency_ARS
}

// MapIolPositions converts a raw portfolio response into canonical
// assets. Rows without a ticker or with a non-positive quantity are
// dropped on ingress.
func MapIolPositions(resp *iol.PortfolioResponse) []domain.PortfolioAsset {
	assets := []domain.PortfolioAsset{}
	if resp == nil {
		return assets
	}
	for _, p := range resp.Activos {
		ticker := strings.ToUpper(strings.TrimSpace(p.Titulo.Simbolo))
		if ticker == "" || p.Cantidad <= 0 {
			continue
		}
		quantity := decimal.NewFromFloat(p.Cantidad)
		currentPrice := decimal.NewFromFloat(p.UltimoPrecio)
		averagePrice := decimal.NewFromFloat(p.Ppc)

		name := strings.TrimSpace(p.Titulo.Descripcion)
		if name == "" {
			name = ticker
		}

		asset := domain.PortfolioAsset{
			ID:           domain.AssetID(domain.Provider_IOL, ticker),
			Provider:     domain.Provider_IOL,
			Ticker:       ticker,
			Name:         name,
			Category:     MapIolCategory(p.Titulo.Tipo),
			Currency:     MapIolCurrency(p.Titulo.Moneda),
			Quantity:     quantity,
			AveragePrice: averagePrice,
			CurrentPrice: currentPrice,
			CurrentValue: quantity.Mul(currentPrice),
			HasCostBasis: averagePrice.Sign() > 0,
			Locked:       decimal.NewFromFloat(p.Comprometido),
		}
		asset.RecomputePnl()
		assets = append(assets, asset)
	}
	return assets
}
