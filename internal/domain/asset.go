package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type AssetCategory string

const (
	AssetCategory_Stock  AssetCategory = "stock"
	AssetCategory_Cedear AssetCategory = "cedear"
	AssetCategory_Crypto AssetCategory = "crypto"
	AssetCategory_Cash   AssetCategory = "cash"
)

type Currency string

const (
	Currency_USD Currency = "USD"
	Currency_ARS Currency = "ARS"
)

// PortfolioAsset is the canonical position shape every provider
// maps into. Instances are built fresh on each aggregation request;
// derived fields (display*, Allocation, DailyChange) are layered on
// by the aggregation pipeline, never mutated upstream.
type PortfolioAsset struct {
	ID       string        `json:"id"`
	Provider Provider      `json:"provider"`
	Ticker   string        `json:"ticker"`
	Name     string        `json:"name"`
	Category AssetCategory `json:"category"`
	Currency Currency      `json:"currency"`

	Quantity     decimal.Decimal `json:"quantity"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Pnl          decimal.Decimal `json:"pnl"`
	PnlPercent   float64         `json:"pnlPercent"`

	// HasCostBasis distinguishes "provider reported no cost basis"
	// from a legitimately zero-cost position. Pnl stays zero when false.
	HasCostBasis bool `json:"hasCostBasis"`

	// Locked is units reserved in open orders. Only some providers
	// report it (e.g. exchange order holds).
	Locked decimal.Decimal `json:"locked"`

	// DailyChange is the quote's percent change on the day. Nil when
	// no live quote matched this position.
	DailyChange *float64 `json:"dailyChange"`

	// Display* are the monetary fields rescaled to the requested
	// display currency. The original-currency fields above are left
	// untouched so callers can toggle between views.
	DisplayPrice    decimal.Decimal `json:"displayPrice"`
	DisplayAvgPrice decimal.Decimal `json:"displayAvgPrice"`
	DisplayValue    decimal.Decimal `json:"displayValue"`
	DisplayPnl      decimal.Decimal `json:"displayPnl"`

	// Allocation is this position's share of total portfolio display
	// value, in percent. Populated only after the full merge.
	Allocation float64 `json:"allocation"`
}

// AssetID builds the provider-scoped identifier, e.g. "binance-BTC".
// Tickers are not globally unique; the pair is.
func AssetID(provider Provider, ticker string) string {
	return fmt.Sprintf("%s-%s", provider, strings.ToUpper(ticker))
}

// RecomputePnl rederives Pnl and PnlPercent from the current price
// and cost basis. Positions without a cost basis report zero, not NaN.
func (a *PortfolioAsset) RecomputePnl() {
	if !a.HasCostBasis || a.AveragePrice.IsZero() {
		a.Pnl = decimal.Zero
		a.PnlPercent = 0
		return
	}
	a.Pnl = a.CurrentPrice.Sub(a.AveragePrice).Mul(a.Quantity)
	a.PnlPercent = a.CurrentPrice.Sub(a.AveragePrice).
		Div(a.AveragePrice).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
}

// ApplyQuote overlays a live quote onto the position, recomputing the
// value and pnl fields from it.
func (a *PortfolioAsset) ApplyQuote(q Quote) {
	a.CurrentPrice = q.Price
	a.CurrentValue = a.Quantity.Mul(q.Price)
	change := q.ChangePercent
	a.DailyChange = &change
	a.RecomputePnl()
}
