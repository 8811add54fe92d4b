package domain

import "github.com/shopspring/decimal"

// AggregatedPortfolio is the output of one aggregation request: every
// provider's positions merged, quoted, converted to the display
// currency, with allocations populated.
type AggregatedPortfolio struct {
	Assets          []PortfolioAsset `json:"assets"`
	Statuses        []ProviderStatus `json:"statuses"`
	DisplayCurrency Currency         `json:"displayCurrency"`
	TotalValue      decimal.Decimal  `json:"totalValue"`
	ExchangeRate    ExchangeRate     `json:"exchangeRate"`
}

// RiskSummary complements the grouping breakdown with portfolio-level
// statistics over the day's moves.
type RiskSummary struct {
	// MeanDailyChangePercent and DailyChangeStdev are computed over
	// positions that had a live quote; both are zero when none did.
	MeanDailyChangePercent float64 `json:"meanDailyChangePercent"`
	DailyChangeStdev       float64 `json:"dailyChangeStdev"`
	// ConcentratedGroups names every group, across all three
	// dimensions, whose allocation crossed the concentration
	// threshold.
	ConcentratedGroups []string `json:"concentratedGroups"`
}
