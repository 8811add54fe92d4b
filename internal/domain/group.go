package domain

import "github.com/shopspring/decimal"

// ConcentrationThresholdPercent is the share of total portfolio value
// above which a group is flagged as concentrated. Strictly greater
// than; a group at exactly 30% is not flagged.
const ConcentrationThresholdPercent = 30.0

// GroupAllocation is one bucket of a portfolio grouping (by sector,
// country, or correlation cluster). Groups are recomputed from scratch
// on every request.
type GroupAllocation struct {
	Name           string          `json:"name"`
	Tickers        []string        `json:"tickers"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	Allocation     float64         `json:"allocation"`
	IsConcentrated bool            `json:"isConcentrated"`
}

// TickerMeta is static reference data for grouping. Lookups always
// resolve; unrecognized tickers land in the Unknown-style buckets.
type TickerMeta struct {
	Sector           string `json:"sector"`
	Country          string `json:"country"`
	CorrelationGroup string `json:"correlationGroup"`
}

// RiskBreakdown is the grouper output across all three dimensions.
type RiskBreakdown struct {
	BySector           []GroupAllocation `json:"bySector"`
	ByCountry          []GroupAllocation `json:"byCountry"`
	ByCorrelationGroup []GroupAllocation `json:"byCorrelationGroup"`
}
