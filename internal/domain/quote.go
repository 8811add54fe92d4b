package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a live price snapshot for one ticker.
type Quote struct {
	Ticker        string          `json:"ticker"`
	Price         decimal.Decimal `json:"price"`
	ChangePercent float64         `json:"changePercent"`
	PreviousClose decimal.Decimal `json:"previousClose"`
}

// ExchangeRate is the USD/ARS spot rate used for display conversion.
type ExchangeRate struct {
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt time.Time       `json:"updatedAt"`
	// Fallback marks a hardcoded rate used when the upstream source
	// was unavailable.
	Fallback bool `json:"fallback"`
}
