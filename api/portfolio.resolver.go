package api

import (
	"fmt"
	"strings"

	"cartera/internal/domain"
	"cartera/internal/logger"

	"github.com/gin-gonic/gin"
)

type PortfolioAssetResponse struct {
	ID              string   `json:"id"`
	Provider        string   `json:"provider"`
	Ticker          string   `json:"ticker"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Currency        string   `json:"currency"`
	Quantity        float64  `json:"quantity"`
	AveragePrice    float64  `json:"averagePrice"`
	CurrentPrice    float64  `json:"currentPrice"`
	CurrentValue    float64  `json:"currentValue"`
	Pnl             float64  `json:"pnl"`
	PnlPercent      float64  `json:"pnlPercent"`
	HasCostBasis    bool     `json:"hasCostBasis"`
	Locked          float64  `json:"locked"`
	DailyChange     *float64 `json:"dailyChange"`
	DisplayPrice    float64  `json:"displayPrice"`
	DisplayAvgPrice float64  `json:"displayAvgPrice"`
	DisplayValue    float64  `json:"displayValue"`
	DisplayPnl      float64  `json:"displayPnl"`
	Allocation      float64  `json:"allocation"`
}

type ExchangeRateResponse struct {
	Rate      float64 `json:"rate"`
	UpdatedAt string  `json:"updatedAt"`
	Fallback  bool    `json:"fallback"`
}

type GetPortfolioResponse struct {
	Assets          []PortfolioAssetResponse `json:"assets"`
	Statuses        []domain.ProviderStatus  `json:"statuses"`
	DisplayCurrency string                   `json:"displayCurrency"`
	TotalValue      float64                  `json:"totalValue"`
	ExchangeRate    ExchangeRateResponse     `json:"exchangeRate"`
}

// parseDisplayCurrency validates the requested display currency.
// Malformed values are rejected up front, not defaulted.
func parseDisplayCurrency(raw string) (domain.Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "USD":
		return domain.Currency_USD, nil
	case "ARS":
		return domain.Currency_ARS, nil
	}
	return "", fmt.Errorf("unsupported display currency %q", raw)
}

func toAssetResponse(a domain.PortfolioAsset) PortfolioAssetResponse {
	return PortfolioAssetResponse{
		ID:              a.ID,
		Provider:        string(a.Provider),
		Ticker:          a.Ticker,
		Name:            a.Name,
		Category:        string(a.Category),
		Currency:        string(a.Currency),
		Quantity:        a.Quantity.InexactFloat64(),
		AveragePrice:    a.AveragePrice.InexactFloat64(),
		CurrentPrice:    a.CurrentPrice.InexactFloat64(),
		CurrentValue:    a.CurrentValue.InexactFloat64(),
		Pnl:             a.Pnl.InexactFloat64(),
		PnlPercent:      a.PnlPercent,
		HasCostBasis:    a.HasCostBasis,
		Locked:          a.Locked.InexactFloat64(),
		DailyChange:     a.DailyChange,
		DisplayPrice:    a.DisplayPrice.InexactFloat64(),
		DisplayAvgPrice: a.DisplayAvgPrice.InexactFloat64(),
		DisplayValue:    a.DisplayValue.InexactFloat64(),
		DisplayPnl:      a.DisplayPnl.InexactFloat64(),
		Allocation:      a.Allocation,
	}
}

func toExchangeRateResponse(r domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		Rate:      r.Rate.InexactFloat64(),
		UpdatedAt: r.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Fallback:  r.Fallback,
	}
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
	displayCurrency, err := parseDisplayCurrency(c.Query("currency"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	ctx := c.Request.Context()
	portfolio, err := m.PortfolioService.GetPortfolio(ctx, displayCurrency)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	assets := make([]PortfolioAssetResponse, 0, len(portfolio.Assets))
	for _, a := range portfolio.Assets {
		assets = append(assets, toAssetResponse(a))
	}

	for _, s := range portfolio.Statuses {
		if !s.Connected {
			logger.FromContext(ctx).Warnf("serving degraded portfolio: %s disconnected", s.Provider)
		}
	}

	c.JSON(200, GetPortfolioResponse{
		Assets:          assets,
		Statuses:        portfolio.Statuses,
		DisplayCurrency: string(portfolio.DisplayCurrency),
		TotalValue:      portfolio.TotalValue.InexactFloat64(),
		ExchangeRate:    toExchangeRateResponse(portfolio.ExchangeRate),
	})
}
