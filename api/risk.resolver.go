package api

import (
	"cartera/internal/domain"

	"github.com/gin-gonic/gin"
)

type GroupAllocationResponse struct {
	Name           string   `json:"name"`
	Tickers        []string `json:"tickers"`
	TotalValue     float64  `json:"totalValue"`
	Allocation     float64  `json:"allocation"`
	IsConcentrated bool     `json:"isConcentrated"`
}

type GetRiskResponse struct {
	BySector           []GroupAllocationResponse `json:"bySector"`
	ByCountry          []GroupAllocationResponse `json:"byCountry"`
	ByCorrelationGroup []GroupAllocationResponse `json:"byCorrelationGroup"`
	Summary            domain.RiskSummary        `json:"summary"`
	Statuses           []domain.ProviderStatus   `json:"statuses"`
}

func toGroupResponses(groups []domain.GroupAllocation) []GroupAllocationResponse {
	out := make([]GroupAllocationResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupAllocationResponse{
			Name:           g.Name,
			Tickers:        g.Tickers,
			TotalValue:     g.TotalValue.InexactFloat64(),
			Allocation:     g.Allocation,
			IsConcentrated: g.IsConcentrated,
		})
	}
	return out
}

func (m ApiHandler) getRisk(c *gin.Context) {
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

	breakdown := m.RiskService.GetBreakdown(ctx, portfolio.Assets)
	summary := m.RiskService.GetSummary(ctx, portfolio.Assets, breakdown)

	c.JSON(200, GetRiskResponse{
		BySector:           toGroupResponses(breakdown.BySector),
		ByCountry:          toGroupResponses(breakdown.ByCountry),
		ByCorrelationGroup: toGroupResponses(breakdown.ByCorrelationGroup),
		Summary:            summary,
		Statuses:           portfolio.Statuses,
	})
}
