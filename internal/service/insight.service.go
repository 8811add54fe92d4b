package service

import (
	"context"
	"fmt"
	"strings"

	"cartera/internal/domain"
	"cartera/internal/repository"
)

type InsightService interface {
	GetPortfolioInsight(ctx context.Context, displayCurrency domain.Currency) (string, error)
}

type insightServiceHandler struct {
	PortfolioService PortfolioService
	RiskService      RiskService
	GptRepository    repository.GptRepository
}

func NewInsightService(
	portfolioService PortfolioService,
	riskService RiskService,
	gptRepository repository.GptRepository,
) InsightService {
	return insightServiceHandler{
		PortfolioService: portfolioService,
		RiskService:      riskService,
		GptRepository:    gptRepository,
	}
}

func (h insightServiceHandler) GetPortfolioInsight(ctx context.Context, displayCurrency domain.Currency) (string, error) {
	portfolio, err := h.PortfolioService.GetPortfolio(ctx, displayCurrency)
	if err != nil {
		return "", fmt.Errorf("failed to aggregate portfolio for insight: %w", err)
	}
	if len(portfolio.Assets) == 0 {
		return "", fmt.Errorf("no positions available to analyze")
	}

	breakdown := h.RiskService.GetBreakdown(ctx, portfolio.Assets)
	summary := h.RiskService.GetSummary(ctx, portfolio.Assets, breakdown)

	return h.GptRepository.GeneratePortfolioInsight(ctx, BuildPortfolioSummary(portfolio, breakdown, summary))
}

// BuildPortfolioSummary renders the aggregation into the plain-text
// shape the insight prompt expects. Only data from the aggregation
// goes in; the model is told not to invent positions.
func BuildPortfolioSummary(
	portfolio *domain.AggregatedPortfolio,
	breakdown domain.RiskBreakdown,
	summary domain.RiskSummary,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total portfolio value: %s %s\n", portfolio.TotalValue.StringFixed(2), portfolio.DisplayCurrency)
	fmt.Fprintf(&b, "USD/ARS rate used: %s\n\n", portfolio.ExchangeRate.Rate.StringFixed(2))

	b.WriteString("Positions:\n")
	for _, a := range portfolio.Assets {
		fmt.Fprintf(&b, "- %s (%s, %s, via %s): %s %s, allocation %.2f%%",
			a.Ticker, a.Category, a.Currency, a.Provider,
			a.DisplayValue.StringFixed(2), portfolio.DisplayCurrency, a.Allocation)
		if a.DailyChange != nil {
			fmt.Fprintf(&b, ", day %+.2f%%", *a.DailyChange)
		}
		b.WriteString("\n")
	}

	writeDimension := func(name string, groups []domain.GroupAllocation) {
		fmt.Fprintf(&b, "\n%s:\n", name)
		for _, g := range groups {
			fmt.Fprintf(&b, "- %s: %.2f%% (%s)", g.Name, g.Allocation, strings.Join(g.Tickers, ", "))
			if g.IsConcentrated {
				b.WriteString(" [CONCENTRATED]")
			}
			b.WriteString("\n")
		}
	}
	writeDimension("By sector", breakdown.BySector)
	writeDimension("By country", breakdown.ByCountry)
	writeDimension("By correlation group", breakdown.ByCorrelationGroup)

	disconnected := []string{}
	for _, s := range portfolio.Statuses {
		if !s.Connected {
			disconnected = append(disconnected, string(s.Provider))
		}
	}
	if len(disconnected) > 0 {
		fmt.Fprintf(&b, "\nNote: data from %s is unavailable; this is a partial view.\n", strings.Join(disconnected, ", "))
	}

	return b.String()
}
