package service

import (
	"context"
	"sort"

	"cartera/internal/domain"
	"cartera/internal/repository"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type RiskService interface {
	GetBreakdown(ctx context.Context, assets []domain.PortfolioAsset) domain.RiskBreakdown
	GetSummary(ctx context.Context, assets []domain.PortfolioAsset, breakdown domain.RiskBreakdown) domain.RiskSummary
}

type riskServiceHandler struct {
	TickerMetaRepository repository.TickerMetaRepository
}

func NewRiskService(tickerMetaRepository repository.TickerMetaRepository) RiskService {
	return riskServiceHandler{
		TickerMetaRepository: tickerMetaRepository,
	}
}

// positionValue prefers the display-converted value so mixed-currency
// portfolios group on a common scale; positions that never went
// through conversion fall back to their native value.
func positionValue(a domain.PortfolioAsset) decimal.Decimal {
	if a.DisplayValue.Sign() != 0 {
		return a.DisplayValue
	}
	return a.CurrentValue
}

type groupAccumulator struct {
	order  []string
	byName map[string]*domain.GroupAllocation
}

func newGroupAccumulator() *groupAccumulator {
	return &groupAccumulator{byName: map[string]*domain.GroupAllocation{}}
}

func (g *groupAccumulator) add(name, ticker string, value decimal.Decimal) {
	group, ok := g.byName[name]
	if !ok {
		group = &domain.GroupAllocation{Name: name, TotalValue: decimal.Zero}
		g.byName[name] = group
		g.order = append(g.order, name)
	}
	group.Tickers = append(group.Tickers, ticker)
	group.TotalValue = group.TotalValue.Add(value)
}

// finalize converts accumulated groups into records with 2-decimal
// allocations via scaled rounding, flags concentration, and sorts
// descending by allocation. Ties keep encounter order - the sort is
// stable over insertion order.
func (g *groupAccumulator) finalize(total decimal.Decimal) []domain.GroupAllocation {
	out := []domain.GroupAllocation{}
	hundred := decimal.NewFromInt(100)
	for _, name := range g.order {
		group := *g.byName[name]
		group.Allocation = group.TotalValue.
			Div(total).
			Mul(decimal.NewFromInt(10000)).
			Round(0).
			Div(hundred).
			InexactFloat64()
		group.IsConcentrated = group.Allocation > domain.ConcentrationThresholdPercent
		out = append(out, group)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Allocation > out[j].Allocation
	})
	return out
}

// GetBreakdown groups the portfolio by sector, country and
// correlation cluster. Each position lands in exactly one group per
// dimension. A zero-value portfolio short-circuits to empty lists.
func (h riskServiceHandler) GetBreakdown(ctx context.Context, assets []domain.PortfolioAsset) domain.RiskBreakdown {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(positionValue(a))
	}
	if total.Sign() <= 0 {
		return domain.RiskBreakdown{
			BySector:           []domain.GroupAllocation{},
			ByCountry:          []domain.GroupAllocation{},
			ByCorrelationGroup: []domain.GroupAllocation{},
		}
	}

	bySector := newGroupAccumulator()
	byCountry := newGroupAccumulator()
	byCorrelation := newGroupAccumulator()
	for _, a := range assets {
		meta := h.TickerMetaRepository.Get(a.Ticker)
		value := positionValue(a)
		bySector.add(meta.Sector, a.Ticker, value)
		byCountry.add(meta.Country, a.Ticker, value)
		byCorrelation.add(meta.CorrelationGroup, a.Ticker, value)
	}

	return domain.RiskBreakdown{
		BySector:           bySector.finalize(total),
		ByCountry:          byCountry.finalize(total),
		ByCorrelationGroup: byCorrelation.finalize(total),
	}
}

// GetSummary computes portfolio-level day-move statistics and lists
// every concentrated group across the three dimensions.
func (h riskServiceHandler) GetSummary(ctx context.Context, assets []domain.PortfolioAsset, breakdown domain.RiskBreakdown) domain.RiskSummary {
	changes := []float64{}
	for _, a := range assets {
		if a.DailyChange != nil {
			changes = append(changes, *a.DailyChange)
		}
	}

	summary := domain.RiskSummary{ConcentratedGroups: []string{}}
	if len(changes) > 0 {
		summary.MeanDailyChangePercent, _ = stats.Mean(changes)
	}
	if len(changes) > 1 {
		summary.DailyChangeStdev, _ = stats.StandardDeviationSample(changes)
	}

	for _, dimension := range [][]domain.GroupAllocation{
		breakdown.BySector,
		breakdown.ByCountry,
		breakdown.ByCorrelationGroup,
	} {
		for _, group := range dimension {
			if group.IsConcentrated {
				summary.ConcentratedGroups = append(summary.ConcentratedGroups, group.Name)
			}
		}
	}

	return summary
}
