package service

import (
	"cartera/internal/domain"
)

// OverlayQuotes layers live quotes onto merged positions. Positions
// with a matching quote get the live price, recomputed value and pnl,
// and the day's percent change; the rest keep their provider-reported
// price with a nil DailyChange. The input slice is not mutated and
// output order matches input order regardless of how the quotes were
// fetched.
func OverlayQuotes(assets []domain.PortfolioAsset, quotes map[string]domain.Quote) []domain.PortfolioAsset {
	out := make([]domain.PortfolioAsset, 0, len(assets))
	for _, asset := range assets {
		updated := asset
		if q, ok := quotes[asset.Ticker]; ok && q.Price.Sign() > 0 {
			updated.ApplyQuote(q)
		} else {
			updated.DailyChange = nil
		}
		out = append(out, updated)
	}
	return out
}
