package repository

import (
	"context"
	"strings"
	"sync"

	"cartera/internal/domain"
	"cartera/internal/logger"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// quoteBatchSize bounds concurrent outbound quote lookups.
const quoteBatchSize = 8

type QuoteRequest struct {
	Ticker   string
	Category domain.AssetCategory
}

type QuoteRepository interface {
	// GetQuote returns nil (not an error) when no quote is available
	// for the ticker; positions fall back to their last-known price.
	GetQuote(ctx context.Context, ticker string, category domain.AssetCategory) (*domain.Quote, error)
	// GetQuotes fetches quotes in batches of quoteBatchSize, waiting
	// for each batch to settle before starting the next. A failed
	// lookup drops that ticker from the result instead of failing the
	// batch.
	GetQuotes(ctx context.Context, requests []QuoteRequest) (map[string]domain.Quote, error)
}

type quoteRepositoryHandler struct{}

func NewQuoteRepository() QuoteRepository {
	return quoteRepositoryHandler{}
}

// yahooSymbol translates a canonical ticker into the vendor's symbol
// space: crypto trades as TICKER-USD, locally listed stocks and
// cedears carry the Buenos Aires suffix.
func yahooSymbol(ticker string, category domain.AssetCategory) string {
	ticker = strings.ToUpper(ticker)
	switch category {
	case domain.AssetCategory_Crypto:
		return ticker + "-USD"
	case domain.AssetCategory_Stock, domain.AssetCategory_Cedear:
		return ticker + ".BA"
	}
	return ticker
}

func (h quoteRepositoryHandler) GetQuote(ctx context.Context, ticker string, category domain.AssetCategory) (*domain.Quote, error) {
	if category == domain.AssetCategory_Cash {
		return nil, nil
	}

	q, err := quote.Get(yahooSymbol(ticker, category))
	if err != nil {
		return nil, err
	}
	if q == nil || q.RegularMarketPrice <= 0 {
		return nil, nil
	}

	return &domain.Quote{
		Ticker:        strings.ToUpper(ticker),
		Price:         decimal.NewFromFloat(q.RegularMarketPrice),
		ChangePercent: q.RegularMarketChangePercent,
		PreviousClose: decimal.NewFromFloat(q.RegularMarketPreviousClose),
	}, nil
}

func (h quoteRepositoryHandler) GetQuotes(ctx context.Context, requests []QuoteRequest) (map[string]domain.Quote, error) {
	log := logger.FromContext(ctx)

	out := map[string]domain.Quote{}
	var mu sync.Mutex

	for start := 0; start < len(requests); start += quoteBatchSize {
		end := start + quoteBatchSize
		if end > len(requests) {
			end = len(requests)
		}

		var wg sync.WaitGroup
		for _, req := range requests[start:end] {
			wg.Add(1)
			go func(req QuoteRequest) {
				defer wg.Done()
				q, err := h.GetQuote(ctx, req.Ticker, req.Category)
				if err != nil {
					// soft fail: the position keeps its last-known price
					log.Warnf("failed to fetch quote for %s: %v", req.Ticker, err)
					return
				}
				if q == nil {
					return
				}
				mu.Lock()
				out[q.Ticker] = *q
				mu.Unlock()
			}(req)
		}
		wg.Wait()

		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}
	}

	return out, nil
}
