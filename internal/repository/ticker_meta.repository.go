package repository

import (
	"strings"

	"cartera/internal/domain"
)

// TickerMetaRepository serves static per-ticker reference data for
// risk grouping. Lookups always resolve; unrecognized tickers land in
// the Unknown buckets so the grouper never has to branch on absence.
type TickerMetaRepository interface {
	Get(ticker string) domain.TickerMeta
}

type tickerMetaRepositoryHandler struct{}

func NewTickerMetaRepository() TickerMetaRepository {
	return tickerMetaRepositoryHandler{}
}

var tickerMeta = map[string]domain.TickerMeta{
	// argentine banks
	"GGAL": {Sector: "Financials", Country: "Argentina", CorrelationGroup: "AR Banks"},
	"BMA":  {Sector: "Financials", Country: "Argentina", CorrelationGroup: "AR Banks"},
	"SUPV": {Sector: "Financials", Country: "Argentina", CorrelationGroup: "AR Banks"},
	"BBAR": {Sector: "Financials", Country: "Argentina", CorrelationGroup: "AR Banks"},

	// argentine energy and utilities
	"YPF":   {Sector: "Energy", Country: "Argentina", CorrelationGroup: "AR Energy"},
	"PAMP":  {Sector: "Energy", Country: "Argentina", CorrelationGroup: "AR Energy"},
	"VIST":  {Sector: "Energy", Country: "Argentina", CorrelationGroup: "AR Energy"},
	"TGSU2": {Sector: "Utilities", Country: "Argentina", CorrelationGroup: "AR Energy"},
	"CEPU":  {Sector: "Utilities", Country: "Argentina", CorrelationGroup: "AR Energy"},

	// us big tech (mostly held as cedears)
	"AAPL":  {Sector: "Technology", Country: "United States", CorrelationGroup: "US Tech"},
	"MSFT":  {Sector: "Technology", Country: "United States", CorrelationGroup: "US Tech"},
	"GOOGL": {Sector: "Technology", Country: "United States", CorrelationGroup: "US Tech"},
	"AMZN":  {Sector: "Consumer Discretionary", Country: "United States", CorrelationGroup: "US Tech"},
	"META":  {Sector: "Technology", Country: "United States", CorrelationGroup: "US Tech"},
	"NVDA":  {Sector: "Technology", Country: "United States", CorrelationGroup: "US Tech"},
	"TSLA":  {Sector: "Consumer Discretionary", Country: "United States", CorrelationGroup: "US Tech"},

	// us banks
	"JPM": {Sector: "Financials", Country: "United States", CorrelationGroup: "US Banks"},
	"BAC": {Sector: "Financials", Country: "United States", CorrelationGroup: "US Banks"},
	"C":   {Sector: "Financials", Country: "United States", CorrelationGroup: "US Banks"},
	"WFC": {Sector: "Financials", Country: "United States", CorrelationGroup: "US Banks"},

	// latam
	"MELI": {Sector: "Consumer Discretionary", Country: "Argentina", CorrelationGroup: "LatAm Growth"},

	// crypto
	"BTC": {Sector: "Crypto", Country: "Global", CorrelationGroup: "Crypto Majors"},
	"ETH": {Sector: "Crypto", Country: "Global", CorrelationGroup: "Crypto Majors"},
	"SOL": {Sector: "Crypto", Country: "Global", CorrelationGroup: "Crypto Alts"},
	"ADA": {Sector: "Crypto", Country: "Global", CorrelationGroup: "Crypto Alts"},

	// stablecoins and cash-like
	"USDT": {Sector: "Cash", Country: "Global", CorrelationGroup: "Stablecoins"},
	"USDC": {Sector: "Cash", Country: "Global", CorrelationGroup: "Stablecoins"},
	"DAI":  {Sector: "Cash", Country: "Global", CorrelationGroup: "Stablecoins"},
	"USD":  {Sector: "Cash", Country: "United States", CorrelationGroup: "Cash"},
	"ARS":  {Sector: "Cash", Country: "Argentina", CorrelationGroup: "Cash"},
}

func (h tickerMetaRepositoryHandler) Get(ticker string) domain.TickerMeta {
	if meta, ok := tickerMeta[strings.ToUpper(ticker)]; ok {
		return meta
	}
	return domain.TickerMeta{
		Sector:           "Unknown",
		Country:          "Unknown",
		CorrelationGroup: "Uncorrelated",
	}
}
