package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"cartera/api"
	"cartera/internal"
	"cartera/internal/cache"
	"cartera/internal/repository"
	"cartera/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}

	iolRepository := repository.NewIolRepository(httpClient, secrets.Iol.Username, secrets.Iol.Password)
	ppiRepository := repository.NewPpiRepository(
		httpClient,
		secrets.Ppi.AuthorizedClient,
		secrets.Ppi.ClientKey,
		secrets.Ppi.ApiKey,
		secrets.Ppi.ApiSecret,
		secrets.Ppi.AccountNumber,
	)
	binanceRepository := repository.NewBinanceRepository(httpClient, secrets.Binance.ApiKey, secrets.Binance.ApiSecret)
	quoteRepository := repository.NewQuoteRepository()
	exchangeRateRepository := repository.NewExchangeRateRepository(httpClient, cache.RealClock())
	tickerMetaRepository := repository.NewTickerMetaRepository()

	brokerConnectionRepository, err := repository.NewBrokerConnectionRepository(dbConn, []byte(secrets.EncryptionKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create broker connection repository: %w", err)
	}

	portfolioService := service.NewPortfolioService(
		iolRepository,
		ppiRepository,
		binanceRepository,
		quoteRepository,
		exchangeRateRepository,
	)
	riskService := service.NewRiskService(tickerMetaRepository)
	insightService := service.NewInsightService(portfolioService, riskService, gptRepository)

	apiHandler := &api.ApiHandler{
		Db:                         dbConn,
		PortfolioService:           portfolioService,
		RiskService:                riskService,
		InsightService:             insightService,
		ExchangeRateRepository:     exchangeRateRepository,
		BrokerConnectionRepository: brokerConnectionRepository,
		ApiRequestRepository:       repository.ApiRequestRepositoryHandler{},
	}

	return apiHandler, nil
}
