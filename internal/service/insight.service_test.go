package service

import (
	"context"
	"testing"

	"cartera/internal/domain"
	mock_repository "cartera/internal/repository/mocks"
	"cartera/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubPortfolioService struct {
	portfolio *domain.AggregatedPortfolio
	err       error
}

func (s stubPortfolioService) GetPortfolio(ctx context.Context, displayCurrency domain.Currency) (*domain.AggregatedPortfolio, error) {
	return s.portfolio, s.err
}

func TestBuildPortfolioSummary(t *testing.T) {
	portfolio := &domain.AggregatedPortfolio{
		DisplayCurrency: domain.Currency_USD,
		TotalValue:      decimal.NewFromFloat(300.7),
		ExchangeRate:    domain.ExchangeRate{Rate: decimal.NewFromInt(1000)},
		Assets: []domain.PortfolioAsset{
			{
				Ticker: "GGAL", Category: domain.AssetCategory_Stock,
				Currency: domain.Currency_ARS, Provider: domain.Provider_IOL,
				DisplayValue: decimal.NewFromFloat(0.7), Allocation: 0.23,
				DailyChange: util.Float64Pointer(-1.4),
			},
			{
				Ticker: "AAPL", Category: domain.AssetCategory_Cedear,
				Currency: domain.Currency_USD, Provider: domain.Provider_PPI,
				DisplayValue: decimal.NewFromInt(300), Allocation: 99.77,
			},
		},
		Statuses: []domain.ProviderStatus{
			{Provider: domain.Provider_IOL, Connected: true},
			{Provider: domain.Provider_PPI, Connected: true},
			{Provider: domain.Provider_Binance, Connected: false, Error: "timeout"},
		},
	}
	breakdown := domain.RiskBreakdown{
		BySector: []domain.GroupAllocation{
			{Name: "Technology", Tickers: []string{"AAPL"}, Allocation: 99.77, IsConcentrated: true},
		},
	}
	summary := domain.RiskSummary{}

	out := BuildPortfolioSummary(portfolio, breakdown, summary)

	require.Contains(t, out, "Total portfolio value: 300.70 USD")
	require.Contains(t, out, "GGAL (stock, ARS, via iol)")
	require.Contains(t, out, "day -1.40%")
	require.Contains(t, out, "Technology: 99.77% (AAPL) [CONCENTRATED]")
	require.Contains(t, out, "data from binance is unavailable")
}

func TestGetPortfolioInsight(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the rendered summary to the model", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)

		handler := insightServiceHandler{
			PortfolioService: stubPortfolioService{
				portfolio: &domain.AggregatedPortfolio{
					DisplayCurrency: domain.Currency_USD,
					TotalValue:      decimal.NewFromInt(100),
					Assets: []domain.PortfolioAsset{
						{Ticker: "JPM", DisplayValue: decimal.NewFromInt(100), Allocation: 100},
					},
				},
			},
			RiskService:   newRiskHandler(),
			GptRepository: gptRepository,
		}

		gptRepository.EXPECT().
			GeneratePortfolioInsight(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, summary string) (string, error) {
				require.Contains(t, summary, "JPM")
				return "a narrative", nil
			})

		insight, err := handler.GetPortfolioInsight(ctx, domain.Currency_USD)
		require.NoError(t, err)
		require.Equal(t, "a narrative", insight)
	})

	t.Run("refuses to narrate an empty portfolio", func(t *testing.T) {
		handler := insightServiceHandler{
			PortfolioService: stubPortfolioService{
				portfolio: &domain.AggregatedPortfolio{Assets: []domain.PortfolioAsset{}},
			},
			RiskService: newRiskHandler(),
		}

		_, err := handler.GetPortfolioInsight(ctx, domain.Currency_USD)
		require.Error(t, err)
	})
}
