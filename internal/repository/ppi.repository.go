package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cartera/internal/domain"
	"cartera/internal/mapping"
	"cartera/pkg/ppi"
)

type PpiRepository interface {
	GetBalancesAndPositions(ctx context.Context) ([]domain.PortfolioAsset, error)
}

type ppiRepositoryHandler struct {
	Client *ppi.Client
}

func NewPpiRepository(httpClient *http.Client, authorizedClient, clientKey, apiKey, apiSecret, accountNumber string) PpiRepository {
	return &ppiRepositoryHandler{
		Client: ppi.NewClient(httpClient, authorizedClient, clientKey, apiKey, apiSecret, accountNumber),
	}
}

func (h *ppiRepositoryHandler) GetBalancesAndPositions(ctx context.Context) ([]domain.PortfolioAsset, error) {
	resp, err := h.Client.GetBalance(ctx)
	if err != nil {
		return nil, classifyPpiError(err)
	}

	return mapping.MapPpiBalance(resp), nil
}

func classifyPpiError(err error) error {
	var apiErr ppi.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			return domain.TokenExpiredError{Provider: domain.Provider_PPI}
		case apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500:
			return domain.TransientError{Err: err}
		}
	}
	return fmt.Errorf("failed to fetch ppi balances: %w", err)
}
