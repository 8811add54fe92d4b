package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cartera/internal/domain"
	"cartera/internal/mapping"
	"cartera/pkg/iol"
)

type IolRepository interface {
	GetPortfolio(ctx context.Context) ([]domain.PortfolioAsset, error)
}

type iolRepositoryHandler struct {
	Client *iol.Client
}

func NewIolRepository(httpClient *http.Client, username, password string) IolRepository {
	return &iolRepositoryHandler{
		Client: iol.NewClient(httpClient, username, password),
	}
}

func (h *iolRepositoryHandler) GetPortfolio(ctx context.Context) ([]domain.PortfolioAsset, error) {
	resp, err := h.Client.GetPortfolio(ctx)
	if err != nil {
		return nil, classifyIolError(err)
	}

	return mapping.MapIolPositions(resp), nil
}

func classifyIolError(err error) error {
	var apiErr iol.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			return domain.TokenExpiredError{Provider: domain.Provider_IOL}
		case apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500:
			return domain.TransientError{Err: err}
		}
	}
	return fmt.Errorf("failed to fetch iol portfolio: %w", err)
}
