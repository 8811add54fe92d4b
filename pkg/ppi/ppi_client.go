// Package ppi is a thin client for the Portfolio Personal Inversiones
// (PPI) REST API. Authentication uses the api-key login endpoint; the
// resulting bearer token is held for the client's lifetime and a 401
// is surfaced to the caller as an APIError.
package ppi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const baseUrl = "https://clientapi.portfoliopersonal.com/api/1.0"

type APIError struct {
	StatusCode int
	Body       string
}

func (e APIError) Error() string {
	return fmt.Sprintf("ppi: received status code %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	HttpClient       *http.Client
	AuthorizedClient string
	ClientKey        string
	ApiKey           string
	ApiSecret        string
	AccountNumber    string

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

func NewClient(httpClient *http.Client, authorizedClient, clientKey, apiKey, apiSecret, accountNumber string) *Client {
	return &Client{
		HttpClient:       httpClient,
		AuthorizedClient: authorizedClient,
		ClientKey:        clientKey,
		ApiKey:           apiKey,
		ApiSecret:        apiSecret,
		AccountNumber:    accountNumber,
	}
}

type loginResponse struct {
	AccessToken    string    `json:"accessToken"`
	RefreshToken   string    `json:"refreshToken"`
	ExpirationDate time.Time `json:"expirationDate"`
}

// Instrument is one holding row inside a grouped availability bucket.
type Instrument struct {
	Symbol       string  `json:"symbol"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	Currency     string  `json:"currency"`
	Amount       float64 `json:"amount"`
	Price        float64 `json:"price"`
	AveragePrice float64 `json:"averagePrice"`
	MarketValue  float64 `json:"marketValue"`
}

type AvailabilityGroup struct {
	Name         string       `json:"name"`
	Availability []Instrument `json:"availability"`
}

type BalanceResponse struct {
	GroupedAvailability []AvailabilityGroup `json:"groupedAvailability"`
}

func (c *Client) login(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseUrl+"/Account/LoginApi", nil)
	if err != nil {
		return err
	}
	req.Header.Set("AuthorizedClient", c.AuthorizedClient)
	req.Header.Set("ClientKey", c.ClientKey)
	req.Header.Set("ApiKey", c.ApiKey)
	req.Header.Set("ApiSecret", c.ApiSecret)

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK {
		return APIError{StatusCode: response.StatusCode, Body: string(body)}
	}

	var login loginResponse
	if err := json.Unmarshal(body, &login); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}
	c.accessToken = login.AccessToken
	c.expiresAt = login.ExpirationDate

	return nil
}

func (c *Client) ensureToken(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Until(c.expiresAt) > time.Minute {
		return nil
	}
	return c.login(ctx)
}

// GetBalance fetches the account's holdings grouped by instrument
// class.
func (c *Client) GetBalance(ctx context.Context) (*BalanceResponse, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, fmt.Errorf("failed to authenticate with ppi: %w", err)
	}

	url := fmt.Sprintf("%s/Account/Balance?accountNumber=%s", baseUrl, c.AccountNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	c.mu.Unlock()
	req.Header.Set("AuthorizedClient", c.AuthorizedClient)
	req.Header.Set("ClientKey", c.ClientKey)

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK {
		return nil, APIError{StatusCode: response.StatusCode, Body: string(body)}
	}

	var balance BalanceResponse
	if err := json.Unmarshal(body, &balance); err != nil {
		return nil, fmt.Errorf("failed to parse balance response: %w", err)
	}

	return &balance, nil
}
