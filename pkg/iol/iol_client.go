// Package iol is a thin client for the InvertirOnline (IOL) v2 API.
// It handles the OAuth password grant and transparently refreshes the
// bearer token once on a 401 before giving up.
package iol

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultBaseUrl = "https://api.invertironline.com"

type APIError struct {
	StatusCode int
	Body       string
}

func (e APIError) Error() string {
	return fmt.Sprintf("iol: received status code %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	HttpClient *http.Client
	Username   string
	Password   string

	baseUrl string

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

func NewClient(httpClient *http.Client, username, password string) *Client {
	return &Client{
		HttpClient: httpClient,
		Username:   username,
		Password:   password,
		baseUrl:    defaultBaseUrl,
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// InstrumentTitle is the nested security descriptor on a position.
type InstrumentTitle struct {
	Simbolo     string `json:"simbolo"`
	Descripcion string `json:"descripcion"`
	Pais        string `json:"pais"`
	Mercado     string `json:"mercado"`
	Tipo        string `json:"tipo"`
	Moneda      string `json:"moneda"`
}

// Position is one row of the portafolio response, kept in the
// provider's own vocabulary. Mapping to the canonical shape happens
// outside this package.
type Position struct {
	Cantidad           float64         `json:"cantidad"`
	Comprometido       float64         `json:"comprometido"`
	UltimoPrecio       float64         `json:"ultimoPrecio"`
	Ppc                float64         `json:"ppc"`
	GananciaPorcentaje float64         `json:"gananciaPorcentaje"`
	GananciaDinero     float64         `json:"gananciaDinero"`
	Valorizado         float64         `json:"valorizado"`
	VariacionDiaria    float64         `json:"variacionDiaria"`
	Titulo             InstrumentTitle `json:"titulo"`
}

type PortfolioResponse struct {
	Pais    string     `json:"pais"`
	Activos []Position `json:"activos"`
}

func (c *Client) authenticate(ctx context.Context, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseUrl+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

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

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}
	c.accessToken = token.AccessToken
	c.refreshToken = token.RefreshToken
	c.expiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	return nil
}

// ensureToken logs in with the password grant on first use and
// refreshes when the current token is within a minute of expiry.
func (c *Client) ensureToken(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Until(c.expiresAt) > time.Minute {
		return nil
	}

	if c.refreshToken != "" {
		err := c.authenticate(ctx, url.Values{
			"grant_type":    {"refresh_token"},
			"refresh_token": {c.refreshToken},
		})
		if err == nil {
			return nil
		}
	}

	return c.authenticate(ctx, url.Values{
		"grant_type": {"password"},
		"username":   {c.Username},
		"password":   {c.Password},
	})
}

// reauthenticate re-runs the password grant unconditionally. Used when
// the server rejects a token we still believed to be valid.
func (c *Client) reauthenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.authenticate(ctx, url.Values{
		"grant_type": {"password"},
		"username":   {c.Username},
		"password":   {c.Password},
	})
}

// GetPortfolio fetches the argentina portfolio for the authenticated
// account. A 401 on a token we thought was live means it was revoked
// server-side; re-authenticate once and retry before giving up.
func (c *Client) GetPortfolio(ctx context.Context) (*PortfolioResponse, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, fmt.Errorf("failed to authenticate with iol: %w", err)
	}

	portfolio, err := c.fetchPortfolio(ctx)
	var apiErr APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		if authErr := c.reauthenticate(ctx); authErr != nil {
			return nil, fmt.Errorf("failed to authenticate with iol: %w", authErr)
		}
		return c.fetchPortfolio(ctx)
	}
	return portfolio, err
}

func (c *Client) fetchPortfolio(ctx context.Context) (*PortfolioResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseUrl+"/api/v2/portafolio/argentina", nil)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	c.mu.Unlock()

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

	var portfolio PortfolioResponse
	if err := json.Unmarshal(body, &portfolio); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio response: %w", err)
	}

	return &portfolio, nil
}
