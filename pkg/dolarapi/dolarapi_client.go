// Package dolarapi fetches the USD/ARS MEP rate from dolarapi.com.
package dolarapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const mepUrl = "https://dolarapi.com/v1/dolares/bolsa"

type Client struct {
	HttpClient *http.Client
}

type RateResponse struct {
	Casa               string    `json:"casa"`
	Nombre             string    `json:"nombre"`
	Compra             float64   `json:"compra"`
	Venta              float64   `json:"venta"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}

// GetMepRate fetches the current MEP (bolsa) quote.
func (c Client) GetMepRate(ctx context.Context) (*RateResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mepUrl, nil)
	if err != nil {
		return nil, err
	}

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
		return nil, fmt.Errorf("dolarapi: received status code %d: %s", response.StatusCode, string(body))
	}

	var rate RateResponse
	if err := json.Unmarshal(body, &rate); err != nil {
		return nil, fmt.Errorf("failed to parse rate response: %w", err)
	}

	return &rate, nil
}
