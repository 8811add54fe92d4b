// Package binance is a thin client for the Binance spot REST API,
// covering signed account endpoints (balances) and public ticker
// prices. Requests are signed with HMAC-SHA256 over the query string.
package binance

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const baseUrl = "https://api.binance.com"

type APIError struct {
	StatusCode int
	Body       string
}

func (e APIError) Error() string {
	return fmt.Sprintf("binance: received status code %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	HttpClient *http.Client
	ApiKey     string
	ApiSecret  string
}

func NewClient(httpClient *http.Client, apiKey, apiSecret string) *Client {
	return &Client{
		HttpClient: httpClient,
		ApiKey:     apiKey,
		ApiSecret:  apiSecret,
	}
}

// Balance is one asset row from the account endpoint. Free and Locked
// arrive as decimal strings; parsing happens at the mapping layer.
type Balance struct {
	Asset  string `json:"asset"`
	Free   string `json:"free"`
	Locked string `json:"locked"`
}

type AccountResponse struct {
	Balances []Balance `json:"balances"`
}

type TickerPrice struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

func (c Client) sign(query string) string {
	mac := hmac.New(sha256.New, []byte(c.ApiSecret))
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}

// GetAccount fetches spot balances, including units locked in open
// orders.
func (c Client) GetAccount(ctx context.Context) (*AccountResponse, error) {
	params := url.Values{}
	params.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
	params.Set("recvWindow", "5000")
	query := params.Encode()
	query += "&signature=" + c.sign(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseUrl+"/api/v3/account?"+query, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-MBX-APIKEY", c.ApiKey)

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

	var account AccountResponse
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("failed to parse account response: %w", err)
	}

	return &account, nil
}

// GetPrices fetches spot prices for the given trading pair symbols
// (e.g. BTCUSDT). Symbols unknown to the exchange fail the whole
// request, so callers should only pass pairs they have balances for.
func (c Client) GetPrices(ctx context.Context, symbols []string) ([]TickerPrice, error) {
	if len(symbols) == 0 {
		return []TickerPrice{}, nil
	}

	quoted := make([]string, 0, len(symbols))
	for _, s := range symbols {
		quoted = append(quoted, fmt.Sprintf("%q", strings.ToUpper(s)))
	}
	params := url.Values{}
	params.Set("symbols", "["+strings.Join(quoted, ",")+"]")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseUrl+"/api/v3/ticker/price?"+params.Encode(), nil)
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
		return nil, APIError{StatusCode: response.StatusCode, Body: string(body)}
	}

	var prices []TickerPrice
	if err := json.Unmarshal(body, &prices); err != nil {
		return nil, fmt.Errorf("failed to parse ticker response: %w", err)
	}

	return prices, nil
}
