package iol

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(server.Client(), "user", "pass")
	client.baseUrl = server.URL
	return client
}

func TestGetPortfolioRetriesOnRevokedToken(t *testing.T) {
	tokenCalls := 0
	portfolioCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		w.Write([]byte(`{"access_token":"tok","refresh_token":"ref","expires_in":900}`))
	})
	mux.HandleFunc("/api/v2/portafolio/argentina", func(w http.ResponseWriter, r *http.Request) {
		portfolioCalls++
		// first call hits a token revoked server-side
		if portfolioCalls == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"pais":"argentina","activos":[{"cantidad":10,"titulo":{"simbolo":"GGAL"}}]}`))
	})

	client := newTestClient(t, mux)

	portfolio, err := client.GetPortfolio(context.Background())
	require.NoError(t, err)
	require.Len(t, portfolio.Activos, 1)
	require.Equal(t, "GGAL", portfolio.Activos[0].Titulo.Simbolo)

	// initial password grant plus one re-authentication
	require.Equal(t, 2, tokenCalls)
	require.Equal(t, 2, portfolioCalls)
}

func TestGetPortfolioGivesUpAfterOneRetry(t *testing.T) {
	portfolioCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"tok","refresh_token":"ref","expires_in":900}`))
	})
	mux.HandleFunc("/api/v2/portafolio/argentina", func(w http.ResponseWriter, r *http.Request) {
		portfolioCalls++
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := newTestClient(t, mux)

	_, err := client.GetPortfolio(context.Background())
	var apiErr APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, 2, portfolioCalls)
}

func TestGetPortfolioReusesLiveToken(t *testing.T) {
	tokenCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		w.Write([]byte(`{"access_token":"tok","refresh_token":"ref","expires_in":900}`))
	})
	mux.HandleFunc("/api/v2/portafolio/argentina", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pais":"argentina","activos":[]}`))
	})

	client := newTestClient(t, mux)

	_, err := client.GetPortfolio(context.Background())
	require.NoError(t, err)
	_, err = client.GetPortfolio(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, tokenCalls)
}
