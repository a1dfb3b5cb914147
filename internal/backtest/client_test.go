package backtest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRunSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/backtest", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "meanReversion", payload["strategy"])

		json.NewEncoder(w).Encode(Response{
			Success: true,
			Data: &ResultData{
				Strategy:    "meanReversion",
				Symbols:     []string{"AAPL"},
				TotalReturn: 0.12,
				TotalTrades: 42,
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Run(context.Background(), &Request{
		Strategy: "meanReversion",
		Symbols:  []string{"AAPL"},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, 0.12, resp.Data.TotalReturn)
	assert.Equal(t, 42, resp.Data.TotalTrades)
}

func TestClientRunDomainFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Success: false, Error: "no price data for symbol XYZ"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Run(context.Background(), &Request{Strategy: "momentum", Symbols: []string{"XYZ"}})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "no price data for symbol XYZ", resp.Error)
}

func TestClientRunServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Run(context.Background(), &Request{Strategy: "rsi", Symbols: []string{"AAPL"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClientRunTransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.Run(context.Background(), &Request{Strategy: "rsi", Symbols: []string{"AAPL"}})
	require.Error(t, err)
}
