package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestSessionAPI(t *testing.T) {
	requireServer(t)

	t.Run("Initial State", func(t *testing.T) {
		resp, err := http.Get(BaseURL + "/session")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Select Symbols And Builtin Strategy", func(t *testing.T) {
		resp := putJSON(t, BaseURL+"/session/symbols", map[string]any{"symbols": []string{"AAPL"}})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp = putJSON(t, BaseURL+"/session/strategy", map[string]any{
			"type":          "builtin",
			"strategy_type": "MeanReversion",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var state map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))

		params, ok := state["parameters"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(20), params["window"])
	})

	t.Run("Submit Without Symbols Fails Validation", func(t *testing.T) {
		resp := putJSON(t, BaseURL+"/session/symbols", map[string]any{"symbols": []string{}})
		resp.Body.Close()

		payload, err := json.Marshal(map[string]any{
			"startDate":      "2023-01-01",
			"endDate":        "2023-12-31",
			"initialCapital": 10000,
			"sharesPerTrade": 100,
		})
		require.NoError(t, err)

		submitResp, err := http.Post(BaseURL+"/session/submit", "application/json", bytes.NewBuffer(payload))
		require.NoError(t, err)
		defer submitResp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, submitResp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(submitResp.Body).Decode(&body))
		assert.Equal(t, "NoSymbolsSelected", body["code"])
	})
}
