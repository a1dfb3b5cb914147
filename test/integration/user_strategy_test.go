package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type UserStrategy struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	StrategyType string          `json:"strategy_type"`
	Config       json.RawMessage `json:"config"`
	IsActive     bool            `json:"is_active"`
	IsPublic     bool            `json:"is_public"`
}

func TestUserStrategyAPI(t *testing.T) {
	requireServer(t)

	var strategyID uint

	t.Run("Create User Strategy", func(t *testing.T) {
		payload, err := json.Marshal(map[string]any{
			"name":          "Integration MR",
			"description":   "created by integration test",
			"strategy_type": "MeanReversion",
			"config":        map[string]any{"window": 25, "threshold": 0.07},
		})
		require.NoError(t, err)

		resp, err := http.Post(BaseURL+"/user-strategies", "application/json", bytes.NewBuffer(payload))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var created UserStrategy
		err = json.NewDecoder(resp.Body).Decode(&created)
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		// legacy spelling is stored canonically
		assert.Equal(t, "meanReversion", created.StrategyType)
		assert.True(t, created.IsActive)

		strategyID = created.ID
	})

	t.Run("Get User Strategy", func(t *testing.T) {
		resp, err := http.Get(fmt.Sprintf("%s/user-strategies/%d", BaseURL, strategyID))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var record UserStrategy
		err = json.NewDecoder(resp.Body).Decode(&record)
		require.NoError(t, err)
		assert.Equal(t, "Integration MR", record.Name)
		assert.JSONEq(t, `{"window":25,"threshold":0.07}`, string(record.Config))
	})

	t.Run("Toggle User Strategy", func(t *testing.T) {
		resp, err := http.Post(fmt.Sprintf("%s/user-strategies/toggle/%d", BaseURL, strategyID), "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]any
		err = json.NewDecoder(resp.Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, false, result["is_active"])
	})

	t.Run("Unified Listing Contains Strategy", func(t *testing.T) {
		resp, err := http.Get(BaseURL + "/unified-strategies")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var entries []map[string]any
		err = json.NewDecoder(resp.Body).Decode(&entries)
		require.NoError(t, err)

		found := false
		for _, entry := range entries {
			if entry["type"] == "user" && entry["id"] == float64(strategyID) {
				found = true
				assert.Equal(t, "meanReversion", entry["strategy_type"])
			}
		}
		assert.True(t, found, "created strategy missing from unified listing")
	})

	t.Run("Save From Backtest", func(t *testing.T) {
		payload, err := json.Marshal(map[string]any{
			"name":          "Saved After Run",
			"strategy_type": "rsi",
			"config":        map[string]any{"period": 10},
			"backtest_results": map[string]any{
				"totalReturn": 0.12,
				"winRate":     0.6,
			},
		})
		require.NoError(t, err)

		resp, err := http.Post(BaseURL+"/user-strategies/save-from-backtest", "application/json", bytes.NewBuffer(payload))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Delete User Strategy", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/user-strategies/%d", BaseURL, strategyID), nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
