package backtest

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backtestcontrol/internal/strategy"
)

var testFields = FormFields{
	StartDate:      "2023-01-01",
	EndDate:        "2023-12-31",
	InitialCapital: 10000,
	SharesPerTrade: 100,
}

func userSelection() Selection {
	return Selection{
		Symbols: []string{"AAPL", "MSFT"},
		Strategy: &strategy.UnifiedStrategy{
			Kind:         strategy.KindUser,
			ID:           3,
			Name:         "Tuned MR",
			StrategyType: "meanReversion",
		},
		Parameters: map[string]any{"window": 20, "threshold": 0.05},
	}
}

func customSelection() Selection {
	return Selection{
		Symbols: []string{"AAPL"},
		Strategy: &strategy.UnifiedStrategy{
			Kind:           strategy.KindCustom,
			ID:             1,
			Name:           "Golden Cross Bot",
			BuyConditions:  json.RawMessage(`{"indicator":"sma","operator":"crosses_above","value":50}`),
			SellConditions: json.RawMessage(`{"indicator":"sma","operator":"crosses_below","value":50}`),
		},
	}
}

func TestBuildNoSymbols(t *testing.T) {
	// symbols win over every other failure mode
	cases := []Selection{
		{Symbols: nil},
		{Symbols: []string{}, Strategy: customSelection().Strategy},
		{Symbols: nil, Strategy: nil},
	}
	for _, sel := range cases {
		_, err := Build(sel, testFields)
		require.Error(t, err)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "NoSymbolsSelected", verr.Code)
	}
}

func TestBuildNoStrategy(t *testing.T) {
	_, err := Build(Selection{Symbols: []string{"AAPL"}}, testFields)
	require.ErrorIs(t, err, ErrNoStrategySelected)
}

func TestBuildUserStrategy(t *testing.T) {
	req, err := Build(userSelection(), testFields)
	require.NoError(t, err)

	// outbound strategy is the canonical identifier, not the display name
	assert.Equal(t, "meanReversion", req.Strategy)
	assert.Nil(t, req.CustomStrategy)

	encoded, err := json.Marshal(req)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(encoded, &payload))
	assert.Equal(t, "meanReversion", payload["strategy"])
	assert.Equal(t, float64(20), payload["window"])
	assert.Equal(t, float64(0.05), payload["threshold"])
	assert.NotContains(t, payload, "customStrategy")
}

func TestBuildNormalizesLegacyType(t *testing.T) {
	sel := userSelection()
	sel.Strategy.StrategyType = "MovingAverage"

	req, err := Build(sel, testFields)
	require.NoError(t, err)
	assert.Equal(t, "movingAverageCrossover", req.Strategy)
}

func TestBuildUnknownTypePassesThrough(t *testing.T) {
	sel := userSelection()
	sel.Strategy.StrategyType = "pairsTrading"

	req, err := Build(sel, testFields)
	require.NoError(t, err)
	assert.Equal(t, "pairsTrading", req.Strategy)
}

func TestBuildCustomStrategy(t *testing.T) {
	req, err := Build(customSelection(), testFields)
	require.NoError(t, err)

	assert.Equal(t, StrategyCustom, req.Strategy)
	require.NotNil(t, req.CustomStrategy)
	assert.Equal(t, uint(1), req.CustomStrategy.ID)

	encoded, err := json.Marshal(req)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(encoded, &payload))
	assert.Equal(t, "custom", payload["strategy"])
	assert.Equal(t, []any{"AAPL"}, payload["symbols"])
	assert.Equal(t, "2023-01-01", payload["startDate"])
	assert.Equal(t, "2023-12-31", payload["endDate"])
	assert.Equal(t, float64(10000), payload["initialCapital"])
	assert.Equal(t, float64(100), payload["sharesPerTrade"])

	custom, ok := payload["customStrategy"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), custom["id"])
	assert.Contains(t, custom, "buy_conditions")
	assert.Contains(t, custom, "sell_conditions")
}

func TestBuildCustomMissingConditions(t *testing.T) {
	sel := customSelection()
	sel.Strategy.SellConditions = nil
	_, err := Build(sel, testFields)
	require.ErrorIs(t, err, ErrCustomStrategyMissingConditions)

	sel = customSelection()
	sel.Strategy.BuyConditions = json.RawMessage(`null`)
	_, err = Build(sel, testFields)
	require.ErrorIs(t, err, ErrCustomStrategyMissingConditions)
}

func TestBuildInvalidVariant(t *testing.T) {
	sel := Selection{
		Symbols:  []string{"AAPL"},
		Strategy: &strategy.UnifiedStrategy{Kind: "ensemble"},
	}
	_, err := Build(sel, testFields)
	require.ErrorIs(t, err, ErrInvalidStrategyVariant)

	sel.Strategy = &strategy.UnifiedStrategy{}
	_, err = Build(sel, testFields)
	require.ErrorIs(t, err, ErrInvalidStrategyVariant)
}

func TestBuildRejectsReservedCustomName(t *testing.T) {
	// a stored strategy whose type is the reserved word "custom" has no
	// condition trees to send, so it must never produce strategy=="custom"
	// without a customStrategy block
	sel := userSelection()
	sel.Strategy.StrategyType = "custom"

	_, err := Build(sel, testFields)
	require.ErrorIs(t, err, ErrInvalidStrategyVariant)
}

func TestBuildParametersNeverShadowFixedFields(t *testing.T) {
	sel := userSelection()
	sel.Parameters = map[string]any{
		"strategy":       "hijacked",
		"initialCapital": 1,
		"window":         40,
	}

	req, err := Build(sel, testFields)
	require.NoError(t, err)

	encoded, err := json.Marshal(req)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(encoded, &payload))
	assert.Equal(t, "meanReversion", payload["strategy"])
	assert.Equal(t, float64(10000), payload["initialCapital"])
	assert.Equal(t, float64(40), payload["window"])
}

func TestBuildCustomConditionsNotSpreadTopLevel(t *testing.T) {
	sel := customSelection()
	sel.Parameters = sel.Strategy.ActiveParameters()

	req, err := Build(sel, testFields)
	require.NoError(t, err)

	encoded, err := json.Marshal(req)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(encoded, &payload))
	assert.NotContains(t, payload, "buy_conditions")
	assert.NotContains(t, payload, "sell_conditions")
	assert.Contains(t, payload, "customStrategy")
}
