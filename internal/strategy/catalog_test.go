package strategy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogDescriptors(t *testing.T) {
	descriptors := Descriptors()
	require.Len(t, descriptors, len(catalogOrder))

	for _, d := range descriptors {
		assert.Equal(t, d.Name, Normalize(d.Name), "catalog keys must be canonical")
		assert.NotEmpty(t, d.Label)
		assert.NotEmpty(t, d.Parameters)
		assert.NotEmpty(t, d.Symbols)
	}
}

func TestCatalogDefaultsWithinBounds(t *testing.T) {
	for _, d := range Descriptors() {
		for name, def := range d.Parameters {
			if !def.HasDefault() {
				continue
			}
			v, ok := def.Default.(float64)
			if !ok {
				continue
			}
			if def.Min != nil {
				assert.GreaterOrEqual(t, v, *def.Min, "%s.%s", d.Name, name)
			}
			if def.Max != nil {
				assert.LessOrEqual(t, v, *def.Max, "%s.%s", d.Name, name)
			}
		}
	}
}

func TestDescribeAcceptsAliases(t *testing.T) {
	byCanonical, ok := Describe("movingAverageCrossover")
	require.True(t, ok)
	byAlias, ok := Describe("MovingAverage")
	require.True(t, ok)
	assert.Equal(t, byCanonical.Name, byAlias.Name)

	_, ok = Describe("pairsTrading")
	assert.False(t, ok)
}

func TestParamDefJSONRoundTrip(t *testing.T) {
	schema := ParameterSchema{
		"window":   number(20, 5, 200, 1, "lookback"),
		"holdDays": scalar(5),
	}

	encoded, err := json.Marshal(schema)
	require.NoError(t, err)

	// legacy shorthand marshals as the bare scalar
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &raw))
	assert.JSONEq(t, `5`, string(raw["holdDays"]))

	var decoded ParameterSchema
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.True(t, decoded["window"].HasDefault())
	assert.Equal(t, float64(20), decoded["window"].Default)
	assert.True(t, decoded["holdDays"].Legacy())
	assert.False(t, decoded["holdDays"].HasDefault())
}
