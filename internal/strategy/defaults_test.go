package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaultsKnownStrategy(t *testing.T) {
	defaults := ResolveDefaults("meanReversion")

	assert.Equal(t, float64(20), defaults["window"])
	assert.Equal(t, float64(0.05), defaults["threshold"])
	assert.Equal(t, true, defaults["exitOnCross"])
}

func TestResolveDefaultsNormalizesName(t *testing.T) {
	assert.Equal(t, ResolveDefaults("movingAverageCrossover"), ResolveDefaults("MovingAverage"))
}

func TestResolveDefaultsUnknownStrategy(t *testing.T) {
	defaults := ResolveDefaults("pairsTrading")
	require.NotNil(t, defaults)
	assert.Empty(t, defaults)
}

func TestResolveDefaultsSkipsLegacyShorthand(t *testing.T) {
	defaults := ResolveDefaults("momentum")

	// holdDays is a legacy scalar definition with no declared default
	_, ok := defaults["holdDays"]
	assert.False(t, ok)
	assert.Equal(t, float64(14), defaults["lookback"])
}
