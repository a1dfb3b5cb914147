package strategy

// Canonical strategy identifiers. Every alias in canonicalNames resolves to
// one of these; unknown names pass through untouched so a newer catalog
// entry does not break older clients.
const (
	MeanReversion          = "meanReversion"
	MovingAverageCrossover = "movingAverageCrossover"
	Momentum               = "momentum"
	RSI                    = "rsi"
	Breakout               = "breakout"
)

// canonicalNames maps every known spelling, current and legacy, to its
// canonical identifier. Built once, never mutated.
var canonicalNames = map[string]string{
	"meanReversion":          MeanReversion,
	"MeanReversion":          MeanReversion,
	"movingAverage":          MovingAverageCrossover,
	"MovingAverage":          MovingAverageCrossover,
	"movingAverageCrossover": MovingAverageCrossover,
	"MovingAverageCrossover": MovingAverageCrossover,
	"momentum":               Momentum,
	"Momentum":               Momentum,
	"rsi":                    RSI,
	"RSI":                    RSI,
	"breakout":               Breakout,
	"Breakout":               Breakout,
}

var displayLabels = map[string]string{
	MeanReversion:          "Mean Reversion",
	MovingAverageCrossover: "Moving Average Crossover",
	Momentum:               "Momentum",
	RSI:                    "RSI",
	Breakout:               "Breakout",
}

// Normalize resolves a raw strategy name to its canonical identifier.
// Unknown names are returned unchanged.
func Normalize(raw string) string {
	if canonical, ok := canonicalNames[raw]; ok {
		return canonical
	}
	return raw
}

// Label returns the human-readable name for a strategy. Unknown names fall
// back to the raw input.
func Label(raw string) string {
	if label, ok := displayLabels[Normalize(raw)]; ok {
		return label
	}
	return raw
}
