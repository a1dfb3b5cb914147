package strategy

import (
	"bytes"
	"encoding/json"
)

// ParamDef describes one tunable input of a built-in strategy. A definition
// is either structured (type, default, bounds) or a legacy bare scalar that
// carries no declared default.
type ParamDef struct {
	Type        string   `json:"type,omitempty"`
	Default     any      `json:"default,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Step        *float64 `json:"step,omitempty"`
	Description string   `json:"description,omitempty"`

	legacy bool
	raw    any
}

// HasDefault reports whether the definition declares a default value.
// Legacy scalar definitions never do.
func (d ParamDef) HasDefault() bool {
	return !d.legacy && d.Default != nil
}

// Legacy reports whether the definition is the bare-scalar shorthand.
func (d ParamDef) Legacy() bool {
	return d.legacy
}

func (d ParamDef) MarshalJSON() ([]byte, error) {
	if d.legacy {
		return json.Marshal(d.raw)
	}
	type plain ParamDef
	return json.Marshal(plain(d))
}

func (d *ParamDef) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		type plain ParamDef
		var p plain
		if err := json.Unmarshal(b, &p); err != nil {
			return err
		}
		*d = ParamDef(p)
		return nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = ParamDef{legacy: true, raw: v}
	return nil
}

// ParameterSchema maps parameter names to their definitions.
type ParameterSchema map[string]ParamDef

// Descriptor is the catalog entry for one built-in parametric strategy.
type Descriptor struct {
	Name        string          `json:"name"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Parameters  ParameterSchema `json:"parameters"`
	Enabled     bool            `json:"enabled"`
	Symbols     []string        `json:"symbols"`
}

func number(def, min, max, step float64, desc string) ParamDef {
	return ParamDef{Type: "number", Default: def, Min: &min, Max: &max, Step: &step, Description: desc}
}

func boolean(def bool, desc string) ParamDef {
	return ParamDef{Type: "boolean", Default: def, Description: desc}
}

func scalar(v any) ParamDef {
	return ParamDef{legacy: true, raw: v}
}

var defaultSymbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}

// builtins is the static catalog, keyed by canonical strategy name.
// Reference data only; never mutated after init.
var builtins = map[string]Descriptor{
	MeanReversion: {
		Name:        MeanReversion,
		Label:       Label(MeanReversion),
		Description: "Buys dips below a rolling mean and sells reversions above it.",
		Enabled:     true,
		Symbols:     defaultSymbols,
		Parameters: ParameterSchema{
			"window":    number(20, 5, 200, 1, "Rolling mean lookback in trading days"),
			"threshold": number(0.05, 0.01, 0.2, 0.01, "Deviation from the mean that triggers a trade"),
			"exitOnCross": boolean(true,
				"Close the position as soon as price crosses back through the mean"),
		},
	},
	MovingAverageCrossover: {
		Name:        MovingAverageCrossover,
		Label:       Label(MovingAverageCrossover),
		Description: "Trades golden/death crosses of two moving averages.",
		Enabled:     true,
		Symbols:     defaultSymbols,
		Parameters: ParameterSchema{
			"shortWindow": number(10, 2, 100, 1, "Fast moving average window"),
			"longWindow":  number(50, 10, 400, 1, "Slow moving average window"),
		},
	},
	Momentum: {
		Name:        Momentum,
		Label:       Label(Momentum),
		Description: "Follows recent price momentum over a fixed lookback.",
		Enabled:     true,
		Symbols:     defaultSymbols,
		Parameters: ParameterSchema{
			"lookback":  number(14, 2, 120, 1, "Momentum lookback in trading days"),
			"threshold": number(0.02, 0.005, 0.1, 0.005, "Minimum return over the lookback to enter"),
			// legacy shorthand kept from the first catalog revision
			"holdDays": scalar(5),
		},
	},
	RSI: {
		Name:        RSI,
		Label:       Label(RSI),
		Description: "Relative strength index oscillator with oversold/overbought bands.",
		Enabled:     true,
		Symbols:     defaultSymbols,
		Parameters: ParameterSchema{
			"period":     number(14, 2, 60, 1, "RSI period"),
			"oversold":   number(30, 5, 50, 1, "Buy when RSI drops below this level"),
			"overbought": number(70, 50, 95, 1, "Sell when RSI rises above this level"),
		},
	},
	Breakout: {
		Name:        Breakout,
		Label:       Label(Breakout),
		Description: "Enters on breakouts above the rolling high of a channel.",
		Enabled:     true,
		Symbols:     defaultSymbols,
		Parameters: ParameterSchema{
			"window":     number(20, 5, 200, 1, "Channel lookback in trading days"),
			"multiplier": number(1.0, 0.5, 3, 0.1, "Channel width multiplier"),
		},
	},
}

// catalogOrder fixes the order in which descriptors are listed.
var catalogOrder = []string{MeanReversion, MovingAverageCrossover, Momentum, RSI, Breakout}

// Lookup returns the parameter schema for a canonical strategy name.
func Lookup(name string) (ParameterSchema, bool) {
	d, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return d.Parameters, true
}

// Describe returns the full catalog entry for a strategy name, accepting
// any known alias.
func Describe(name string) (Descriptor, bool) {
	d, ok := builtins[Normalize(name)]
	return d, ok
}

// Descriptors lists all built-in strategies in catalog order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(catalogOrder))
	for _, name := range catalogOrder {
		out = append(out, builtins[name])
	}
	return out
}
