package backtest

import "encoding/json"

// StrategyCustom is the literal identifier the engine expects for
// condition-based strategies.
const StrategyCustom = "custom"

// CustomStrategyPayload rides on a request when the selected strategy is
// condition-based. The condition trees are forwarded opaquely.
type CustomStrategyPayload struct {
	ID             uint            `json:"id"`
	BuyConditions  json.RawMessage `json:"buy_conditions"`
	SellConditions json.RawMessage `json:"sell_conditions"`
}

// Request is the single outbound execution request for the backtest engine.
// Strategy-specific parameters are marshaled as top-level siblings of the
// fixed fields. Built once per submission, never mutated after being sent.
type Request struct {
	Strategy       string
	Symbols        []string
	StartDate      string
	EndDate        string
	InitialCapital float64
	SharesPerTrade int
	CustomStrategy *CustomStrategyPayload
	Parameters     map[string]any
}

// reserved are the fixed request fields that a parameter may never shadow.
var reserved = map[string]bool{
	"strategy":       true,
	"symbols":        true,
	"startDate":      true,
	"endDate":        true,
	"initialCapital": true,
	"sharesPerTrade": true,
	"customStrategy": true,
}

func (r Request) MarshalJSON() ([]byte, error) {
	payload := map[string]any{
		"strategy":       r.Strategy,
		"symbols":        r.Symbols,
		"startDate":      r.StartDate,
		"endDate":        r.EndDate,
		"initialCapital": r.InitialCapital,
		"sharesPerTrade": r.SharesPerTrade,
	}
	if r.CustomStrategy != nil {
		payload["customStrategy"] = r.CustomStrategy
	}
	for name, value := range r.Parameters {
		if reserved[name] {
			continue
		}
		// condition trees travel inside customStrategy, not as loose fields
		if r.CustomStrategy != nil && (name == "buy_conditions" || name == "sell_conditions") {
			continue
		}
		payload[name] = value
	}
	return json.Marshal(payload)
}

// SymbolResult is the per-symbol slice of an engine response.
type SymbolResult struct {
	Symbol              string  `json:"symbol"`
	TotalReturn         float64 `json:"totalReturn"`
	FinalPortfolioValue float64 `json:"finalPortfolioValue"`
	WinRate             float64 `json:"winRate"`
	TotalTrades         int     `json:"totalTrades"`
	MaxDrawdown         float64 `json:"maxDrawdown"`
}

// ResultData is the aggregate payload of a successful engine response.
type ResultData struct {
	Strategy            string         `json:"strategy"`
	Symbols             []string       `json:"symbols"`
	Results             []SymbolResult `json:"results"`
	TotalReturn         float64        `json:"totalReturn"`
	FinalPortfolioValue float64        `json:"finalPortfolioValue"`
	WinRate             float64        `json:"winRate"`
	TotalTrades         int            `json:"totalTrades"`
	MaxDrawdown         float64        `json:"maxDrawdown"`
}

// Response is the engine's answer to a submission. A domain failure comes
// back as Success=false with the engine's message in Error.
type Response struct {
	Success bool        `json:"success"`
	Data    *ResultData `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
