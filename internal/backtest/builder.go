package backtest

import (
	"backtestcontrol/internal/strategy"
)

// ValidationError is a precondition failure detected before any network
// call. The code is stable and machine-readable; the message is what a
// user sees.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrNoSymbolsSelected = &ValidationError{
		Code:    "NoSymbolsSelected",
		Message: "select at least one symbol before running a backtest",
	}
	ErrNoStrategySelected = &ValidationError{
		Code:    "NoStrategySelected",
		Message: "select a strategy before running a backtest",
	}
	ErrCustomStrategyMissingConditions = &ValidationError{
		Code:    "CustomStrategyMissingConditions",
		Message: "custom strategy is missing buy or sell conditions",
	}
	ErrInvalidStrategyVariant = &ValidationError{
		Code:    "InvalidStrategyVariant",
		Message: "selected strategy has an unrecognized variant",
	}
)

// Selection is what the wizard has accumulated when the user hits run.
type Selection struct {
	Symbols    []string
	Strategy   *strategy.UnifiedStrategy
	Parameters map[string]any
}

// FormFields are the test-window inputs from the submission form.
type FormFields struct {
	StartDate      string
	EndDate        string
	InitialCapital float64
	SharesPerTrade int
}

// Build assembles the outbound execution request. Validation runs in order
// and short-circuits on the first failure. On success exactly one of two
// shapes holds: strategy=="custom" with a customStrategy block, or a named
// strategy with no customStrategy block.
func Build(sel Selection, fields FormFields) (*Request, error) {
	if len(sel.Symbols) == 0 {
		return nil, ErrNoSymbolsSelected
	}
	if sel.Strategy == nil {
		return nil, ErrNoStrategySelected
	}

	req := &Request{
		Symbols:        sel.Symbols,
		StartDate:      fields.StartDate,
		EndDate:        fields.EndDate,
		InitialCapital: fields.InitialCapital,
		SharesPerTrade: fields.SharesPerTrade,
		Parameters:     sel.Parameters,
	}

	switch sel.Strategy.Kind {
	case strategy.KindUser:
		// the canonical trading-strategy identifier, never the display name
		name := strategy.Normalize(sel.Strategy.StrategyType)
		if name == StrategyCustom {
			// "custom" is reserved for the condition-tree variant; a stored
			// strategy carrying it has no conditions to send
			return nil, ErrInvalidStrategyVariant
		}
		req.Strategy = name
	case strategy.KindCustom:
		if !sel.Strategy.HasConditions() {
			return nil, ErrCustomStrategyMissingConditions
		}
		req.Strategy = StrategyCustom
		req.CustomStrategy = &CustomStrategyPayload{
			ID:             sel.Strategy.ID,
			BuyConditions:  sel.Strategy.BuyConditions,
			SellConditions: sel.Strategy.SellConditions,
		}
	default:
		return nil, ErrInvalidStrategyVariant
	}

	return req, nil
}
