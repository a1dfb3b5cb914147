package strategy

import (
	"bytes"
	"encoding/json"

	"backtestcontrol/internal/models"
)

// Kind tags the variant of a UnifiedStrategy.
type Kind string

const (
	KindUser   Kind = "user"
	KindCustom Kind = "custom"
)

// UnifiedStrategy is the single polymorphic representation of a selectable
// strategy, regardless of which store it came from. Consumers switch on
// Kind; only the fields of the active variant are populated.
type UnifiedStrategy struct {
	Kind        Kind   `json:"type"`
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	IsPublic    bool   `json:"is_public"`

	// user variant
	StrategyType string          `json:"strategy_type,omitempty"`
	Config       json.RawMessage `json:"config,omitempty"`

	// custom variant
	BuyConditions  json.RawMessage `json:"buy_conditions,omitempty"`
	SellConditions json.RawMessage `json:"sell_conditions,omitempty"`

	// Original points back at the untouched source record. Lookup only,
	// never written through.
	Original any `json:"-"`
}

// Unify merges user-saved and custom strategies into the unified model.
// Output order is the concatenation of the inputs in source order, users
// first. Input records are never mutated.
func Unify(users []models.UserStrategy, customs []models.CustomStrategy) []UnifiedStrategy {
	out := make([]UnifiedStrategy, 0, len(users)+len(customs))
	for i := range users {
		u := &users[i]
		out = append(out, UnifiedStrategy{
			Kind:         KindUser,
			ID:           u.ID,
			Name:         u.Name,
			Description:  u.Description,
			IsActive:     u.IsActive,
			IsPublic:     u.IsPublic,
			StrategyType: u.StrategyType,
			Config:       u.Config,
			Original:     u,
		})
	}
	for i := range customs {
		c := &customs[i]
		out = append(out, UnifiedStrategy{
			Kind:           KindCustom,
			ID:             c.ID,
			Name:           c.Name,
			Description:    c.Description,
			IsActive:       c.IsActive,
			IsPublic:       c.IsPublic,
			BuyConditions:  c.BuyConditions,
			SellConditions: c.SellConditions,
			Original:       c,
		})
	}
	return out
}

// HasConditions reports whether both condition trees of a custom strategy
// are present and non-null.
func (s UnifiedStrategy) HasConditions() bool {
	return jsonPresent(s.BuyConditions) && jsonPresent(s.SellConditions)
}

func jsonPresent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// ActiveParameters determines the parameter set that configuring this
// strategy starts from:
//   - a user strategy with a saved config uses that config verbatim
//   - a custom strategy carries its condition trees as opaque parameters
//   - a user strategy without a config falls back to the schema defaults
//     for its strategy type
func (s UnifiedStrategy) ActiveParameters() map[string]any {
	switch s.Kind {
	case KindCustom:
		return map[string]any{
			"buy_conditions":  s.BuyConditions,
			"sell_conditions": s.SellConditions,
		}
	case KindUser:
		if jsonPresent(s.Config) {
			var params map[string]any
			if err := json.Unmarshal(s.Config, &params); err == nil && len(params) > 0 {
				return params
			}
		}
		return ResolveDefaults(s.StrategyType)
	}
	return map[string]any{}
}
