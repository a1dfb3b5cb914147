package models

import (
	"encoding/json"
	"time"
)

// CustomStrategy is a condition-based strategy. The buy/sell condition trees
// are nested indicator expressions; this service stores and forwards them
// opaquely, only the backtest engine interprets them.
type CustomStrategy struct {
	ID             uint            `gorm:"primarykey" json:"id"`
	Name           string          `gorm:"size:100;not null" json:"name"`
	Description    string          `gorm:"size:500" json:"description,omitempty"`
	BuyConditions  json.RawMessage `gorm:"type:jsonb;not null" json:"buy_conditions"`
	SellConditions json.RawMessage `gorm:"type:jsonb;not null" json:"sell_conditions"`
	IsActive       bool            `gorm:"default:true" json:"is_active"`
	IsPublic       bool            `gorm:"default:false" json:"is_public"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (CustomStrategy) TableName() string {
	return "custom_strategy"
}
