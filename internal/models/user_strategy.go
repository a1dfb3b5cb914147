package models

import (
	"encoding/json"
	"time"
)

// UserStrategy is a strategy saved by a user: a named parametric strategy
// type plus the tuned configuration it was saved with.
type UserStrategy struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	Name            string          `gorm:"size:100;not null" json:"name"`
	Description     string          `gorm:"size:500" json:"description,omitempty"`
	StrategyType    string          `gorm:"size:50;not null" json:"strategy_type"`
	Config          json.RawMessage `gorm:"type:jsonb" json:"config"`
	BacktestResults json.RawMessage `gorm:"type:jsonb" json:"backtest_results,omitempty"`
	IsActive        bool            `gorm:"default:true" json:"is_active"`
	IsPublic        bool            `gorm:"default:false" json:"is_public"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (UserStrategy) TableName() string {
	return "user_strategy"
}
