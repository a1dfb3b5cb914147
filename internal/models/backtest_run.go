package models

import (
	"encoding/json"
	"time"
)

// BacktestRun records one submission to the backtest engine: the exact
// outbound request, the raw response, and the headline metrics pulled out
// for aggregation.
type BacktestRun struct {
	ID                  uint            `gorm:"primarykey" json:"id"`
	Strategy            string          `gorm:"size:50;not null" json:"strategy"`
	Symbols             json.RawMessage `gorm:"type:jsonb" json:"symbols"`
	Request             json.RawMessage `gorm:"type:jsonb" json:"request"`
	Response            json.RawMessage `gorm:"type:jsonb" json:"response"`
	Status              string          `gorm:"size:20;not null" json:"status"`
	TotalReturn         float64         `json:"total_return"`
	FinalPortfolioValue float64         `json:"final_portfolio_value"`
	WinRate             float64         `json:"win_rate"`
	TotalTrades         int             `json:"total_trades"`
	MaxDrawdown         float64         `json:"max_drawdown"`
	CreatedAt           time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (BacktestRun) TableName() string {
	return "backtest_run"
}

// Run statuses.
const (
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)
