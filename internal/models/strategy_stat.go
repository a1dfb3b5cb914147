package models

import "time"

// StrategyStat aggregates completed backtest runs per canonical strategy
// identifier. Rewritten by the worker and the scheduler, read-only for the API.
type StrategyStat struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	StrategyType string    `gorm:"size:50;not null;uniqueIndex" json:"strategy_type"`
	Runs         int       `gorm:"default:0" json:"runs"`
	AvgReturn    float64   `json:"avg_return"`
	AvgWinRate   float64   `json:"avg_win_rate"`
	BestReturn   float64   `json:"best_return"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (StrategyStat) TableName() string {
	return "strategy_stat"
}
