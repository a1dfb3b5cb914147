package stats

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"backtestcontrol/internal/models"
)

// Aggregate folds a list of completed runs into per-strategy stats.
// Failed runs count toward the run total but contribute no metrics.
func Aggregate(runs []models.BacktestRun) []models.StrategyStat {
	type bucket struct {
		runs      int
		succeeded int
		sumReturn float64
		sumWin    float64
		best      float64
	}

	buckets := make(map[string]*bucket)
	var order []string
	for _, run := range runs {
		b, ok := buckets[run.Strategy]
		if !ok {
			b = &bucket{}
			buckets[run.Strategy] = b
			order = append(order, run.Strategy)
		}
		b.runs++
		if run.Status != models.RunStatusSucceeded {
			continue
		}
		b.succeeded++
		b.sumReturn += run.TotalReturn
		b.sumWin += run.WinRate
		if b.succeeded == 1 || run.TotalReturn > b.best {
			b.best = run.TotalReturn
		}
	}

	out := make([]models.StrategyStat, 0, len(order))
	for _, name := range order {
		b := buckets[name]
		stat := models.StrategyStat{StrategyType: name, Runs: b.runs}
		if b.succeeded > 0 {
			stat.AvgReturn = b.sumReturn / float64(b.succeeded)
			stat.AvgWinRate = b.sumWin / float64(b.succeeded)
			stat.BestReturn = b.best
		}
		out = append(out, stat)
	}
	return out
}

// RecomputeAll rebuilds every StrategyStat row from the backtest_run table.
func RecomputeAll(db *gorm.DB) error {
	var runs []models.BacktestRun
	if err := db.Find(&runs).Error; err != nil {
		return err
	}

	for _, stat := range Aggregate(runs) {
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "strategy_type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"runs", "avg_return", "avg_win_rate", "best_return", "updated_at",
			}),
		}).Create(&stat).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// RecomputeStrategy rebuilds the stats row for a single canonical strategy.
// Used by the worker when a completed-run event arrives.
func RecomputeStrategy(db *gorm.DB, strategyType string) error {
	var runs []models.BacktestRun
	if err := db.Where("strategy = ?", strategyType).Find(&runs).Error; err != nil {
		return err
	}

	aggregated := Aggregate(runs)
	if len(aggregated) == 0 {
		return nil
	}
	stat := aggregated[0]
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "strategy_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"runs", "avg_return", "avg_win_rate", "best_return", "updated_at",
		}),
	}).Create(&stat).Error
}
