package backtest

// ResultsQueue is the queue completed-run events are published to.
const ResultsQueue = "backtest_results"

// RunCompletedEvent is published after every submission that reached the
// engine, success or not. The worker folds these into per-strategy stats.
type RunCompletedEvent struct {
	RunID       uint    `json:"run_id"`
	Strategy    string  `json:"strategy"`
	Status      string  `json:"status"`
	TotalReturn float64 `json:"total_return"`
	WinRate     float64 `json:"win_rate"`
	TotalTrades int     `json:"total_trades"`
	MaxDrawdown float64 `json:"max_drawdown"`
}
