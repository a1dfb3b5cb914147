package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"backtestcontrol/internal/backtest"
	"backtestcontrol/internal/models"
	"backtestcontrol/internal/session"
	"backtestcontrol/internal/strategy"
	dbconfig "backtestcontrol/pkg/config"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Session is the process-wide wizard session. Initialized from main before
// the router starts serving.
var Session *session.Coordinator

// InitSession binds the session coordinator to a backtest runner.
func InitSession(runner session.Runner) {
	Session = session.New(runner)
}

// SessionSymbolsRequest represents the request body for replacing the
// selected symbols
type SessionSymbolsRequest struct {
	Symbols []string `json:"symbols" binding:"required"`
}

// SessionStrategyRequest selects a strategy for the session: a built-in by
// type, or a stored user/custom strategy by id.
type SessionStrategyRequest struct {
	Type         string `json:"type" binding:"required"`
	ID           uint   `json:"id"`
	StrategyType string `json:"strategy_type"`
}

// SessionParametersRequest represents the request body for merging
// parameter overrides
type SessionParametersRequest struct {
	Parameters map[string]any `json:"parameters" binding:"required"`
}

// SubmitBacktestRequest represents the test-window form fields
type SubmitBacktestRequest struct {
	StartDate      string  `json:"startDate" binding:"required"`
	EndDate        string  `json:"endDate" binding:"required"`
	InitialCapital float64 `json:"initialCapital" binding:"required,gt=0"`
	SharesPerTrade int     `json:"sharesPerTrade" binding:"required,gt=0"`
}

// GetSession returns the current wizard state
func GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, Session.Snapshot())
}

// UpdateSessionSymbols replaces the selected instruments
func UpdateSessionSymbols(c *gin.Context) {
	var request SessionSymbolsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	Session.SetSymbols(request.Symbols)
	c.JSON(http.StatusOK, Session.Snapshot())
}

// SelectSessionStrategy selects the strategy to configure
func SelectSessionStrategy(c *gin.Context) {
	var request SessionStrategyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	selected, err := resolveStrategySelection(request)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	Session.SelectStrategy(selected)
	c.JSON(http.StatusOK, Session.Snapshot())
}

func resolveStrategySelection(request SessionStrategyRequest) (*strategy.UnifiedStrategy, error) {
	switch request.Type {
	case "builtin":
		descriptor, ok := strategy.Describe(request.StrategyType)
		if !ok {
			return nil, errors.New("unknown built-in strategy")
		}
		return &strategy.UnifiedStrategy{
			Kind:         strategy.KindUser,
			Name:         descriptor.Label,
			StrategyType: descriptor.Name,
			IsActive:     descriptor.Enabled,
		}, nil
	case "user":
		var record models.UserStrategy
		if err := dbconfig.DB.First(&record, request.ID).Error; err != nil {
			return nil, errors.New("user strategy not found")
		}
		unified := strategy.Unify([]models.UserStrategy{record}, nil)
		return &unified[0], nil
	case "custom":
		var record models.CustomStrategy
		if err := dbconfig.DB.First(&record, request.ID).Error; err != nil {
			return nil, errors.New("custom strategy not found")
		}
		unified := strategy.Unify(nil, []models.CustomStrategy{record})
		return &unified[0], nil
	default:
		return nil, errors.New("unknown strategy selection type")
	}
}

// UpdateSessionParameters merges parameter overrides into the session
func UpdateSessionParameters(c *gin.Context) {
	var request SessionParametersRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	Session.SetParameters(request.Parameters)
	c.JSON(http.StatusOK, Session.Snapshot())
}

// SubmitBacktest builds and validates the execution request, runs it
// against the engine, records the run, and publishes a completion event.
func SubmitBacktest(c *gin.Context) {
	var request SubmitBacktestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := backtest.FormFields{
		StartDate:      request.StartDate,
		EndDate:        request.EndDate,
		InitialCapital: request.InitialCapital,
		SharesPerTrade: request.SharesPerTrade,
	}

	outcome, err := Session.Submit(c.Request.Context(), fields)
	if err != nil {
		var verr *backtest.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "code": verr.Code})
		case errors.Is(err, session.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Errorf("Backtest submission failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "backtest engine request failed"})
		}
		return
	}

	recordRun(outcome.Request, outcome.Response)
	c.JSON(http.StatusOK, outcome.Response)
}

// recordRun persists the request a submission actually sent along with the
// engine response, and notifies the stats worker.
func recordRun(req *backtest.Request, resp *backtest.Response) {
	status := models.RunStatusSucceeded
	if !resp.Success {
		status = models.RunStatusFailed
	}

	run := models.BacktestRun{
		Strategy: req.Strategy,
		Status:   status,
	}

	var err error
	if run.Symbols, err = json.Marshal(req.Symbols); err != nil {
		log.Errorf("Failed to encode run symbols: %v", err)
		return
	}
	if run.Request, err = json.Marshal(req); err != nil {
		log.Errorf("Failed to encode run request: %v", err)
		return
	}
	if run.Response, err = json.Marshal(resp); err != nil {
		log.Errorf("Failed to encode run response: %v", err)
		return
	}

	if resp.Data != nil {
		run.TotalReturn = resp.Data.TotalReturn
		run.FinalPortfolioValue = resp.Data.FinalPortfolioValue
		run.WinRate = resp.Data.WinRate
		run.TotalTrades = resp.Data.TotalTrades
		run.MaxDrawdown = resp.Data.MaxDrawdown
	}

	if err := dbconfig.DB.Create(&run).Error; err != nil {
		log.Errorf("Failed to record backtest run: %v", err)
		return
	}

	publishRunCompleted(run)
}

func publishRunCompleted(run models.BacktestRun) {
	if dbconfig.RabbitMQ == nil {
		return
	}

	publisher, err := dbconfig.NewPublisher()
	if err != nil {
		log.Errorf("Failed to create publisher: %v", err)
		return
	}
	defer publisher.Close()

	event := backtest.RunCompletedEvent{
		RunID:       run.ID,
		Strategy:    run.Strategy,
		Status:      run.Status,
		TotalReturn: run.TotalReturn,
		WinRate:     run.WinRate,
		TotalTrades: run.TotalTrades,
		MaxDrawdown: run.MaxDrawdown,
	}
	if err := publisher.Publish(backtest.ResultsQueue, event); err != nil {
		log.Errorf("Failed to publish run completed event: %v", err)
	}
}
