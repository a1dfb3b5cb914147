package session

import (
	"context"
	"errors"
	"sync"

	"backtestcontrol/internal/backtest"
	"backtestcontrol/internal/strategy"
)

// Status is the submission state of the wizard session.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// ErrSubmissionInFlight is returned when a submit arrives while a previous
// submission is still running. One in-flight request per session.
var ErrSubmissionInFlight = errors.New("a backtest submission is already in flight")

// Runner executes a built request against the backtest engine.
type Runner interface {
	Run(ctx context.Context, req *backtest.Request) (*backtest.Response, error)
}

// State is a read-only snapshot of the session for display collaborators.
type State struct {
	Symbols    []string                  `json:"symbols"`
	Strategy   *strategy.UnifiedStrategy `json:"strategy"`
	Parameters map[string]any            `json:"parameters"`
	Status     Status                    `json:"status"`
}

// Coordinator holds one wizard session: selected symbols, selected strategy,
// parameter overrides, and submission status. All mutation happens in
// response to discrete user actions; the only asynchronous boundary is the
// outbound execution request.
type Coordinator struct {
	runner Runner

	mu          sync.Mutex
	symbols     []string
	strategy    *strategy.UnifiedStrategy
	parameters  map[string]any
	status      Status
	subscribers []chan Status
}

// New creates an idle session bound to the given runner.
func New(runner Runner) *Coordinator {
	return &Coordinator{
		runner:     runner,
		parameters: make(map[string]any),
		status:     StatusIdle,
	}
}

// Snapshot returns the current session state.
func (c *Coordinator) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	symbols := make([]string, len(c.symbols))
	copy(symbols, c.symbols)
	params := make(map[string]any, len(c.parameters))
	for k, v := range c.parameters {
		params[k] = v
	}
	return State{
		Symbols:    symbols,
		Strategy:   c.strategy,
		Parameters: params,
		Status:     c.status,
	}
}

// SetSymbols replaces the selected instruments.
func (c *Coordinator) SetSymbols(symbols []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.symbols = append([]string(nil), symbols...)
	c.resetTerminalLocked()
}

// SelectStrategy replaces the selected strategy and resets parameters to the
// new strategy's starting set: a saved config verbatim, or resolved schema
// defaults. Re-selecting the same strategy is a no-op so edited parameters
// survive.
func (c *Coordinator) SelectStrategy(s *strategy.UnifiedStrategy) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sameStrategy(c.strategy, s) {
		return
	}

	c.strategy = s
	if s == nil {
		c.parameters = make(map[string]any)
	} else {
		c.parameters = s.ActiveParameters()
	}
	c.resetTerminalLocked()
}

func sameStrategy(a, b *strategy.UnifiedStrategy) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Kind == b.Kind && a.ID == b.ID && a.StrategyType == b.StrategyType
}

// SetParameters merges parameter overrides into the active set.
func (c *Coordinator) SetParameters(params map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, value := range params {
		c.parameters[name] = value
	}
	c.resetTerminalLocked()
}

// resetTerminalLocked moves a finished session back to idle on any
// state-affecting edit.
func (c *Coordinator) resetTerminalLocked() {
	if c.status == StatusSucceeded || c.status == StatusFailed {
		c.setStatusLocked(StatusIdle)
	}
}

// Outcome pairs the request a submission actually sent with the engine's
// response, so callers record exactly what ran even if the session is
// edited while the request is in flight.
type Outcome struct {
	Request  *backtest.Request
	Response *backtest.Response
}

// Submit builds, validates, and executes the backtest request. The request
// is constructed exactly once, from the session state at submit time. A
// non-nil ValidationError or transport error moves the session to failed,
// as does an engine response with Success=false. A second submit while one
// is in flight is refused without touching session state.
func (c *Coordinator) Submit(ctx context.Context, fields backtest.FormFields) (*Outcome, error) {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}

	// copy the mutable state so mid-flight edits cannot alter the request
	symbols := make([]string, len(c.symbols))
	copy(symbols, c.symbols)
	params := make(map[string]any, len(c.parameters))
	for k, v := range c.parameters {
		params[k] = v
	}
	sel := backtest.Selection{
		Symbols:    symbols,
		Strategy:   c.strategy,
		Parameters: params,
	}
	req, err := backtest.Build(sel, fields)
	if err != nil {
		c.setStatusLocked(StatusFailed)
		c.mu.Unlock()
		return nil, err
	}

	c.setStatusLocked(StatusSubmitting)
	c.mu.Unlock()

	resp, err := c.runner.Run(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.setStatusLocked(StatusFailed)
		return nil, err
	}
	if !resp.Success {
		c.setStatusLocked(StatusFailed)
		return &Outcome{Request: req, Response: resp}, nil
	}
	c.setStatusLocked(StatusSucceeded)
	return &Outcome{Request: req, Response: resp}, nil
}

// Subscribe returns a channel that receives every status transition.
// Slow subscribers drop updates instead of blocking the session.
func (c *Coordinator) Subscribe() <-chan Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan Status, 8)
	c.subscribers = append(c.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscriber channel and closes it.
func (c *Coordinator) Unsubscribe(ch <-chan Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, sub := range c.subscribers {
		if sub == ch {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

func (c *Coordinator) setStatusLocked(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, sub := range c.subscribers {
		select {
		case sub <- status:
		default:
		}
	}
}
