package feed

import (
	"context"

	"go.uber.org/zap"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/ledger"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/metrics"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/strategy"
)

// Session runs one strategy over a generated candle stream and trades a
// fixed number of units through the ledger on each signal. The rolling
// window is capped so indicator evaluation stays bounded.
type Session struct {
	symbol    string
	units     int64
	maxWindow int

	gen      *Generator
	strategy strategy.Strategy
	params   map[string]float64
	ledger   *ledger.Ledger
	metrics  *metrics.Registry
	logger   *zap.Logger

	window []core.Bar
}

// StepResult describes what happened on one feed step.
type StepResult struct {
	Bar     core.Bar
	Signal  core.SignalType
	Reason  string
	Trade   *core.Trade
	Summary ledger.Summary
}

// NewSession wires a generator, a strategy and a ledger into a stream
// session. Params may be nil to use the strategy defaults. A nil metrics
// registry disables instrumentation.
func NewSession(symbol string, units int64, maxWindow int, gen *Generator,
	strat strategy.Strategy, params map[string]float64, book *ledger.Ledger,
	reg *metrics.Registry, logger ...*zap.Logger) *Session {

	log := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		log = logger[0]
	}

	return &Session{
		symbol:    symbol,
		units:     units,
		maxWindow: maxWindow,
		gen:       gen,
		strategy:  strat,
		params:    strategy.MergeParams(strat.DefaultParams(), params),
		ledger:    book,
		metrics:   reg,
		logger:    log,
	}
}

// Prime seeds the rolling window (and the generator) with historical bars.
func (s *Session) Prime(series []core.Bar) {
	s.window = append(s.window, series...)
	s.trimWindow()
	s.gen.Prime(s.window)
}

// Step generates one candle, evaluates the strategy over the rolling
// window and applies the resulting signal to the ledger. Trade failures
// (insufficient funds or shares) are logged and skipped; the stream
// continues.
func (s *Session) Step() StepResult {
	bar := s.gen.Next()
	s.window = append(s.window, bar)
	s.trimWindow()

	if s.metrics != nil {
		s.metrics.RecordFeedStep()
	}

	result := StepResult{Bar: bar, Signal: core.SignalNone}

	annotated, err := s.strategy.Evaluate(s.window, s.params)
	if err != nil {
		s.logger.Warn("strategy evaluation failed",
			zap.String("strategy", s.strategy.Name()),
			zap.Error(err))
	} else if len(annotated) > 0 {
		last := annotated[len(annotated)-1]
		result.Signal = last.Signal
		result.Reason = last.Reason
	}

	s.ledger.Mark(s.symbol, bar.Close)

	if result.Signal != core.SignalNone {
		if s.metrics != nil {
			s.metrics.RecordSignal(s.strategy.Name(), string(result.Signal))
		}
		result.Trade = s.applySignal(result.Signal, bar.Close)
	}

	result.Summary = s.ledger.Summary()
	if s.metrics != nil {
		s.metrics.SetLedgerState(result.Summary.Equity, result.Summary.Cash)
	}
	return result
}

// Run advances the stream the given number of steps, stopping early when
// the context is cancelled.
func (s *Session) Run(ctx context.Context, steps int) ([]StepResult, error) {
	results := make([]StepResult, 0, steps)
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}
		results = append(results, s.Step())
	}
	return results, nil
}

func (s *Session) applySignal(signal core.SignalType, price float64) *core.Trade {
	side := core.SideBuy
	if signal == core.SignalSell {
		side = core.SideSell
	}

	trade, err := s.ledger.Execute(s.symbol, side, s.units, price)
	if err != nil {
		// Unaffordable or oversized orders are skipped, matching the
		// long-only no-op behavior of the backtester.
		s.logger.Debug("signal not tradable",
			zap.String("symbol", s.symbol),
			zap.String("side", string(side)),
			zap.Float64("price", price),
			zap.Error(err))
		return nil
	}

	if s.metrics != nil {
		s.metrics.RecordTrade(string(side))
	}
	s.logger.Info("trade executed",
		zap.String("id", trade.ID),
		zap.String("symbol", trade.Symbol),
		zap.String("side", string(trade.Side)),
		zap.Int64("quantity", trade.Quantity),
		zap.Float64("price", trade.Price))
	return trade
}

func (s *Session) trimWindow() {
	if len(s.window) > s.maxWindow {
		s.window = append(s.window[:0], s.window[len(s.window)-s.maxWindow:]...)
	}
}
