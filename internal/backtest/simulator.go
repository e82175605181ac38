package backtest

import (
	"context"
	"fmt"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/strategy"
	"go.uber.org/zap"
)

// Backtester runs strategy backtests against historical series. It holds
// no per-run state: every Run owns its accumulators, so concurrent runs on
// the same Backtester are safe and repeated runs with identical inputs
// produce identical results.
type Backtester struct {
	catalog *strategy.Catalog
	logger  *zap.Logger
}

// New creates a Backtester over the given strategy catalog.
func New(catalog *strategy.Catalog, logger *zap.Logger) *Backtester {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backtester{catalog: catalog, logger: logger}
}

// runState is the mutable simulation state for a single run.
type runState struct {
	cash      float64
	quantity  int64
	costBasis float64
	trades    []core.Trade
	equity    []core.EquityPoint
}

// Run simulates the named strategy over the series starting from
// initialCash. An empty series yields a neutral Result and no error.
func (b *Backtester) Run(ctx context.Context, series []core.Bar, symbol, strategyName string, params map[string]float64, initialCash float64) (*Result, error) {
	strat, ok := b.catalog.Get(strategyName)
	if !ok {
		return nil, core.WrapError(core.ErrUnknownStrategy,
			fmt.Errorf("no strategy named %q", strategyName))
	}
	if initialCash < 0 {
		return nil, core.WrapError(core.ErrInvalidTrade,
			fmt.Errorf("initial cash must be non-negative, got %f", initialCash))
	}

	if len(series) == 0 {
		return &Result{
			Strategy:    strategyName,
			Symbol:      symbol,
			InitialCash: initialCash,
			Metrics:     ComputeMetrics(initialCash, nil, nil),
		}, nil
	}

	if err := core.ValidateSeries(series); err != nil {
		return nil, err
	}

	merged := strategy.MergeParams(strat.DefaultParams(), params)
	bars, err := strat.Evaluate(series, merged)
	if err != nil {
		return nil, err
	}

	state := runState{
		cash:   initialCash,
		trades: []core.Trade{},
		equity: make([]core.EquityPoint, 0, len(bars)),
	}

	for _, bar := range bars {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		price := bar.Close
		switch {
		case bar.Signal == core.SignalBuy && state.quantity == 0:
			state.buy(symbol, strategyName, bar, price)
		case bar.Signal == core.SignalSell && state.quantity > 0:
			state.sell(symbol, strategyName, bar, price)
		}
		// BUY while long and SELL while flat are no-ops.

		positionValue := float64(state.quantity) * price
		state.equity = append(state.equity, core.EquityPoint{
			Time:          bar.Time,
			Cash:          state.cash,
			PositionValue: positionValue,
			Equity:        state.cash + positionValue,
		})
	}

	metrics := ComputeMetrics(initialCash, state.equity, state.trades)
	b.logger.Debug("backtest complete",
		zap.String("strategy", strategyName),
		zap.String("symbol", symbol),
		zap.Int("bars", len(bars)),
		zap.Int("trades", metrics.TradesExecuted),
		zap.Float64("total_return_pct", metrics.TotalReturnPct),
	)

	return &Result{
		Strategy:    strategyName,
		Symbol:      symbol,
		Start:       series[0].Time,
		End:         series[len(series)-1].Time,
		InitialCash: initialCash,
		Metrics:     metrics,
		EquityCurve: state.equity,
		Trades:      state.trades,
		Bars:        bars,
	}, nil
}

// buy spends as much cash as whole units at the close price allow. An
// unaffordable buy (zero units) is a no-op, not an error.
func (s *runState) buy(symbol, strategyName string, bar core.AnnotatedBar, price float64) {
	units := int64(s.cash / price)
	if units < 1 {
		return
	}

	cost := float64(units) * price
	s.cash -= cost
	s.quantity = units
	s.costBasis = cost
	// Sequence IDs keep repeated runs bit-identical.
	s.trades = append(s.trades, core.Trade{
		ID:       fmt.Sprintf("bt-%d", len(s.trades)+1),
		Time:     bar.Time,
		Symbol:   symbol,
		Side:     core.SideBuy,
		Price:    price,
		Quantity: units,
		Strategy: strategyName,
	})
}

// sell liquidates the whole position at the close price.
func (s *runState) sell(symbol, strategyName string, bar core.AnnotatedBar, price float64) {
	proceeds := float64(s.quantity) * price
	s.cash += proceeds
	s.trades = append(s.trades, core.Trade{
		ID:       fmt.Sprintf("bt-%d", len(s.trades)+1),
		Time:     bar.Time,
		Symbol:   symbol,
		Side:     core.SideSell,
		Price:    price,
		Quantity: s.quantity,
		PnL:      proceeds - s.costBasis,
		Strategy: strategyName,
	})
	s.quantity = 0
	s.costBasis = 0
}
