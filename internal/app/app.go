// Package app wires configuration, the strategy catalog, the backtester,
// the ledger and the synthetic feed into one engine.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/backtest"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/config"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/feed"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/ledger"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/marketdata"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/metrics"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/strategy"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/strategy/bollinger"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/strategy/rsimomentum"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/strategy/smaema"
)

// App is the engine orchestrator. It owns the strategy catalog, the
// backtester, the portfolio ledger and the metrics registry.
type App struct {
	cfg      *config.Config
	logger   *zap.Logger
	catalog  *strategy.Catalog
	backtest *backtest.Backtester
	ledger   *ledger.Ledger
	metrics  *metrics.Registry
	provider marketdata.Provider
}

// New creates an engine from configuration with the built-in strategies
// registered.
func New(cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog := strategy.NewCatalog(logger)
	catalog.Register(smaema.New())
	catalog.Register(rsimomentum.New())
	catalog.Register(bollinger.New())

	var reg *metrics.Registry
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
	}

	return &App{
		cfg:      cfg,
		logger:   logger,
		catalog:  catalog,
		backtest: backtest.New(catalog, logger),
		ledger:   ledger.New(cfg.Simulation.InitialCash, logger),
		metrics:  reg,
		provider: marketdata.NewCSVDir(cfg.Data.Dir),
	}
}

// DefaultSymbol returns the configured default trading symbol.
func (a *App) DefaultSymbol() string { return a.cfg.Simulation.DefaultSymbol }

// Catalog returns the strategy catalog.
func (a *App) Catalog() *strategy.Catalog { return a.catalog }

// Ledger returns the portfolio ledger.
func (a *App) Ledger() *ledger.Ledger { return a.ledger }

// Metrics returns the metrics registry, nil when metrics are disabled.
func (a *App) Metrics() *metrics.Registry { return a.metrics }

// Provider returns the market data provider.
func (a *App) Provider() marketdata.Provider { return a.provider }

// Strategies lists the registered strategy definitions with any
// configured parameter overrides applied.
func (a *App) Strategies() []core.StrategyDefinition {
	defs := a.catalog.Definitions()
	for i := range defs {
		overrides := a.cfg.StrategyParams(defs[i].Name)
		for k, v := range overrides {
			if _, ok := defs[i].DefaultParams[k]; ok {
				defs[i].DefaultParams[k] = v
			}
		}
	}
	return defs
}

// Backtest loads the symbol's history over [start, end] and runs the
// named strategy against it. Configured parameter overrides apply first,
// then the caller's params on top.
func (a *App) Backtest(ctx context.Context, symbol, strategyName string,
	params map[string]float64, start, end time.Time) (*backtest.Result, error) {

	series, err := a.provider.History(symbol, start, end)
	if err != nil {
		return nil, err
	}

	merged := strategy.MergeParams(a.cfg.StrategyParams(strategyName), params)

	began := time.Now()
	result, err := a.backtest.Run(ctx, series, symbol, strategyName, merged,
		a.cfg.Simulation.InitialCash)
	if a.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		a.metrics.RecordBacktest(strategyName, status, time.Since(began).Seconds())
	}
	if err != nil {
		return nil, err
	}

	if a.metrics != nil {
		for _, annotated := range result.Bars {
			if annotated.Signal != core.SignalNone {
				a.metrics.RecordSignal(strategyName, string(annotated.Signal))
			}
		}
	}
	return result, nil
}

// NewSession builds a synthetic feed session trading the default unit
// size through the app's ledger. An explicit seed overrides the
// configured one so runs can be reproduced.
func (a *App) NewSession(symbol, strategyName string, seed int64) (*feed.Session, error) {
	strat, ok := a.catalog.Get(strategyName)
	if !ok {
		return nil, core.WrapError(core.ErrUnknownStrategy,
			fmt.Errorf("strategy %q is not registered", strategyName))
	}

	if seed == 0 {
		seed = a.cfg.Feed.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := feed.NewGenerator(seed, a.cfg.Feed.Volatility, a.cfg.Feed.BaseVolume)
	sess := feed.NewSession(symbol, a.cfg.Simulation.DefaultUnits,
		a.cfg.Feed.MaxWindow, gen, strat, a.cfg.StrategyParams(strategyName),
		a.ledger, a.metrics, a.logger)

	// Continue the walk from recorded history when the symbol has any.
	if history, err := a.provider.History(symbol, time.Time{}, time.Time{}); err == nil {
		sess.Prime(history)
	}
	return sess, nil
}
