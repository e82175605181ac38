package backtest

import (
	"time"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
)

// Result holds the complete backtest output for one run. A run is
// all-or-nothing: a Result is only produced when the whole series was
// processed.
type Result struct {
	// Strategy is the catalog name of the strategy that ran.
	Strategy string `json:"strategy"`
	// Symbol is the instrument the series belongs to.
	Symbol string `json:"symbol,omitempty"`
	// Start and End bound the processed series (zero for empty input).
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// InitialCash is the configured starting cash.
	InitialCash float64 `json:"initial_cash"`
	// Metrics summarizes performance.
	Metrics Metrics `json:"metrics"`
	// EquityCurve has one sample per processed bar.
	EquityCurve []core.EquityPoint `json:"equity_curve"`
	// Trades lists executed trades in order.
	Trades []core.Trade `json:"trades"`
	// Bars is the annotated series with indicator overlays and signals.
	Bars []core.AnnotatedBar `json:"-"`
}

// Metrics holds summary performance statistics.
type Metrics struct {
	// TotalReturnPct is (final equity - initial cash) / initial cash * 100.
	TotalReturnPct float64 `json:"total_return_pct"`
	// AnnualizedReturnPct extrapolates the total return to a
	// 252-trading-day year, one equity sample per trading day.
	AnnualizedReturnPct float64 `json:"annualized_return_pct"`
	// MaxDrawdownPct is the largest peak-to-trough equity decline. It is
	// always <= 0.
	MaxDrawdownPct float64 `json:"max_drawdown_pct"`
	// SharpeRatio is the mean per-step equity change over its standard
	// deviation, scaled by sqrt(252).
	SharpeRatio float64 `json:"sharpe_ratio"`
	// WinRatePct is the share of completed round trips closed at a profit.
	WinRatePct float64 `json:"win_rate_pct"`
	// WinningTrades and LosingTrades count completed round trips.
	WinningTrades int `json:"winning_trades"`
	LosingTrades  int `json:"losing_trades"`
	// TradesExecuted is the total number of trade records.
	TradesExecuted int `json:"trades_executed"`
	// FinalEquity is the last equity sample, or the initial cash for an
	// empty series.
	FinalEquity float64 `json:"final_equity"`
}
