package backtest

import (
	"math"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
)

// tradingDaysPerYear is the annualization basis for returns and the
// Sharpe-style ratio.
const tradingDaysPerYear = 252

// ComputeMetrics reduces an equity curve and trade list to summary
// statistics. Degenerate input (empty or single-sample curves, no trades)
// yields neutral values, never an error.
func ComputeMetrics(initialCash float64, equity []core.EquityPoint, trades []core.Trade) Metrics {
	m := Metrics{
		TradesExecuted: len(trades),
		FinalEquity:    initialCash,
	}

	if len(equity) > 0 {
		m.FinalEquity = equity[len(equity)-1].Equity
		if initialCash > 0 {
			m.TotalReturnPct = (m.FinalEquity - initialCash) / initialCash * 100
		}
		m.AnnualizedReturnPct = annualizedReturn(m.TotalReturnPct/100, len(equity))
		m.MaxDrawdownPct = maxDrawdown(equity)
		m.SharpeRatio = sharpeRatio(equity)
	}

	m.WinningTrades, m.LosingTrades = classifyRoundTrips(trades)
	if closed := m.WinningTrades + m.LosingTrades; closed > 0 {
		m.WinRatePct = float64(m.WinningTrades) / float64(closed) * 100
	}

	return m
}

// annualizedReturn extrapolates the total return assuming it compounds
// evenly across the sampled span, one equity sample per trading day.
func annualizedReturn(totalReturn float64, samples int) float64 {
	if samples < 2 || totalReturn <= -1 {
		return 0
	}
	periods := float64(samples - 1)
	return (math.Pow(1+totalReturn, tradingDaysPerYear/periods) - 1) * 100
}

// maxDrawdown returns the largest peak-to-trough equity decline as a
// percentage of the running peak. The result is <= 0; it is 0 when equity
// never dips below a prior peak.
func maxDrawdown(equity []core.EquityPoint) float64 {
	var minDD float64
	peak := math.Inf(-1)

	for _, p := range equity {
		if p.Equity > peak {
			peak = p.Equity
		}
		if peak > 0 {
			dd := (p.Equity - peak) / peak * 100
			if dd < minDD {
				minDD = dd
			}
		}
	}

	return minDD
}

// sharpeRatio computes mean per-step equity change over its sample
// standard deviation, scaled by sqrt(252). Returns 0 when fewer than two
// return samples exist or the deviation is zero.
func sharpeRatio(equity []core.EquityPoint) float64 {
	var returns []float64
	for i := 1; i < len(equity); i++ {
		prev := equity[i-1].Equity
		if prev == 0 {
			continue
		}
		returns = append(returns, (equity[i].Equity-prev)/prev)
	}
	if len(returns) < 2 {
		return 0
	}

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mean := sum / float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	stdDev := math.Sqrt(variance / float64(len(returns)-1))
	if stdDev == 0 {
		return 0
	}

	return mean / stdDev * math.Sqrt(tradingDaysPerYear)
}

// classifyRoundTrips pairs each BUY with the SELL that closes it and
// classifies the pair by the SELL's realized PnL. A cycle still open at
// series end is excluded.
func classifyRoundTrips(trades []core.Trade) (winning, losing int) {
	open := false
	for _, t := range trades {
		switch t.Side {
		case core.SideBuy:
			open = true
		case core.SideSell:
			if !open {
				continue
			}
			if t.PnL > 0 {
				winning++
			} else {
				losing++
			}
			open = false
		}
	}
	return winning, losing
}
