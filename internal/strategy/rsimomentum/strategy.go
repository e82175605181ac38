// Package rsimomentum implements the RSI momentum strategy.
package rsimomentum

import (
	"fmt"
	"math"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/indicator"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/strategy"
)

const OverlayRSI = "rsi"

// RSIMomentum signals BUY when the RSI exits the oversold zone (crosses
// from below to at or above the oversold threshold) and SELL when it exits
// the overbought zone.
type RSIMomentum struct{}

// New creates the strategy.
func New() *RSIMomentum {
	return &RSIMomentum{}
}

func (r *RSIMomentum) Name() string { return "rsi_momentum" }

func (r *RSIMomentum) Label() string { return "RSI Momentum" }

func (r *RSIMomentum) DefaultParams() map[string]float64 {
	return map[string]float64{
		"period":     14,
		"oversold":   30,
		"overbought": 70,
	}
}

func (r *RSIMomentum) Overlays() []string {
	return []string{OverlayRSI}
}

func (r *RSIMomentum) Evaluate(series []core.Bar, params map[string]float64) ([]core.AnnotatedBar, error) {
	merged := strategy.MergeParams(r.DefaultParams(), params)
	period := int(merged["period"])
	oversold := merged["oversold"]
	overbought := merged["overbought"]
	if period < 1 {
		return nil, fmt.Errorf("rsi_momentum: period must be positive, got %d", period)
	}
	if oversold >= overbought {
		return nil, fmt.Errorf("rsi_momentum: oversold (%.1f) must be below overbought (%.1f)", oversold, overbought)
	}

	rsi := indicator.RSI(core.ClosePrices(series), period)

	annotated := strategy.Annotate(series)
	for i := range annotated {
		if !math.IsNaN(rsi[i]) {
			annotated[i].Indicators[OverlayRSI] = rsi[i]
		}
		if i == 0 {
			continue
		}

		exitOversold := rsi[i] >= oversold && rsi[i-1] < oversold
		exitOverbought := rsi[i] <= overbought && rsi[i-1] > overbought

		if exitOversold {
			annotated[i].Signal = core.SignalBuy
			annotated[i].Reason = "RSI exited oversold zone"
		} else if exitOverbought {
			annotated[i].Signal = core.SignalSell
			annotated[i].Reason = "RSI exited overbought zone"
		}
	}

	return annotated, nil
}
