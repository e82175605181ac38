// Package bollinger implements a Bollinger band mean-reversion strategy.
package bollinger

import (
	"fmt"
	"math"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/indicator"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/strategy"
)

const (
	OverlayUpper  = "bb_upper"
	OverlayMiddle = "bb_middle"
	OverlayLower  = "bb_lower"
)

// Bollinger signals BUY when the close crosses back above the lower band
// and SELL when it crosses back below the upper band.
type Bollinger struct{}

// New creates the strategy.
func New() *Bollinger {
	return &Bollinger{}
}

func (b *Bollinger) Name() string { return "bollinger" }

func (b *Bollinger) Label() string { return "Bollinger Bands" }

func (b *Bollinger) DefaultParams() map[string]float64 {
	return map[string]float64{
		"period":  20,
		"num_std": 2,
	}
}

func (b *Bollinger) Overlays() []string {
	return []string{OverlayUpper, OverlayMiddle, OverlayLower}
}

func (b *Bollinger) Evaluate(series []core.Bar, params map[string]float64) ([]core.AnnotatedBar, error) {
	merged := strategy.MergeParams(b.DefaultParams(), params)
	period := int(merged["period"])
	numStd := merged["num_std"]
	if period < 2 {
		return nil, fmt.Errorf("bollinger: period must be at least 2, got %d", period)
	}
	if numStd <= 0 {
		return nil, fmt.Errorf("bollinger: num_std must be positive, got %f", numStd)
	}

	prices := core.ClosePrices(series)
	middle := indicator.SMA(prices, period)
	sd := indicator.StdDev(prices, period)

	upper := make([]float64, len(prices))
	lower := make([]float64, len(prices))
	for i := range prices {
		upper[i] = middle[i] + numStd*sd[i]
		lower[i] = middle[i] - numStd*sd[i]
	}

	annotated := strategy.Annotate(series)
	for i := range annotated {
		if !math.IsNaN(middle[i]) {
			annotated[i].Indicators[OverlayUpper] = upper[i]
			annotated[i].Indicators[OverlayMiddle] = middle[i]
			annotated[i].Indicators[OverlayLower] = lower[i]
		}
		if i == 0 {
			continue
		}

		reenterLower := prices[i] >= lower[i] && prices[i-1] < lower[i-1]
		reenterUpper := prices[i] <= upper[i] && prices[i-1] > upper[i-1]

		if reenterLower {
			annotated[i].Signal = core.SignalBuy
			annotated[i].Reason = "Close crossed back above lower band"
		} else if reenterUpper {
			annotated[i].Signal = core.SignalSell
			annotated[i].Reason = "Close crossed back below upper band"
		}
	}

	return annotated, nil
}
