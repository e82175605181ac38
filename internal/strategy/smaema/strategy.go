// Package smaema implements the SMA / EMA crossover strategy.
package smaema

import (
	"fmt"
	"math"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/indicator"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/strategy"
)

const (
	OverlaySMA = "sma"
	OverlayEMA = "ema"
)

// SMAEMACrossover signals BUY when the short SMA crosses up through the
// long-span EMA and SELL on the symmetric cross-down.
type SMAEMACrossover struct{}

// New creates the strategy.
func New() *SMAEMACrossover {
	return &SMAEMACrossover{}
}

func (s *SMAEMACrossover) Name() string { return "sma_ema" }

func (s *SMAEMACrossover) Label() string { return "SMA / EMA Crossover" }

func (s *SMAEMACrossover) DefaultParams() map[string]float64 {
	return map[string]float64{
		"short_window": 10,
		"long_window":  30,
	}
}

func (s *SMAEMACrossover) Overlays() []string {
	return []string{OverlaySMA, OverlayEMA}
}

func (s *SMAEMACrossover) Evaluate(series []core.Bar, params map[string]float64) ([]core.AnnotatedBar, error) {
	merged := strategy.MergeParams(s.DefaultParams(), params)
	shortWindow := int(merged["short_window"])
	longWindow := int(merged["long_window"])
	if shortWindow < 1 || longWindow < 1 {
		return nil, fmt.Errorf("sma_ema: windows must be positive, got short=%d long=%d", shortWindow, longWindow)
	}

	prices := core.ClosePrices(series)
	sma := indicator.SMA(prices, shortWindow)
	ema := indicator.EMA(prices, longWindow)

	annotated := strategy.Annotate(series)
	for i := range annotated {
		if !math.IsNaN(sma[i]) {
			annotated[i].Indicators[OverlaySMA] = sma[i]
		}
		if !math.IsNaN(ema[i]) {
			annotated[i].Indicators[OverlayEMA] = ema[i]
		}
		if i == 0 {
			continue
		}

		// NaN comparisons are false, so warm-up bars never signal.
		crossUp := sma[i] >= ema[i] && sma[i-1] < ema[i-1]
		crossDown := sma[i] <= ema[i] && sma[i-1] > ema[i-1]

		if crossUp {
			annotated[i].Signal = core.SignalBuy
			annotated[i].Reason = "SMA crossed above EMA"
		} else if crossDown {
			annotated[i].Signal = core.SignalSell
			annotated[i].Reason = "SMA crossed below EMA"
		}
	}

	return annotated, nil
}
