// Package feed generates a synthetic pseudo-live candle stream and drives
// strategies and the portfolio ledger from it.
package feed

import (
	"math"
	"math/rand"
	"time"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
)

const (
	// initialPrice seeds the walk when no history is available.
	initialPrice = 150.0
	// candleInterval is the simulated spacing between candles.
	candleInterval = time.Second
)

// Generator produces a random-walk candle stream. Each close moves from
// the previous one by a normally distributed percentage, with OHLC and
// volume scattered around it. A fixed seed yields a reproducible stream.
type Generator struct {
	rng        *rand.Rand
	volatility float64
	baseVolume float64
	lastClose  float64
	lastTime   time.Time
}

// NewGenerator creates a generator starting at the default price.
// Volatility is the standard deviation of the per-candle close change
// (0.02 means roughly 2% steps).
func NewGenerator(seed int64, volatility, baseVolume float64) *Generator {
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		volatility: volatility,
		baseVolume: baseVolume,
		lastClose:  initialPrice,
		lastTime:   time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC),
	}
}

// Prime continues the walk from the end of an existing series.
func (g *Generator) Prime(series []core.Bar) {
	if len(series) == 0 {
		return
	}
	last := series[len(series)-1]
	g.lastClose = last.Close
	g.lastTime = last.Time
}

// Next produces the next candle of the walk.
func (g *Generator) Next() core.Bar {
	base := g.lastClose

	change := g.rng.NormFloat64() * g.volatility
	close := base * (1 + change)

	spread := math.Abs(change) * base * 2
	high := math.Max(base, close) + g.rng.Float64()*spread
	low := math.Min(base, close) - g.rng.Float64()*spread
	open := base + (g.rng.Float64()-0.5)*spread

	// Degenerate draws could push a price to or below zero; clamp so the
	// bar always validates.
	floor := base * 0.01
	close = math.Max(close, floor)
	low = math.Max(low, floor)
	open = math.Max(open, floor)
	high = math.Max(high, math.Max(open, close))

	volume := math.Trunc(g.baseVolume * (0.5 + 1.5*g.rng.Float64()))

	g.lastClose = close
	g.lastTime = g.lastTime.Add(candleInterval)

	return core.Bar{
		Time:   g.lastTime,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: volume,
	}
}
