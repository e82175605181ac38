// Package marketdata supplies validated price series to the engine.
package marketdata

import (
	"time"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
)

// Provider returns an ordered price series for a symbol. Implementations
// must return series that pass core.ValidateSeries; callers treat the
// result as read-only.
type Provider interface {
	// Symbols lists the symbols this provider can serve.
	Symbols() ([]string, error)
	// History returns bars for the symbol within [start, end]. Zero
	// bounds mean unbounded on that side.
	History(symbol string, start, end time.Time) ([]core.Bar, error)
}

// Slice returns the bars of a sorted series that fall within [start, end].
// Zero bounds are unbounded.
func Slice(series []core.Bar, start, end time.Time) []core.Bar {
	lo := 0
	for lo < len(series) && !start.IsZero() && series[lo].Time.Before(start) {
		lo++
	}
	hi := len(series)
	for hi > lo && !end.IsZero() && series[hi-1].Time.After(end) {
		hi--
	}
	return series[lo:hi]
}
