package core

import (
	"fmt"
	"math"
)

// ValidateSeries checks that a price series is well formed: timestamps
// strictly ascending with no duplicates, prices positive and finite,
// volume non-negative. An empty series is valid.
func ValidateSeries(series []Bar) error {
	for i, bar := range series {
		if !bar.IsValid() || !allFinite(bar) {
			return WrapError(ErrInvalidSeries,
				fmt.Errorf("bar %d has invalid OHLCV values", i))
		}
		if i > 0 && !series[i-1].Time.Before(bar.Time) {
			return WrapError(ErrInvalidSeries,
				fmt.Errorf("bar %d timestamp %s is not after previous %s",
					i, bar.Time, series[i-1].Time))
		}
	}
	return nil
}

func allFinite(b Bar) bool {
	for _, v := range []float64{b.Open, b.High, b.Low, b.Close, b.Volume} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ClosePrices extracts the close column from a series.
func ClosePrices(series []Bar) []float64 {
	prices := make([]float64, len(series))
	for i, bar := range series {
		prices[i] = bar.Close
	}
	return prices
}
