// Package indicator provides pure indicator math over price slices.
//
// All functions return a slice aligned one-to-one with the input; entries
// before the indicator has accumulated enough history are NaN.
package indicator

import "math"

// SMA calculates the Simple Moving Average over a trailing window.
func SMA(prices []float64, window int) []float64 {
	result := warmup(len(prices))
	if window <= 0 || len(prices) < window {
		return result
	}

	var sum float64
	for i := 0; i < window; i++ {
		sum += prices[i]
	}
	result[window-1] = sum / float64(window)

	// Rolling calculation
	for i := window; i < len(prices); i++ {
		sum = sum - prices[i-window] + prices[i]
		result[i] = sum / float64(window)
	}

	return result
}

// EMA calculates the Exponential Moving Average with the given smoothing
// span. The first value is seeded with the SMA over the first span prices,
// so the EMA is undefined until span prices have accumulated.
func EMA(prices []float64, span int) []float64 {
	result := warmup(len(prices))
	if span <= 0 || len(prices) < span {
		return result
	}

	multiplier := 2.0 / float64(span+1)

	var sum float64
	for i := 0; i < span; i++ {
		sum += prices[i]
	}
	ema := sum / float64(span)
	result[span-1] = ema

	for i := span; i < len(prices); i++ {
		ema = (prices[i]-ema)*multiplier + ema
		result[i] = ema
	}

	return result
}

// warmup returns a slice of n NaN values.
func warmup(n int) []float64 {
	result := make([]float64, n)
	for i := range result {
		result[i] = math.NaN()
	}
	return result
}
