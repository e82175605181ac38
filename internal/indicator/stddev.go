package indicator

import "math"

// StdDev calculates the rolling sample standard deviation over a trailing
// window.
func StdDev(prices []float64, window int) []float64 {
	result := warmup(len(prices))
	if window < 2 || len(prices) < window {
		return result
	}

	for i := window - 1; i < len(prices); i++ {
		var sum float64
		for j := i - window + 1; j <= i; j++ {
			sum += prices[j]
		}
		mean := sum / float64(window)

		var variance float64
		for j := i - window + 1; j <= i; j++ {
			variance += (prices[j] - mean) * (prices[j] - mean)
		}
		result[i] = math.Sqrt(variance / float64(window-1))
	}

	return result
}
