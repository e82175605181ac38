package indicator

import "math"

// RSI calculates the Relative Strength Index over a trailing period.
// The ratio uses simple averages of gains and losses across the window.
// When the average loss is zero the RSI is undefined for that bar and the
// last defined value is carried forward.
func RSI(prices []float64, period int) []float64 {
	result := warmup(len(prices))
	if period <= 0 || len(prices) <= period {
		return result
	}

	gains := make([]float64, len(prices))
	losses := make([]float64, len(prices))
	for i := 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	var gainSum, lossSum float64
	for i := 1; i <= period; i++ {
		gainSum += gains[i]
		lossSum += losses[i]
	}

	last := math.NaN()
	// First full window of deltas ends at index period.
	for i := period; i < len(prices); i++ {
		if i > period {
			gainSum += gains[i] - gains[i-period]
			lossSum += losses[i] - losses[i-period]
		}

		if lossSum > 0 {
			rs := (gainSum / float64(period)) / (lossSum / float64(period))
			last = 100 - 100/(1+rs)
		}
		result[i] = last
	}

	return result
}
