package strategy

import "github.com/PravallikaP08/v0-live-trading-simulation/internal/core"

// Strategy defines the contract for trading strategies. Evaluate must be
// pure and deterministic: the annotation of bar i may depend only on bars
// 0..i, never on later bars.
type Strategy interface {
	// Name returns the unique catalog key.
	Name() string
	// Label returns a human-readable display name.
	Label() string
	// DefaultParams returns the default parameter set.
	DefaultParams() map[string]float64
	// Overlays returns the ordered indicator overlay names the strategy
	// emits.
	Overlays() []string
	// Evaluate annotates the full series with indicator values and
	// signals. The returned slice is one-to-one with the input.
	Evaluate(series []core.Bar, params map[string]float64) ([]core.AnnotatedBar, error)
}

// MergeParams overlays caller-supplied parameters on top of a strategy's
// defaults. Unspecified parameters fall back to the default value; neither
// input map is mutated.
func MergeParams(defaults, overrides map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

/// Annotate builds the default annotation for a series: every bar carries
// an empty indicator map and a NONE signal. Strategies fill in values as
// their indicators warm up.
func Annotate(series []core.Bar) []core.AnnotatedBar {
	annotated := make([]core.AnnotatedBar, len(series))
	for i, bar := range series {
		annotated[i] = core.AnnotatedBar{
			Bar:        bar,
			Indicators: make(map[string]float64),
			Signal:     core.SignalNone,
		}
	}
	return annotated
}
