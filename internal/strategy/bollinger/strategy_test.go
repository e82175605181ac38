package bollinger

import (
	"testing"
	"time"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
)

func series(closes ...float64) []core.Bar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]core.Bar, len(closes))
	for i, c := range closes {
		bars[i] = core.Bar{
			Time: start.AddDate(0, 0, i),
			Open: c, High: c, Low: c, Close: c,
			Volume: 1000,
		}
	}
	return bars
}

func TestEvaluate_BandReentrySignals(t *testing.T) {
	// period=3, num_std=1: close dips below the lower band at index 3 and
	// re-enters at index 4 (BUY); it breaks above the upper band at index
	// 5 and falls back inside at index 6 (SELL).
	bars := series(10, 10, 10, 7, 10, 14, 10)

	annotated, err := New().Evaluate(bars, map[string]float64{
		"period":  3,
		"num_std": 1,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	for i, ab := range annotated {
		var want core.SignalType
		switch i {
		case 4:
			want = core.SignalBuy
		case 6:
			want = core.SignalSell
		default:
			want = core.SignalNone
		}
		if ab.Signal != want {
			t.Errorf("bar %d signal = %s, want %s", i, ab.Signal, want)
		}
	}
}

func TestEvaluate_OverlaysPresentAfterWarmup(t *testing.T) {
	bars := series(10, 10, 10, 7, 10)

	annotated, err := New().Evaluate(bars, map[string]float64{"period": 3, "num_std": 1})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if _, ok := annotated[1].Indicators[OverlayMiddle]; ok {
		t.Error("bands should be absent before the window fills")
	}
	for _, key := range []string{OverlayUpper, OverlayMiddle, OverlayLower} {
		if _, ok := annotated[2].Indicators[key]; !ok {
			t.Errorf("%s should be present once the window fills", key)
		}
	}

	upper := annotated[3].Indicators[OverlayUpper]
	lower := annotated[3].Indicators[OverlayLower]
	middle := annotated[3].Indicators[OverlayMiddle]
	if !(lower < middle && middle < upper) {
		t.Errorf("bands out of order: lower=%f middle=%f upper=%f", lower, middle, upper)
	}
}

func TestEvaluate_InvalidParams(t *testing.T) {
	bars := series(10, 10, 10)
	if _, err := New().Evaluate(bars, map[string]float64{"period": 1}); err == nil {
		t.Error("expected error for period < 2")
	}
	if _, err := New().Evaluate(bars, map[string]float64{"num_std": 0}); err == nil {
		t.Error("expected error for non-positive num_std")
	}
}
