package metrics

import (
	"testing"
)

func gatherValue(t *testing.T, r *Registry, name string) float64 {
	t.Helper()
	families, err := r.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue() + m.GetGauge().GetValue()
		}
	}
	return total
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("expected non-nil registry")
	}

	// Registering the same collectors twice would panic; a fresh
	// registry must gather cleanly.
	if _, err := r.Gather(); err != nil {
		t.Fatalf("gather failed: %v", err)
	}
}

func TestRecordSignal(t *testing.T) {
	r := NewRegistry()

	r.RecordSignal("sma_ema", "BUY")
	r.RecordSignal("sma_ema", "SELL")
	r.RecordSignal("rsi_momentum", "BUY")

	if got := gatherValue(t, r, "tradesim_signals_generated_total"); got != 3 {
		t.Errorf("expected 3 signals recorded, got %f", got)
	}
}

func TestRecordBacktest(t *testing.T) {
	r := NewRegistry()

	r.RecordBacktest("sma_ema", "success", 0.05)
	r.RecordBacktest("sma_ema", "error", 0.01)

	if got := gatherValue(t, r, "tradesim_backtests_total"); got != 2 {
		t.Errorf("expected 2 backtests recorded, got %f", got)
	}
}

func TestRecordTradeAndFeedStep(t *testing.T) {
	r := NewRegistry()

	r.RecordTrade("BUY")
	r.RecordTrade("BUY")
	r.RecordTrade("SELL")
	r.RecordFeedStep()

	if got := gatherValue(t, r, "tradesim_trades_executed_total"); got != 3 {
		t.Errorf("expected 3 trades recorded, got %f", got)
	}
	if got := gatherValue(t, r, "tradesim_feed_steps_total"); got != 1 {
		t.Errorf("expected 1 feed step recorded, got %f", got)
	}
}

func TestSetLedgerState(t *testing.T) {
	r := NewRegistry()

	r.SetLedgerState(105000, 5000)

	if got := gatherValue(t, r, "tradesim_ledger_equity"); got != 105000 {
		t.Errorf("expected equity gauge 105000, got %f", got)
	}
	if got := gatherValue(t, r, "tradesim_ledger_cash"); got != 5000 {
		t.Errorf("expected cash gauge 5000, got %f", got)
	}
}
