package strategy

import (
	"testing"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
)

type stubStrategy struct {
	name string
}

func (s *stubStrategy) Name() string                    { return s.name }
func (s *stubStrategy) Label() string                   { return "Stub " + s.name }
func (s *stubStrategy) DefaultParams() map[string]float64 { return map[string]float64{"window": 5} }
func (s *stubStrategy) Overlays() []string              { return []string{"stub"} }
func (s *stubStrategy) Evaluate(series []core.Bar, params map[string]float64) ([]core.AnnotatedBar, error) {
	return Annotate(series), nil
}

func TestCatalog_RegisterAndGet(t *testing.T) {
	catalog := NewCatalog()
	catalog.Register(&stubStrategy{name: "stub"})

	s, ok := catalog.Get("stub")
	if !ok {
		t.Fatal("expected registered strategy to be found")
	}
	if s.Name() != "stub" {
		t.Errorf("Name() = %q, want stub", s.Name())
	}

	if _, ok := catalog.Get("missing"); ok {
		t.Error("expected lookup miss for unregistered name")
	}
}

func TestCatalog_DefinitionsSorted(t *testing.T) {
	catalog := NewCatalog()
	catalog.Register(&stubStrategy{name: "zeta"})
	catalog.Register(&stubStrategy{name: "alpha"})

	defs := catalog.Definitions()
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	if defs[0].Name != "alpha" || defs[1].Name != "zeta" {
		t.Errorf("definitions not sorted by name: %v, %v", defs[0].Name, defs[1].Name)
	}
}

func TestCatalog_DefinitionsCopyParams(t *testing.T) {
	catalog := NewCatalog()
	catalog.Register(&stubStrategy{name: "stub"})

	defs := catalog.Definitions()
	defs[0].DefaultParams["window"] = 99

	again := catalog.Definitions()
	if again[0].DefaultParams["window"] != 5 {
		t.Error("mutating a returned definition should not affect the catalog")
	}
}

func TestMergeParams(t *testing.T) {
	defaults := map[string]float64{"short_window": 10, "long_window": 30}
	overrides := map[string]float64{"short_window": 5}

	merged := MergeParams(defaults, overrides)

	if merged["short_window"] != 5 {
		t.Errorf("override not applied, got %f", merged["short_window"])
	}
	if merged["long_window"] != 30 {
		t.Errorf("default not preserved, got %f", merged["long_window"])
	}
	if defaults["short_window"] != 10 {
		t.Error("defaults map should not be mutated")
	}
}

func TestAnnotate(t *testing.T) {
	series := []core.Bar{
		{Open: 1, High: 1, Low: 1, Close: 1, Volume: 1},
		{Open: 2, High: 2, Low: 2, Close: 2, Volume: 1},
	}
	annotated := Annotate(series)

	if len(annotated) != 2 {
		t.Fatalf("expected 2 annotated bars, got %d", len(annotated))
	}
	for i, ab := range annotated {
		if ab.Signal != core.SignalNone {
			t.Errorf("bar %d signal = %s, want NONE", i, ab.Signal)
		}
		if ab.Indicators == nil || len(ab.Indicators) != 0 {
			t.Errorf("bar %d should start with an empty indicator map", i)
		}
	}
}
