package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
)

func TestLoad_FromFile(t *testing.T) {
	content := []byte(`
simulation:
  initial_cash: 50000
  default_symbol: "MSFT"
  default_units: 5

data:
  dir: "/tmp/tradesim/data"

strategies:
  sma_ema:
    enabled: true
    params:
      short_window: 5
      long_window: 20
`)

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Simulation.InitialCash != 50000 {
		t.Errorf("expected initial_cash 50000, got %f", cfg.Simulation.InitialCash)
	}
	if cfg.Simulation.DefaultSymbol != "MSFT" {
		t.Errorf("expected MSFT, got %s", cfg.Simulation.DefaultSymbol)
	}
	if cfg.Data.Dir != "/tmp/tradesim/data" {
		t.Errorf("expected data dir /tmp/tradesim/data, got %s", cfg.Data.Dir)
	}

	params := cfg.StrategyParams("sma_ema")
	if params == nil || params["short_window"] != 5 {
		t.Errorf("expected short_window override 5, got %v", params)
	}
	if cfg.StrategyParams("missing") != nil {
		t.Error("expected nil params for unknown strategy")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Simulation.InitialCash != 100000 {
		t.Errorf("expected default initial_cash 100000, got %f", cfg.Simulation.InitialCash)
	}
	if cfg.Simulation.DefaultSymbol != "AAPL" {
		t.Errorf("expected default symbol AAPL, got %s", cfg.Simulation.DefaultSymbol)
	}
	if cfg.Simulation.DefaultUnits != 10 {
		t.Errorf("expected default units 10, got %d", cfg.Simulation.DefaultUnits)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative initial cash", func(c *Config) { c.Simulation.InitialCash = -1 }},
		{"zero default units", func(c *Config) { c.Simulation.DefaultUnits = 0 }},
		{"empty symbol", func(c *Config) { c.Simulation.DefaultSymbol = "" }},
		{"volatility too high", func(c *Config) { c.Feed.Volatility = 1.5 }},
		{"zero base volume", func(c *Config) { c.Feed.BaseVolume = 0 }},
		{"zero max window", func(c *Config) { c.Feed.MaxWindow = 0 }},
		{"negative strategy param", func(c *Config) {
			c.Strategies = map[string]StrategyConfig{
				"sma_ema": {Params: map[string]float64{"short_window": -1}},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, core.ErrConfigInvalid) {
				t.Errorf("expected ErrConfigInvalid, got %v", err)
			}
		})
	}
}
