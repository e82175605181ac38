package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
	"github.com/spf13/viper"
)

type Config struct {
	Simulation SimulationConfig          `mapstructure:"simulation"`
	Data       DataConfig                `mapstructure:"data"`
	Feed       FeedConfig                `mapstructure:"feed"`
	Strategies map[string]StrategyConfig `mapstructure:"strategies"`
	Logging    LoggingConfig             `mapstructure:"logging"`
	Metrics    MetricsConfig             `mapstructure:"metrics"`
}

type SimulationConfig struct {
	InitialCash   float64 `mapstructure:"initial_cash"`
	DefaultSymbol string  `mapstructure:"default_symbol"`
	DefaultUnits  int64   `mapstructure:"default_units"`
}

type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// FeedConfig tunes the synthetic candle generator.
type FeedConfig struct {
	Seed       int64   `mapstructure:"seed"`
	BaseVolume float64 `mapstructure:"base_volume"`
	Volatility float64 `mapstructure:"volatility"`
	MaxWindow  int     `mapstructure:"max_window"`
}

type StrategyConfig struct {
	Enabled bool               `mapstructure:"enabled"`
	Params  map[string]float64 `mapstructure:"params"`
}

type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides (TRADESIM_SIMULATION_INITIAL_CASH etc.)
	v.SetEnvPrefix("TRADESIM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			InitialCash:   100000,
			DefaultSymbol: "AAPL",
			DefaultUnits:  10,
		},
		Data: DataConfig{
			Dir: "./data",
		},
		Feed: FeedConfig{
			BaseVolume: 1000000,
			Volatility: 0.02,
			MaxWindow:  1000,
		},
		Logging: LoggingConfig{
			Development: false,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Simulation.InitialCash < 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("initial_cash cannot be negative, got %f", c.Simulation.InitialCash))
	}
	if c.Simulation.DefaultUnits < 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("default_units must be at least 1, got %d", c.Simulation.DefaultUnits))
	}
	if c.Simulation.DefaultSymbol == "" {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("default_symbol cannot be empty"))
	}

	if c.Feed.Volatility <= 0 || c.Feed.Volatility >= 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("feed volatility must be in (0, 1), got %f", c.Feed.Volatility))
	}
	if c.Feed.BaseVolume <= 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("feed base_volume must be positive, got %f", c.Feed.BaseVolume))
	}
	if c.Feed.MaxWindow < 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("feed max_window must be at least 1, got %d", c.Feed.MaxWindow))
	}

	for name, sc := range c.Strategies {
		for param, value := range sc.Params {
			if value < 0 {
				return core.WrapError(core.ErrConfigInvalid,
					fmt.Errorf("strategy %s param %s cannot be negative, got %f", name, param, value))
			}
		}
	}

	return nil
}

// StrategyParams returns the configured parameter overrides for a strategy,
// or nil when none are set.
func (c *Config) StrategyParams(name string) map[string]float64 {
	sc, ok := c.Strategies[name]
	if !ok {
		return nil
	}
	return sc.Params
}
