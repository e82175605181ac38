package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/app"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/config"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/logger"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "tradesim",
	Short: "tradesim - strategy signal and backtest simulation engine",
	Long: `tradesim computes trading signals from technical indicator strategies,
backtests them against historical data and simulates a pseudo-live feed
against a portfolio ledger.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
}

// newApp loads config and builds the engine shared by subcommands.
func newApp() (*app.App, error) {
	log := logger.Must(debug)

	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Defaults()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return app.New(cfg, log), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
