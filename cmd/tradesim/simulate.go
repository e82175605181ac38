package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
)

var (
	simulateSymbol string
	simulateSteps  int
	simulateSeed   int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [strategy]",
	Short: "Run a pseudo-live feed simulation",
	Long: `Stream synthetic candles through a strategy and trade its signals
against the portfolio ledger, then print the resulting portfolio.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simulateSymbol, "symbol", "", "Symbol to simulate (defaults to configured symbol)")
	simulateCmd.Flags().IntVar(&simulateSteps, "steps", 200, "Number of candles to stream")
	simulateCmd.Flags().Int64Var(&simulateSeed, "seed", 0, "Random seed (0 uses config or wall clock)")

	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	engine, err := newApp()
	if err != nil {
		return err
	}

	symbol := simulateSymbol
	if symbol == "" {
		symbol = engine.DefaultSymbol()
	}

	sess, err := engine.NewSession(symbol, args[0], simulateSeed)
	if err != nil {
		return err
	}

	// Ctrl-C stops the stream and still prints the summary.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := sess.Run(ctx, simulateSteps)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	var signals, trades int
	for _, r := range results {
		if r.Signal != core.SignalNone {
			signals++
		}
		if r.Trade != nil {
			trades++
		}
	}

	fmt.Println("=== Simulation ===")
	fmt.Printf("Strategy: %s\n", args[0])
	fmt.Printf("Symbol:   %s\n", symbol)
	fmt.Printf("Steps:    %d (signals %d, trades %d)\n", len(results), signals, trades)
	fmt.Println()

	summary := engine.Ledger().Summary()
	fmt.Printf("Cash:          %.2f\n", summary.Cash)
	fmt.Printf("Equity:        %.2f\n", summary.Equity)
	fmt.Printf("Unrealized PL: %.2f\n", summary.UnrealizedPL)
	for _, pos := range summary.Positions {
		fmt.Printf("  %-6s %6d @ %.2f (now %.2f, pl %.2f)\n",
			pos.Symbol, pos.Quantity, pos.AverageCost, pos.CurrentPrice, pos.UnrealizedPL)
	}
	return nil
}
