package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	backtestSymbol string
	backtestFrom   string
	backtestTo     string
	backtestParams []string
)

var backtestCmd = &cobra.Command{
	Use:   "backtest [strategy]",
	Short: "Run backtest on a strategy",
	Long:  "Run a strategy against historical data and show performance statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runBacktest,
}

func init() {
	backtestCmd.Flags().StringVar(&backtestSymbol, "symbol", "", "Symbol to backtest (required)")
	backtestCmd.Flags().StringVar(&backtestFrom, "from", "", "Start date YYYY-MM-DD")
	backtestCmd.Flags().StringVar(&backtestTo, "to", "", "End date YYYY-MM-DD")
	backtestCmd.Flags().StringArrayVarP(&backtestParams, "param", "p", nil,
		"Strategy parameter override as name=value (repeatable)")

	backtestCmd.MarkFlagRequired("symbol")

	rootCmd.AddCommand(backtestCmd)
}

func runBacktest(cmd *cobra.Command, args []string) error {
	strategyName := args[0]

	var fromDate, toDate time.Time
	var err error

	if backtestFrom != "" {
		fromDate, err = time.Parse("2006-01-02", backtestFrom)
		if err != nil {
			return fmt.Errorf("invalid from date format (expected YYYY-MM-DD): %w", err)
		}
	}
	if backtestTo != "" {
		toDate, err = time.Parse("2006-01-02", backtestTo)
		if err != nil {
			return fmt.Errorf("invalid to date format (expected YYYY-MM-DD): %w", err)
		}
	}
	if !fromDate.IsZero() && !toDate.IsZero() && toDate.Before(fromDate) {
		return fmt.Errorf("end date must be after start date")
	}

	params, err := parseParams(backtestParams)
	if err != nil {
		return err
	}

	engine, err := newApp()
	if err != nil {
		return err
	}

	result, err := engine.Backtest(cmd.Context(), backtestSymbol, strategyName,
		params, fromDate, toDate)
	if err != nil {
		return err
	}

	fmt.Println("=== Backtest ===")
	fmt.Printf("Strategy: %s\n", result.Strategy)
	fmt.Printf("Symbol:   %s\n", result.Symbol)
	if !result.Start.IsZero() {
		fmt.Printf("Period:   %s to %s\n",
			result.Start.Format("2006-01-02"), result.End.Format("2006-01-02"))
	}
	fmt.Println()

	m := result.Metrics
	fmt.Printf("Total return:      %.2f%%\n", m.TotalReturnPct)
	fmt.Printf("Annualized return: %.2f%%\n", m.AnnualizedReturnPct)
	fmt.Printf("Max drawdown:      %.2f%%\n", m.MaxDrawdownPct)
	fmt.Printf("Sharpe ratio:      %.2f\n", m.SharpeRatio)
	fmt.Printf("Win rate:          %.2f%% (%d won / %d lost)\n",
		m.WinRatePct, m.WinningTrades, m.LosingTrades)
	fmt.Printf("Trades executed:   %d\n", m.TradesExecuted)
	fmt.Printf("Final equity:      %.2f (from %.2f)\n", m.FinalEquity, result.InitialCash)

	if len(result.Trades) > 0 {
		fmt.Println()
		fmt.Println("Trades:")
		for _, trade := range result.Trades {
			fmt.Printf("  %s  %-4s %6d @ %.2f", trade.Time.Format("2006-01-02"),
				trade.Side, trade.Quantity, trade.Price)
			if trade.Side == "SELL" {
				fmt.Printf("  pnl %.2f", trade.PnL)
			}
			fmt.Println()
		}
	}
	return nil
}

func parseParams(raw []string) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	params := make(map[string]float64, len(raw))
	for _, pair := range raw {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid parameter %q (expected name=value)", pair)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter value %q: %w", pair, err)
		}
		params[name] = f
	}
	return params, nil
}
