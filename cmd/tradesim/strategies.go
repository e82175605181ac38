package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List available strategies",
	Long:  "List the registered strategies with their default parameters and chart overlays",
	RunE:  runStrategies,
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}

func runStrategies(cmd *cobra.Command, args []string) error {
	engine, err := newApp()
	if err != nil {
		return err
	}

	for _, def := range engine.Strategies() {
		fmt.Printf("%s (%s)\n", def.Name, def.Label)

		keys := make([]string, 0, len(def.DefaultParams))
		for k := range def.DefaultParams {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %-16s %g\n", k, def.DefaultParams[k])
		}

		if len(def.Overlays) > 0 {
			fmt.Printf("  overlays: %s\n", strings.Join(def.Overlays, ", "))
		}
		fmt.Println()
	}
	return nil
}
