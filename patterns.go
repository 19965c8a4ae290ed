package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
)

var flagListStored bool

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Precompute the configured pattern tables",
	Long: `Loads every table listed under "tables" in the config, generating and
storing the ones the store does not have yet.

Examples:
  tictactoe patterns
  tictactoe patterns --list`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

func init() {
	patternsCmd.Flags().BoolVar(&flagListStored, "list", false, "also list every table in the store")
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, _ []string) error {
	return withApp(func(ctx context.Context, application *app.App) error {
		summaries, err := application.Tables.Precompute(ctx, application.Pairs())
		if err != nil {
			return fmt.Errorf("failed to precompute tables: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  %-8s  %-8s  %s\n", "Board", "Patterns", "Source")
		for _, summary := range summaries {
			board := fmt.Sprintf("%dx%d/%d", summary.Size, summary.Size, summary.WinningLen)
			fmt.Fprintf(out, "  %-8s  %-8d  %s\n", board, summary.Patterns, summary.Source)
		}

		if !flagListStored {
			return nil
		}

		stored, err := application.Tables.Stored(ctx)
		if err != nil {
			return fmt.Errorf("failed to list stored tables: %w", err)
		}

		fmt.Fprintln(out)
		if len(stored) == 0 {
			fmt.Fprintln(out, "No tables stored.")
			return nil
		}

		for _, table := range stored {
			fmt.Fprintf(out, "  %-14s  %d\n", table.Key(), len(table.Patterns))
		}

		return nil
	})
}
