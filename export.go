package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

var (
	flagExportSize   int
	flagExportWin    int
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a pattern table as JSON or YAML",
	Long: `Writes every winning pattern of one board configuration. Size and winning
length default to the board in the config.

Examples:
  tictactoe export --size 5 --win 4
  tictactoe export --format yaml --out patterns.yml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().IntVar(&flagExportSize, "size", 0, "board size")
	exportCmd.Flags().IntVar(&flagExportWin, "win", 0, "winning length")
	exportCmd.Flags().StringVar(&flagExportFormat, "format", console.FormatJSON, "json or yaml")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	return withApp(func(ctx context.Context, application *app.App) error {
		size, winningLen := flagExportSize, flagExportWin
		if size == 0 {
			size = application.Config.Board.Size
		}
		if winningLen == 0 {
			winningLen = application.Config.Board.WinningLen
		}

		patterns, err := application.Tables.Load(ctx, size, winningLen)
		if err != nil {
			return fmt.Errorf("failed to load patterns: %w", err)
		}

		if flagExportOut == "" {
			return console.Export(cmd.OutOrStdout(), flagExportFormat, size, winningLen, patterns)
		}

		return console.ExportFile(flagExportOut, flagExportFormat, size, winningLen, patterns)
	})
}
