package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

var flagConfigPath string

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Winning-pattern generator and engine for N x N line games",
	Long: `Generates the winning patterns of an N x N board where K marks in a row win,
keeps them in the configured store and plays matches on top of them.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "./config.yml", "path to the config file")
}

// main - is the entry point of the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withApp loads the config, connects storage and runs fn until it returns or
// the process is signalled.
func withApp(fn func(ctx context.Context, application *app.App) error) error {
	conf := initConfig()
	logger := initLogger(conf)

	ctx, cancel := app.ShutdownContext(logger)
	defer cancel()

	application, err := app.New(ctx, logger, conf)
	if err != nil {
		return fmt.Errorf("app init failed: %w", err)
	}
	defer application.Close()

	return fn(ctx, application)
}

// initialize config.
func initConfig() *config.Config {
	path := flagConfigPath
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}
		path = filepath.Join(baseDir, path)
	}

	return config.MustLoad(path)
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if conf.LogFormat == config.FormatText {
		return slog.New(charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			Level:           charmlog.Level(level),
			ReportTimestamp: true,
			Prefix:          "tictactoe",
		}))
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
