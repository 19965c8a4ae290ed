package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

var (
	flagPlaySize  int
	flagPlayWin   int
	flagPlayStart string
	flagPlaySeed  int64
	flagPlayCells string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play two random bots against each other",
	Long: `Plays a match between two random players and prints every position.
A starting position can be given with --cells, row by row, using "." for
empty cells.

Examples:
  tictactoe play --size 5 --win 4 --seed 42
  tictactoe play --cells "X.O.X...." --start X`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlaySize, "size", 0, "board size")
	playCmd.Flags().IntVar(&flagPlayWin, "win", 0, "winning length")
	playCmd.Flags().StringVar(&flagPlayStart, "start", "", "mark that moves first, X or O")
	playCmd.Flags().Int64Var(&flagPlaySeed, "seed", 0, "random seed (default current time)")
	playCmd.Flags().StringVar(&flagPlayCells, "cells", "", "starting position")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	return withApp(func(ctx context.Context, application *app.App) error {
		board := application.Config.Board

		size, winningLen, start := flagPlaySize, flagPlayWin, flagPlayStart
		if size == 0 {
			size = board.Size
		}
		if winningLen == 0 {
			winningLen = board.WinningLen
		}
		if start == "" {
			start = board.StartingMark
		}

		startingMark, err := entity.ParseMark(strings.ToUpper(start))
		if err != nil {
			return err
		}

		// warms the cache from the store before the engine asks for the table
		if _, err = application.Tables.Load(ctx, size, winningLen); err != nil {
			return fmt.Errorf("failed to load patterns: %w", err)
		}

		cells := strings.Repeat(" ", size*size)
		if flagPlayCells != "" {
			cells = strings.ReplaceAll(flagPlayCells, ".", " ")
		}

		grid, err := entity.NewGrid(size, cells, winningLen)
		if err != nil {
			return err
		}

		seed := flagPlaySeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		player1 := service.NewPlayer("player 1", entity.MarkCross, service.NewSeededRandomStrategy(seed))
		player2 := service.NewPlayer("player 2", entity.MarkNaught, service.NewSeededRandomStrategy(seed+1))

		onError := func(player *service.Player, err error) {
			application.Logger.Warn("move rejected", "player", player.Name, "error", err)
		}

		match, err := service.NewMatch(application.Logger, player1, player2, console.NewRenderer(cmd.OutOrStdout()), onError)
		if err != nil {
			return err
		}

		application.Logger.Info("match started", "size", size, "winning_len", winningLen, "start", startingMark, "seed", seed)

		if _, err = match.Play(ctx, startingMark, grid); err != nil {
			return fmt.Errorf("match failed: %w", err)
		}

		return nil
	})
}
