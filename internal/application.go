package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var (
	ErrAddrNotFound  = errors.New("redis address string is empty")
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// App holds the storage connections and the use cases built on them.
type App struct {
	Logger *slog.Logger
	Config *config.Config
	Tables *usecase.TableManager

	closers []func() error
}

// New connects the configured pattern store and builds the table manager.
func New(ctx context.Context, logger *slog.Logger, conf *config.Config) (*App, error) {
	app := &App{Logger: logger, Config: conf}

	repo, err := app.openRepository(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Tables = usecase.NewTableManager(logger, repo)

	return app, nil
}

func (that *App) openRepository(ctx context.Context) (repository.PatternRepository, error) {
	log := that.Logger.With("component", "app", "driver", that.Config.Storage.Driver)

	switch that.Config.Storage.Driver {
	case config.DriverNone:
		log.Debug("pattern tables are kept in memory only")
		return nil, nil

	case config.DriverRedis:
		if that.Config.Redis.Host == "" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, that.Config.Redis.GetRedisAddr())
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}
		that.closers = append(that.closers, redisStorage.Close)

		log.Info("connected to redis", "addr", that.Config.Redis.GetRedisAddr())
		return repository.NewRedisPatternRepository(redisStorage.Connection), nil

	case config.DriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(ctx, that.Config.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}
		that.closers = append(that.closers, sqliteStorage.Close)

		log.Info("opened sqlite storage", "path", that.Config.Storage.SQLitePath)
		return repository.NewSQLitePatternRepository(sqliteStorage.Connection), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, that.Config.Storage.Driver)
}

// Pairs converts the configured tables for the table manager.
func (that *App) Pairs() []usecase.Pair {
	configured := that.Config.TablePairs()

	pairs := make([]usecase.Pair, 0, len(configured))
	for _, pair := range configured {
		pairs = append(pairs, usecase.Pair{Size: pair.Size, WinningLen: pair.WinningLen})
	}

	return pairs
}

func (that *App) Close() {
	for i := len(that.closers) - 1; i >= 0; i-- {
		if err := that.closers[i](); err != nil {
			that.Logger.Error("could not close storage", "component", "app", "error", err)
		}
	}
	that.closers = nil
}

// ShutdownContext is cancelled on SIGINT or SIGTERM.
func ShutdownContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
