package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pattern"
)

const (
	SourceStore     = "store"
	SourceGenerated = "generated"
)

type patternRepo interface {
	Save(ctx context.Context, table *entity.PatternTable) error
	Get(ctx context.Context, size, winningLen int) (*entity.PatternTable, error)
	List(ctx context.Context) ([]*entity.PatternTable, error)
}

// Pair is one board configuration.
type Pair struct {
	Size       int
	WinningLen int
}

// TableSummary reports where a table came from and how many patterns it has.
type TableSummary struct {
	Pair
	Patterns int
	Source   string
}

// TableManager keeps the stored pattern tables and the in-process cache in
// step. A nil repository turns it into a plain generator.
type TableManager struct {
	logger *slog.Logger
	repo   patternRepo
}

func NewTableManager(logger *slog.Logger, repo patternRepo) *TableManager {
	return &TableManager{
		logger: logger.With("component", "table-manager"),
		repo:   repo,
	}
}

// Load returns the patterns for the pair. A valid stored table is handed to
// the process-wide cache; otherwise the table is generated and stored.
func (that *TableManager) Load(ctx context.Context, size, winningLen int) ([]pattern.Pattern, error) {
	patterns, _, err := that.load(ctx, size, winningLen)
	return patterns, err
}

func (that *TableManager) load(ctx context.Context, size, winningLen int) ([]pattern.Pattern, string, error) {
	log := that.logger.With("method", "load", "key", entity.TableKey(size, winningLen))

	if _, err := pattern.Count(size, winningLen); err != nil {
		return nil, "", err
	}

	if that.repo == nil {
		patterns, err := pattern.For(size, winningLen)
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate patterns: %w", err)
		}

		return patterns, SourceGenerated, nil
	}

	stored, err := that.repo.Get(ctx, size, winningLen)
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		log.Debug("pattern table not stored yet")
	case err != nil:
		return nil, "", fmt.Errorf("failed to get pattern table: %w", err)
	default:
		patterns, err := that.prime(stored)
		if err == nil {
			log.Debug("pattern table loaded from store", "patterns", len(patterns))
			return patterns, SourceStore, nil
		}

		log.Warn("stored pattern table is invalid, regenerating", "error", err)
	}

	patterns, err := pattern.For(size, winningLen)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate patterns: %w", err)
	}

	if err = that.repo.Save(ctx, entity.NewPatternTable(size, winningLen, patterns)); err != nil {
		return nil, "", fmt.Errorf("failed to save pattern table: %w", err)
	}

	log.Info("pattern table generated and stored", "patterns", len(patterns))

	return patterns, SourceGenerated, nil
}

func (that *TableManager) prime(stored *entity.PatternTable) ([]pattern.Pattern, error) {
	patterns, err := stored.Decode()
	if err != nil {
		return nil, err
	}

	if err = pattern.Prime(stored.Size, stored.WinningLen, patterns); err != nil {
		return nil, err
	}

	return pattern.For(stored.Size, stored.WinningLen)
}

// Precompute loads every pair, storing whatever is missing.
func (that *TableManager) Precompute(ctx context.Context, pairs []Pair) ([]TableSummary, error) {
	summaries := make([]TableSummary, 0, len(pairs))

	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return summaries, fmt.Errorf("precompute interrupted: %w", err)
		}

		patterns, source, err := that.load(ctx, pair.Size, pair.WinningLen)
		if err != nil {
			return summaries, fmt.Errorf("failed to precompute %s: %w", entity.TableKey(pair.Size, pair.WinningLen), err)
		}

		summaries = append(summaries, TableSummary{Pair: pair, Patterns: len(patterns), Source: source})
	}

	return summaries, nil
}

// Stored lists the tables currently in the store.
func (that *TableManager) Stored(ctx context.Context) ([]*entity.PatternTable, error) {
	if that.repo == nil {
		return []*entity.PatternTable{}, nil
	}

	tables, err := that.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pattern tables: %w", err)
	}

	return tables, nil
}
