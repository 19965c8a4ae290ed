package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type sqlitePatternTable struct {
	conn *sql.DB
}

func NewSQLitePatternRepository(conn *sql.DB) PatternRepository {
	return &sqlitePatternTable{
		conn: conn,
	}
}

func (that *sqlitePatternTable) Save(ctx context.Context, table *entity.PatternTable) error {
	patternsJSON, err := json.Marshal(table.Patterns)
	if err != nil {
		return fmt.Errorf("could not marshal patterns: %w", err)
	}

	query := `INSERT INTO pattern_tables (size, winning_len, patterns) VALUES (?, ?, ?)
		ON CONFLICT (size, winning_len) DO UPDATE SET patterns = excluded.patterns`

	if _, err = that.conn.ExecContext(ctx, query, table.Size, table.WinningLen, string(patternsJSON)); err != nil {
		return fmt.Errorf("can't save pattern table: %w", err)
	}

	return nil
}

func (that *sqlitePatternTable) Get(ctx context.Context, size, winningLen int) (*entity.PatternTable, error) {
	query := `SELECT patterns FROM pattern_tables WHERE size = ? AND winning_len = ?`

	var patternsJSON string

	err := that.conn.QueryRowContext(ctx, query, size, winningLen).Scan(&patternsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrNotFound, entity.TableKey(size, winningLen))
	}
	if err != nil {
		return nil, fmt.Errorf("can't find pattern table: %w", err)
	}

	return decodeRow(size, winningLen, patternsJSON)
}

func (that *sqlitePatternTable) Delete(ctx context.Context, size, winningLen int) error {
	query := `DELETE FROM pattern_tables WHERE size = ? AND winning_len = ?`

	result, err := that.conn.ExecContext(ctx, query, size, winningLen)
	if err != nil {
		return fmt.Errorf("can't delete pattern table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't delete pattern table: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrNotFound, entity.TableKey(size, winningLen))
	}

	return nil
}

func (that *sqlitePatternTable) List(ctx context.Context) ([]*entity.PatternTable, error) {
	query := `SELECT size, winning_len, patterns FROM pattern_tables ORDER BY size, winning_len`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't list pattern tables: %w", err)
	}
	defer rows.Close()

	tables := make([]*entity.PatternTable, 0)
	for rows.Next() {
		var (
			size, winningLen int
			patternsJSON     string
		)

		if err = rows.Scan(&size, &winningLen, &patternsJSON); err != nil {
			return nil, fmt.Errorf("can't scan pattern table: %w", err)
		}

		table, err := decodeRow(size, winningLen, patternsJSON)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list pattern tables: %w", err)
	}

	return tables, nil
}

func decodeRow(size, winningLen int, patternsJSON string) (*entity.PatternTable, error) {
	table := &entity.PatternTable{Size: size, WinningLen: winningLen}
	if err := json.Unmarshal([]byte(patternsJSON), &table.Patterns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal patterns: %w", err)
	}

	return table, nil
}
