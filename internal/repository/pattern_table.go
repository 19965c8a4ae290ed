package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const tableKeyPattern = "patterns:*"

type PatternRepository interface {
	Save(ctx context.Context, table *entity.PatternTable) error
	Get(ctx context.Context, size, winningLen int) (*entity.PatternTable, error)
	Delete(ctx context.Context, size, winningLen int) error
	List(ctx context.Context) ([]*entity.PatternTable, error)
}

type redisPatternTable struct {
	client *redis.Client
}

func NewRedisPatternRepository(client *redis.Client) PatternRepository {
	return &redisPatternTable{
		client: client,
	}
}

func (that *redisPatternTable) Save(ctx context.Context, table *entity.PatternTable) error {
	tableJSON, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("could not marshal pattern table: %w", err)
	}

	err = that.client.Set(ctx, table.Key(), tableJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set pattern table: %w", err)
	}

	return nil
}

func (that *redisPatternTable) Get(ctx context.Context, size, winningLen int) (*entity.PatternTable, error) {
	return that.getByKey(ctx, entity.TableKey(size, winningLen))
}

func (that *redisPatternTable) getByKey(ctx context.Context, key string) (*entity.PatternTable, error) {
	response, err := that.client.Get(ctx, key).Result()

	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrNotFound, key)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get pattern table %s: %w", key, err)
	}

	var table entity.PatternTable
	if err = json.Unmarshal([]byte(response), &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pattern table: %w", err)
	}

	return &table, nil
}

func (that *redisPatternTable) Delete(ctx context.Context, size, winningLen int) error {
	key := entity.TableKey(size, winningLen)

	deleted, err := that.client.Del(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete pattern table: %w", err)
	}

	if deleted == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrNotFound, key)
	}

	return nil
}

func (that *redisPatternTable) List(ctx context.Context) ([]*entity.PatternTable, error) {
	tables := make([]*entity.PatternTable, 0)

	iter := that.client.Scan(ctx, 0, tableKeyPattern, 0).Iterator()
	for iter.Next(ctx) {
		table, err := that.getByKey(ctx, iter.Val())
		if errors.Is(err, apperror.ErrNotFound) {
			// deleted between scan and get
			continue
		}
		if err != nil {
			return nil, err
		}

		tables = append(tables, table)
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan pattern tables: %w", err)
	}

	sortTables(tables)

	return tables, nil
}

func sortTables(tables []*entity.PatternTable) {
	sort.Slice(tables, func(i, j int) bool {
		if tables[i].Size != tables[j].Size {
			return tables[i].Size < tables[j].Size
		}
		return tables[i].WinningLen < tables[j].WinningLen
	})
}
