package pattern

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type tableKey struct {
	size       int
	winningLen int
}

// Cache holds one pattern table per (size, winningLen) pair. Tables are built
// on first request and never change afterwards.
type Cache struct {
	mu       sync.RWMutex
	tables   map[tableKey][]Pattern
	generate func(size, winningLen int) ([]Pattern, error)
}

func NewCache() *Cache {
	return &Cache{
		tables:   make(map[tableKey][]Pattern),
		generate: Generate,
	}
}

// Get returns the table for the pair, generating it on the first call.
// Generation errors are not cached.
func (that *Cache) Get(size, winningLen int) ([]Pattern, error) {
	key := tableKey{size: size, winningLen: winningLen}

	that.mu.RLock()
	table, ok := that.tables[key]
	that.mu.RUnlock()

	if ok {
		return slices.Clone(table), nil
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if table, ok = that.tables[key]; ok {
		return slices.Clone(table), nil
	}

	table, err := that.generate(size, winningLen)
	if err != nil {
		return nil, err
	}
	that.tables[key] = table

	return slices.Clone(table), nil
}

// Put stores a table built elsewhere, e.g. loaded from storage, unless the
// pair is already present. The table must match Generate's output exactly.
func (that *Cache) Put(size, winningLen int, patterns []Pattern) error {
	if err := check(size, winningLen, patterns); err != nil {
		return err
	}

	key := tableKey{size: size, winningLen: winningLen}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.tables[key]; !ok {
		that.tables[key] = slices.Clone(patterns)
	}

	return nil
}

// check accepts only the table Generate builds for the pair, mask for mask
// and in the same order.
func check(size, winningLen int, patterns []Pattern) error {
	want, err := Generate(size, winningLen)
	if err != nil {
		return err
	}

	if len(patterns) != len(want) {
		return fmt.Errorf("%w: expected %d patterns for %dx%d/%d, got %d",
			apperror.ErrInvalidWinningPattern, len(want), size, size, winningLen, len(patterns))
	}

	for i, p := range patterns {
		if p.mask != want[i].mask {
			return fmt.Errorf("%w: pattern %d is %q, expected %q for %dx%d/%d",
				apperror.ErrInvalidWinningPattern, i, p, want[i], size, size, winningLen)
		}
	}

	return nil
}

// Len returns the number of tables built so far.
func (that *Cache) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.tables)
}

var shared = NewCache()

// For returns the process-wide table for the pair.
func For(size, winningLen int) ([]Pattern, error) {
	return shared.Get(size, winningLen)
}

// Prime hands a stored table to the process-wide cache.
func Prime(size, winningLen int, patterns []Pattern) error {
	return shared.Put(size, winningLen, patterns)
}
