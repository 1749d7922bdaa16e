// Package memory is an in-process catalog.Store for local runs, examples
// and benchmarks.
package memory

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/IvanBrykalov/catalogcache/catalog"
)

// Store keeps a product table in memory and answers the catalog query
// (active rows ordered by name) against it.
type Store struct {
	mu      sync.RWMutex
	rows    []catalog.Product
	latency time.Duration
	err     error

	queries atomic.Int64
}

// New returns a Store holding a copy of rows.
func New(rows ...catalog.Product) *Store {
	return &Store{rows: slices.Clone(rows)}
}

// LoadJSON reads a JSON array of products (remote column names) from r.
func LoadJSON(r io.Reader) (*Store, error) {
	var rows []catalog.Product
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("memory: decode products: %w", err)
	}
	return New(rows...), nil
}

// SetLatency makes every query wait d first, simulating a remote store.
func (s *Store) SetLatency(d time.Duration) {
	s.mu.Lock()
	s.latency = d
	s.mu.Unlock()
}

// SetError makes queries fail with err until it is reset to nil.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Replace swaps the whole table.
func (s *Store) Replace(rows ...catalog.Product) {
	s.mu.Lock()
	s.rows = slices.Clone(rows)
	s.mu.Unlock()
}

// Queries returns how many times ListActiveProducts was called.
func (s *Store) Queries() int64 { return s.queries.Load() }

// ListActiveProducts implements catalog.Store.
func (s *Store) ListActiveProducts(ctx context.Context) ([]catalog.Product, error) {
	s.queries.Add(1)

	s.mu.RLock()
	latency, err := s.latency, s.err
	s.mu.RUnlock()

	if latency > 0 {
		t := time.NewTimer(latency)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]catalog.Product, 0, len(s.rows))
	for _, p := range s.rows {
		if p.Active {
			out = append(out, p)
		}
	}
	s.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b catalog.Product) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

var _ catalog.Store = (*Store)(nil)
