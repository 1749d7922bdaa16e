package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/IvanBrykalov/catalogcache/internal/singleflight"
	"github.com/IvanBrykalov/catalogcache/internal/stats"
)

// Stats is a point-in-time view of the catalog cache.
type Stats struct {
	stats.Snapshot
	Products  int       `json:"products"`
	Valid     bool      `json:"valid"`
	ExpiresAt time.Time `json:"expires_at"`
}

// catalog caches the active product list of a Store for Options.TTL.
// All methods are safe for concurrent use by multiple goroutines.
type catalog struct {
	// ---- guarded by mu ----
	mu       sync.RWMutex
	products []ProductDisplay // nil = nothing cached
	expiry   int64            // UnixNano; 0 = already expired
	gen      uint64           // bumped by Invalidate
	// refresh coalesces concurrent misses of the current generation into
	// one store query. Invalidate starts a new one.
	refresh *singleflight.Flight[[]ProductDisplay]

	closed atomic.Bool
	opt    Options
	log    *zap.Logger

	counters stats.Counters
}

// New constructs a catalog with the provided Options.
// Defaults:
//   - TTL <= 0     -> DefaultTTL
//   - nil Metrics  -> NoopMetrics
//   - nil Logger   -> zap.NewNop()
func New(opt Options) Catalog {
	if opt.Store == nil {
		panic("catalog: Store must not be nil")
	}
	if opt.TTL <= 0 {
		opt.TTL = DefaultTTL
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	return &catalog{
		refresh: new(singleflight.Flight[[]ProductDisplay]),
		opt:     opt,
		log:     opt.Logger.Named("catalog"),
	}
}

// ---- Catalog implementation ----

// Products returns the cached list, refreshing it from the store on miss.
func (c *catalog) Products(ctx context.Context) ([]ProductDisplay, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}

	// fast path
	if list, ok := c.cached(); ok {
		c.counters.Hits.Add(1)
		c.opt.Metrics.Hit()
		c.log.Debug("serving cached products", zap.Int("products", len(list)))
		return list, nil
	}
	c.counters.Misses.Add(1)
	c.opt.Metrics.Miss()

	c.mu.RLock()
	gen, flight := c.gen, c.refresh
	c.mu.RUnlock()

	list, err, shared := flight.Do(ctx, func() ([]ProductDisplay, error) {
		// double-check after flight join: a previous leader may have
		// stored a fresh list between our miss and this call.
		if list, ok := c.cached(); ok {
			return list, nil
		}
		return c.load(ctx, gen)
	})
	if shared {
		c.counters.Coalesced.Add(1)
	}
	return list, err
}

// Filters derives category and brand filters from the current list.
func (c *catalog) Filters(ctx context.Context) (Filters, error) {
	list, err := c.Products(ctx)
	if err != nil {
		return Filters{}, err
	}
	return DeriveFilters(list), nil
}

// Valid reports whether a cached list exists and is still fresh.
func (c *catalog) Valid() bool {
	_, ok := c.cached()
	return ok
}

// Invalidate clears the cache and resets expiry to "already expired".
func (c *catalog) Invalidate() {
	c.mu.Lock()
	c.products = nil
	c.expiry = 0
	c.gen++
	c.refresh = new(singleflight.Flight[[]ProductDisplay])
	c.mu.Unlock()

	c.counters.Invalidated.Add(1)
	c.opt.Metrics.Size(0)
	c.log.Info("product cache invalidated")
}

// Stats returns counters plus the current cache state.
func (c *catalog) Stats() Stats {
	c.mu.RLock()
	n, exp := len(c.products), c.expiry
	c.mu.RUnlock()

	s := Stats{
		Snapshot: c.counters.Snapshot(),
		Products: n,
		Valid:    c.Valid(),
	}
	if exp > 0 {
		s.ExpiresAt = time.Unix(0, exp)
	}
	return s
}

// Close marks the catalog as closed. Future reads return ErrClosed.
func (c *catalog) Close() error {
	c.closed.Store(true)
	return nil
}

// ---- helpers ----

// cached returns the cached list if it is non-nil and not expired.
func (c *catalog) cached() ([]ProductDisplay, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.products == nil || c.now() >= c.expiry {
		return nil, false
	}
	return c.products, true
}

// load queries the store and, on success, replaces the cached list.
// On failure the cache and expiry are left untouched. A result fetched
// for a generation that was invalidated meanwhile is returned to its
// callers but not cached.
func (c *catalog) load(ctx context.Context, gen uint64) ([]ProductDisplay, error) {
	start := time.Now()
	rows, err := c.opt.Store.ListActiveProducts(ctx)
	elapsed := time.Since(start)

	c.counters.Fetches.Add(1)
	c.opt.Metrics.Fetch(elapsed, err)
	if err != nil {
		c.counters.FetchErrors.Add(1)
		ferr := &FetchError{Op: "fetch products", Err: err}
		c.log.Error("error fetching products",
			zap.String("table", Table),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, ferr
	}

	list := transform(rows)

	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		c.log.Debug("discarding products fetched before invalidation",
			zap.Int("products", len(list)),
		)
		return list, nil
	}
	c.products = list
	c.expiry = c.now() + int64(c.opt.TTL)
	c.mu.Unlock()

	c.opt.Metrics.Size(len(list))
	c.log.Info("product cache refreshed",
		zap.Int("products", len(list)),
		zap.Duration("elapsed", elapsed),
		zap.Duration("ttl", c.opt.TTL),
	)
	if cb := c.opt.OnRefresh; cb != nil {
		cb(list)
	}
	return list, nil
}

// transform turns store rows into display records, dropping inactive rows.
// The result is never nil so an empty table still counts as cached.
func transform(rows []Product) []ProductDisplay {
	out := make([]ProductDisplay, 0, len(rows))
	for _, p := range rows {
		if !p.Active {
			continue
		}
		out = append(out, NewProductDisplay(p))
	}
	return out
}

func (c *catalog) now() int64 {
	if c.opt.Clock != nil {
		return c.opt.Clock.NowUnixNano()
	}
	return time.Now().UnixNano()
}
