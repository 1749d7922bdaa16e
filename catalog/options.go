package catalog

import (
	"time"

	"go.uber.org/zap"
)

// DefaultTTL is how long a fetched product list stays fresh.
const DefaultTTL = 10 * time.Minute

// Metrics exposes catalog-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	// Fetch is called once per store query with its duration and result.
	Fetch(d time.Duration, err error)
	// Size reports the number of cached products after a refresh or
	// invalidation.
	Size(products int)
}

// Clock provides time in UnixNano; useful for deterministic tests.
type Clock interface{ NowUnixNano() int64 }

// Options configures the catalog. Only Store is required; New applies
// defaults for the rest:
//   - TTL <= 0     => DefaultTTL
//   - nil Metrics  => NoopMetrics
//   - nil Logger   => zap.NewNop()
//   - nil Clock    => time.Now()
type Options struct {
	// Store is queried on every cache miss.
	Store Store

	// TTL is how long a successful fetch stays valid.
	TTL time.Duration

	// OnRefresh is called after each successful fetch, outside the lock.
	OnRefresh func(products []ProductDisplay)

	// Observability
	Metrics Metrics
	Logger  *zap.Logger

	// Clock allows overriding time source (tests). Nil => time.Now().
	Clock Clock
}
