package catalog

import "context"

// Store is the remote data store the catalog reads from.
//
// ListActiveProducts must return the rows of Table where active = true,
// projected to Columns and ordered by OrderBy ascending. An empty table
// yields an empty slice and a nil error.
type Store interface {
	ListActiveProducts(ctx context.Context) ([]Product, error)
}

// StoreFunc adapts an ordinary function to the Store interface.
type StoreFunc func(ctx context.Context) ([]Product, error)

// ListActiveProducts calls f(ctx).
func (f StoreFunc) ListActiveProducts(ctx context.Context) ([]Product, error) { return f(ctx) }

// Catalog is a time-bounded in-memory cache of the active product list.
// All methods are safe for concurrent use by multiple goroutines.
type Catalog interface {
	// Products returns the cached product list, fetching it from the
	// store when the cache is empty or expired. Concurrent misses share
	// a single fetch.
	//
	// The returned slice is shared with every other caller until the next
	// refresh. Callers must not modify it.
	Products(ctx context.Context) ([]ProductDisplay, error)

	// Filters returns the distinct categories and brands of Products.
	// It shares Products' cache and error behavior.
	Filters(ctx context.Context) (Filters, error)

	// Valid reports whether a cached list exists and has not expired.
	Valid() bool

	// Invalidate drops the cached list; the next Products call refetches.
	Invalidate()

	// Stats returns a snapshot of the cache counters.
	Stats() Stats

	// Close marks the catalog closed. Later Products/Filters calls
	// return ErrClosed. It always returns nil.
	Close() error
}
