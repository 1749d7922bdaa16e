// Package catalog provides a storefront product catalog backed by a remote
// store, cached in memory for a short TTL, with search, filter and grouping
// helpers over the cached list.
//
// Design
//
//   - Cache: a Catalog holds one list, the active products of its Store,
//     plus an absolute expiry (UnixNano). The list is fresh while it is
//     non-nil and now < expiry. The default TTL is 10 minutes.
//
//   - Fetch: on miss the Store is queried for the rows of "products" with
//     active = true ordered by name. Every row becomes a ProductDisplay whose
//     DisplayName is "Name Flavor" (or just Name). A failed fetch leaves the
//     cache as it was and returns a *FetchError. An empty table is not an
//     error.
//
//   - Concurrency: concurrent misses are coalesced so at most one store
//     query is in flight; all waiting callers get its result.
//
//   - Helpers: SearchProducts, FilterProducts, GroupProducts and their
//     grouped variants are pure functions. They never fetch and never modify
//     their input.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Fetch/Size signals.
//     By default NoopMetrics is used; plug metrics/prom to export them.
//
// Basic usage
//
//	c := catalog.New(catalog.Options{Store: postgres.New(db)})
//	products, err := c.Products(ctx)
//	if err != nil {
//	    return err
//	}
//	hits := catalog.SearchProducts(products, "cafe")
//	hits = catalog.FilterProducts(hits, "Proteina", "")
//	groups := catalog.GroupProducts(hits)
//
// The slice returned by Products is shared by every caller until the next
// refresh. Treat it as read-only.
package catalog
