// Command bench runs a synthetic shopper workload against a catalog backed by
// a slow in-memory store and exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/IvanBrykalov/catalogcache/catalog"
	pmet "github.com/IvanBrykalov/catalogcache/metrics/prom"
	"github.com/IvanBrykalov/catalogcache/store/memory"
)

var (
	brands     = []string{"Optimum", "Dymatize", "Birdman", "Muscletech", "Lala", "Alpura"}
	categories = []string{"Proteinas", "Creatinas", "Pre-entreno", "Lacteos", "Snacks"}
	flavors    = []string{"", "Chocolate", "Vainilla", "Fresa", "Café", "Plátano"}
)

func main() {
	// ---- Flags ----
	var (
		products = flag.Int("products", 500, "active products in the store")
		latency  = flag.Duration("latency", 50*time.Millisecond, "simulated store latency")
		ttl      = flag.Duration("ttl", 2*time.Second, "catalog TTL")

		workers     = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration    = flag.Duration("duration", 10*time.Second, "benchmark duration")
		searchPct   = flag.Int("search", 60, "percentage of requests that run a search [0..100]")
		groupPct    = flag.Int("group", 20, "percentage of requests that group the list [0..100]")
		invalidateN = flag.Int("invalidate_every", 0, "invalidate the cache every N requests (0 = never)")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "catalog", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Build store + catalog ----
	store := memory.New(generate(*products, *seed)...)
	store.SetLatency(*latency)

	c := catalog.New(catalog.Options{
		Store:   store,
		TTL:     *ttl,
		Metrics: metrics,
	})
	defer func() { _ = c.Close() }()

	// ---- Snapshot flags for goroutines ----
	searchPctVal := *searchPct
	groupPctVal := *groupPct
	invalidateEvery := uint64(*invalidateN)
	seedBase := *seed
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	// ---- Load generation ----
	var total, searches, groups, errs uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workersN)
	for w := 0; w < workersN; w++ {
		go func(id int) {
			defer wg.Done()

			// rand.Rand is not goroutine-safe.
			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))

			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				n := atomic.AddUint64(&total, 1)
				if invalidateEvery > 0 && n%invalidateEvery == 0 {
					c.Invalidate()
				}

				list, err := c.Products(ctx)
				if err != nil {
					if ctx.Err() == nil {
						atomic.AddUint64(&errs, 1)
					}
					continue
				}

				roll := int(localR.Int31n(100))
				switch {
				case roll < searchPctVal:
					atomic.AddUint64(&searches, 1)
					q := brands[localR.Intn(len(brands))]
					if localR.Intn(2) == 0 {
						q = flavors[1+localR.Intn(len(flavors)-1)]
					}
					_ = catalog.SearchProducts(list, q)
				case roll < searchPctVal+groupPctVal:
					atomic.AddUint64(&groups, 1)
					g := catalog.GroupProducts(list)
					_ = catalog.FilterGroupedProducts(g, categories[localR.Intn(len(categories))], "")
				default:
					_ = catalog.FilterProducts(list, "", brands[localR.Intn(len(brands))])
				}
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	st := c.Stats()

	fmt.Printf("products=%d latency=%v ttl=%v workers=%d dur=%v seed=%d\n",
		*products, *latency, *ttl, workersN, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  searches=%d  groups=%d  errors=%d\n",
		ops, float64(ops)/elapsed.Seconds(), atomic.LoadUint64(&searches), atomic.LoadUint64(&groups), atomic.LoadUint64(&errs))
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%  coalesced=%d\n", st.Hits, st.Misses, st.HitRate, st.Coalesced)
	fmt.Printf("store queries=%d  fetches=%d  invalidated=%d\n", store.Queries(), st.Fetches, st.Invalidated)
}

// generate builds n active products with a deterministic mix of names,
// brands and flavors so grouping and disambiguation have work to do.
func generate(n int, seed int64) []catalog.Product {
	r := rand.New(rand.NewSource(seed))
	out := make([]catalog.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, catalog.Product{
			ID:       int64(i + 1),
			Name:     "Producto " + strconv.Itoa(i%(n/4+1)),
			Brand:    brands[r.Intn(len(brands))],
			Flavor:   flavors[r.Intn(len(flavors))],
			Category: categories[r.Intn(len(categories))],
			Size:     strconv.Itoa(250*(1+r.Intn(8))) + "g",
			Price:    float64(100 + r.Intn(1900)),
			Stock:    r.Intn(100),
			Active:   true,
		})
	}
	return out
}
