package catalog

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"testing"
	"time"
)

// A mixed workload of concurrent reads, invalidations and helper calls.
// Should pass under `-race` without detector reports.
func TestRace_Basic(t *testing.T) {
	st := &fakeStore{rows: sampleRows(), delay: time.Millisecond}
	c := New(Options{Store: st, TTL: 5 * time.Millisecond})
	t.Cleanup(func() { _ = c.Close() })

	workers := 4 * runtime.GOMAXPROCS(0)
	deadline := time.Now().Add(500 * time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)*9973))
			for time.Now().Before(deadline) {
				switch r.Intn(100) {
				case 0, 1, 2: // ~3% Invalidate
					c.Invalidate()
				case 3, 4, 5, 6, 7: // ~5% Filters
					_, _ = c.Filters(context.Background())
				case 8, 9: // ~2% Stats
					_ = c.Stats()
				default: // ~90% read + helpers
					list, err := c.Products(context.Background())
					if err != nil {
						t.Errorf("Products: %v", err)
						return
					}
					_ = GroupProducts(FilterProducts(SearchProducts(list, "milk"), "", ""))
				}
			}
		}(w)
	}
	wg.Wait()
}

// Helpers never modify the shared cached list.
func TestRace_HelpersDoNotMutateCache(t *testing.T) {
	st := &fakeStore{rows: []Product{
		{ID: 1, Name: "Milk", Brand: "Lala", Price: 30, Active: true},
		{ID: 2, Name: "Milk", Brand: "Lala", Price: 20, Active: true},
		{ID: 3, Name: "Milk", Brand: "Alpura", Price: 28, Active: true},
	}}
	c := newTestCatalog(t, st, &fakeClock{t: 1})

	list, err := c.Products(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	snapshot := append([]ProductDisplay(nil), list...)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = GroupProducts(list)
			_ = DeriveFilters(list)
			_ = SearchProducts(list, "lala")
		}()
	}
	wg.Wait()

	for i := range list {
		if list[i] != snapshot[i] {
			t.Fatalf("cached list modified at %d: %+v != %+v", i, list[i], snapshot[i])
		}
	}
}
