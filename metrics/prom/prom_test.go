package prom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IvanBrykalov/catalogcache/catalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestAdapter_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := New(reg, "catalog", "test", nil)

	a.Hit()
	a.Hit()
	a.Miss()
	a.Fetch(10*time.Millisecond, nil)
	a.Fetch(5*time.Millisecond, errors.New("down"))
	a.Size(42)

	if got := testutil.ToFloat64(a.hits); got != 2 {
		t.Fatalf("hits want 2, got %v", got)
	}
	if got := testutil.ToFloat64(a.misses); got != 1 {
		t.Fatalf("misses want 1, got %v", got)
	}
	if got := testutil.ToFloat64(a.fetches.WithLabelValues("ok")); got != 1 {
		t.Fatalf("ok fetches want 1, got %v", got)
	}
	if got := testutil.ToFloat64(a.fetches.WithLabelValues("error")); got != 1 {
		t.Fatalf("error fetches want 1, got %v", got)
	}
	if got := testutil.ToFloat64(a.products); got != 42 {
		t.Fatalf("products want 42, got %v", got)
	}
	if n := testutil.CollectAndCount(a.latency); n != 1 {
		t.Fatalf("latency histogram want 1 series, got %d", n)
	}
}

// The adapter wired into a catalog sees one miss, one fetch and one hit.
func TestAdapter_WithCatalog(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := New(reg, "catalog", "wired", prometheus.Labels{"app": "test"})

	store := catalog.StoreFunc(func(context.Context) ([]catalog.Product, error) {
		return []catalog.Product{{ID: 1, Name: "Milk", Brand: "Lala", Price: 30, Active: true}}, nil
	})
	c := catalog.New(catalog.Options{Store: store, Metrics: a})
	t.Cleanup(func() { _ = c.Close() })

	for i := 0; i < 2; i++ {
		if _, err := c.Products(context.Background()); err != nil {
			t.Fatal(err)
		}
	}

	if got := testutil.ToFloat64(a.misses); got != 1 {
		t.Fatalf("misses want 1, got %v", got)
	}
	if got := testutil.ToFloat64(a.hits); got != 1 {
		t.Fatalf("hits want 1, got %v", got)
	}
	if got := testutil.ToFloat64(a.products); got != 1 {
		t.Fatalf("products want 1, got %v", got)
	}
}
