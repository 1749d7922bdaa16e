// Package prom exports catalog metrics to Prometheus.
package prom

import (
	"time"

	"github.com/IvanBrykalov/catalogcache/catalog"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements catalog.Metrics and exports Prometheus counters,
// a fetch latency histogram and a cached-products gauge.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	fetches  *prometheus.CounterVec
	latency  prometheus.Histogram
	products prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Product list reads served from memory",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "misses_total",
			Help:        "Product list reads that found the cache empty or expired",
			ConstLabels: constLabels,
		}),
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "fetches_total",
				Help:        "Store queries by result",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "fetch_duration_seconds",
			Help:        "Store query latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}),
		products: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "products",
			Help:        "Number of cached products",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.fetches, a.latency, a.products)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Fetch counts a store query by result and observes its latency.
func (a *Adapter) Fetch(d time.Duration, err error) {
	a.fetches.WithLabelValues(result(err)).Inc()
	a.latency.Observe(d.Seconds())
}

// Size updates the cached products gauge.
func (a *Adapter) Size(products int) { a.products.Set(float64(products)) }

// result maps a fetch error to a stable label value.
func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Compile-time check: ensure Adapter implements catalog.Metrics.
var _ catalog.Metrics = (*Adapter)(nil)
