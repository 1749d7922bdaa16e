// Command catalogd serves the storefront product catalog over HTTP from a
// TTL-bounded in-memory cache in front of the product store.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/catalogcache/catalog"
	"github.com/IvanBrykalov/catalogcache/internal/config"
	"github.com/IvanBrykalov/catalogcache/internal/httpapi"
	"github.com/IvanBrykalov/catalogcache/internal/logging"
	pmet "github.com/IvanBrykalov/catalogcache/metrics/prom"
	"github.com/IvanBrykalov/catalogcache/store/memory"
	"github.com/IvanBrykalov/catalogcache/store/postgres"
	"github.com/IvanBrykalov/catalogcache/store/rest"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("catalogd stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := catalog.New(catalog.Options{
		Store:   withTimeout(store, cfg.FetchTimeout),
		TTL:     cfg.TTL,
		Metrics: pmet.New(reg, cfg.Metrics.Namespace, cfg.Metrics.Subsystem, nil),
		Logger:  log,
	})
	defer func() { _ = c.Close() }()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(c, reg, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("store", cfg.Store),
			zap.Duration("ttl", cfg.TTL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// Warm the cache so the first shopper does not pay for the fetch.
		// A failure here is not fatal; requests will retry.
		if _, err := c.Products(gctx); err != nil {
			log.Warn("initial catalog load failed", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openStore builds the configured product store and a func releasing it.
func openStore(ctx context.Context, cfg config.Config) (catalog.Store, func(), error) {
	noop := func() {}
	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return postgres.New(db), func() { _ = db.Close() }, nil
	case config.StoreREST:
		s, err := rest.New(cfg.RESTURL, cfg.RESTKey)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	case config.StoreMemory:
		if cfg.ProductsFile == "" {
			return memory.New(), noop, nil
		}
		f, err := os.Open(cfg.ProductsFile)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		s, err := memory.LoadJSON(f)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// withTimeout bounds every store query by d. d <= 0 leaves s unchanged.
func withTimeout(s catalog.Store, d time.Duration) catalog.Store {
	if d <= 0 {
		return s
	}
	return catalog.StoreFunc(func(ctx context.Context) ([]catalog.Product, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return s.ListActiveProducts(ctx)
	})
}
