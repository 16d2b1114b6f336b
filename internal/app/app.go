// Package app assembles a LedgerService and its dependencies from a Config.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mmynk/debtbook/internal/config"
	"github.com/mmynk/debtbook/internal/events"
	"github.com/mmynk/debtbook/internal/metrics"
	"github.com/mmynk/debtbook/internal/service"
	"github.com/mmynk/debtbook/internal/storage"
	"github.com/mmynk/debtbook/internal/storage/bolt"
	"github.com/mmynk/debtbook/internal/storage/memory"
	"github.com/mmynk/debtbook/internal/storage/sqlite"
)

// App owns every long-lived dependency of the service.
type App struct {
	Config    *config.Config
	Store     storage.Store
	Publisher events.Publisher
	Registry  *prometheus.Registry
	Metrics   *metrics.Metrics
	Service   *service.LedgerService
}

// New opens the configured store and publisher and builds the service.
// Metrics are nil when disabled.
func New(cfg *config.Config, opts ...service.Option) (*App, error) {
	store, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("Storage initialized", "backend", cfg.DataBackend)

	publisher, err := OpenPublisher(cfg)
	if err != nil {
		store.Close()
		return nil, err
	}

	a := &App{
		Config:    cfg,
		Store:     store,
		Publisher: publisher,
	}
	if cfg.MetricsEnabled {
		a.Registry = prometheus.NewRegistry()
		a.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		a.Metrics = metrics.New(a.Registry)
	}

	svcOpts := []service.Option{
		service.WithPublisher(publisher),
		service.WithMetrics(a.Metrics),
		service.WithDashboardDefaults(cfg.MonthsBack, cfg.TopN),
	}
	a.Service = service.NewLedgerService(store, append(svcOpts, opts...)...)
	return a, nil
}

// OpenStore returns the storage backend named by cfg.DataBackend.
func OpenStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.DataBackend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendSQLite:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	case config.BackendBolt:
		store, err := bolt.New(cfg.BoltPath)
		if err != nil {
			return nil, fmt.Errorf("open bolt store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}
}

// OpenPublisher connects to AMQP when AMQP_URL is set and otherwise discards
// events.
func OpenPublisher(cfg *config.Config) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		return events.Nop{}, nil
	}
	p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, fmt.Errorf("open event publisher: %w", err)
	}
	slog.Info("Publishing ledger events", "exchange", cfg.AMQPExchange)
	return p, nil
}

// Close releases the publisher and the store.
func (a *App) Close() error {
	return errors.Join(a.Publisher.Close(), a.Store.Close())
}
