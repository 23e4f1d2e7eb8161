// Package app assembles the ledger stack from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/catasto/memstore"
	"github.com/MrJamesThe3rd/catasto/internal/catasto/store"
	"github.com/MrJamesThe3rd/catasto/internal/comune"
	"github.com/MrJamesThe3rd/catasto/internal/config"
	"github.com/MrJamesThe3rd/catasto/internal/database"
	"github.com/MrJamesThe3rd/catasto/internal/events"
	catastoHttp "github.com/MrJamesThe3rd/catasto/internal/http"
	comuneHandler "github.com/MrJamesThe3rd/catasto/internal/http/comune"
	immobileHandler "github.com/MrJamesThe3rd/catasto/internal/http/immobile"
	importHandler "github.com/MrJamesThe3rd/catasto/internal/http/importcsv"
	integrityHandler "github.com/MrJamesThe3rd/catasto/internal/http/integrity"
	partitaHandler "github.com/MrJamesThe3rd/catasto/internal/http/partita"
	possessoreHandler "github.com/MrJamesThe3rd/catasto/internal/http/possessore"
	variazioneHandler "github.com/MrJamesThe3rd/catasto/internal/http/variazione"
	"github.com/MrJamesThe3rd/catasto/internal/importer"
	"github.com/MrJamesThe3rd/catasto/internal/integrity"
	"github.com/MrJamesThe3rd/catasto/internal/ledger"
	"github.com/MrJamesThe3rd/catasto/internal/metrics"
	"github.com/MrJamesThe3rd/catasto/internal/variazione"
)

type App struct {
	Config   *config.Config
	Store    catasto.Store
	Runner   *catasto.Runner
	Ledger   *ledger.Ledger
	Engine   *variazione.Engine
	Verifier *integrity.Verifier
	Importer *importer.Importer
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry

	closers []func() error
}

// New opens the configured store and optional redis cache and AMQP
// publisher. Close releases them.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Registry: prometheus.NewRegistry()}

	a.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.Metrics = metrics.New(a.Registry)

	if err := a.openStore(ctx, logger); err != nil {
		return nil, err
	}

	a.Runner = catasto.NewRunner(a.Store,
		catasto.WithLogger(logger),
		catasto.WithObserver(a.Metrics),
		catasto.WithTimeout(cfg.Store.TxTimeout),
	)

	ledgerOpts := []ledger.Option{ledger.WithLogger(logger)}

	if cfg.Redis.URL != "" {
		cache, err := a.openCache(ctx)
		if err != nil {
			a.Close()
			return nil, err
		}

		ledgerOpts = append(ledgerOpts, ledger.WithComuneCache(cache))
		logger.Info("comune cache enabled")
	}

	engineOpts := []variazione.Option{variazione.WithMetrics(a.Metrics), variazione.WithLogger(logger)}

	if cfg.AMQP.URL != "" {
		pub := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
		a.closers = append(a.closers, pub.Close)
		engineOpts = append(engineOpts, variazione.WithPublisher(pub))
		logger.Info("transfer events enabled", "queue", cfg.AMQP.Queue)
	}

	a.Ledger = ledger.New(a.Runner, ledgerOpts...)
	a.Engine = variazione.NewEngine(a.Runner, engineOpts...)
	a.Verifier = integrity.NewVerifier(a.Runner, a.Metrics)
	a.Importer = importer.New(a.Runner, a.Metrics)

	return a, nil
}

func (a *App) openStore(ctx context.Context, logger *slog.Logger) error {
	if a.Config.Store.Driver == config.DriverMemory {
		logger.Warn("using in-memory store; data is lost on exit")
		a.Store = memstore.New()

		return nil
	}

	db, err := database.New(a.Config.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	a.closers = append(a.closers, db.Close)

	if a.Config.DB.Migrate {
		if err := database.MigrateSchema(ctx, db); err != nil {
			a.Close()
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	a.Store = store.New(db)

	return nil
}

func (a *App) openCache(ctx context.Context) (*comune.RedisCache, error) {
	opts, err := redis.ParseURL(a.Config.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	a.closers = append(a.closers, client.Close)

	return comune.NewRedisCache(client, a.Config.Redis.TTL), nil
}

// Handler builds the HTTP API with /metrics on the app registry.
func (a *App) Handler() http.Handler {
	return catastoHttp.New(catastoHttp.Handlers{
		Comuni:     comuneHandler.NewHandler(a.Ledger),
		Possessori: possessoreHandler.NewHandler(a.Ledger),
		Immobili:   immobileHandler.NewHandler(a.Ledger),
		Partite:    partitaHandler.NewHandler(a.Ledger, a.Engine),
		Variazioni: variazioneHandler.NewHandler(a.Engine),
		Integrity:  integrityHandler.NewHandler(a.Verifier),
		Import:     importHandler.NewHandler(a.Importer),
		Metrics:    promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}),
	}, a.Config.Server.CORSOrigins)
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	a.closers = nil

	return errors.Join(errs...)
}
