// Command server runs the registry HTTP API with its backing stores, event
// publisher and dev-mode ledger and voting oracle.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"curio/internal/challenge"
	"curio/internal/events"
	"curio/internal/jwttoken"
	"curio/internal/platform/config"
	"curio/internal/platform/httpserver"
	"curio/internal/platform/logger"
	"curio/internal/platform/redis"
	"curio/internal/registry/handler"
	"curio/internal/registry/metrics"
	"curio/internal/registry/ports"
	"curio/internal/registry/service"
	challengestore "curio/internal/registry/store/challenge"
	"curio/internal/registry/store/item"
	"curio/internal/token"
	"curio/internal/voting"
	"curio/pkg/domain"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(slog.LevelInfo)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	items, cleanup, err := buildItemStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	publisher, err := buildPublisher(ctx, cfg, log)
	if err != nil {
		return err
	}
	if closer, ok := publisher.(interface{ Close() }); ok {
		defer closer.Close()
	}

	// The ledger and oracle are in-process stand-ins; production deployments
	// point the registry at external systems instead.
	ledger := token.NewLedger()
	oracle := voting.NewOracle(nil)

	factory, err := challenge.NewFactory(ledger, oracle, publisher, challenge.Params{
		Stake:              cfg.MinStake,
		VoteQuorum:         cfg.VoteQuorum,
		PercentVoterReward: cfg.PercentVoterReward,
		CommitStageLength:  cfg.CommitStageLength,
		RevealStageLength:  cfg.RevealStageLength,
	})
	if err != nil {
		return err
	}

	registry, err := service.NewService(
		service.Config{
			Address:           domain.Address(cfg.RegistryAddress),
			MinStake:          cfg.MinStake,
			ApplicationPeriod: cfg.ApplicationPeriod,
		},
		items, challengestore.NewMemoryStore(), ledger, factory, publisher,
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
	)
	if err != nil {
		return err
	}

	tokens := jwttoken.NewService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)

	router := chi.NewRouter()
	handler.New(registry, tokens, log).Register(router)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting registry server", "addr", cfg.Addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildItemStore selects postgres when configured, memory otherwise, and
// fronts either with a redis read-through cache when redis is configured.
func buildItemStore(ctx context.Context, cfg config.Config, log *slog.Logger) (item.Store, func(), error) {
	cleanup := func() {}

	var store item.Store
	if cfg.PostgresURL != "" {
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return nil, nil, err
		}
		pg, err := item.NewPostgresStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		store = pg
		cleanup = func() { db.Close() }
		log.Info("using postgres item store")
	} else {
		store = item.NewMemoryStore()
		log.Info("using in-memory item store")
	}

	cache, err := redis.New(ctx, cfg.RedisURL)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if cache != nil {
		store = item.NewCachedStore(store, cache.Client, cfg.CacheTTL, log)
		prev := cleanup
		cleanup = func() {
			cache.Close()
			prev()
		}
		log.Info("item store cache enabled")
	}
	return store, cleanup, nil
}

// buildPublisher selects kafka when brokers are configured, otherwise an
// in-memory sink.
func buildPublisher(ctx context.Context, cfg config.Config, log *slog.Logger) (ports.EventPublisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("using in-memory event sink")
		return events.NewMemorySink(), nil
	}
	publisher, err := events.NewKafkaPublisher(ctx, cfg.KafkaBrokers, cfg.KafkaTopic, events.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Info("using kafka event publisher", "topic", cfg.KafkaTopic)
	return publisher, nil
}
