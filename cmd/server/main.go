package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"consign/internal/platform/config"
	"consign/internal/platform/database"
	"consign/internal/platform/health"
	"consign/internal/platform/logger"
	"consign/internal/platform/middleware"
	submissionhandler "consign/internal/submission/handler"
	submissionmetrics "consign/internal/submission/metrics"
	submissionservice "consign/internal/submission/service"
	"consign/internal/submission/store"
	"consign/migrations"
)

// main wires the dependencies and owns the server lifecycle. Business logic
// lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Environment)

	log.Info("initializing consign",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)

	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	pool, err := database.New(dbCfg)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	clock := store.SystemClock{}
	var (
		events      submissionservice.EventStore
		submissions submissionservice.SubmissionStore
	)
	if pool != nil {
		defer pool.Close()
		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := migrations.Apply(migrateCtx, pool.DB()); err != nil {
			cancel()
			log.Error("schema migration failed", "error", err)
			os.Exit(1)
		}
		cancel()
		events = store.NewPostgresEventStore(pool.DB(), clock)
		submissions = store.NewPostgresSubmissionStore(pool.DB())
		log.Info("using postgres stores")
	} else {
		events = store.NewInMemoryEventStore(clock)
		submissions = store.NewInMemorySubmissionStore()
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	metrics := submissionmetrics.New()
	svc, err := submissionservice.New(submissions, events,
		submissionservice.WithLogger(log),
		submissionservice.WithMetrics(metrics),
		submissionservice.WithClock(clock),
	)
	if err != nil {
		log.Error("service initialization failed", "error", err)
		os.Exit(1)
	}

	healthHandler := health.New(cfg.Environment)
	if pool != nil {
		healthHandler.RegisterCheck("database", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})
	}

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(middleware.ContentTypeJSON)

	healthHandler.Register(router)
	router.Handle("/metrics", promhttp.Handler())

	apiHandler := submissionhandler.New(svc, log)
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth([]byte(cfg.JWTSigningKey), log))
		apiHandler.Register(r)
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
