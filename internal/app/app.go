// Package app wires configuration, adapters, services and the HTTP server
// into a running application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/manesha63/electNepal-sub000/internal/adapter/postgres"
	"github.com/manesha63/electNepal-sub000/internal/adapter/postgres/bilingual"
	candidaterepo "github.com/manesha63/electNepal-sub000/internal/adapter/postgres/candidate"
	eventrepo "github.com/manesha63/electNepal-sub000/internal/adapter/postgres/event"
	locationrepo "github.com/manesha63/electNepal-sub000/internal/adapter/postgres/location"
	postrepo "github.com/manesha63/electNepal-sub000/internal/adapter/postgres/post"
	"github.com/manesha63/electNepal-sub000/internal/adapter/provider/machinetrans"
	"github.com/manesha63/electNepal-sub000/internal/auth"
	"github.com/manesha63/electNepal-sub000/internal/config"
	ballotsvc "github.com/manesha63/electNepal-sub000/internal/service/ballot"
	contentsvc "github.com/manesha63/electNepal-sub000/internal/service/content"
	"github.com/manesha63/electNepal-sub000/internal/translation"
	"github.com/manesha63/electNepal-sub000/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the translation pipeline and services, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// 1. Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	// 2. Repositories.
	txm := postgres.NewTxManager(pool)
	candidateRepo := candidaterepo.New(pool)
	eventRepo := eventrepo.New(pool)
	postRepo := postrepo.New(pool)
	locationRepo := locationrepo.New(pool)
	bilingualRepo := bilingual.New(pool)

	// 3. Translation pipeline.
	var store translation.Store
	if cfg.Cache.RedisURL != "" {
		redisStore, err := translation.NewRedisStore(ctx, cfg.Cache.RedisURL, cfg.Cache.KeyPrefix, cfg.Cache.TTL, logger)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		store = redisStore
		logger.Info("translation cache: redis")
	} else {
		store = translation.NewMemoryStore(cfg.Cache.TTL)
		logger.Info("translation cache: in-process")
	}

	backend := machinetrans.New(
		cfg.Translation.Engine,
		cfg.Translation.BaseURL,
		cfg.Translation.APIKey,
		cfg.Translation.Timeout,
		logger,
	)
	cache := translation.NewCache(backend, store, cfg.Translation.SourceLang, cfg.Translation.TargetLang, logger)

	executor, err := translation.NewExecutor(cfg.Translation.Workers, cfg.Translation.WorkTimeout, logger)
	if err != nil {
		return fmt.Errorf("create translation executor: %w", err)
	}
	defer executor.Shutdown(cfg.Server.ShutdownTimeout)

	orchestrator := translation.NewOrchestrator(cache, bilingualRepo, txm, executor, logger)

	// 4. Services.
	ballotService := ballotsvc.NewService(candidateRepo, locationRepo, cfg.Ballot, logger)
	contentService := contentsvc.NewService(logger, candidateRepo, eventRepo, postRepo, bilingualRepo, locationRepo, txm, orchestrator)

	// 5. Auth.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	// 6. HTTP handlers and routes.
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rateLimiter.Stop()

	mux := newMux(routerDeps{
		logger:      logger,
		pool:        pool,
		cfg:         cfg,
		jwt:         jwtMgr,
		rateLimiter: rateLimiter,
		ballot:      ballotService,
		content:     contentService,
		events:      eventRepo,
		posts:       postRepo,
		locations:   locationRepo,
	})

	// 7. Server with graceful shutdown.
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
