// Command translate backfills missing Nepali translations.
//
// It scans candidates, events and posts whose primary text has no Nepali
// counterpart yet and runs each field through the translation pipeline.
// Fields that gained a human translation since the scan are left untouched
// by the conditional fill. Transient backend failures are simply left for
// the next run.
//
// Usage:
//
//	translate [-batch N]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/manesha63/electNepal-sub000/internal/adapter/postgres"
	"github.com/manesha63/electNepal-sub000/internal/adapter/postgres/bilingual"
	candidaterepo "github.com/manesha63/electNepal-sub000/internal/adapter/postgres/candidate"
	eventrepo "github.com/manesha63/electNepal-sub000/internal/adapter/postgres/event"
	postrepo "github.com/manesha63/electNepal-sub000/internal/adapter/postgres/post"
	"github.com/manesha63/electNepal-sub000/internal/adapter/provider/machinetrans"
	"github.com/manesha63/electNepal-sub000/internal/config"
	"github.com/manesha63/electNepal-sub000/internal/domain"
	"github.com/manesha63/electNepal-sub000/internal/translation"
)

func main() {
	batchSize := flag.Int("batch", 100, "max records per entity kind to backfill")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	candidateRepo := candidaterepo.New(pool)
	eventRepo := eventrepo.New(pool)
	postRepo := postrepo.New(pool)
	bilingualRepo := bilingual.New(pool)

	var store translation.Store
	if cfg.Cache.RedisURL != "" {
		store, err = translation.NewRedisStore(ctx, cfg.Cache.RedisURL, cfg.Cache.KeyPrefix, cfg.Cache.TTL, logger)
		if err != nil {
			logger.Error("connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		store = translation.NewMemoryStore(cfg.Cache.TTL)
	}

	backend := machinetrans.New(
		cfg.Translation.Engine,
		cfg.Translation.BaseURL,
		cfg.Translation.APIKey,
		cfg.Translation.Timeout,
		logger,
	)
	cache := translation.NewCache(backend, store, cfg.Translation.SourceLang, cfg.Translation.TargetLang, logger)

	txm := postgres.NewTxManager(pool)
	runner := syncRunner{ctx: ctx}
	orchestrator := translation.NewOrchestrator(cache, bilingualRepo, txm, runner, logger)

	b := backfill{orch: orchestrator, logger: logger}

	candidates, err := candidateRepo.ListUntranslated(ctx, *batchSize)
	if err != nil {
		logger.Error("list untranslated candidates", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for i := range candidates {
		b.run(ctx, &candidates[i])
	}

	events, err := eventRepo.ListUntranslated(ctx, *batchSize)
	if err != nil {
		logger.Error("list untranslated events", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for i := range events {
		b.run(ctx, &events[i])
	}

	posts, err := postRepo.ListUntranslated(ctx, *batchSize)
	if err != nil {
		logger.Error("list untranslated posts", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for i := range posts {
		b.run(ctx, &posts[i])
	}

	logger.Info("backfill complete",
		slog.Int("candidates", len(candidates)),
		slog.Int("events", len(events)),
		slog.Int("posts", len(posts)),
		slog.Int("fields_filled", b.filled),
		slog.Int("fields_skipped", b.skipped),
		slog.Int("fields_failed", b.failed),
	)
}

// syncRunner executes scheduled jobs inline so the batch finishes before
// the process exits.
type syncRunner struct {
	ctx context.Context
}

func (r syncRunner) Submit(job func(ctx context.Context)) error {
	job(r.ctx)
	return nil
}

type backfill struct {
	orch   *translation.Orchestrator
	logger *slog.Logger
	filled int
	// skipped counts fields where a human translation arrived between the
	// scan and the conditional fill.
	skipped int
	failed  int
}

func (b *backfill) run(ctx context.Context, entity domain.Translatable) {
	for _, f := range entity.BilingualFields() {
		if !f.NeedsTranslation() {
			continue
		}
		wrote, err := b.orch.Apply(ctx, entity.EntityKind(), entity.EntityID(), f.Name, f.Primary)
		if err != nil {
			b.failed++
			b.logger.Warn("backfill field",
				slog.String("kind", entity.EntityKind().String()),
				slog.String("id", entity.EntityID().String()),
				slog.String("field", f.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		if wrote {
			b.filled++
		} else {
			b.skipped++
		}
	}
}
