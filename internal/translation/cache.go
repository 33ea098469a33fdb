package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
)

// Store is the persistence behind the translation cache. Get misses (or
// degraded stores) return ok=false; the cache then falls through to the
// backend, so a broken store slows translation down but never breaks it.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// Key derives the cache key for one translation request. Identical source
// text (after trimming) under the same engine and language pair always maps
// to the same key, so repeated text across entities is translated once.
func Key(engine, src, dst, text string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return engine + ":" + src + ":" + dst + ":" + hex.EncodeToString(sum[:])
}

// Cache is a read-through translation cache. It satisfies the same contract
// as a bare Backend call: same input, same output, fewer engine round trips.
type Cache struct {
	backend Backend
	store   Store
	logger  *slog.Logger
	src     string
	dst     string
}

// NewCache wraps backend with a read-through cache for one language pair.
func NewCache(backend Backend, store Store, src, dst string, logger *slog.Logger) *Cache {
	return &Cache{
		backend: backend,
		store:   store,
		logger:  logger,
		src:     src,
		dst:     dst,
	}
}

// Translate returns the cached translation of text, calling the backend only
// on a miss. Results are stored best-effort; a store write failure is logged
// and the translation still returned.
func (c *Cache) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("translate: empty text")
	}

	key := Key(c.backend.Engine(), c.src, c.dst, text)

	if cached, ok := c.store.Get(ctx, key); ok {
		return cached, nil
	}

	translated, err := c.backend.Translate(ctx, text, c.src, c.dst)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(translated) == "" {
		return "", &BackendError{Op: "translate", Transient: false, Err: fmt.Errorf("engine %s returned empty translation", c.backend.Engine())}
	}

	if err := c.store.Set(ctx, key, translated); err != nil {
		c.logger.WarnContext(ctx, "translation cache write failed", "key", key, "error", err)
	}

	return translated, nil
}
