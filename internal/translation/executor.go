package translation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

// Executor runs translation jobs on a bounded goroutine pool. Jobs are
// detached from the request that spawned them: each gets a fresh context with
// its own deadline, so a finished HTTP request cannot cancel the translation
// it scheduled.
type Executor struct {
	pool        *ants.Pool
	logger      *slog.Logger
	workTimeout time.Duration
	wg          sync.WaitGroup
}

// NewExecutor creates a pool of size workers. workTimeout bounds each job.
func NewExecutor(size int, workTimeout time.Duration, logger *slog.Logger) (*Executor, error) {
	pool, err := ants.NewPool(size,
		ants.WithNonblocking(false),
		ants.WithPanicHandler(func(r any) {
			logger.Error("translation job panicked", "panic", r)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	return &Executor{
		pool:        pool,
		logger:      logger,
		workTimeout: workTimeout,
	}, nil
}

// Submit schedules job on the pool. The job receives a background-derived
// context bounded by the executor's work timeout.
func (e *Executor) Submit(job func(ctx context.Context)) error {
	e.wg.Add(1)
	err := e.pool.Submit(func() {
		defer e.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), e.workTimeout)
		defer cancel()

		job(ctx)
	})
	if err != nil {
		e.wg.Done()
		return fmt.Errorf("submit translation job: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight jobs up to the given timeout, then releases
// the pool. Jobs still running after the timeout are abandoned.
func (e *Executor) Shutdown(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		e.logger.Warn("translation executor shutdown timed out, abandoning jobs")
	}

	e.pool.Release()
}
