package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager manages database transactions using the context pattern.
// Nested RunInTx calls are NOT supported — calling RunInTx inside a RunInTx
// callback will create a second independent transaction, which is a bug.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// txHooks collects callbacks to run once the enclosing transaction commits.
type txHooks struct {
	mu  sync.Mutex
	fns []func(context.Context)
}

func (h *txHooks) add(fn func(context.Context)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fns = append(h.fns, fn)
}

func (h *txHooks) run(ctx context.Context) {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn(ctx)
	}
}

type hooksCtxKey struct{}

func withHooks(ctx context.Context, h *txHooks) context.Context {
	return context.WithValue(ctx, hooksCtxKey{}, h)
}

// AfterCommit registers fn to run after the transaction carried by ctx has
// durably committed. If the transaction rolls back, fn is discarded. Outside
// a transaction there is nothing to wait for and fn runs immediately.
//
// Hooks must not assume the transaction's connection is still available;
// they receive the caller's context with the tx stripped.
func (m *TxManager) AfterCommit(ctx context.Context, fn func(context.Context)) {
	if h, ok := ctx.Value(hooksCtxKey{}).(*txHooks); ok {
		h.add(fn)
		return
	}
	fn(ctx)
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits, then runs any hooks registered via AfterCommit.
// On error from fn: rolls back, discards hooks, and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	hooks := &txHooks{}
	txCtx := withHooks(withTx(ctx, tx), hooks)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	// The tx is durable now. Hooks get the original context so they never
	// touch the finished transaction by accident.
	hooks.run(ctx)

	return nil
}
