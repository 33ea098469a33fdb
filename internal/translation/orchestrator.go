package translation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

type translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

type secondaryWriter interface {
	FillSecondaryIfEmpty(ctx context.Context, kind domain.EntityKind, id uuid.UUID, field, text string) (bool, error)
}

type commitHooks interface {
	AfterCommit(ctx context.Context, fn func(context.Context))
}

type jobRunner interface {
	Submit(job func(ctx context.Context)) error
}

// Orchestrator schedules machine translation for entities whose secondary
// language fields are empty, and applies results without ever overwriting
// text a human wrote in the meantime.
type Orchestrator struct {
	translator translator
	writer     secondaryWriter
	hooks      commitHooks
	runner     jobRunner
	logger     *slog.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(tr translator, writer secondaryWriter, hooks commitHooks, runner jobRunner, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		translator: tr,
		writer:     writer,
		hooks:      hooks,
		runner:     runner,
		logger:     logger,
	}
}

// workUnit is a snapshot of one field needing translation, taken while the
// entity's transaction is still open so the source text is exact.
type workUnit struct {
	kind  domain.EntityKind
	id    uuid.UUID
	field string
	text  string
}

// Schedule inspects the entity's bilingual fields and arranges translation of
// every field with a non-empty primary and empty secondary. Nothing runs
// until the surrounding transaction commits; on rollback the work is
// discarded. Calling Schedule twice for the same state is harmless, the
// conditional write in Apply makes the second pass a no-op.
func (o *Orchestrator) Schedule(ctx context.Context, entity domain.Translatable) {
	var units []workUnit
	for _, f := range entity.BilingualFields() {
		if !f.NeedsTranslation() {
			continue
		}
		units = append(units, workUnit{
			kind:  entity.EntityKind(),
			id:    entity.EntityID(),
			field: f.Name,
			text:  f.Primary,
		})
	}
	if len(units) == 0 {
		return
	}

	o.hooks.AfterCommit(ctx, func(hookCtx context.Context) {
		for _, u := range units {
			u := u
			err := o.runner.Submit(func(jobCtx context.Context) {
				o.apply(jobCtx, u)
			})
			if err != nil {
				o.logger.ErrorContext(hookCtx, "failed to enqueue translation",
					"kind", u.kind, "id", u.id, "field", u.field, "error", err)
			}
		}
	})
}

// Apply translates text and writes it as the machine-produced secondary value
// of one field, unless a value already exists. It reports whether the fill
// actually wrote. Used directly by the backfill worker; scheduled work goes
// through the same path.
func (o *Orchestrator) Apply(ctx context.Context, kind domain.EntityKind, id uuid.UUID, field, text string) (bool, error) {
	translated, err := o.translator.Translate(ctx, text)
	if err != nil {
		return false, err
	}

	wrote, err := o.writer.FillSecondaryIfEmpty(ctx, kind, id, field, translated)
	if err != nil {
		return false, err
	}
	if !wrote {
		// A human translation (or an earlier machine pass) got there first.
		o.logger.DebugContext(ctx, "secondary already set, machine translation discarded",
			"kind", kind, "id", id, "field", field)
	}

	return wrote, nil
}

func (o *Orchestrator) apply(ctx context.Context, u workUnit) {
	_, err := o.Apply(ctx, u.kind, u.id, u.field, u.text)
	if err == nil {
		return
	}

	if IsTransient(err) {
		// The row keeps its empty secondary, so the backfill worker will
		// retry it on its next sweep.
		o.logger.WarnContext(ctx, "translation failed, will retry via backfill",
			"kind", u.kind, "id", u.id, "field", u.field, "error", err)
		return
	}

	o.logger.ErrorContext(ctx, "translation failed permanently",
		"kind", u.kind, "id", u.id, "field", u.field, "error", err)
}
