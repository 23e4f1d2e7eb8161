package catasto

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName       = "github.com/MrJamesThe3rd/catasto/internal/catasto"
	defaultTxTimeout = 30 * time.Second
)

// Observer receives the outcome of every ledger transaction.
// A nil err means the transaction committed.
type Observer interface {
	ObserveTx(op string, err error, start time.Time)
}

// Runner executes a ledger operation inside exactly one store transaction.
// The function either commits as a whole or is rolled back before the
// error reaches the caller.
type Runner struct {
	store    Store
	logger   *slog.Logger
	observer Observer
	tracer   trace.Tracer
	timeout  time.Duration
}

type RunnerOption func(*Runner)

func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

func WithObserver(o Observer) RunnerOption {
	return func(r *Runner) { r.observer = o }
}

// WithTimeout bounds transactions whose context carries no deadline.
// Zero disables the bound.
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) { r.timeout = d }
}

func NewRunner(store Store, opts ...RunnerOption) *Runner {
	r := &Runner{
		store:   store,
		logger:  slog.Default(),
		tracer:  otel.Tracer(tracerName),
		timeout: defaultTxTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Write runs fn in a read-write transaction.
func (r *Runner) Write(ctx context.Context, op string, fn func(ctx context.Context, tx Tx) error) error {
	return r.run(ctx, op, TxOptions{}, fn)
}

// Read runs fn in a read-only transaction. The transaction is never committed
// with writes; it exists to give fn a consistent snapshot.
func (r *Runner) Read(ctx context.Context, op string, fn func(ctx context.Context, tx Tx) error) error {
	return r.run(ctx, op, TxOptions{ReadOnly: true}, fn)
}

func (r *Runner) run(ctx context.Context, op string, opts TxOptions, fn func(ctx context.Context, tx Tx) error) (err error) {
	start := time.Now()
	opID := uuid.NewString()
	logger := r.logger.With("op", op, "op_id", opID)

	if _, ok := ctx.Deadline(); !ok && r.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	ctx, span := r.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("catasto.op_id", opID),
		attribute.Bool("catasto.read_only", opts.ReadOnly),
	))
	defer span.End()

	defer func() {
		if r.observer != nil {
			r.observer.ObserveTx(op, err, start)
		}

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, KindOf(err).String())
			logger.Warn("ledger operation failed",
				"kind", KindOf(err).String(),
				"error", err,
				"elapsed", time.Since(start),
			)

			return
		}

		logger.Debug("ledger operation committed", "elapsed", time.Since(start))
	}()

	tx, err := r.store.Begin(ctx, opts)
	if err != nil {
		return AsLedgerError(err, "begin "+op)
	}
	defer tx.Rollback()

	if err := fn(ctx, tx); err != nil {
		return AsLedgerError(err, op)
	}

	if err := tx.Commit(); err != nil {
		return StoreError(err, "commit %s", op)
	}

	return nil
}
