package catasto_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/catasto/memstore"
)

type observed struct {
	op  string
	err error
}

type recordingObserver struct {
	calls []observed
}

func (o *recordingObserver) ObserveTx(op string, err error, _ time.Time) {
	o.calls = append(o.calls, observed{op: op, err: err})
}

func newRunner(store catasto.Store, opts ...catasto.RunnerOption) *catasto.Runner {
	return catasto.NewRunner(store, append([]catasto.RunnerOption{catasto.WithLogger(slog.New(slog.DiscardHandler))}, opts...)...)
}

func insertComune(ctx context.Context, tx catasto.Tx) error {
	return tx.InsertComune(ctx, &catasto.Comune{Nome: "Millesimo", Provincia: "Savona", Regione: "Liguria"})
}

func countComuni(t *testing.T, runner *catasto.Runner) int {
	t.Helper()

	var n int

	err := runner.Read(context.Background(), "comune.list", func(ctx context.Context, tx catasto.Tx) error {
		all, err := tx.ListComuni(ctx, "")
		n = len(all)

		return err
	})
	require.NoError(t, err)

	return n
}

func TestRunner_Write(t *testing.T) {
	cause := errors.New("connection reset")

	type testCase struct {
		name      string
		setup     func(s *memstore.Store)
		fn        func(ctx context.Context, tx catasto.Tx) error
		wantKind  catasto.Kind
		wantCause error
		wantRows  int
	}

	tests := []testCase{
		{
			name:     "Commits",
			fn:       insertComune,
			wantRows: 1,
		},
		{
			name: "KindPreserved",
			fn: func(ctx context.Context, tx catasto.Tx) error {
				if err := insertComune(ctx, tx); err != nil {
					return err
				}

				return catasto.DataError("rejected after insert")
			},
			wantKind: catasto.KindDataError,
		},
		{
			name: "UnclassifiedBecomesStoreError",
			fn: func(ctx context.Context, tx catasto.Tx) error {
				if err := insertComune(ctx, tx); err != nil {
					return err
				}

				return cause
			},
			wantKind:  catasto.KindStoreError,
			wantCause: cause,
		},
		{
			name:      "BeginFails",
			setup:     func(s *memstore.Store) { s.FailOn("Begin", cause) },
			fn:        insertComune,
			wantKind:  catasto.KindStoreError,
			wantCause: cause,
		},
		{
			name:      "CommitFails",
			setup:     func(s *memstore.Store) { s.FailOn("Commit", cause) },
			fn:        insertComune,
			wantKind:  catasto.KindStoreError,
			wantCause: cause,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			if tt.setup != nil {
				tt.setup(store)
			}

			obs := &recordingObserver{}
			runner := newRunner(store, catasto.WithObserver(obs))

			err := runner.Write(context.Background(), "comune.create", tt.fn)

			require.Len(t, obs.calls, 1)
			assert.Equal(t, "comune.create", obs.calls[0].op)

			if tt.wantKind == catasto.KindUnknown {
				require.NoError(t, err)
				assert.NoError(t, obs.calls[0].err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, catasto.KindOf(err))
				assert.Equal(t, err, obs.calls[0].err)
			}

			if tt.wantCause != nil {
				assert.ErrorIs(t, err, tt.wantCause)
			}

			assert.Equal(t, tt.wantRows, countComuni(t, runner))
		})
	}
}

func TestRunner_ReadRejectsWrites(t *testing.T) {
	runner := newRunner(memstore.New())

	err := runner.Read(context.Background(), "comune.create", insertComune)
	assert.ErrorIs(t, err, catasto.ErrStoreError)
	assert.Zero(t, countComuni(t, runner))
}

func TestRunner_Timeout(t *testing.T) {
	type testCase struct {
		name         string
		opts         []catasto.RunnerOption
		ctx          func() (context.Context, context.CancelFunc)
		wantDeadline bool
		maxRemaining time.Duration
	}

	tests := []testCase{
		{
			name:         "Default",
			ctx:          func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			wantDeadline: true,
			maxRemaining: 30 * time.Second,
		},
		{
			name:         "Configured",
			opts:         []catasto.RunnerOption{catasto.WithTimeout(time.Second)},
			ctx:          func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			wantDeadline: true,
			maxRemaining: time.Second,
		},
		{
			name: "Disabled",
			opts: []catasto.RunnerOption{catasto.WithTimeout(0)},
			ctx:  func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
		},
		{
			name: "CallerDeadlineKept",
			opts: []catasto.RunnerOption{catasto.WithTimeout(time.Hour)},
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 2*time.Second)
			},
			wantDeadline: true,
			maxRemaining: 2 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := newRunner(memstore.New(), tt.opts...)

			ctx, cancel := tt.ctx()
			defer cancel()

			err := runner.Read(ctx, "probe", func(ctx context.Context, _ catasto.Tx) error {
				deadline, ok := ctx.Deadline()
				assert.Equal(t, tt.wantDeadline, ok)

				if ok {
					assert.LessOrEqual(t, time.Until(deadline), tt.maxRemaining)
				}

				return nil
			})
			require.NoError(t, err)
		})
	}
}
