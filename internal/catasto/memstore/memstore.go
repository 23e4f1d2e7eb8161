// Package memstore is an in-memory implementation of catasto.Store.
//
// A write transaction holds the store mutex from Begin until Commit or
// Rollback and works on a private copy of the state; Commit swaps the copy
// in. Read-only transactions work on a snapshot and never block writers
// after Begin returns.
package memstore

import (
	"context"
	"database/sql"
	"maps"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

type docKey struct {
	documentoID int64
	partitaID   int64
}

// state is copied on Begin. Stored values are never mutated in place, so a
// shallow copy of every map is enough to isolate a transaction.
type state struct {
	seq        map[string]int64
	comuni     map[int64]catasto.Comune
	possessori map[int64]catasto.Possessore
	localita   map[int64]catasto.Localita
	immobili   map[int64]catasto.Immobile
	partite    map[int64]catasto.Partita
	legami     map[int64]catasto.PartitaPossessore
	variazioni map[int64]catasto.Variazione
	contratti  map[int64]catasto.Contratto // keyed by variazione id
	documenti  map[docKey]catasto.DocumentoPartita
}

func newState() *state {
	return &state{
		seq:        map[string]int64{},
		comuni:     map[int64]catasto.Comune{},
		possessori: map[int64]catasto.Possessore{},
		localita:   map[int64]catasto.Localita{},
		immobili:   map[int64]catasto.Immobile{},
		partite:    map[int64]catasto.Partita{},
		legami:     map[int64]catasto.PartitaPossessore{},
		variazioni: map[int64]catasto.Variazione{},
		contratti:  map[int64]catasto.Contratto{},
		documenti:  map[docKey]catasto.DocumentoPartita{},
	}
}

func (s *state) clone() *state {
	return &state{
		seq:        maps.Clone(s.seq),
		comuni:     maps.Clone(s.comuni),
		possessori: maps.Clone(s.possessori),
		localita:   maps.Clone(s.localita),
		immobili:   maps.Clone(s.immobili),
		partite:    maps.Clone(s.partite),
		legami:     maps.Clone(s.legami),
		variazioni: maps.Clone(s.variazioni),
		contratti:  maps.Clone(s.contratti),
		documenti:  maps.Clone(s.documenti),
	}
}

func (s *state) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

type Store struct {
	mu    sync.Mutex
	state *state

	failMu   sync.Mutex
	failures map[string]error

	now func() time.Time
}

func New() *Store {
	return &Store{
		state:    newState(),
		failures: map[string]error{},
		now:      time.Now,
	}
}

// FailOn makes the next call to the named Tx method return err.
// Method names match the catasto.Tx interface, plus "Begin" and "Commit".
func (s *Store) FailOn(method string, err error) {
	s.failMu.Lock()
	defer s.failMu.Unlock()

	s.failures[method] = err
}

func (s *Store) injected(method string) error {
	s.failMu.Lock()
	defer s.failMu.Unlock()

	err, ok := s.failures[method]
	if !ok {
		return nil
	}

	delete(s.failures, method)

	return err
}

func (s *Store) Begin(ctx context.Context, opts catasto.TxOptions) (catasto.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.injected("Begin"); err != nil {
		return nil, err
	}

	if opts.ReadOnly {
		s.mu.Lock()
		snapshot := s.state.clone()
		s.mu.Unlock()

		return &tx{store: s, state: snapshot, readOnly: true}, nil
	}

	s.mu.Lock()

	return &tx{store: s, state: s.state.clone()}, nil
}

type tx struct {
	store    *Store
	state    *state
	readOnly bool
	done     bool
}

func (t *tx) Commit() error {
	if t.done {
		return sql.ErrTxDone
	}

	t.done = true

	if t.readOnly {
		return nil
	}

	defer t.store.mu.Unlock()

	if err := t.store.injected("Commit"); err != nil {
		return err
	}

	t.store.state = t.state

	return nil
}

func (t *tx) Rollback() error {
	if t.done {
		return sql.ErrTxDone
	}

	t.done = true

	if !t.readOnly {
		t.store.mu.Unlock()
	}

	return nil
}

func (t *tx) read(method string) error {
	if t.done {
		return sql.ErrTxDone
	}

	return t.store.injected(method)
}

func (t *tx) write(method string) error {
	if err := t.read(method); err != nil {
		return err
	}

	if t.readOnly {
		return catasto.StoreError(nil, "%s: read-only transaction", method)
	}

	return nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

var (
	_ catasto.Store = (*Store)(nil)
	_ catasto.Tx    = (*tx)(nil)
)
