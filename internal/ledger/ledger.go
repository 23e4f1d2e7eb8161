// Package ledger exposes the registry operations as single transactions.
// Every method opens exactly one transaction through catasto.Runner and
// builds the component services on it.
package ledger

import (
	"context"
	"log/slog"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/comune"
	"github.com/MrJamesThe3rd/catasto/internal/immobile"
	"github.com/MrJamesThe3rd/catasto/internal/ownership"
	"github.com/MrJamesThe3rd/catasto/internal/partita"
	"github.com/MrJamesThe3rd/catasto/internal/possessore"
)

type Ledger struct {
	runner *catasto.Runner
	cache  comune.Cache
	logger *slog.Logger
}

type Option func(*Ledger)

// WithComuneCache serves GetComune from c before hitting the store.
func WithComuneCache(c comune.Cache) Option {
	return func(l *Ledger) { l.cache = c }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

func New(runner *catasto.Runner, opts ...Option) *Ledger {
	l := &Ledger{runner: runner, logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *Ledger) CreateComune(ctx context.Context, params comune.CreateParams) (int64, error) {
	var id int64

	err := l.runner.Write(ctx, "comune.create", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		id, err = comune.NewService(tx).Create(ctx, params)

		return err
	})

	return id, err
}

// GetComune reads through the cache when one is configured. Cache failures
// degrade to a store read.
func (l *Ledger) GetComune(ctx context.Context, id int64) (*catasto.Comune, error) {
	if l.cache != nil {
		c, ok, err := l.cache.Get(ctx, id)
		if err != nil {
			l.logger.Warn("comune cache read failed", "comune_id", id, "error", err)
		} else if ok {
			return c, nil
		}
	}

	var c *catasto.Comune

	err := l.runner.Read(ctx, "comune.get", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		c, err = comune.NewService(tx).Get(ctx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if err := l.cache.Put(ctx, c); err != nil {
			l.logger.Warn("comune cache write failed", "comune_id", id, "error", err)
		}
	}

	return c, nil
}

func (l *Ledger) GetComuneByNome(ctx context.Context, nome string) (*catasto.Comune, error) {
	var c *catasto.Comune

	err := l.runner.Read(ctx, "comune.get_by_nome", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		c, err = comune.NewService(tx).GetByNome(ctx, nome)

		return err
	})

	return c, err
}

func (l *Ledger) ListComuni(ctx context.Context, filter string) ([]*catasto.Comune, error) {
	var out []*catasto.Comune

	err := l.runner.Read(ctx, "comune.list", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		out, err = comune.NewService(tx).List(ctx, filter)

		return err
	})

	return out, err
}

func (l *Ledger) CreatePossessore(ctx context.Context, params possessore.CreateParams) (int64, error) {
	var id int64

	err := l.runner.Write(ctx, "possessore.create", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		id, err = possessore.NewService(tx).Create(ctx, params)

		return err
	})

	return id, err
}

// FindPossessore reports whether a possessore with that name exists in the
// comune. A miss is not an error.
func (l *Ledger) FindPossessore(ctx context.Context, nome string, comuneID int64) (int64, bool, error) {
	var (
		id    int64
		found bool
	)

	err := l.runner.Read(ctx, "possessore.find", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		id, found, err = possessore.NewService(tx).FindByNameAndComune(ctx, nome, comuneID)

		return err
	})

	return id, found, err
}

func (l *Ledger) GetPossessore(ctx context.Context, id int64) (*catasto.Possessore, error) {
	var p *catasto.Possessore

	err := l.runner.Read(ctx, "possessore.get", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		p, err = possessore.NewService(tx).Get(ctx, id)

		return err
	})

	return p, err
}

func (l *Ledger) UpdatePossessore(ctx context.Context, id int64, params possessore.UpdateParams) (*catasto.Possessore, error) {
	var p *catasto.Possessore

	err := l.runner.Write(ctx, "possessore.update", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		p, err = possessore.NewService(tx).Update(ctx, id, params)

		return err
	})

	return p, err
}

func (l *Ledger) DeactivatePossessore(ctx context.Context, id int64) error {
	return l.runner.Write(ctx, "possessore.deactivate", func(ctx context.Context, tx catasto.Tx) error {
		return possessore.NewService(tx).Deactivate(ctx, id)
	})
}

func (l *Ledger) ListPossessori(ctx context.Context, comuneID int64, filter string) ([]*catasto.Possessore, error) {
	var out []*catasto.Possessore

	err := l.runner.Read(ctx, "possessore.list", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		out, err = possessore.NewService(tx).ListByComune(ctx, comuneID, filter)

		return err
	})

	return out, err
}

func (l *Ledger) CreateLocalita(ctx context.Context, params immobile.LocalitaParams) (int64, error) {
	var id int64

	err := l.runner.Write(ctx, "localita.create", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		id, err = immobile.NewService(tx).CreateLocalita(ctx, params)

		return err
	})

	return id, err
}

func (l *Ledger) ListLocalita(ctx context.Context, comuneID int64, filter string) ([]*catasto.Localita, error) {
	var out []*catasto.Localita

	err := l.runner.Read(ctx, "localita.list", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		out, err = immobile.NewService(tx).ListByComune(ctx, comuneID, filter)

		return err
	})

	return out, err
}

func (l *Ledger) CreateImmobile(ctx context.Context, partitaID int64, spec catasto.ImmobileSpec) (int64, error) {
	var id int64

	err := l.runner.Write(ctx, "immobile.create", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		id, err = immobile.NewService(tx).CreateImmobile(ctx, partitaID, spec)

		return err
	})

	return id, err
}

func (l *Ledger) GetImmobile(ctx context.Context, id int64) (*catasto.Immobile, error) {
	var im *catasto.Immobile

	err := l.runner.Read(ctx, "immobile.get", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		im, err = immobile.NewService(tx).GetImmobile(ctx, id)

		return err
	})

	return im, err
}

func (l *Ledger) ListImmobili(ctx context.Context, partitaID int64) ([]*catasto.Immobile, error) {
	var out []*catasto.Immobile

	err := l.runner.Read(ctx, "immobile.list", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		out, err = immobile.NewService(tx).ListImmobili(ctx, partitaID)

		return err
	})

	return out, err
}

func (l *Ledger) CreatePartita(ctx context.Context, params partita.CreateParams) (int64, error) {
	var id int64

	err := l.runner.Write(ctx, "partita.create", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		id, err = partita.NewService(tx).Create(ctx, params)

		return err
	})

	return id, err
}

func (l *Ledger) GetPartita(ctx context.Context, id int64) (*catasto.Partita, error) {
	var p *catasto.Partita

	err := l.runner.Read(ctx, "partita.get", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		p, err = partita.NewService(tx).Get(ctx, id)

		return err
	})

	return p, err
}

func (l *Ledger) ListPartite(ctx context.Context, filter catasto.PartitaFilter) ([]*catasto.Partita, error) {
	var out []*catasto.Partita

	err := l.runner.Read(ctx, "partita.list", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		out, err = partita.NewService(tx).List(ctx, filter)

		return err
	})

	return out, err
}

func (l *Ledger) DuplicatePartita(ctx context.Context, id int64, params partita.DuplicateParams) (int64, error) {
	var newID int64

	err := l.runner.Write(ctx, "partita.duplicate", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		newID, err = partita.NewService(tx).Duplicate(ctx, id, params)

		return err
	})

	return newID, err
}

func (l *Ledger) ReopenPartita(ctx context.Context, id int64) error {
	return l.runner.Write(ctx, "partita.reopen", func(ctx context.Context, tx catasto.Tx) error {
		return partita.NewService(tx).Reopen(ctx, id)
	})
}

func (l *Ledger) LinkDocumento(ctx context.Context, params partita.DocumentoParams) error {
	return l.runner.Write(ctx, "documento.link", func(ctx context.Context, tx catasto.Tx) error {
		return partita.NewService(tx).LinkDocumento(ctx, params)
	})
}

func (l *Ledger) UnlinkDocumento(ctx context.Context, documentoID, partitaID int64) error {
	return l.runner.Write(ctx, "documento.unlink", func(ctx context.Context, tx catasto.Tx) error {
		return partita.NewService(tx).UnlinkDocumento(ctx, documentoID, partitaID)
	})
}

func (l *Ledger) ListDocumenti(ctx context.Context, partitaID int64) ([]*catasto.DocumentoPartita, error) {
	var out []*catasto.DocumentoPartita

	err := l.runner.Read(ctx, "documento.list", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		out, err = partita.NewService(tx).ListDocumenti(ctx, partitaID)

		return err
	})

	return out, err
}

func (l *Ledger) LinkPossessore(ctx context.Context, params ownership.LinkParams) (int64, error) {
	var id int64

	err := l.runner.Write(ctx, "legame.link", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		id, err = ownership.NewService(tx).Link(ctx, params)

		return err
	})

	return id, err
}

func (l *Ledger) UpdateLegame(ctx context.Context, id int64, titolo string, quota *string) (*catasto.PartitaPossessore, error) {
	var out *catasto.PartitaPossessore

	err := l.runner.Write(ctx, "legame.update", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		out, err = ownership.NewService(tx).Update(ctx, id, titolo, quota)

		return err
	})

	return out, err
}

func (l *Ledger) UnlinkLegame(ctx context.Context, id int64) error {
	return l.runner.Write(ctx, "legame.unlink", func(ctx context.Context, tx catasto.Tx) error {
		return ownership.NewService(tx).Unlink(ctx, id)
	})
}

func (l *Ledger) ListLegami(ctx context.Context, partitaID int64) ([]*catasto.PartitaPossessore, error) {
	var out []*catasto.PartitaPossessore

	err := l.runner.Read(ctx, "legame.list", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		out, err = ownership.NewService(tx).ListByPartita(ctx, partitaID)

		return err
	})

	return out, err
}
