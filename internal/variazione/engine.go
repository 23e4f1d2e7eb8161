// Package variazione registers ownership transfers between partite and the
// first registration of new properties.
//
// A transfer is the only operation that closes a partita: it opens the
// destination, links its possessori, moves the selected immobili, closes the
// origin and records the variazione with its contratto, all in one
// transaction.
package variazione

import (
	"context"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/events"
	"github.com/MrJamesThe3rd/catasto/internal/metrics"
)

const publishTimeout = 5 * time.Second

type Engine struct {
	runner    *catasto.Runner
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

type Option func(*Engine)

// WithPublisher announces committed transfers through p.
func WithPublisher(p events.Publisher) Option {
	return func(e *Engine) { e.publisher = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func NewEngine(runner *catasto.Runner, opts ...Option) *Engine {
	e := &Engine{
		runner: runner,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

type TransferParams struct {
	PartitaOrigineID     int64
	ComuneDestinazioneID int64
	NumeroNuovaPartita   int
	Suffisso             *string
	TipoVariazione       catasto.TipoVariazione
	DataVariazione       time.Time

	TipoContratto string
	DataContratto time.Time
	Notaio        *string
	Repertorio    *string
	Note          *string

	NumeroRiferimento     *string
	NominativoRiferimento *string

	NuoviPossessori      []catasto.PossessoreSpec
	ImmobiliDaTrasferire []int64
}

type TransferResult struct {
	PartitaID    int64
	VariazioneID int64
}

// RegisterTransfer closes the origin partita into a new one. Nothing is
// written unless every step succeeds.
func (e *Engine) RegisterTransfer(ctx context.Context, params TransferParams) (*TransferResult, error) {
	if err := validateTransfer(params); err != nil {
		return nil, err
	}

	var (
		result *TransferResult
		event  events.TransferRegistered
	)

	err := e.runner.Write(ctx, "variazione.register_transfer", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		result, event, err = transfer(ctx, tx, params)

		return err
	})
	if err != nil {
		return nil, err
	}

	e.metrics.IncrementTransfers(params.TipoVariazione)
	e.publish(ctx, event)

	return result, nil
}

// publish runs after commit. A broker failure leaves the ledger untouched.
func (e *Engine) publish(ctx context.Context, event events.TransferRegistered) {
	if e.publisher == nil {
		return
	}

	event.RegisteredAt = e.now().UTC()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := e.publisher.PublishTransfer(ctx, event); err != nil {
		e.logger.Warn("failed to publish transfer event",
			"variazione_id", event.VariazioneID,
			"error", err,
		)
	}
}

type NewPropertyParams struct {
	ComuneID     int64
	Numero       int
	DataImpianto time.Time
	// Tipo defaults to principale.
	Tipo       *catasto.TipoPartita
	Suffisso   *string
	Possessori []catasto.PossessoreSpec
	Immobili   []catasto.ImmobileSpec
}

// RegisterNewProperty records the first registration (impianto) of a
// partita together with its possessori and immobili.
func (e *Engine) RegisterNewProperty(ctx context.Context, params NewPropertyParams) (int64, error) {
	if len(params.Possessori) == 0 {
		return 0, catasto.DataError("at least one possessore is required")
	}

	if len(params.Immobili) == 0 {
		return 0, catasto.DataError("at least one immobile is required")
	}

	var id int64

	err := e.runner.Write(ctx, "variazione.register_new_property", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		id, err = newProperty(ctx, tx, params)

		return err
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// DeleteVariazione removes a variazione and its contratto. With
// restoreOrigin the origin partita is reopened in the same transaction;
// immobili stay where the transfer put them.
func (e *Engine) DeleteVariazione(ctx context.Context, id int64, restoreOrigin bool) error {
	return e.runner.Write(ctx, "variazione.delete", func(ctx context.Context, tx catasto.Tx) error {
		return deleteVariazione(ctx, tx, id, restoreOrigin)
	})
}

func (e *Engine) Get(ctx context.Context, id int64) (*Detail, error) {
	var d *Detail

	err := e.runner.Read(ctx, "variazione.get", func(ctx context.Context, tx catasto.Tx) error {
		v, err := tx.GetVariazione(ctx, id)
		if err != nil {
			return err
		}

		c, err := tx.GetContratto(ctx, id)
		if err != nil && catasto.KindOf(err) != catasto.KindNotFound {
			return err
		}

		d = &Detail{Variazione: v, Contratto: c}

		return nil
	})

	return d, err
}

// Genealogy walks the variazioni chain around partitaID up to maxDepth
// steps in each direction.
func (e *Engine) Genealogy(ctx context.Context, partitaID int64, maxDepth int) ([]GenealogyEntry, error) {
	var out []GenealogyEntry

	err := e.runner.Read(ctx, "variazione.genealogy", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		out, err = genealogy(ctx, tx, partitaID, maxDepth)

		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Detail is a variazione with its backing contratto, which may be nil for
// rows imported without one.
type Detail struct {
	Variazione *catasto.Variazione
	Contratto  *catasto.Contratto
}
