// Package importer loads possessori and partite for one comune from CSV
// files. A file is imported whole or not at all.
package importer

import (
	"context"
	"io"
	"strings"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/partita"
	"github.com/MrJamesThe3rd/catasto/internal/possessore"
)

type Kind string

const (
	KindPossessori Kind = "possessori"
	KindPartite    Kind = "partite"
)

var (
	possessoriColumns = []string{"cognome_nome", "nome_completo"}
	partiteColumns    = []string{"numero_partita", "data_impianto", "stato", "tipo"}
)

// RowsRecorder counts committed rows per kind.
type RowsRecorder interface {
	AddImportRows(kind string, n int)
}

type Result struct {
	Kind Kind    `json:"kind"`
	Rows int     `json:"rows"`
	IDs  []int64 `json:"ids"`
}

type Importer struct {
	runner  *catasto.Runner
	metrics RowsRecorder
}

func New(runner *catasto.Runner, recorder RowsRecorder) *Importer {
	return &Importer{runner: runner, metrics: recorder}
}

// ImportPossessori creates one active possessore per row. A name already
// registered in the comune aborts the import.
func (i *Importer) ImportPossessori(ctx context.Context, comuneID int64, r io.Reader) (*Result, error) {
	records, err := readTable(r, possessoriColumns)
	if err != nil {
		return nil, err
	}

	params := make([]possessore.CreateParams, 0, len(records))
	lines := make([]int, 0, len(records))

	for _, rec := range records {
		cognome, err := rec.required("cognome_nome")
		if err != nil {
			return nil, err
		}

		nome, err := rec.required("nome_completo")
		if err != nil {
			return nil, err
		}

		params = append(params, possessore.CreateParams{
			ComuneID:     comuneID,
			NomeCompleto: nome,
			CognomeNome:  &cognome,
			Paternita:    rec.optional("paternita"),
		})
		lines = append(lines, rec.line)
	}

	res := &Result{Kind: KindPossessori, IDs: []int64{}}
	if len(params) == 0 {
		return res, nil
	}

	err = i.runner.Write(ctx, "import.possessori", func(ctx context.Context, tx catasto.Tx) error {
		svc := possessore.NewService(tx)

		for n, p := range params {
			_, found, err := svc.FindByNameAndComune(ctx, p.NomeCompleto, comuneID)
			if err != nil {
				return err
			}

			if found {
				return catasto.Unique("possessore_nome_completo_comune_id_key",
					"row %d: possessore %q already exists in comune %d", lines[n], p.NomeCompleto, comuneID)
			}

			id, err := svc.Create(ctx, p)
			if err != nil {
				return rowError(lines[n], err)
			}

			res.IDs = append(res.IDs, id)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Rows = len(res.IDs)
	i.record(res)

	return res, nil
}

// ImportPartite creates one attiva partita per row. Rows marked inattiva
// are rejected: a partita can only close through a variazione.
func (i *Importer) ImportPartite(ctx context.Context, comuneID int64, r io.Reader) (*Result, error) {
	records, err := readTable(r, partiteColumns)
	if err != nil {
		return nil, err
	}

	params := make([]partita.CreateParams, 0, len(records))
	lines := make([]int, 0, len(records))

	for _, rec := range records {
		p, err := partitaParams(comuneID, rec)
		if err != nil {
			return nil, err
		}

		params = append(params, p)
		lines = append(lines, rec.line)
	}

	res := &Result{Kind: KindPartite, IDs: []int64{}}
	if len(params) == 0 {
		return res, nil
	}

	err = i.runner.Write(ctx, "import.partite", func(ctx context.Context, tx catasto.Tx) error {
		svc := partita.NewService(tx)

		for n, p := range params {
			existing, err := svc.Find(ctx, comuneID, p.Numero, p.Suffisso)
			if err != nil {
				return err
			}

			if existing != nil {
				return catasto.Unique("partita_numero_key",
					"row %d: partita %s already exists in comune %d", lines[n], existing.Label(), comuneID)
			}

			id, err := svc.Create(ctx, p)
			if err != nil {
				return rowError(lines[n], err)
			}

			res.IDs = append(res.IDs, id)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Rows = len(res.IDs)
	i.record(res)

	return res, nil
}

func partitaParams(comuneID int64, rec record) (partita.CreateParams, error) {
	numero, err := rec.positiveInt("numero_partita")
	if err != nil {
		return partita.CreateParams{}, err
	}

	impianto, err := rec.date("data_impianto")
	if err != nil {
		return partita.CreateParams{}, err
	}

	stato := catasto.StatoPartita(strings.ToLower(rec.value("stato")))
	switch {
	case !stato.Valid():
		return partita.CreateParams{}, catasto.DataError("row %d: unknown stato %q", rec.line, rec.value("stato"))
	case stato == catasto.StatoInattiva:
		return partita.CreateParams{}, catasto.DataError("row %d: partita %d is inattiva; import it attiva and register its variazione", rec.line, numero)
	}

	tipo := catasto.TipoPartita(strings.ToLower(rec.value("tipo")))
	if !tipo.Valid() {
		return partita.CreateParams{}, catasto.DataError("row %d: unknown tipo %q", rec.line, rec.value("tipo"))
	}

	return partita.CreateParams{
		ComuneID:          comuneID,
		Numero:            numero,
		Tipo:              tipo,
		DataImpianto:      impianto,
		Suffisso:          rec.optional("suffisso_partita"),
		NumeroProvenienza: rec.optional("numero_provenienza"),
	}, nil
}

// rowError prefixes a ledger error with its row, keeping the kind.
func rowError(line int, err error) error {
	kind := catasto.KindOf(err)
	if kind == catasto.KindUnknown {
		return err
	}

	return catasto.Wrap(kind, err, "row %d", line)
}

func (i *Importer) record(res *Result) {
	if i.metrics != nil {
		i.metrics.AddImportRows(string(res.Kind), res.Rows)
	}
}
