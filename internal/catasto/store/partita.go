package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

const selectPartitaColumns = `
	id, comune_id, numero_partita, suffisso_partita, tipo, stato,
	data_impianto, data_chiusura, numero_provenienza, data_creazione, data_modifica
`

// scanPartita reads a partita row.
// Expected column order: selectPartitaColumns.
func scanPartita(s scanner) (*catasto.Partita, error) {
	var p catasto.Partita

	var tipo, stato string

	if err := s.Scan(
		&p.ID, &p.ComuneID, &p.Numero, &p.Suffisso, &tipo, &stato,
		&p.DataImpianto, &p.DataChiusura, &p.NumeroProvenienza, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Tipo = catasto.TipoPartita(tipo)
	p.Stato = catasto.StatoPartita(stato)

	return &p, nil
}

func (t *tx) InsertPartita(ctx context.Context, p *catasto.Partita) error {
	query := `
		INSERT INTO partita (comune_id, numero_partita, suffisso_partita, tipo, stato,
			data_impianto, data_chiusura, numero_provenienza, data_creazione)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, data_creazione
	`

	err := t.tx.QueryRowContext(ctx, query,
		p.ComuneID,
		p.Numero,
		p.Suffisso,
		p.Tipo,
		p.Stato,
		p.DataImpianto,
		p.DataChiusura,
		p.NumeroProvenienza,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return classify(err, "creating partita %s in comune %d", p.Label(), p.ComuneID)
	}

	return nil
}

func (t *tx) GetPartita(ctx context.Context, id int64) (*catasto.Partita, error) {
	query := `SELECT ` + selectPartitaColumns + ` FROM partita WHERE id = $1`

	p, err := scanPartita(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify(err, "partita %d not found", id)
	}

	return p, nil
}

func (t *tx) FindPartita(ctx context.Context, comuneID int64, numero int, suffisso *string) (*catasto.Partita, error) {
	query := `SELECT ` + selectPartitaColumns + `
		FROM partita
		WHERE comune_id = $1 AND numero_partita = $2 AND COALESCE(suffisso_partita, '') = COALESCE($3, '')`

	rows, err := t.tx.QueryContext(ctx, query, comuneID, numero, suffisso)
	if err != nil {
		return nil, classify(err, "looking up partita %s", catasto.PartitaLabel(numero, suffisso))
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, classify(err, "looking up partita %s", catasto.PartitaLabel(numero, suffisso))
		}

		return nil, nil
	}

	p, err := scanPartita(rows)
	if err != nil {
		return nil, classify(err, "scanning partita")
	}

	return p, nil
}

func (t *tx) ListPartite(ctx context.Context, filter catasto.PartitaFilter) ([]*catasto.Partita, error) {
	query := `SELECT ` + selectPartitaColumns + ` FROM partita WHERE TRUE`

	var args []any

	if filter.ComuneID != nil {
		args = append(args, *filter.ComuneID)
		query += fmt.Sprintf(" AND comune_id = $%d", len(args))
	}

	if filter.Stato != nil {
		args = append(args, *filter.Stato)
		query += fmt.Sprintf(" AND stato = $%d", len(args))
	}

	if filter.Numero != nil {
		args = append(args, *filter.Numero)
		query += fmt.Sprintf(" AND numero_partita = $%d", len(args))
	}

	query += ` ORDER BY comune_id, numero_partita, COALESCE(suffisso_partita, '')`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "listing partite")
	}
	defer rows.Close()

	var out []*catasto.Partita

	for rows.Next() {
		p, err := scanPartita(rows)
		if err != nil {
			return nil, classify(err, "scanning partita")
		}

		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating partite")
	}

	return out, nil
}

func (t *tx) UpdatePartitaStato(ctx context.Context, id int64, stato catasto.StatoPartita, dataChiusura *time.Time) error {
	query := `
		UPDATE partita
		SET stato = $1, data_chiusura = $2, data_modifica = NOW()
		WHERE id = $3
	`

	res, err := t.tx.ExecContext(ctx, query, stato, dataChiusura, id)
	if err != nil {
		return classify(err, "updating stato of partita %d", id)
	}

	return expectOne(res, "partita %d not found", id)
}
