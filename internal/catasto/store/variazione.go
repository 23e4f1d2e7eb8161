package store

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

const selectVariazioneColumns = `
	id, partita_origine_id, partita_destinazione_id, tipo, data_variazione,
	numero_riferimento, nominativo_riferimento
`

func scanVariazione(s scanner) (*catasto.Variazione, error) {
	var v catasto.Variazione

	var tipo string

	if err := s.Scan(
		&v.ID, &v.PartitaOrigineID, &v.PartitaDestinazioneID, &tipo, &v.DataVariazione,
		&v.NumeroRiferimento, &v.NominativoRiferimento,
	); err != nil {
		return nil, err
	}

	v.Tipo = catasto.TipoVariazione(tipo)

	return &v, nil
}

func (t *tx) InsertVariazione(ctx context.Context, v *catasto.Variazione) error {
	query := `
		INSERT INTO variazione (partita_origine_id, partita_destinazione_id, tipo, data_variazione,
			numero_riferimento, nominativo_riferimento, data_creazione)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`

	err := t.tx.QueryRowContext(ctx, query,
		v.PartitaOrigineID,
		v.PartitaDestinazioneID,
		v.Tipo,
		v.DataVariazione,
		v.NumeroRiferimento,
		v.NominativoRiferimento,
	).Scan(&v.ID)
	if err != nil {
		return classify(err, "creating variazione from partita %d", v.PartitaOrigineID)
	}

	return nil
}

func (t *tx) GetVariazione(ctx context.Context, id int64) (*catasto.Variazione, error) {
	query := `SELECT ` + selectVariazioneColumns + ` FROM variazione WHERE id = $1`

	v, err := scanVariazione(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify(err, "variazione %d not found", id)
	}

	return v, nil
}

func (t *tx) ListVariazioni(ctx context.Context, filter catasto.VariazioneFilter) ([]*catasto.Variazione, error) {
	query := `SELECT ` + selectVariazioneColumns + ` FROM variazione WHERE TRUE`

	var args []any

	if filter.OrigineID != nil {
		args = append(args, *filter.OrigineID)
		query += fmt.Sprintf(" AND partita_origine_id = $%d", len(args))
	}

	if filter.DestinazioneID != nil {
		args = append(args, *filter.DestinazioneID)
		query += fmt.Sprintf(" AND partita_destinazione_id = $%d", len(args))
	}

	query += ` ORDER BY data_variazione, id`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "listing variazioni")
	}
	defer rows.Close()

	var out []*catasto.Variazione

	for rows.Next() {
		v, err := scanVariazione(rows)
		if err != nil {
			return nil, classify(err, "scanning variazione")
		}

		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating variazioni")
	}

	return out, nil
}

func (t *tx) DeleteVariazione(ctx context.Context, id int64) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM variazione WHERE id = $1`, id)
	if err != nil {
		return classify(err, "deleting variazione %d", id)
	}

	return expectOne(res, "variazione %d not found", id)
}

const selectContrattoColumns = `id, variazione_id, tipo, data_contratto, notaio, repertorio, note`

func (t *tx) InsertContratto(ctx context.Context, c *catasto.Contratto) error {
	query := `
		INSERT INTO contratto (variazione_id, tipo, data_contratto, notaio, repertorio, note, data_creazione)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`

	err := t.tx.QueryRowContext(ctx, query,
		c.VariazioneID,
		c.Tipo,
		c.DataContratto,
		c.Notaio,
		c.Repertorio,
		c.Note,
	).Scan(&c.ID)
	if err != nil {
		return classify(err, "creating contratto for variazione %d", c.VariazioneID)
	}

	return nil
}

func (t *tx) GetContratto(ctx context.Context, variazioneID int64) (*catasto.Contratto, error) {
	query := `SELECT ` + selectContrattoColumns + ` FROM contratto WHERE variazione_id = $1`

	var c catasto.Contratto

	err := t.tx.QueryRowContext(ctx, query, variazioneID).Scan(
		&c.ID, &c.VariazioneID, &c.Tipo, &c.DataContratto, &c.Notaio, &c.Repertorio, &c.Note,
	)
	if err != nil {
		return nil, classify(err, "contratto for variazione %d not found", variazioneID)
	}

	return &c, nil
}

func (t *tx) DeleteContratto(ctx context.Context, variazioneID int64) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM contratto WHERE variazione_id = $1`, variazioneID); err != nil {
		return classify(err, "deleting contratto for variazione %d", variazioneID)
	}

	return nil
}
