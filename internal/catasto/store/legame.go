package store

import (
	"context"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

const selectLegameColumns = `id, partita_id, possessore_id, tipo_partita, titolo, quota`

func scanLegame(s scanner) (*catasto.PartitaPossessore, error) {
	var l catasto.PartitaPossessore

	var tipo string

	if err := s.Scan(&l.ID, &l.PartitaID, &l.PossessoreID, &tipo, &l.Titolo, &l.Quota); err != nil {
		return nil, err
	}

	l.TipoPartita = catasto.TipoPartita(tipo)

	return &l, nil
}

func (t *tx) InsertLegame(ctx context.Context, l *catasto.PartitaPossessore) error {
	query := `
		INSERT INTO partita_possessore (partita_id, possessore_id, tipo_partita, titolo, quota, data_creazione)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`

	err := t.tx.QueryRowContext(ctx, query,
		l.PartitaID,
		l.PossessoreID,
		l.TipoPartita,
		l.Titolo,
		l.Quota,
	).Scan(&l.ID)
	if err != nil {
		return classify(err, "linking possessore %d to partita %d", l.PossessoreID, l.PartitaID)
	}

	return nil
}

func (t *tx) GetLegame(ctx context.Context, id int64) (*catasto.PartitaPossessore, error) {
	query := `SELECT ` + selectLegameColumns + ` FROM partita_possessore WHERE id = $1`

	l, err := scanLegame(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify(err, "legame %d not found", id)
	}

	return l, nil
}

func (t *tx) UpdateLegame(ctx context.Context, l *catasto.PartitaPossessore) error {
	query := `
		UPDATE partita_possessore
		SET tipo_partita = $1, titolo = $2, quota = $3, data_modifica = NOW()
		WHERE id = $4
	`

	res, err := t.tx.ExecContext(ctx, query, l.TipoPartita, l.Titolo, l.Quota, l.ID)
	if err != nil {
		return classify(err, "updating legame %d", l.ID)
	}

	return expectOne(res, "legame %d not found", l.ID)
}

func (t *tx) DeleteLegame(ctx context.Context, id int64) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM partita_possessore WHERE id = $1`, id)
	if err != nil {
		return classify(err, "deleting legame %d", id)
	}

	return expectOne(res, "legame %d not found", id)
}

func (t *tx) ListLegami(ctx context.Context, partitaID int64) ([]*catasto.PartitaPossessore, error) {
	query := `SELECT ` + selectLegameColumns + ` FROM partita_possessore WHERE partita_id = $1 ORDER BY id`

	return t.queryLegami(ctx, query, partitaID)
}

func (t *tx) queryLegami(ctx context.Context, query string, args ...any) ([]*catasto.PartitaPossessore, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "listing legami")
	}
	defer rows.Close()

	var out []*catasto.PartitaPossessore

	for rows.Next() {
		l, err := scanLegame(rows)
		if err != nil {
			return nil, classify(err, "scanning legame")
		}

		out = append(out, l)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating legami")
	}

	return out, nil
}
