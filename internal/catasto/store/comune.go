package store

import (
	"context"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

const selectComuneColumns = `id, nome, provincia, regione, data_creazione`

func scanComune(s scanner) (*catasto.Comune, error) {
	var c catasto.Comune
	if err := s.Scan(&c.ID, &c.Nome, &c.Provincia, &c.Regione, &c.CreatedAt); err != nil {
		return nil, err
	}

	return &c, nil
}

func (t *tx) InsertComune(ctx context.Context, c *catasto.Comune) error {
	query := `
		INSERT INTO comune (nome, provincia, regione, data_creazione, data_modifica)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, data_creazione
	`

	if err := t.tx.QueryRowContext(ctx, query, c.Nome, c.Provincia, c.Regione).Scan(&c.ID, &c.CreatedAt); err != nil {
		return classify(err, "creating comune %q", c.Nome)
	}

	return nil
}

func (t *tx) GetComune(ctx context.Context, id int64) (*catasto.Comune, error) {
	query := `SELECT ` + selectComuneColumns + ` FROM comune WHERE id = $1`

	c, err := scanComune(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify(err, "comune %d not found", id)
	}

	return c, nil
}

func (t *tx) GetComuneByNome(ctx context.Context, nome string) (*catasto.Comune, error) {
	query := `SELECT ` + selectComuneColumns + ` FROM comune WHERE nome = $1`

	c, err := scanComune(t.tx.QueryRowContext(ctx, query, nome))
	if err != nil {
		return nil, classify(err, "comune %q not found", nome)
	}

	return c, nil
}

func (t *tx) ListComuni(ctx context.Context, filter string) ([]*catasto.Comune, error) {
	query := `SELECT ` + selectComuneColumns + ` FROM comune`

	var args []any

	if filter != "" {
		query += ` WHERE nome ILIKE '%' || $1 || '%'`

		args = append(args, filter)
	}

	query += ` ORDER BY nome`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "listing comuni")
	}
	defer rows.Close()

	var out []*catasto.Comune

	for rows.Next() {
		c, err := scanComune(rows)
		if err != nil {
			return nil, classify(err, "scanning comune")
		}

		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating comuni")
	}

	return out, nil
}
