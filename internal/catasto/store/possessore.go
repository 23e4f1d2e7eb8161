package store

import (
	"context"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

const selectPossessoreColumns = `
	id, comune_id, nome_completo, cognome_nome, paternita, attivo, data_creazione, data_modifica
`

func scanPossessore(s scanner) (*catasto.Possessore, error) {
	var p catasto.Possessore
	if err := s.Scan(
		&p.ID, &p.ComuneID, &p.NomeCompleto, &p.CognomeNome, &p.Paternita, &p.Attivo,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

func (t *tx) InsertPossessore(ctx context.Context, p *catasto.Possessore) error {
	query := `
		INSERT INTO possessore (comune_id, nome_completo, cognome_nome, paternita, attivo, data_creazione)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, data_creazione
	`

	err := t.tx.QueryRowContext(ctx, query,
		p.ComuneID,
		p.NomeCompleto,
		p.CognomeNome,
		p.Paternita,
		p.Attivo,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return classify(err, "creating possessore %q", p.NomeCompleto)
	}

	return nil
}

func (t *tx) GetPossessore(ctx context.Context, id int64) (*catasto.Possessore, error) {
	query := `SELECT ` + selectPossessoreColumns + ` FROM possessore WHERE id = $1`

	p, err := scanPossessore(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify(err, "possessore %d not found", id)
	}

	return p, nil
}

// FindPossessore compares against stored names with their whitespace
// collapsed, so rows entered before normalisation still match.
func (t *tx) FindPossessore(ctx context.Context, comuneID int64, nomeCompleto string) (*catasto.Possessore, error) {
	query := `SELECT ` + selectPossessoreColumns + `
		FROM possessore
		WHERE comune_id = $1
		  AND regexp_replace(btrim(nome_completo), '\s+', ' ', 'g') = $2
		ORDER BY id
		LIMIT 1`

	rows, err := t.tx.QueryContext(ctx, query, comuneID, nomeCompleto)
	if err != nil {
		return nil, classify(err, "looking up possessore %q", nomeCompleto)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, classify(err, "looking up possessore %q", nomeCompleto)
		}

		return nil, nil
	}

	p, err := scanPossessore(rows)
	if err != nil {
		return nil, classify(err, "scanning possessore")
	}

	return p, nil
}

func (t *tx) UpdatePossessore(ctx context.Context, p *catasto.Possessore) error {
	query := `
		UPDATE possessore
		SET nome_completo = $1, cognome_nome = $2, paternita = $3, attivo = $4, data_modifica = NOW()
		WHERE id = $5
		RETURNING data_modifica
	`

	err := t.tx.QueryRowContext(ctx, query,
		p.NomeCompleto,
		p.CognomeNome,
		p.Paternita,
		p.Attivo,
		p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return classify(err, "possessore %d not found", p.ID)
	}

	return nil
}

func (t *tx) ListPossessori(ctx context.Context, comuneID int64, filter string) ([]*catasto.Possessore, error) {
	query := `SELECT ` + selectPossessoreColumns + ` FROM possessore WHERE comune_id = $1`

	args := []any{comuneID}

	if filter != "" {
		query += ` AND nome_completo ILIKE '%' || $2 || '%'`

		args = append(args, filter)
	}

	query += ` ORDER BY nome_completo, id`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "listing possessori")
	}
	defer rows.Close()

	var out []*catasto.Possessore

	for rows.Next() {
		p, err := scanPossessore(rows)
		if err != nil {
			return nil, classify(err, "scanning possessore")
		}

		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating possessori")
	}

	return out, nil
}
