package store

import (
	"context"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

const selectLocalitaColumns = `id, comune_id, nome, tipo, civico`

func scanLocalita(s scanner) (*catasto.Localita, error) {
	var l catasto.Localita

	var tipo string

	if err := s.Scan(&l.ID, &l.ComuneID, &l.Nome, &tipo, &l.Civico); err != nil {
		return nil, err
	}

	l.Tipo = catasto.TipoLocalita(tipo)

	return &l, nil
}

func (t *tx) InsertLocalita(ctx context.Context, l *catasto.Localita) error {
	query := `
		INSERT INTO localita (comune_id, nome, tipo, civico, data_creazione)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	if err := t.tx.QueryRowContext(ctx, query, l.ComuneID, l.Nome, l.Tipo, l.Civico).Scan(&l.ID); err != nil {
		return classify(err, "creating localita %q", l.Nome)
	}

	return nil
}

func (t *tx) GetLocalita(ctx context.Context, id int64) (*catasto.Localita, error) {
	query := `SELECT ` + selectLocalitaColumns + ` FROM localita WHERE id = $1`

	l, err := scanLocalita(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify(err, "localita %d not found", id)
	}

	return l, nil
}

func (t *tx) FindLocalita(ctx context.Context, comuneID int64, nome string, civico *int) (*catasto.Localita, error) {
	query := `SELECT ` + selectLocalitaColumns + `
		FROM localita
		WHERE comune_id = $1 AND nome = $2 AND civico IS NOT DISTINCT FROM $3
		ORDER BY id
		LIMIT 1`

	rows, err := t.tx.QueryContext(ctx, query, comuneID, nome, civico)
	if err != nil {
		return nil, classify(err, "looking up localita %q", nome)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, classify(err, "looking up localita %q", nome)
		}

		return nil, nil
	}

	l, err := scanLocalita(rows)
	if err != nil {
		return nil, classify(err, "scanning localita")
	}

	return l, nil
}

func (t *tx) ListLocalita(ctx context.Context, comuneID int64, filter string) ([]*catasto.Localita, error) {
	query := `SELECT ` + selectLocalitaColumns + ` FROM localita WHERE comune_id = $1`

	args := []any{comuneID}

	if filter != "" {
		query += ` AND nome ILIKE '%' || $2 || '%'`

		args = append(args, filter)
	}

	query += ` ORDER BY tipo, nome, civico, id`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "listing localita")
	}
	defer rows.Close()

	var out []*catasto.Localita

	for rows.Next() {
		l, err := scanLocalita(rows)
		if err != nil {
			return nil, classify(err, "scanning localita")
		}

		out = append(out, l)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating localita")
	}

	return out, nil
}

const selectImmobileColumns = `
	id, partita_id, localita_id, natura, classificazione, consistenza, numero_piani, numero_vani
`

func scanImmobile(s scanner) (*catasto.Immobile, error) {
	var im catasto.Immobile
	if err := s.Scan(
		&im.ID, &im.PartitaID, &im.LocalitaID, &im.Natura,
		&im.Classificazione, &im.Consistenza, &im.NumeroPiani, &im.NumeroVani,
	); err != nil {
		return nil, err
	}

	return &im, nil
}

func (t *tx) InsertImmobile(ctx context.Context, im *catasto.Immobile) error {
	query := `
		INSERT INTO immobile (partita_id, localita_id, natura, classificazione, consistenza, numero_piani, numero_vani, data_creazione)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id
	`

	err := t.tx.QueryRowContext(ctx, query,
		im.PartitaID,
		im.LocalitaID,
		im.Natura,
		im.Classificazione,
		im.Consistenza,
		im.NumeroPiani,
		im.NumeroVani,
	).Scan(&im.ID)
	if err != nil {
		return classify(err, "creating immobile %q", im.Natura)
	}

	return nil
}

func (t *tx) GetImmobile(ctx context.Context, id int64) (*catasto.Immobile, error) {
	query := `SELECT ` + selectImmobileColumns + ` FROM immobile WHERE id = $1`

	im, err := scanImmobile(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify(err, "immobile %d not found", id)
	}

	return im, nil
}

func (t *tx) ListImmobili(ctx context.Context, partitaID int64) ([]*catasto.Immobile, error) {
	query := `SELECT ` + selectImmobileColumns + ` FROM immobile WHERE partita_id = $1 ORDER BY id`

	rows, err := t.tx.QueryContext(ctx, query, partitaID)
	if err != nil {
		return nil, classify(err, "listing immobili")
	}
	defer rows.Close()

	var out []*catasto.Immobile

	for rows.Next() {
		im, err := scanImmobile(rows)
		if err != nil {
			return nil, classify(err, "scanning immobile")
		}

		out = append(out, im)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating immobili")
	}

	return out, nil
}

func (t *tx) UpdateImmobilePartita(ctx context.Context, immobileID, partitaID int64) error {
	query := `
		UPDATE immobile
		SET partita_id = $1, data_modifica = NOW()
		WHERE id = $2
	`

	res, err := t.tx.ExecContext(ctx, query, partitaID, immobileID)
	if err != nil {
		return classify(err, "moving immobile %d", immobileID)
	}

	return expectOne(res, "immobile %d not found", immobileID)
}
