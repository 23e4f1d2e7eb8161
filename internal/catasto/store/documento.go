package store

import (
	"context"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

func (t *tx) UpsertDocumento(ctx context.Context, d *catasto.DocumentoPartita) error {
	query := `
		INSERT INTO documento_partita (documento_id, partita_id, rilevanza, note, data_creazione)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (documento_id, partita_id)
		DO UPDATE SET rilevanza = EXCLUDED.rilevanza, note = EXCLUDED.note, data_modifica = NOW()
	`

	if _, err := t.tx.ExecContext(ctx, query, d.DocumentoID, d.PartitaID, d.Rilevanza, d.Note); err != nil {
		return classify(err, "linking documento %d to partita %d", d.DocumentoID, d.PartitaID)
	}

	return nil
}

func (t *tx) DeleteDocumento(ctx context.Context, documentoID, partitaID int64) error {
	query := `DELETE FROM documento_partita WHERE documento_id = $1 AND partita_id = $2`

	res, err := t.tx.ExecContext(ctx, query, documentoID, partitaID)
	if err != nil {
		return classify(err, "unlinking documento %d", documentoID)
	}

	return expectOne(res, "documento %d is not linked to partita %d", documentoID, partitaID)
}

func (t *tx) ListDocumenti(ctx context.Context, partitaID int64) ([]*catasto.DocumentoPartita, error) {
	query := `
		SELECT documento_id, partita_id, rilevanza, note
		FROM documento_partita
		WHERE partita_id = $1
		ORDER BY documento_id
	`

	rows, err := t.tx.QueryContext(ctx, query, partitaID)
	if err != nil {
		return nil, classify(err, "listing documenti")
	}
	defer rows.Close()

	var out []*catasto.DocumentoPartita

	for rows.Next() {
		var d catasto.DocumentoPartita

		var rilevanza string

		if err := rows.Scan(&d.DocumentoID, &d.PartitaID, &rilevanza, &d.Note); err != nil {
			return nil, classify(err, "scanning documento")
		}

		d.Rilevanza = catasto.Rilevanza(rilevanza)
		out = append(out, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating documenti")
	}

	return out, nil
}
