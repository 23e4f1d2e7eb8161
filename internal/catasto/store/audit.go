package store

import (
	"context"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

const selectLegameColumnsPP = `pp.id, pp.partita_id, pp.possessore_id, pp.tipo_partita, pp.titolo, pp.quota`

func (t *tx) AuditInactivePartite(ctx context.Context, comuneID *int64) ([]catasto.ClosureAudit, error) {
	query := `SELECT ` + selectPartitaColumns + `,
			(SELECT COUNT(*) FROM variazione v
			 WHERE v.partita_origine_id = partita.id AND v.partita_destinazione_id IS NOT NULL)
		FROM partita
		WHERE stato = 'inattiva'`

	query, args := scopeClause(query, nil, "comune_id", comuneID)
	query += ` ORDER BY id`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "auditing inactive partite")
	}
	defer rows.Close()

	var out []catasto.ClosureAudit

	for rows.Next() {
		var (
			p       catasto.Partita
			tipo    string
			stato   string
			closing int
		)

		if err := rows.Scan(
			&p.ID, &p.ComuneID, &p.Numero, &p.Suffisso, &tipo, &stato,
			&p.DataImpianto, &p.DataChiusura, &p.NumeroProvenienza, &p.CreatedAt, &p.UpdatedAt,
			&closing,
		); err != nil {
			return nil, classify(err, "scanning partita")
		}

		p.Tipo = catasto.TipoPartita(tipo)
		p.Stato = catasto.StatoPartita(stato)
		out = append(out, catasto.ClosureAudit{Partita: &p, ClosingVariazioni: closing})
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating partite")
	}

	return out, nil
}

func (t *tx) AuditImmobiliComune(ctx context.Context, comuneID *int64) ([]catasto.ImmobileComuneMismatch, error) {
	query := `
		SELECT i.id, p.id, l.id, p.comune_id, l.comune_id
		FROM immobile i
		JOIN partita p ON p.id = i.partita_id
		JOIN localita l ON l.id = i.localita_id
		WHERE p.comune_id <> l.comune_id`

	query, args := scopeClause(query, nil, "p.comune_id", comuneID)
	query += ` ORDER BY i.id`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "auditing immobili")
	}
	defer rows.Close()

	var out []catasto.ImmobileComuneMismatch

	for rows.Next() {
		var m catasto.ImmobileComuneMismatch
		if err := rows.Scan(&m.ImmobileID, &m.PartitaID, &m.LocalitaID, &m.PartitaComuneID, &m.LocalitaComuneID); err != nil {
			return nil, classify(err, "scanning immobile mismatch")
		}

		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating immobili")
	}

	return out, nil
}

func (t *tx) AuditStaleDestinations(ctx context.Context, comuneID *int64) ([]catasto.StaleDestination, error) {
	query := `
		SELECT v.id, d.id
		FROM variazione v
		JOIN partita d ON d.id = v.partita_destinazione_id
		JOIN partita o ON o.id = v.partita_origine_id
		WHERE d.stato = 'inattiva'
		  AND NOT EXISTS (SELECT 1 FROM variazione n WHERE n.partita_origine_id = d.id)`

	query, args := scopeClause(query, nil, "o.comune_id", comuneID)
	query += ` ORDER BY v.id`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "auditing variazioni")
	}
	defer rows.Close()

	var out []catasto.StaleDestination

	for rows.Next() {
		var s catasto.StaleDestination
		if err := rows.Scan(&s.VariazioneID, &s.DestinazioneID); err != nil {
			return nil, classify(err, "scanning variazione")
		}

		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating variazioni")
	}

	return out, nil
}

func (t *tx) AuditLegamiSenzaTitolo(ctx context.Context, comuneID *int64) ([]*catasto.PartitaPossessore, error) {
	query := `SELECT ` + selectLegameColumnsPP + `
		FROM partita_possessore pp
		JOIN partita p ON p.id = pp.partita_id
		WHERE btrim(COALESCE(pp.titolo, '')) = ''`

	query, args := scopeClause(query, nil, "p.comune_id", comuneID)
	query += ` ORDER BY pp.id`

	return t.queryLegami(ctx, query, args...)
}

func (t *tx) AuditPartiteSenzaPossessori(ctx context.Context, comuneID *int64) ([]*catasto.Partita, error) {
	query := `SELECT ` + selectPartitaColumns + `
		FROM partita
		WHERE stato = 'attiva'
		  AND NOT EXISTS (SELECT 1 FROM partita_possessore pp WHERE pp.partita_id = partita.id)`

	query, args := scopeClause(query, nil, "comune_id", comuneID)
	query += ` ORDER BY id`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "auditing partite without possessori")
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

func (t *tx) AuditQuote(ctx context.Context, comuneID *int64) ([]*catasto.PartitaPossessore, error) {
	query := `SELECT ` + selectLegameColumnsPP + `
		FROM partita_possessore pp
		JOIN partita p ON p.id = pp.partita_id
		WHERE pp.quota IS NOT NULL AND p.stato = 'attiva'`

	query, args := scopeClause(query, nil, "p.comune_id", comuneID)
	query += ` ORDER BY pp.partita_id, pp.id`

	return t.queryLegami(ctx, query, args...)
}

func (t *tx) AuditLocalitaDuplicate(ctx context.Context, comuneID *int64) ([]catasto.LocalitaDuplicate, error) {
	query := `
		SELECT comune_id, lower(nome), civico, string_agg(id::text, ',' ORDER BY id)
		FROM localita
		WHERE TRUE`

	query, args := scopeClause(query, nil, "comune_id", comuneID)
	query += `
		GROUP BY comune_id, lower(nome), civico
		HAVING COUNT(*) > 1
		ORDER BY MIN(id)`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "auditing localita")
	}
	defer rows.Close()

	var out []catasto.LocalitaDuplicate

	for rows.Next() {
		var (
			d   catasto.LocalitaDuplicate
			ids string
		)

		if err := rows.Scan(&d.ComuneID, &d.Nome, &d.Civico, &ids); err != nil {
			return nil, classify(err, "scanning localita group")
		}

		for _, raw := range strings.Split(ids, ",") {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, classify(err, "parsing localita id %q", raw)
			}

			d.IDs = append(d.IDs, id)
		}

		out = append(out, d)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating localita groups")
	}

	return out, nil
}
