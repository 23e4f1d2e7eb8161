package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

func inScope(comuneID *int64, id int64) bool {
	return comuneID == nil || *comuneID == id
}

func (t *tx) AuditInactivePartite(_ context.Context, comuneID *int64) ([]catasto.ClosureAudit, error) {
	if err := t.read("AuditInactivePartite"); err != nil {
		return nil, err
	}

	closing := map[int64]int{}

	for _, v := range t.state.variazioni {
		if v.PartitaDestinazioneID != nil {
			closing[v.PartitaOrigineID]++
		}
	}

	var out []catasto.ClosureAudit

	for _, p := range t.state.partite {
		if p.Stato != catasto.StatoInattiva || !inScope(comuneID, p.ComuneID) {
			continue
		}

		out = append(out, catasto.ClosureAudit{Partita: clonePartita(p), ClosingVariazioni: closing[p.ID]})
	}

	slices.SortFunc(out, func(a, b catasto.ClosureAudit) int {
		return cmp.Compare(a.Partita.ID, b.Partita.ID)
	})

	return out, nil
}

func (t *tx) AuditImmobiliComune(_ context.Context, comuneID *int64) ([]catasto.ImmobileComuneMismatch, error) {
	if err := t.read("AuditImmobiliComune"); err != nil {
		return nil, err
	}

	var out []catasto.ImmobileComuneMismatch

	for _, im := range t.state.immobili {
		p := t.state.partite[im.PartitaID]
		l := t.state.localita[im.LocalitaID]

		if p.ComuneID == l.ComuneID || !inScope(comuneID, p.ComuneID) {
			continue
		}

		out = append(out, catasto.ImmobileComuneMismatch{
			ImmobileID:       im.ID,
			PartitaID:        p.ID,
			LocalitaID:       l.ID,
			PartitaComuneID:  p.ComuneID,
			LocalitaComuneID: l.ComuneID,
		})
	}

	slices.SortFunc(out, func(a, b catasto.ImmobileComuneMismatch) int {
		return cmp.Compare(a.ImmobileID, b.ImmobileID)
	})

	return out, nil
}

func (t *tx) AuditStaleDestinations(_ context.Context, comuneID *int64) ([]catasto.StaleDestination, error) {
	if err := t.read("AuditStaleDestinations"); err != nil {
		return nil, err
	}

	origins := map[int64]bool{}
	for _, v := range t.state.variazioni {
		origins[v.PartitaOrigineID] = true
	}

	var out []catasto.StaleDestination

	for _, v := range t.state.variazioni {
		if v.PartitaDestinazioneID == nil {
			continue
		}

		dest := t.state.partite[*v.PartitaDestinazioneID]
		origin := t.state.partite[v.PartitaOrigineID]

		if dest.Stato != catasto.StatoInattiva || origins[dest.ID] || !inScope(comuneID, origin.ComuneID) {
			continue
		}

		out = append(out, catasto.StaleDestination{VariazioneID: v.ID, DestinazioneID: dest.ID})
	}

	slices.SortFunc(out, func(a, b catasto.StaleDestination) int {
		return cmp.Compare(a.VariazioneID, b.VariazioneID)
	})

	return out, nil
}

func (t *tx) AuditLegamiSenzaTitolo(_ context.Context, comuneID *int64) ([]*catasto.PartitaPossessore, error) {
	if err := t.read("AuditLegamiSenzaTitolo"); err != nil {
		return nil, err
	}

	var out []*catasto.PartitaPossessore

	for _, l := range t.state.legami {
		if strings.TrimSpace(l.Titolo) != "" || !inScope(comuneID, t.state.partite[l.PartitaID].ComuneID) {
			continue
		}

		out = append(out, cloneLegame(l))
	}

	slices.SortFunc(out, func(a, b *catasto.PartitaPossessore) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}

func (t *tx) AuditPartiteSenzaPossessori(_ context.Context, comuneID *int64) ([]*catasto.Partita, error) {
	if err := t.read("AuditPartiteSenzaPossessori"); err != nil {
		return nil, err
	}

	linked := map[int64]bool{}
	for _, l := range t.state.legami {
		linked[l.PartitaID] = true
	}

	var out []*catasto.Partita

	for _, p := range t.state.partite {
		if p.Stato != catasto.StatoAttiva || linked[p.ID] || !inScope(comuneID, p.ComuneID) {
			continue
		}

		out = append(out, clonePartita(p))
	}

	slices.SortFunc(out, func(a, b *catasto.Partita) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}

func (t *tx) AuditQuote(_ context.Context, comuneID *int64) ([]*catasto.PartitaPossessore, error) {
	if err := t.read("AuditQuote"); err != nil {
		return nil, err
	}

	var out []*catasto.PartitaPossessore

	for _, l := range t.state.legami {
		p := t.state.partite[l.PartitaID]
		if l.Quota == nil || p.Stato != catasto.StatoAttiva || !inScope(comuneID, p.ComuneID) {
			continue
		}

		out = append(out, cloneLegame(l))
	}

	slices.SortFunc(out, func(a, b *catasto.PartitaPossessore) int {
		return cmp.Or(cmp.Compare(a.PartitaID, b.PartitaID), cmp.Compare(a.ID, b.ID))
	})

	return out, nil
}

func (t *tx) AuditLocalitaDuplicate(_ context.Context, comuneID *int64) ([]catasto.LocalitaDuplicate, error) {
	if err := t.read("AuditLocalitaDuplicate"); err != nil {
		return nil, err
	}

	groups := map[string]*catasto.LocalitaDuplicate{}

	for _, l := range t.state.localita {
		if !inScope(comuneID, l.ComuneID) {
			continue
		}

		civico := "-"
		if l.Civico != nil {
			civico = fmt.Sprint(*l.Civico)
		}

		key := fmt.Sprintf("%d|%s|%s", l.ComuneID, strings.ToLower(l.Nome), civico)

		g, ok := groups[key]
		if !ok {
			g = &catasto.LocalitaDuplicate{ComuneID: l.ComuneID, Nome: strings.ToLower(l.Nome), Civico: clonePtr(l.Civico)}
			groups[key] = g
		}

		g.IDs = append(g.IDs, l.ID)
	}

	var out []catasto.LocalitaDuplicate

	for _, g := range groups {
		if len(g.IDs) < 2 {
			continue
		}

		slices.Sort(g.IDs)
		out = append(out, *g)
	}

	slices.SortFunc(out, func(a, b catasto.LocalitaDuplicate) int {
		return cmp.Compare(a.IDs[0], b.IDs[0])
	})

	return out, nil
}
