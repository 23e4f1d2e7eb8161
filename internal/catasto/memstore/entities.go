package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

func cloneComune(c catasto.Comune) *catasto.Comune {
	return &c
}

func clonePossessore(p catasto.Possessore) *catasto.Possessore {
	p.CognomeNome = clonePtr(p.CognomeNome)
	p.Paternita = clonePtr(p.Paternita)
	p.UpdatedAt = clonePtr(p.UpdatedAt)

	return &p
}

func cloneLocalita(l catasto.Localita) *catasto.Localita {
	l.Civico = clonePtr(l.Civico)
	return &l
}

func cloneImmobile(im catasto.Immobile) *catasto.Immobile {
	im.Classificazione = clonePtr(im.Classificazione)
	im.Consistenza = clonePtr(im.Consistenza)
	im.NumeroPiani = clonePtr(im.NumeroPiani)
	im.NumeroVani = clonePtr(im.NumeroVani)

	return &im
}

func clonePartita(p catasto.Partita) *catasto.Partita {
	p.Suffisso = clonePtr(p.Suffisso)
	p.DataChiusura = clonePtr(p.DataChiusura)
	p.NumeroProvenienza = clonePtr(p.NumeroProvenienza)
	p.UpdatedAt = clonePtr(p.UpdatedAt)

	return &p
}

func cloneLegame(l catasto.PartitaPossessore) *catasto.PartitaPossessore {
	l.Quota = clonePtr(l.Quota)
	return &l
}

func cloneVariazione(v catasto.Variazione) *catasto.Variazione {
	v.PartitaDestinazioneID = clonePtr(v.PartitaDestinazioneID)
	v.NumeroRiferimento = clonePtr(v.NumeroRiferimento)
	v.NominativoRiferimento = clonePtr(v.NominativoRiferimento)

	return &v
}

func cloneContratto(c catasto.Contratto) *catasto.Contratto {
	c.Notaio = clonePtr(c.Notaio)
	c.Repertorio = clonePtr(c.Repertorio)
	c.Note = clonePtr(c.Note)

	return &c
}

func cloneDocumento(d catasto.DocumentoPartita) *catasto.DocumentoPartita {
	d.Note = clonePtr(d.Note)
	return &d
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func sameInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

func (t *tx) InsertComune(_ context.Context, c *catasto.Comune) error {
	if err := t.write("InsertComune"); err != nil {
		return err
	}

	for _, existing := range t.state.comuni {
		if existing.Nome == c.Nome {
			return catasto.Unique("comune_nome_key", "comune %q already exists", c.Nome)
		}
	}

	c.ID = t.state.next("comune")
	c.CreatedAt = t.store.now()
	t.state.comuni[c.ID] = *cloneComune(*c)

	return nil
}

func (t *tx) GetComune(_ context.Context, id int64) (*catasto.Comune, error) {
	if err := t.read("GetComune"); err != nil {
		return nil, err
	}

	c, ok := t.state.comuni[id]
	if !ok {
		return nil, catasto.NotFound("comune %d not found", id)
	}

	return cloneComune(c), nil
}

func (t *tx) GetComuneByNome(_ context.Context, nome string) (*catasto.Comune, error) {
	if err := t.read("GetComuneByNome"); err != nil {
		return nil, err
	}

	for _, c := range t.state.comuni {
		if c.Nome == nome {
			return cloneComune(c), nil
		}
	}

	return nil, catasto.NotFound("comune %q not found", nome)
}

func (t *tx) ListComuni(_ context.Context, filter string) ([]*catasto.Comune, error) {
	if err := t.read("ListComuni"); err != nil {
		return nil, err
	}

	var out []*catasto.Comune

	for _, c := range t.state.comuni {
		if filter != "" && !containsFold(c.Nome, filter) {
			continue
		}

		out = append(out, cloneComune(c))
	}

	slices.SortFunc(out, func(a, b *catasto.Comune) int {
		return cmp.Compare(a.Nome, b.Nome)
	})

	return out, nil
}

func (t *tx) InsertPossessore(_ context.Context, p *catasto.Possessore) error {
	if err := t.write("InsertPossessore"); err != nil {
		return err
	}

	if _, ok := t.state.comuni[p.ComuneID]; !ok {
		return catasto.NotFound("comune %d not found", p.ComuneID)
	}

	for _, existing := range t.state.possessori {
		if existing.ComuneID == p.ComuneID && existing.NomeCompleto == p.NomeCompleto {
			return catasto.Unique("possessore_nome_completo_comune_id_key",
				"possessore %q already exists in comune %d", p.NomeCompleto, p.ComuneID)
		}
	}

	p.ID = t.state.next("possessore")
	p.CreatedAt = t.store.now()
	t.state.possessori[p.ID] = *clonePossessore(*p)

	return nil
}

func (t *tx) GetPossessore(_ context.Context, id int64) (*catasto.Possessore, error) {
	if err := t.read("GetPossessore"); err != nil {
		return nil, err
	}

	p, ok := t.state.possessori[id]
	if !ok {
		return nil, catasto.NotFound("possessore %d not found", id)
	}

	return clonePossessore(p), nil
}

func (t *tx) FindPossessore(_ context.Context, comuneID int64, nomeCompleto string) (*catasto.Possessore, error) {
	if err := t.read("FindPossessore"); err != nil {
		return nil, err
	}

	var found *catasto.Possessore

	for _, p := range t.state.possessori {
		if p.ComuneID != comuneID || catasto.NormalizeName(p.NomeCompleto) != nomeCompleto {
			continue
		}

		// Lowest id wins when legacy rows differ only in spacing.
		if found == nil || p.ID < found.ID {
			found = clonePossessore(p)
		}
	}

	return found, nil
}

func (t *tx) UpdatePossessore(_ context.Context, p *catasto.Possessore) error {
	if err := t.write("UpdatePossessore"); err != nil {
		return err
	}

	existing, ok := t.state.possessori[p.ID]
	if !ok {
		return catasto.NotFound("possessore %d not found", p.ID)
	}

	for _, other := range t.state.possessori {
		if other.ID != p.ID && other.ComuneID == existing.ComuneID && other.NomeCompleto == p.NomeCompleto {
			return catasto.Unique("possessore_nome_completo_comune_id_key",
				"possessore %q already exists in comune %d", p.NomeCompleto, existing.ComuneID)
		}
	}

	updated := existing
	updated.NomeCompleto = p.NomeCompleto
	updated.CognomeNome = p.CognomeNome
	updated.Paternita = p.Paternita
	updated.Attivo = p.Attivo
	updated.UpdatedAt = new(t.store.now())

	t.state.possessori[p.ID] = *clonePossessore(updated)
	p.UpdatedAt = clonePtr(updated.UpdatedAt)

	return nil
}

func (t *tx) ListPossessori(_ context.Context, comuneID int64, filter string) ([]*catasto.Possessore, error) {
	if err := t.read("ListPossessori"); err != nil {
		return nil, err
	}

	var out []*catasto.Possessore

	for _, p := range t.state.possessori {
		if p.ComuneID != comuneID {
			continue
		}

		if filter != "" && !containsFold(p.NomeCompleto, filter) {
			continue
		}

		out = append(out, clonePossessore(p))
	}

	slices.SortFunc(out, func(a, b *catasto.Possessore) int {
		return cmp.Or(cmp.Compare(a.NomeCompleto, b.NomeCompleto), cmp.Compare(a.ID, b.ID))
	})

	return out, nil
}

func (t *tx) InsertLocalita(_ context.Context, l *catasto.Localita) error {
	if err := t.write("InsertLocalita"); err != nil {
		return err
	}

	if _, ok := t.state.comuni[l.ComuneID]; !ok {
		return catasto.NotFound("comune %d not found", l.ComuneID)
	}

	l.ID = t.state.next("localita")
	t.state.localita[l.ID] = *cloneLocalita(*l)

	return nil
}

func (t *tx) GetLocalita(_ context.Context, id int64) (*catasto.Localita, error) {
	if err := t.read("GetLocalita"); err != nil {
		return nil, err
	}

	l, ok := t.state.localita[id]
	if !ok {
		return nil, catasto.NotFound("localita %d not found", id)
	}

	return cloneLocalita(l), nil
}

func (t *tx) FindLocalita(_ context.Context, comuneID int64, nome string, civico *int) (*catasto.Localita, error) {
	if err := t.read("FindLocalita"); err != nil {
		return nil, err
	}

	var found *catasto.Localita

	for _, l := range t.state.localita {
		if l.ComuneID != comuneID || l.Nome != nome || !sameInt(l.Civico, civico) {
			continue
		}

		if found == nil || l.ID < found.ID {
			found = cloneLocalita(l)
		}
	}

	return found, nil
}

func (t *tx) ListLocalita(_ context.Context, comuneID int64, filter string) ([]*catasto.Localita, error) {
	if err := t.read("ListLocalita"); err != nil {
		return nil, err
	}

	var out []*catasto.Localita

	for _, l := range t.state.localita {
		if l.ComuneID != comuneID {
			continue
		}

		if filter != "" && !containsFold(l.Nome, filter) {
			continue
		}

		out = append(out, cloneLocalita(l))
	}

	slices.SortFunc(out, func(a, b *catasto.Localita) int {
		return cmp.Or(
			cmp.Compare(a.Tipo, b.Tipo),
			cmp.Compare(a.Nome, b.Nome),
			compareCivico(a.Civico, b.Civico),
			cmp.Compare(a.ID, b.ID),
		)
	})

	return out, nil
}

// compareCivico orders missing civici last, as Postgres does for NULLs.
func compareCivico(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	return cmp.Compare(*a, *b)
}

func (t *tx) InsertImmobile(_ context.Context, im *catasto.Immobile) error {
	if err := t.write("InsertImmobile"); err != nil {
		return err
	}

	if _, ok := t.state.partite[im.PartitaID]; !ok {
		return catasto.NotFound("partita %d not found", im.PartitaID)
	}

	if _, ok := t.state.localita[im.LocalitaID]; !ok {
		return catasto.NotFound("localita %d not found", im.LocalitaID)
	}

	im.ID = t.state.next("immobile")
	t.state.immobili[im.ID] = *cloneImmobile(*im)

	return nil
}

func (t *tx) GetImmobile(_ context.Context, id int64) (*catasto.Immobile, error) {
	if err := t.read("GetImmobile"); err != nil {
		return nil, err
	}

	im, ok := t.state.immobili[id]
	if !ok {
		return nil, catasto.NotFound("immobile %d not found", id)
	}

	return cloneImmobile(im), nil
}

func (t *tx) ListImmobili(_ context.Context, partitaID int64) ([]*catasto.Immobile, error) {
	if err := t.read("ListImmobili"); err != nil {
		return nil, err
	}

	var out []*catasto.Immobile

	for _, im := range t.state.immobili {
		if im.PartitaID == partitaID {
			out = append(out, cloneImmobile(im))
		}
	}

	slices.SortFunc(out, func(a, b *catasto.Immobile) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}

func (t *tx) UpdateImmobilePartita(_ context.Context, immobileID, partitaID int64) error {
	if err := t.write("UpdateImmobilePartita"); err != nil {
		return err
	}

	im, ok := t.state.immobili[immobileID]
	if !ok {
		return catasto.NotFound("immobile %d not found", immobileID)
	}

	if _, ok := t.state.partite[partitaID]; !ok {
		return catasto.NotFound("partita %d not found", partitaID)
	}

	im.PartitaID = partitaID
	t.state.immobili[immobileID] = im

	return nil
}

func (t *tx) InsertPartita(_ context.Context, p *catasto.Partita) error {
	if err := t.write("InsertPartita"); err != nil {
		return err
	}

	if _, ok := t.state.comuni[p.ComuneID]; !ok {
		return catasto.NotFound("comune %d not found", p.ComuneID)
	}

	if err := checkChiusura(p.Stato, p.DataChiusura); err != nil {
		return err
	}

	for _, existing := range t.state.partite {
		if existing.ComuneID == p.ComuneID && existing.Numero == p.Numero && catasto.SameSuffix(existing.Suffisso, p.Suffisso) {
			return catasto.Unique("partita_numero_key",
				"partita %s already exists in comune %d", p.Label(), p.ComuneID)
		}
	}

	p.ID = t.state.next("partita")
	p.CreatedAt = t.store.now()
	t.state.partite[p.ID] = *clonePartita(*p)

	return nil
}

func (t *tx) GetPartita(_ context.Context, id int64) (*catasto.Partita, error) {
	if err := t.read("GetPartita"); err != nil {
		return nil, err
	}

	p, ok := t.state.partite[id]
	if !ok {
		return nil, catasto.NotFound("partita %d not found", id)
	}

	return clonePartita(p), nil
}

func (t *tx) FindPartita(_ context.Context, comuneID int64, numero int, suffisso *string) (*catasto.Partita, error) {
	if err := t.read("FindPartita"); err != nil {
		return nil, err
	}

	for _, p := range t.state.partite {
		if p.ComuneID == comuneID && p.Numero == numero && catasto.SameSuffix(p.Suffisso, suffisso) {
			return clonePartita(p), nil
		}
	}

	return nil, nil
}

func (t *tx) ListPartite(_ context.Context, filter catasto.PartitaFilter) ([]*catasto.Partita, error) {
	if err := t.read("ListPartite"); err != nil {
		return nil, err
	}

	var out []*catasto.Partita

	for _, p := range t.state.partite {
		if filter.ComuneID != nil && p.ComuneID != *filter.ComuneID {
			continue
		}

		if filter.Stato != nil && p.Stato != *filter.Stato {
			continue
		}

		if filter.Numero != nil && p.Numero != *filter.Numero {
			continue
		}

		out = append(out, clonePartita(p))
	}

	slices.SortFunc(out, comparePartite)

	return out, nil
}

func comparePartite(a, b *catasto.Partita) int {
	var sa, sb string
	if a.Suffisso != nil {
		sa = *a.Suffisso
	}

	if b.Suffisso != nil {
		sb = *b.Suffisso
	}

	return cmp.Or(
		cmp.Compare(a.ComuneID, b.ComuneID),
		cmp.Compare(a.Numero, b.Numero),
		cmp.Compare(sa, sb),
	)
}

func checkChiusura(stato catasto.StatoPartita, dataChiusura *time.Time) error {
	if (stato == catasto.StatoInattiva) != (dataChiusura != nil) {
		return catasto.DataError("partita_chiusura_check: data_chiusura is required iff stato is inattiva")
	}

	return nil
}

func (t *tx) UpdatePartitaStato(_ context.Context, id int64, stato catasto.StatoPartita, dataChiusura *time.Time) error {
	if err := t.write("UpdatePartitaStato"); err != nil {
		return err
	}

	p, ok := t.state.partite[id]
	if !ok {
		return catasto.NotFound("partita %d not found", id)
	}

	if err := checkChiusura(stato, dataChiusura); err != nil {
		return err
	}

	p.Stato = stato
	p.DataChiusura = clonePtr(dataChiusura)
	p.UpdatedAt = new(t.store.now())
	t.state.partite[id] = p

	return nil
}

func (t *tx) InsertLegame(_ context.Context, l *catasto.PartitaPossessore) error {
	if err := t.write("InsertLegame"); err != nil {
		return err
	}

	if _, ok := t.state.partite[l.PartitaID]; !ok {
		return catasto.NotFound("partita %d not found", l.PartitaID)
	}

	if _, ok := t.state.possessori[l.PossessoreID]; !ok {
		return catasto.NotFound("possessore %d not found", l.PossessoreID)
	}

	l.ID = t.state.next("partita_possessore")
	t.state.legami[l.ID] = *cloneLegame(*l)

	return nil
}

func (t *tx) GetLegame(_ context.Context, id int64) (*catasto.PartitaPossessore, error) {
	if err := t.read("GetLegame"); err != nil {
		return nil, err
	}

	l, ok := t.state.legami[id]
	if !ok {
		return nil, catasto.NotFound("legame %d not found", id)
	}

	return cloneLegame(l), nil
}

func (t *tx) UpdateLegame(_ context.Context, l *catasto.PartitaPossessore) error {
	if err := t.write("UpdateLegame"); err != nil {
		return err
	}

	existing, ok := t.state.legami[l.ID]
	if !ok {
		return catasto.NotFound("legame %d not found", l.ID)
	}

	existing.Titolo = l.Titolo
	existing.Quota = clonePtr(l.Quota)
	existing.TipoPartita = l.TipoPartita
	t.state.legami[l.ID] = existing

	return nil
}

func (t *tx) DeleteLegame(_ context.Context, id int64) error {
	if err := t.write("DeleteLegame"); err != nil {
		return err
	}

	if _, ok := t.state.legami[id]; !ok {
		return catasto.NotFound("legame %d not found", id)
	}

	delete(t.state.legami, id)

	return nil
}

func (t *tx) ListLegami(_ context.Context, partitaID int64) ([]*catasto.PartitaPossessore, error) {
	if err := t.read("ListLegami"); err != nil {
		return nil, err
	}

	var out []*catasto.PartitaPossessore

	for _, l := range t.state.legami {
		if l.PartitaID == partitaID {
			out = append(out, cloneLegame(l))
		}
	}

	slices.SortFunc(out, func(a, b *catasto.PartitaPossessore) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}

func (t *tx) InsertVariazione(_ context.Context, v *catasto.Variazione) error {
	if err := t.write("InsertVariazione"); err != nil {
		return err
	}

	if _, ok := t.state.partite[v.PartitaOrigineID]; !ok {
		return catasto.NotFound("partita %d not found", v.PartitaOrigineID)
	}

	if v.PartitaDestinazioneID != nil {
		if _, ok := t.state.partite[*v.PartitaDestinazioneID]; !ok {
			return catasto.NotFound("partita %d not found", *v.PartitaDestinazioneID)
		}
	}

	v.ID = t.state.next("variazione")
	t.state.variazioni[v.ID] = *cloneVariazione(*v)

	return nil
}

func (t *tx) GetVariazione(_ context.Context, id int64) (*catasto.Variazione, error) {
	if err := t.read("GetVariazione"); err != nil {
		return nil, err
	}

	v, ok := t.state.variazioni[id]
	if !ok {
		return nil, catasto.NotFound("variazione %d not found", id)
	}

	return cloneVariazione(v), nil
}

func (t *tx) ListVariazioni(_ context.Context, filter catasto.VariazioneFilter) ([]*catasto.Variazione, error) {
	if err := t.read("ListVariazioni"); err != nil {
		return nil, err
	}

	var out []*catasto.Variazione

	for _, v := range t.state.variazioni {
		if filter.OrigineID != nil && v.PartitaOrigineID != *filter.OrigineID {
			continue
		}

		if filter.DestinazioneID != nil && (v.PartitaDestinazioneID == nil || *v.PartitaDestinazioneID != *filter.DestinazioneID) {
			continue
		}

		out = append(out, cloneVariazione(v))
	}

	slices.SortFunc(out, func(a, b *catasto.Variazione) int {
		return cmp.Or(a.DataVariazione.Compare(b.DataVariazione), cmp.Compare(a.ID, b.ID))
	})

	return out, nil
}

func (t *tx) DeleteVariazione(_ context.Context, id int64) error {
	if err := t.write("DeleteVariazione"); err != nil {
		return err
	}

	if _, ok := t.state.variazioni[id]; !ok {
		return catasto.NotFound("variazione %d not found", id)
	}

	delete(t.state.variazioni, id)
	delete(t.state.contratti, id)

	return nil
}

func (t *tx) InsertContratto(_ context.Context, c *catasto.Contratto) error {
	if err := t.write("InsertContratto"); err != nil {
		return err
	}

	if _, ok := t.state.variazioni[c.VariazioneID]; !ok {
		return catasto.NotFound("variazione %d not found", c.VariazioneID)
	}

	if _, ok := t.state.contratti[c.VariazioneID]; ok {
		return catasto.Unique("contratto_variazione_id_key",
			"variazione %d already has a contratto", c.VariazioneID)
	}

	c.ID = t.state.next("contratto")
	t.state.contratti[c.VariazioneID] = *cloneContratto(*c)

	return nil
}

func (t *tx) GetContratto(_ context.Context, variazioneID int64) (*catasto.Contratto, error) {
	if err := t.read("GetContratto"); err != nil {
		return nil, err
	}

	c, ok := t.state.contratti[variazioneID]
	if !ok {
		return nil, catasto.NotFound("contratto for variazione %d not found", variazioneID)
	}

	return cloneContratto(c), nil
}

func (t *tx) DeleteContratto(_ context.Context, variazioneID int64) error {
	if err := t.write("DeleteContratto"); err != nil {
		return err
	}

	delete(t.state.contratti, variazioneID)

	return nil
}

func (t *tx) UpsertDocumento(_ context.Context, d *catasto.DocumentoPartita) error {
	if err := t.write("UpsertDocumento"); err != nil {
		return err
	}

	if _, ok := t.state.partite[d.PartitaID]; !ok {
		return catasto.NotFound("partita %d not found", d.PartitaID)
	}

	t.state.documenti[docKey{documentoID: d.DocumentoID, partitaID: d.PartitaID}] = *cloneDocumento(*d)

	return nil
}

func (t *tx) DeleteDocumento(_ context.Context, documentoID, partitaID int64) error {
	if err := t.write("DeleteDocumento"); err != nil {
		return err
	}

	key := docKey{documentoID: documentoID, partitaID: partitaID}
	if _, ok := t.state.documenti[key]; !ok {
		return catasto.NotFound("documento %d is not linked to partita %d", documentoID, partitaID)
	}

	delete(t.state.documenti, key)

	return nil
}

func (t *tx) ListDocumenti(_ context.Context, partitaID int64) ([]*catasto.DocumentoPartita, error) {
	if err := t.read("ListDocumenti"); err != nil {
		return nil, err
	}

	var out []*catasto.DocumentoPartita

	for k, d := range t.state.documenti {
		if k.partitaID == partitaID {
			out = append(out, cloneDocumento(d))
		}
	}

	slices.SortFunc(out, func(a, b *catasto.DocumentoPartita) int {
		return cmp.Compare(a.DocumentoID, b.DocumentoID)
	})

	return out, nil
}
