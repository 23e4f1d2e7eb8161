package variazione

import (
	"context"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/events"
	"github.com/MrJamesThe3rd/catasto/internal/immobile"
	"github.com/MrJamesThe3rd/catasto/internal/ownership"
	"github.com/MrJamesThe3rd/catasto/internal/partita"
	"github.com/MrJamesThe3rd/catasto/internal/possessore"
)

const (
	titoloEsclusivo    = "proprietà esclusiva"
	titoloComproprieta = "comproprietà"
)

// defaultTitolo fills a blank titolo from the presence of a quota.
func defaultTitolo(titolo string, quota *string) string {
	if t := strings.TrimSpace(titolo); t != "" {
		return t
	}

	if catasto.OptionalString(quota) != nil {
		return titoloComproprieta
	}

	return titoloEsclusivo
}

func validateTransfer(params TransferParams) error {
	switch {
	case params.NumeroNuovaPartita <= 0:
		return catasto.DataError("numero_nuova_partita must be positive, got %d", params.NumeroNuovaPartita)
	case !params.TipoVariazione.Valid():
		return catasto.DataError("unknown tipo_variazione %q", params.TipoVariazione)
	case params.DataVariazione.IsZero():
		return catasto.DataError("data_variazione is required")
	case strings.TrimSpace(params.TipoContratto) == "":
		return catasto.DataError("tipo_contratto is required")
	case params.DataContratto.IsZero():
		return catasto.DataError("data_contratto is required")
	}

	return nil
}

// linkPossessori resolves every spec in comuneID and links it to partitaID.
func linkPossessori(ctx context.Context, tx catasto.Tx, comuneID, partitaID int64, tipo catasto.TipoPartita, specs []catasto.PossessoreSpec) error {
	registry := possessore.NewService(tx)
	links := ownership.NewService(tx)

	for _, spec := range specs {
		id, err := registry.Resolve(ctx, comuneID, spec)
		if err != nil {
			return err
		}

		if _, err := links.Link(ctx, ownership.LinkParams{
			PartitaID:    partitaID,
			PossessoreID: id,
			TipoPartita:  tipo,
			Titolo:       defaultTitolo(spec.Titolo, spec.Quota),
			Quota:        spec.Quota,
		}); err != nil {
			return err
		}
	}

	return nil
}

func transfer(ctx context.Context, tx catasto.Tx, params TransferParams) (*TransferResult, events.TransferRegistered, error) {
	var event events.TransferRegistered

	partite := partita.NewService(tx)
	immobili := immobile.NewService(tx)

	origin, err := partite.Get(ctx, params.PartitaOrigineID)
	if err != nil {
		return nil, event, err
	}

	if origin.Stato == catasto.StatoInattiva {
		return nil, event, catasto.DataError("partita %s is already inattiva", origin.Label())
	}

	provenienza := origin.Label()

	destID, err := partite.Create(ctx, partita.CreateParams{
		ComuneID:          params.ComuneDestinazioneID,
		Numero:            params.NumeroNuovaPartita,
		Tipo:              origin.Tipo,
		DataImpianto:      params.DataVariazione,
		Suffisso:          params.Suffisso,
		NumeroProvenienza: &provenienza,
	})
	if err != nil {
		return nil, event, err
	}

	if err := linkPossessori(ctx, tx, params.ComuneDestinazioneID, destID, origin.Tipo, params.NuoviPossessori); err != nil {
		return nil, event, err
	}

	for _, immobileID := range params.ImmobiliDaTrasferire {
		im, err := immobili.GetImmobile(ctx, immobileID)
		if err != nil {
			return nil, event, err
		}

		if im.PartitaID != origin.ID {
			return nil, event, catasto.DataError("immobile %d belongs to partita %d, not to the origin %s",
				immobileID, im.PartitaID, origin.Label())
		}

		if err := immobili.MoveImmobile(ctx, immobileID, destID); err != nil {
			return nil, event, err
		}
	}

	if err := partite.Close(ctx, origin.ID, params.DataVariazione); err != nil {
		return nil, event, err
	}

	v := &catasto.Variazione{
		PartitaOrigineID:      origin.ID,
		PartitaDestinazioneID: &destID,
		Tipo:                  params.TipoVariazione,
		DataVariazione:        params.DataVariazione,
		NumeroRiferimento:     catasto.OptionalString(params.NumeroRiferimento),
		NominativoRiferimento: catasto.OptionalString(params.NominativoRiferimento),
	}
	if err := tx.InsertVariazione(ctx, v); err != nil {
		return nil, event, err
	}

	c := &catasto.Contratto{
		VariazioneID:  v.ID,
		Tipo:          strings.TrimSpace(params.TipoContratto),
		DataContratto: params.DataContratto,
		Notaio:        catasto.OptionalString(params.Notaio),
		Repertorio:    catasto.OptionalString(params.Repertorio),
		Note:          catasto.OptionalString(params.Note),
	}
	if err := tx.InsertContratto(ctx, c); err != nil {
		return nil, event, err
	}

	moved := make([]int64, len(params.ImmobiliDaTrasferire))
	copy(moved, params.ImmobiliDaTrasferire)

	event = events.TransferRegistered{
		VariazioneID:          v.ID,
		Tipo:                  string(v.Tipo),
		DataVariazione:        v.DataVariazione.Format(time.DateOnly),
		PartitaOrigineID:      origin.ID,
		PartitaOrigine:        provenienza,
		PartitaDestinazioneID: destID,
		PartitaDestinazione:   catasto.PartitaLabel(params.NumeroNuovaPartita, catasto.OptionalString(params.Suffisso)),
		ComuneDestinazioneID:  params.ComuneDestinazioneID,
		ImmobiliTrasferiti:    moved,
	}

	return &TransferResult{PartitaID: destID, VariazioneID: v.ID}, event, nil
}

func newProperty(ctx context.Context, tx catasto.Tx, params NewPropertyParams) (int64, error) {
	tipo := catasto.TipoPrincipale
	if params.Tipo != nil {
		tipo = *params.Tipo
	}

	id, err := partita.NewService(tx).Create(ctx, partita.CreateParams{
		ComuneID:     params.ComuneID,
		Numero:       params.Numero,
		Tipo:         tipo,
		DataImpianto: params.DataImpianto,
		Suffisso:     params.Suffisso,
	})
	if err != nil {
		return 0, err
	}

	if err := linkPossessori(ctx, tx, params.ComuneID, id, tipo, params.Possessori); err != nil {
		return 0, err
	}

	immobili := immobile.NewService(tx)
	for _, spec := range params.Immobili {
		if _, err := immobili.CreateImmobile(ctx, id, spec); err != nil {
			return 0, err
		}
	}

	return id, nil
}

func deleteVariazione(ctx context.Context, tx catasto.Tx, id int64, restoreOrigin bool) error {
	v, err := tx.GetVariazione(ctx, id)
	if err != nil {
		return err
	}

	if err := tx.DeleteContratto(ctx, id); err != nil {
		return err
	}

	if err := tx.DeleteVariazione(ctx, id); err != nil {
		return err
	}

	if !restoreOrigin {
		return nil
	}

	return partita.NewService(tx).Reopen(ctx, v.PartitaOrigineID)
}
