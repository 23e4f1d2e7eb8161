package variazione

import (
	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/http/render"
	"github.com/MrJamesThe3rd/catasto/internal/variazione"
)

// Response is the JSON form of a variazione.
type Response struct {
	ID                    int64                  `json:"id"`
	PartitaOrigineID      int64                  `json:"partita_origine_id"`
	PartitaDestinazioneID *int64                 `json:"partita_destinazione_id,omitempty"`
	Tipo                  catasto.TipoVariazione `json:"tipo"`
	DataVariazione        render.Date            `json:"data_variazione"`
	NumeroRiferimento     *string                `json:"numero_riferimento,omitempty"`
	NominativoRiferimento *string                `json:"nominativo_riferimento,omitempty"`
}

func ToResponse(v *catasto.Variazione) Response {
	return Response{
		ID:                    v.ID,
		PartitaOrigineID:      v.PartitaOrigineID,
		PartitaDestinazioneID: v.PartitaDestinazioneID,
		Tipo:                  v.Tipo,
		DataVariazione:        render.NewDate(v.DataVariazione),
		NumeroRiferimento:     v.NumeroRiferimento,
		NominativoRiferimento: v.NominativoRiferimento,
	}
}

type contrattoResponse struct {
	ID            int64       `json:"id"`
	Tipo          string      `json:"tipo"`
	DataContratto render.Date `json:"data_contratto"`
	Notaio        *string     `json:"notaio,omitempty"`
	Repertorio    *string     `json:"repertorio,omitempty"`
	Note          *string     `json:"note,omitempty"`
}

type detailResponse struct {
	Response
	Contratto *contrattoResponse `json:"contratto"`
}

func toDetailResponse(d *variazione.Detail) detailResponse {
	resp := detailResponse{Response: ToResponse(d.Variazione)}

	if c := d.Contratto; c != nil {
		resp.Contratto = &contrattoResponse{
			ID:            c.ID,
			Tipo:          c.Tipo,
			DataContratto: render.NewDate(c.DataContratto),
			Notaio:        c.Notaio,
			Repertorio:    c.Repertorio,
			Note:          c.Note,
		}
	}

	return resp
}
