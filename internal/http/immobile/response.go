package immobile

import (
	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

type localitaResponse struct {
	ID       int64                `json:"id"`
	ComuneID int64                `json:"comune_id"`
	Nome     string               `json:"nome"`
	Tipo     catasto.TipoLocalita `json:"tipo"`
	Civico   *int                 `json:"civico,omitempty"`
}

func toLocalitaResponse(l *catasto.Localita) localitaResponse {
	return localitaResponse{
		ID:       l.ID,
		ComuneID: l.ComuneID,
		Nome:     l.Nome,
		Tipo:     l.Tipo,
		Civico:   l.Civico,
	}
}

// Response is the JSON form of an immobile, shared with the partita routes.
type Response struct {
	ID              int64   `json:"id"`
	PartitaID       int64   `json:"partita_id"`
	LocalitaID      int64   `json:"localita_id"`
	Natura          string  `json:"natura"`
	Classificazione *string `json:"classificazione,omitempty"`
	Consistenza     *string `json:"consistenza,omitempty"`
	NumeroPiani     *int    `json:"numero_piani,omitempty"`
	NumeroVani      *int    `json:"numero_vani,omitempty"`
}

func ToResponse(im *catasto.Immobile) Response {
	return Response{
		ID:              im.ID,
		PartitaID:       im.PartitaID,
		LocalitaID:      im.LocalitaID,
		Natura:          im.Natura,
		Classificazione: im.Classificazione,
		Consistenza:     im.Consistenza,
		NumeroPiani:     im.NumeroPiani,
		NumeroVani:      im.NumeroVani,
	}
}

func ToResponseList(ims []*catasto.Immobile) []Response {
	resp := make([]Response, len(ims))
	for i, im := range ims {
		resp[i] = ToResponse(im)
	}

	return resp
}
