package partita

import (
	"time"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/http/render"
	httpvariazione "github.com/MrJamesThe3rd/catasto/internal/http/variazione"
	"github.com/MrJamesThe3rd/catasto/internal/variazione"
)

type partitaResponse struct {
	ID                int64                `json:"id"`
	ComuneID          int64                `json:"comune_id"`
	Numero            int                  `json:"numero_partita"`
	Suffisso          *string              `json:"suffisso_partita,omitempty"`
	Label             string               `json:"label"`
	Tipo              catasto.TipoPartita  `json:"tipo"`
	Stato             catasto.StatoPartita `json:"stato"`
	DataImpianto      render.Date          `json:"data_impianto"`
	DataChiusura      *render.Date         `json:"data_chiusura,omitempty"`
	NumeroProvenienza *string              `json:"numero_provenienza,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         *time.Time           `json:"updated_at,omitempty"`
}

func toResponse(p *catasto.Partita) partitaResponse {
	return partitaResponse{
		ID:                p.ID,
		ComuneID:          p.ComuneID,
		Numero:            p.Numero,
		Suffisso:          p.Suffisso,
		Label:             p.Label(),
		Tipo:              p.Tipo,
		Stato:             p.Stato,
		DataImpianto:      render.NewDate(p.DataImpianto),
		DataChiusura:      render.DatePtr(p.DataChiusura),
		NumeroProvenienza: p.NumeroProvenienza,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toResponseList(ps []*catasto.Partita) []partitaResponse {
	resp := make([]partitaResponse, len(ps))
	for i, p := range ps {
		resp[i] = toResponse(p)
	}

	return resp
}

type legameResponse struct {
	ID           int64               `json:"id"`
	PartitaID    int64               `json:"partita_id"`
	PossessoreID int64               `json:"possessore_id"`
	TipoPartita  catasto.TipoPartita `json:"tipo_partita"`
	Titolo       string              `json:"titolo"`
	Quota        *string             `json:"quota,omitempty"`
}

func toLegameResponse(l *catasto.PartitaPossessore) legameResponse {
	return legameResponse{
		ID:           l.ID,
		PartitaID:    l.PartitaID,
		PossessoreID: l.PossessoreID,
		TipoPartita:  l.TipoPartita,
		Titolo:       l.Titolo,
		Quota:        l.Quota,
	}
}

type documentoResponse struct {
	DocumentoID int64             `json:"documento_id"`
	PartitaID   int64             `json:"partita_id"`
	Rilevanza   catasto.Rilevanza `json:"rilevanza"`
	Note        *string           `json:"note,omitempty"`
}

type genealogyResponse struct {
	Partita    partitaResponse          `json:"partita"`
	Direction  variazione.Direction     `json:"direction"`
	Depth      int                      `json:"depth"`
	Variazione *httpvariazione.Response `json:"variazione,omitempty"`
}

func toGenealogyResponse(entries []variazione.GenealogyEntry) []genealogyResponse {
	resp := make([]genealogyResponse, len(entries))
	for i, e := range entries {
		resp[i] = genealogyResponse{
			Partita:   toResponse(e.Partita),
			Direction: e.Direction,
			Depth:     e.Depth,
		}

		if e.Variazione != nil {
			v := httpvariazione.ToResponse(e.Variazione)
			resp[i].Variazione = &v
		}
	}

	return resp
}
