package possessore

import (
	"time"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

type possessoreResponse struct {
	ID           int64      `json:"id"`
	ComuneID     int64      `json:"comune_id"`
	NomeCompleto string     `json:"nome_completo"`
	CognomeNome  *string    `json:"cognome_nome,omitempty"`
	Paternita    *string    `json:"paternita,omitempty"`
	Attivo       bool       `json:"attivo"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func toResponse(p *catasto.Possessore) possessoreResponse {
	return possessoreResponse{
		ID:           p.ID,
		ComuneID:     p.ComuneID,
		NomeCompleto: p.NomeCompleto,
		CognomeNome:  p.CognomeNome,
		Paternita:    p.Paternita,
		Attivo:       p.Attivo,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toResponseList(ps []*catasto.Possessore) []possessoreResponse {
	resp := make([]possessoreResponse, len(ps))
	for i, p := range ps {
		resp[i] = toResponse(p)
	}

	return resp
}
