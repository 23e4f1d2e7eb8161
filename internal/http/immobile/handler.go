// Package immobile serves localita and immobili.
package immobile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/http/render"
	"github.com/MrJamesThe3rd/catasto/internal/immobile"
	"github.com/MrJamesThe3rd/catasto/internal/ledger"
)

type Handler struct {
	ledger *ledger.Ledger
}

func NewHandler(l *ledger.Ledger) *Handler {
	return &Handler{ledger: l}
}

func (h *Handler) LocalitaRoutes(r chi.Router) {
	r.Post("/", h.createLocalita)
	r.Get("/", h.listLocalita)
}

func (h *Handler) ImmobiliRoutes(r chi.Router) {
	r.Post("/", h.createImmobile)
	r.Get("/{id}", h.getImmobile)
}

type createLocalitaRequest struct {
	ComuneID int64                `json:"comune_id"`
	Nome     string               `json:"nome"`
	Tipo     catasto.TipoLocalita `json:"tipo"`
	Civico   *int                 `json:"civico,omitempty"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

// createLocalita answers 201 with the id of the new or already registered
// localita.
func (h *Handler) createLocalita(w http.ResponseWriter, r *http.Request) {
	var req createLocalitaRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	id, err := h.ledger.CreateLocalita(r.Context(), immobile.LocalitaParams{
		ComuneID: req.ComuneID,
		Nome:     req.Nome,
		Tipo:     req.Tipo,
		Civico:   req.Civico,
	})
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) listLocalita(w http.ResponseWriter, r *http.Request) {
	comuneID, err := render.QueryID(r, "comune_id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	if comuneID == nil {
		render.BadRequest(w, "comune_id is required")
		return
	}

	localita, err := h.ledger.ListLocalita(r.Context(), *comuneID, r.URL.Query().Get("q"))
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := make([]localitaResponse, len(localita))
	for i, l := range localita {
		resp[i] = toLocalitaResponse(l)
	}

	render.JSON(w, http.StatusOK, resp)
}

type createImmobileRequest struct {
	PartitaID       int64   `json:"partita_id"`
	LocalitaID      int64   `json:"localita_id"`
	Natura          string  `json:"natura"`
	Classificazione *string `json:"classificazione,omitempty"`
	Consistenza     *string `json:"consistenza,omitempty"`
	NumeroPiani     *int    `json:"numero_piani,omitempty"`
	NumeroVani      *int    `json:"numero_vani,omitempty"`
}

func (h *Handler) createImmobile(w http.ResponseWriter, r *http.Request) {
	var req createImmobileRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	id, err := h.ledger.CreateImmobile(r.Context(), req.PartitaID, catasto.ImmobileSpec{
		Natura:          req.Natura,
		LocalitaID:      req.LocalitaID,
		Classificazione: req.Classificazione,
		Consistenza:     req.Consistenza,
		NumeroPiani:     req.NumeroPiani,
		NumeroVani:      req.NumeroVani,
	})
	if err != nil {
		render.Error(w, err)
		return
	}

	im, err := h.ledger.GetImmobile(r.Context(), id)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, ToResponse(im))
}

func (h *Handler) getImmobile(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	im, err := h.ledger.GetImmobile(r.Context(), id)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, ToResponse(im))
}
