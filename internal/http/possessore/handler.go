package possessore

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/catasto/internal/http/render"
	"github.com/MrJamesThe3rd/catasto/internal/ledger"
	"github.com/MrJamesThe3rd/catasto/internal/possessore"
)

type Handler struct {
	ledger *ledger.Ledger
}

func NewHandler(l *ledger.Ledger) *Handler {
	return &Handler{ledger: l}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/lookup", h.lookup)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/deactivate", h.deactivate)
}

type createPossessoreRequest struct {
	ComuneID     int64   `json:"comune_id"`
	NomeCompleto string  `json:"nome_completo"`
	CognomeNome  *string `json:"cognome_nome,omitempty"`
	Paternita    *string `json:"paternita,omitempty"`
	Attivo       *bool   `json:"attivo,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPossessoreRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	id, err := h.ledger.CreatePossessore(r.Context(), possessore.CreateParams{
		ComuneID:     req.ComuneID,
		NomeCompleto: req.NomeCompleto,
		CognomeNome:  req.CognomeNome,
		Paternita:    req.Paternita,
		Attivo:       req.Attivo,
	})
	if err != nil {
		render.Error(w, err)
		return
	}

	p, err := h.ledger.GetPossessore(r.Context(), id)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(p))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	comuneID, err := render.QueryID(r, "comune_id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	if comuneID == nil {
		render.BadRequest(w, "comune_id is required")
		return
	}

	possessori, err := h.ledger.ListPossessori(r.Context(), *comuneID, r.URL.Query().Get("q"))
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponseList(possessori))
}

type lookupResponse struct {
	Found bool   `json:"found"`
	ID    *int64 `json:"id,omitempty"`
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	comuneID, err := render.QueryID(r, "comune_id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	nome := r.URL.Query().Get("nome")
	if comuneID == nil || nome == "" {
		render.BadRequest(w, "comune_id and nome are required")
		return
	}

	id, found, err := h.ledger.FindPossessore(r.Context(), nome, *comuneID)
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := lookupResponse{Found: found}
	if found {
		resp.ID = &id
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	p, err := h.ledger.GetPossessore(r.Context(), id)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(p))
}

type updatePossessoreRequest struct {
	NomeCompleto *string `json:"nome_completo,omitempty"`
	CognomeNome  *string `json:"cognome_nome,omitempty"`
	Paternita    *string `json:"paternita,omitempty"`
	Attivo       *bool   `json:"attivo,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	var req updatePossessoreRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	p, err := h.ledger.UpdatePossessore(r.Context(), id, possessore.UpdateParams{
		NomeCompleto: req.NomeCompleto,
		CognomeNome:  req.CognomeNome,
		Paternita:    req.Paternita,
		Attivo:       req.Attivo,
	})
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	if err := h.ledger.DeactivatePossessore(r.Context(), id); err != nil {
		render.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
