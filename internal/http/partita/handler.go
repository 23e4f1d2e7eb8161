// Package partita serves partite with their ownership links, documents and
// genealogy.
package partita

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	httpimmobile "github.com/MrJamesThe3rd/catasto/internal/http/immobile"
	"github.com/MrJamesThe3rd/catasto/internal/http/render"
	"github.com/MrJamesThe3rd/catasto/internal/ledger"
	"github.com/MrJamesThe3rd/catasto/internal/ownership"
	"github.com/MrJamesThe3rd/catasto/internal/partita"
	"github.com/MrJamesThe3rd/catasto/internal/variazione"
)

type Handler struct {
	ledger *ledger.Ledger
	engine *variazione.Engine
}

func NewHandler(l *ledger.Ledger, engine *variazione.Engine) *Handler {
	return &Handler{ledger: l, engine: engine}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Post("/duplicate", h.duplicate)
		r.Post("/reopen", h.reopen)
		r.Get("/immobili", h.immobili)
		r.Get("/genealogy", h.genealogy)
		r.Get("/possessori", h.listLegami)
		r.Post("/possessori", h.link)
		r.Get("/documenti", h.listDocumenti)
		r.Put("/documenti/{documento_id}", h.linkDocumento)
		r.Delete("/documenti/{documento_id}", h.unlinkDocumento)
	})
}

// LegamiRoutes serves ownership links addressed by their own id.
func (h *Handler) LegamiRoutes(r chi.Router) {
	r.Patch("/{id}", h.updateLegame)
	r.Delete("/{id}", h.unlinkLegame)
}

type createPartitaRequest struct {
	ComuneID          int64               `json:"comune_id"`
	Numero            int                 `json:"numero_partita"`
	Suffisso          *string             `json:"suffisso_partita,omitempty"`
	Tipo              catasto.TipoPartita `json:"tipo"`
	DataImpianto      render.Date         `json:"data_impianto"`
	NumeroProvenienza *string             `json:"numero_provenienza,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPartitaRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	id, err := h.ledger.CreatePartita(r.Context(), partita.CreateParams{
		ComuneID:          req.ComuneID,
		Numero:            req.Numero,
		Tipo:              req.Tipo,
		DataImpianto:      req.DataImpianto.Time,
		Suffisso:          req.Suffisso,
		NumeroProvenienza: req.NumeroProvenienza,
	})
	if err != nil {
		render.Error(w, err)
		return
	}

	h.respondPartita(w, r, http.StatusCreated, id)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var filter catasto.PartitaFilter

	comuneID, err := render.QueryID(r, "comune_id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	filter.ComuneID = comuneID

	if s := r.URL.Query().Get("stato"); s != "" {
		stato := catasto.StatoPartita(s)
		if !stato.Valid() {
			render.BadRequest(w, "invalid stato %q", s)
			return
		}

		filter.Stato = &stato
	}

	if s := r.URL.Query().Get("numero"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			render.BadRequest(w, "invalid numero %q", s)
			return
		}

		filter.Numero = &n
	}

	partite, err := h.ledger.ListPartite(r.Context(), filter)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponseList(partite))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	h.respondPartita(w, r, http.StatusOK, id)
}

func (h *Handler) respondPartita(w http.ResponseWriter, r *http.Request, status int, id int64) {
	p, err := h.ledger.GetPartita(r.Context(), id)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, status, toResponse(p))
}

type duplicateRequest struct {
	Numero              int     `json:"numero_partita"`
	Suffisso            *string `json:"suffisso_partita,omitempty"`
	MantenerePossessori bool    `json:"mantenere_possessori"`
	CopiareImmobili     bool    `json:"copiare_immobili"`
}

func (h *Handler) duplicate(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	var req duplicateRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	newID, err := h.ledger.DuplicatePartita(r.Context(), id, partita.DuplicateParams{
		Numero:              req.Numero,
		Suffisso:            req.Suffisso,
		MantenerePossessori: req.MantenerePossessori,
		CopiareImmobili:     req.CopiareImmobili,
	})
	if err != nil {
		render.Error(w, err)
		return
	}

	h.respondPartita(w, r, http.StatusCreated, newID)
}

func (h *Handler) reopen(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	if err := h.ledger.ReopenPartita(r.Context(), id); err != nil {
		render.Error(w, err)
		return
	}

	h.respondPartita(w, r, http.StatusOK, id)
}

func (h *Handler) immobili(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	ims, err := h.ledger.ListImmobili(r.Context(), id)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, httpimmobile.ToResponseList(ims))
}

func (h *Handler) genealogy(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	depth := 0
	if s := r.URL.Query().Get("max_depth"); s != "" {
		depth, err = strconv.Atoi(s)
		if err != nil {
			render.BadRequest(w, "invalid max_depth %q", s)
			return
		}
	}

	entries, err := h.engine.Genealogy(r.Context(), id, depth)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toGenealogyResponse(entries))
}

func (h *Handler) listLegami(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	legami, err := h.ledger.ListLegami(r.Context(), id)
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := make([]legameResponse, len(legami))
	for i, l := range legami {
		resp[i] = toLegameResponse(l)
	}

	render.JSON(w, http.StatusOK, resp)
}

type linkRequest struct {
	PossessoreID int64 `json:"possessore_id"`
	// TipoPartita defaults to the partita's own tipo.
	TipoPartita catasto.TipoPartita `json:"tipo_partita,omitempty"`
	Titolo      string              `json:"titolo"`
	Quota       *string             `json:"quota,omitempty"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

func (h *Handler) link(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	var req linkRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	if req.TipoPartita == "" {
		p, err := h.ledger.GetPartita(r.Context(), id)
		if err != nil {
			render.Error(w, err)
			return
		}

		req.TipoPartita = p.Tipo
	}

	legameID, err := h.ledger.LinkPossessore(r.Context(), ownership.LinkParams{
		PartitaID:    id,
		PossessoreID: req.PossessoreID,
		TipoPartita:  req.TipoPartita,
		Titolo:       req.Titolo,
		Quota:        req.Quota,
	})
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, idResponse{ID: legameID})
}

type updateLegameRequest struct {
	Titolo string  `json:"titolo"`
	Quota  *string `json:"quota,omitempty"`
}

func (h *Handler) updateLegame(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	var req updateLegameRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	l, err := h.ledger.UpdateLegame(r.Context(), id, req.Titolo, req.Quota)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toLegameResponse(l))
}

func (h *Handler) unlinkLegame(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	if err := h.ledger.UnlinkLegame(r.Context(), id); err != nil {
		render.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listDocumenti(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	docs, err := h.ledger.ListDocumenti(r.Context(), id)
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := make([]documentoResponse, len(docs))
	for i, d := range docs {
		resp[i] = documentoResponse{
			DocumentoID: d.DocumentoID,
			PartitaID:   d.PartitaID,
			Rilevanza:   d.Rilevanza,
			Note:        d.Note,
		}
	}

	render.JSON(w, http.StatusOK, resp)
}

type linkDocumentoRequest struct {
	Rilevanza catasto.Rilevanza `json:"rilevanza"`
	Note      *string           `json:"note,omitempty"`
}

func (h *Handler) linkDocumento(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	docID, err := render.PathID(r, "documento_id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	var req linkDocumentoRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	err = h.ledger.LinkDocumento(r.Context(), partita.DocumentoParams{
		DocumentoID: docID,
		PartitaID:   id,
		Rilevanza:   req.Rilevanza,
		Note:        req.Note,
	})
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, documentoResponse{
		DocumentoID: docID,
		PartitaID:   id,
		Rilevanza:   req.Rilevanza,
		Note:        req.Note,
	})
}

func (h *Handler) unlinkDocumento(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	docID, err := render.PathID(r, "documento_id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	if err := h.ledger.UnlinkDocumento(r.Context(), docID, id); err != nil {
		render.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
