package comune

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/comune"
	"github.com/MrJamesThe3rd/catasto/internal/http/render"
	"github.com/MrJamesThe3rd/catasto/internal/ledger"
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
	r.Get("/{id}", h.get)
}

type createComuneRequest struct {
	Nome      string `json:"nome"`
	Provincia string `json:"provincia"`
	Regione   string `json:"regione"`
}

type comuneResponse struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Provincia string    `json:"provincia"`
	Regione   string    `json:"regione"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(c *catasto.Comune) comuneResponse {
	return comuneResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Provincia: c.Provincia,
		Regione:   c.Regione,
		CreatedAt: c.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createComuneRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	id, err := h.ledger.CreateComune(r.Context(), comune.CreateParams{
		Nome:      req.Nome,
		Provincia: req.Provincia,
		Regione:   req.Regione,
	})
	if err != nil {
		render.Error(w, err)
		return
	}

	c, err := h.ledger.GetComune(r.Context(), id)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(c))
}

// list filters by substring with ?q= or resolves one exact name with ?nome=.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	if nome := r.URL.Query().Get("nome"); nome != "" {
		c, err := h.ledger.GetComuneByNome(r.Context(), nome)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, http.StatusOK, []comuneResponse{toResponse(c)})

		return
	}

	comuni, err := h.ledger.ListComuni(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := make([]comuneResponse, len(comuni))
	for i, c := range comuni {
		resp[i] = toResponse(c)
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	c, err := h.ledger.GetComune(r.Context(), id)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(c))
}
