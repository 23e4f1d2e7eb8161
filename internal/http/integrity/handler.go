package integrity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/catasto/internal/http/render"
	"github.com/MrJamesThe3rd/catasto/internal/integrity"
)

type Handler struct {
	verifier *integrity.Verifier
}

func NewHandler(v *integrity.Verifier) *Handler {
	return &Handler{verifier: v}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.check)
}

type reportResponse struct {
	*integrity.Report
	OK     bool                   `json:"ok"`
	Counts map[integrity.Kind]int `json:"counts"`
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	comuneID, err := render.QueryID(r, "comune_id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	report, err := h.verifier.RunCheck(r.Context(), comuneID)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, reportResponse{
		Report: report,
		OK:     report.OK(),
		Counts: report.Counts(),
	})
}
