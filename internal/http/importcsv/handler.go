package importcsv

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/catasto/internal/http/render"
	"github.com/MrJamesThe3rd/catasto/internal/importer"
)

const maxUploadSize = 10 << 20

type Handler struct {
	importer *importer.Importer
}

func NewHandler(imp *importer.Importer) *Handler {
	return &Handler{importer: imp}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/possessori", h.handle(h.importer.ImportPossessori))
	r.Post("/partite", h.handle(h.importer.ImportPartite))
}

type importFunc func(ctx context.Context, comuneID int64, r io.Reader) (*importer.Result, error)

// handle reads the multipart fields file and comune_id and hands the file
// to fn.
func (h *Handler) handle(fn importFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			render.BadRequest(w, "failed to parse form: %v", err)
			return
		}

		comuneID, err := strconv.ParseInt(r.FormValue("comune_id"), 10, 64)
		if err != nil || comuneID <= 0 {
			render.BadRequest(w, "comune_id field is required")
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			render.BadRequest(w, "file field is required")
			return
		}
		defer file.Close()

		res, err := fn(r.Context(), comuneID, file)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, http.StatusCreated, res)
	}
}
