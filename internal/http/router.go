package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/catasto/internal/http/comune"
	"github.com/MrJamesThe3rd/catasto/internal/http/immobile"
	"github.com/MrJamesThe3rd/catasto/internal/http/importcsv"
	"github.com/MrJamesThe3rd/catasto/internal/http/integrity"
	"github.com/MrJamesThe3rd/catasto/internal/http/partita"
	"github.com/MrJamesThe3rd/catasto/internal/http/possessore"
	"github.com/MrJamesThe3rd/catasto/internal/http/variazione"
)

type Handlers struct {
	Comuni     *comune.Handler
	Possessori *possessore.Handler
	Immobili   *immobile.Handler
	Partite    *partita.Handler
	Variazioni *variazione.Handler
	Integrity  *integrity.Handler
	Import     *importcsv.Handler
	// Metrics is mounted on /metrics when set.
	Metrics http.Handler
}

func New(h Handlers, corsOrigins []string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if h.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))

			r.Route("/comuni", h.Comuni.Routes)
			r.Route("/possessori", h.Possessori.Routes)
			r.Route("/localita", h.Immobili.LocalitaRoutes)
			r.Route("/immobili", h.Immobili.ImmobiliRoutes)
			r.Route("/partite", h.Partite.Routes)
			r.Route("/legami", h.Partite.LegamiRoutes)
			r.Route("/variazioni", h.Variazioni.Routes)
			r.Route("/integrity", h.Integrity.Routes)
		})

		r.Route("/import", h.Import.Routes)
	})

	return router
}
