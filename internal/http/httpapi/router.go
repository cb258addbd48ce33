package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"inkwash/internal/http/handlers"
	"inkwash/internal/middleware"
	"inkwash/internal/web"
)

// NewRouter assembles the HTTP surface: the embedded client at the root, the
// API docs, and the JSON API under /v1. Only the generation endpoints sit
// behind the per-client rate limit.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(app.Config.AllowedOrigins),
		middleware.I18N(app.Config.DefaultLocale, lookup),
	)

	r.Get("/", web.Index())
	r.Get("/docs", app.OpenAPIDocs)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/styles", app.Styles)
		r.Get("/stats", app.StatsSummary)
		r.Get("/openapi.json", app.OpenAPIJSON)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(app.Config.RateLimitPerMin))
			r.Post("/renders", app.Renders)
			r.Post("/transforms", app.Transforms)
		})
	})

	return r
}
