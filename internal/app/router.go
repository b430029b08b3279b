package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"job-dash/internal/api"
	"job-dash/internal/middleware"
	"job-dash/internal/ui"
)

// NewRouter builds the HTTP handler: HTML pages under /ui and the JSON API
// under /api/v1, both behind the rate limiter.
func (a *App) NewRouter(limiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(a.Logger.With("component", "http")))
	r.Use(chimw.Recoverer)
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui", http.StatusFound)
	})

	uiHandler := ui.NewHandler(a.Loader, a.Dispatcher, a.Logger)
	r.Route("/ui", func(r chi.Router) {
		ui.MountRoutes(r, uiHandler)
	})

	apiHandler := api.NewHandler(a.Loader, a.Dispatcher, a.Logger)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: a.Cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         300,
		}))
		api.MountRoutes(r, apiHandler)
	})

	return r
}
