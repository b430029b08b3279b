package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"job-dash/internal/ui/assets"
)

// MountRoutes registers the dashboard pages on r, which is mounted at /ui.
func MountRoutes(r chi.Router, h *Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/ui/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Get("/", h.Home)
	r.Get("/overview", h.Overview)
	r.Get("/visualizations", h.Visualizations)
	r.Get("/search", h.Search)
	r.Get("/charts/{chart}.png", h.ChartPNG)
}
