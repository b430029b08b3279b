package ui

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"job-dash/internal/dispatch"
	"job-dash/internal/domain"
	"job-dash/internal/render"
)

// Home renders the landing page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r.Context(), dispatch.ModeHome, domain.SearchQuery{})
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, homePage(view.Home))
}

// Overview renders the summary of the pruned raw dataset.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r.Context(), dispatch.ModeOverview, domain.SearchQuery{})
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, overviewPage(view.Overview))
}

// Visualizations renders every chart of the processed dataset.
func (h *Handler) Visualizations(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r.Context(), dispatch.ModeVisualizations, domain.SearchQuery{})
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	draw := func(c render.Chart) ([]byte, error) {
		svg, err := render.Bytes(c, render.FormatSVG)
		if err != nil && !errors.Is(err, render.ErrNoData) {
			h.Logger.WarnContext(r.Context(), "draw chart", "chart", c.ID, "error", err)
		}
		return svg, err
	}
	renderHTML(w, http.StatusOK, visualizationsPage(view.Visualizations, draw))
}

// Search renders the search form and, once submitted, its results.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r.Context(), dispatch.ModeSearch, searchQueryFromRequest(r))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, searchPage(view.Search, pageFromRequest(r)))
}

// ChartPNG serves one chart of the visualizations page as a PNG image.
func (h *Handler) ChartPNG(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r.Context(), dispatch.ModeVisualizations, domain.SearchQuery{})
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	c, err := render.Find(view.Visualizations, chi.URLParam(r, "chart"))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	png, err := render.Bytes(c, render.FormatPNG)
	if errors.Is(err, render.ErrNoData) {
		h.renderServiceError(w, r, domain.ErrNotFound("chart %q has no data", c.ID))
		return
	}
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}
