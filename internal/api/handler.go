// Package api provides the read-only JSON API over the job listings.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"job-dash/internal/dispatch"
	"job-dash/internal/domain"
)

// TableLoader loads the dataset variants a mode needs.
type TableLoader interface {
	Load(ctx context.Context, mode dispatch.Mode) (dispatch.Tables, error)
}

// Handler serves the JSON API. It shares the dispatcher with the HTML pages
// so both surfaces compute identical views.
type Handler struct {
	loader     TableLoader
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(loader TableLoader, dispatcher *dispatch.Dispatcher, logger *slog.Logger) *Handler {
	return &Handler{loader: loader, dispatcher: dispatcher, logger: logger.With("component", "api")}
}

// MountRoutes registers the API on r, which is mounted at /api/v1.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/health", h.Health)
	r.Get("/overview", h.Overview)
	r.Get("/visualizations", h.Visualizations)
	r.Get("/search", h.Search)
}

// Health reports liveness. It does not touch the data source.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Overview returns the summary of the pruned raw dataset.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r.Context(), dispatch.ModeOverview, domain.SearchQuery{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, NewOverview(view.Overview))
}

// Visualizations returns the aggregates behind every chart.
func (h *Handler) Visualizations(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r.Context(), dispatch.ModeVisualizations, domain.SearchQuery{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view.Visualizations)
}

// Search filters the processed dataset. A parameter that is left out of the
// query string counts as not supplied.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	var query domain.SearchQuery
	if params.Has("title") {
		title := params.Get("title")
		query.Title = &title
	}
	if params.Has("location") {
		location := params.Get("location")
		query.Location = &location
	}

	page, err := pageFromParams(params.Get("max_results"), params.Get("page_token"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	view, err := h.view(r.Context(), dispatch.ModeSearch, query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, NewSearchResult(view.Search, page))
}

func (h *Handler) view(ctx context.Context, mode dispatch.Mode, query domain.SearchQuery) (*dispatch.View, error) {
	tables, err := h.loader.Load(ctx, mode)
	if err != nil {
		return nil, err
	}
	return h.dispatcher.Render(mode, tables, query)
}

// pageFromParams extracts a PageRequest from the optional max_results and
// page_token params.
func pageFromParams(maxResults, pageToken string) (domain.PageRequest, error) {
	p := domain.PageRequest{PageToken: pageToken}
	if maxResults != "" {
		n, err := strconv.Atoi(maxResults)
		if err != nil || n < 1 {
			return p, domain.ErrValidation("max_results must be a positive integer")
		}
		p.MaxResults = n
	}
	return p, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
