// Package ui serves the server-rendered dashboard pages.
package ui

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"job-dash/internal/dispatch"
	"job-dash/internal/domain"

	gomponents "maragu.dev/gomponents"
)

// TableLoader loads the dataset variants a mode needs.
type TableLoader interface {
	Load(ctx context.Context, mode dispatch.Mode) (dispatch.Tables, error)
}

// Handler renders the dashboard. Each request is one render cycle: it loads
// the tables for the page, dispatches, and renders the view.
type Handler struct {
	Loader     TableLoader
	Dispatcher *dispatch.Dispatcher
	Logger     *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(loader TableLoader, dispatcher *dispatch.Dispatcher, logger *slog.Logger) *Handler {
	return &Handler{Loader: loader, Dispatcher: dispatcher, Logger: logger.With("component", "ui")}
}

// view runs one render cycle for mode.
func (h *Handler) view(ctx context.Context, mode dispatch.Mode, query domain.SearchQuery) (*dispatch.View, error) {
	tables, err := h.Loader.Load(ctx, mode)
	if err != nil {
		return nil, err
	}
	return h.Dispatcher.Render(mode, tables, query)
}

// searchQueryFromRequest reads the search form. Until the form has been
// submitted both patterns are absent.
func searchQueryFromRequest(r *http.Request) domain.SearchQuery {
	q := r.URL.Query()
	if !q.Has("submitted") {
		return domain.SearchQuery{}
	}
	title, location := q.Get("title"), q.Get("location")
	return domain.SearchQuery{Title: &title, Location: &location}
}

func pageFromRequest(r *http.Request) domain.PageRequest {
	maxResults := domain.DefaultMaxResults
	if raw := r.URL.Query().Get("max_results"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			maxResults = parsed
		}
	}
	return domain.PageRequest{
		MaxResults: maxResults,
		PageToken:  r.URL.Query().Get("page_token"),
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
