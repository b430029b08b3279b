package api

import (
	"errors"
	"net/http"

	"job-dash/internal/domain"
)

// Error is the JSON body of every failed request.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// httpStatusFromDomainError maps domain errors to HTTP status codes.
func httpStatusFromDomainError(err error) int {
	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	var source *domain.DataSourceError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &source):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := httpStatusFromDomainError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "api request failed", "path", r.URL.Path, "error", err)
	}
	// Configuration errors name the missing column; other internal errors stay opaque.
	var column *domain.ColumnNotFoundError
	var source *domain.DataSourceError
	switch {
	case errors.As(err, &source):
		message = "data source unavailable: " + source.Reason
	case status == http.StatusInternalServerError && !errors.As(err, &column):
		message = "internal error"
	}
	writeJSON(w, status, Error{Code: int32(status), Message: message}) //nolint:gosec // HTTP status codes are always in [100,599]
}
