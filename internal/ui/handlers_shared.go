package ui

import (
	"errors"
	"net/http"

	"job-dash/internal/domain"
)

func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Unexpected Error"
	message := "An unexpected error occurred while loading this page."

	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	var source *domain.DataSourceError
	var column *domain.ColumnNotFoundError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
		title = "Not Found"
		message = notFound.Error()
	} else if errors.As(err, &validation) {
		status = http.StatusBadRequest
		title = "Invalid Request"
		message = validation.Error()
	} else if errors.As(err, &source) {
		// The full error names server paths; it is only logged.
		status = http.StatusServiceUnavailable
		title = "Data Source Unavailable"
		message = "The job listings could not be loaded: " + source.Reason + "."
	} else if errors.As(err, &column) {
		title = "Configuration Error"
		message = "The dataset does not match the configured columns: " + column.Error()
	}

	if status >= http.StatusInternalServerError {
		h.Logger.ErrorContext(r.Context(), "render page", "path", r.URL.Path, "error", err)
	}
	renderHTML(w, status, errorPage(title, message))
}
