// Package domain defines the core table model, view data, and errors for the dashboard.
package domain

import (
	"fmt"
	"strings"
)

// NotFoundError indicates a resource was not found.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// DataSourceError indicates the dataset could not be read: the source is
// missing, unreadable, or malformed. It is fatal to the current render only.
type DataSourceError struct {
	Source string
	Reason string
	Err    error
}

func (e *DataSourceError) Error() string {
	msg := fmt.Sprintf("data source %q: %s", e.Source, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// ColumnNotFoundError indicates the table schema does not contain a column
// the caller relies on. It is surfaced as a configuration error.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("column %q not found", e.Column)
	}
	return fmt.Sprintf("column %q not found (available: %s)", e.Column, strings.Join(e.Available, ", "))
}

// EmptyTableWarning reports that a statistic was computed over a table with
// no rows and is therefore undefined. It is never returned as a failure.
type EmptyTableWarning struct {
	Operation string
}

func (e *EmptyTableWarning) Error() string {
	return fmt.Sprintf("%s is undefined for a table with no rows", e.Operation)
}

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrDataSource creates a DataSourceError wrapping err.
func ErrDataSource(source, reason string, err error) *DataSourceError {
	return &DataSourceError{Source: source, Reason: reason, Err: err}
}
