package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver

	"job-dash/internal/domain"
)

// SQLiteScheme prefixes locations served by SQLiteSource.
const SQLiteScheme = "sqlite://"

// SQLite DSN parameters for read-only access.
const defaultBusyTimeout = "5000" // 5 seconds

// SQLiteSource reads one table of a SQLite database file. Locations look
// like sqlite:///var/data/jobs.db?table=listings.
type SQLiteSource struct{}

// NewSQLiteSource returns a SQLiteSource.
func NewSQLiteSource() *SQLiteSource {
	return &SQLiteSource{}
}

// Load opens the database read-only, selects every row of the table, and
// closes the database again.
func (s *SQLiteSource) Load(ctx context.Context, location string) (*domain.Table, error) {
	path, table, err := ParseSQLiteLocation(location)
	if err != nil {
		return nil, domain.ErrDataSource(location, "invalid location", err)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrDataSource(location, "database file not found", err)
		}
		return nil, domain.ErrDataSource(location, "cannot stat database file", err)
	}

	db, err := sql.Open("sqlite3", buildReadOnlyDSN(path))
	if err != nil {
		return nil, domain.ErrDataSource(location, "cannot open database", err)
	}
	defer db.Close() //nolint:errcheck

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdentifier(table)) //nolint:gosec // identifier validated
	if err != nil {
		return nil, domain.ErrDataSource(location, "cannot query table", err)
	}
	defer rows.Close() //nolint:errcheck

	tbl, err := scanTable(rows)
	if err != nil {
		return nil, domain.ErrDataSource(location, "cannot read table", err)
	}
	return tbl, nil
}

// ParseSQLiteLocation splits sqlite://<path>?table=<name> into its parts.
func ParseSQLiteLocation(location string) (path, table string, err error) {
	if !strings.HasPrefix(location, SQLiteScheme) {
		return "", "", fmt.Errorf("expected %s scheme in %q", SQLiteScheme, location)
	}
	rest := strings.TrimPrefix(location, SQLiteScheme)
	path, rawQuery, _ := strings.Cut(rest, "?")
	if path == "" {
		return "", "", fmt.Errorf("empty database path in %q", location)
	}
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", "", fmt.Errorf("parse query of %q: %w", location, err)
	}
	table = q.Get("table")
	if err := validateIdentifier(table); err != nil {
		return "", "", err
	}
	return path, table, nil
}

// buildReadOnlyDSN constructs a SQLite DSN that never writes to the file.
func buildReadOnlyDSN(path string) string {
	params := url.Values{}
	params.Set("mode", "ro")
	params.Set("_busy_timeout", defaultBusyTimeout)
	return "file:" + path + "?" + params.Encode()
}
