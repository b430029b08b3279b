package dataset

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"job-dash/internal/domain"
)

// Router dispatches a location to the source that understands it:
// s3:// to S3, sqlite:// to SQLite, .parquet to DuckDB, and delimited
// files to CSV (or DuckDB when PreferDuckDB is set).
type Router struct {
	CSV    domain.TableSource
	DuckDB domain.TableSource
	SQLite domain.TableSource
	S3     domain.TableSource

	// PreferDuckDB reads local CSV files through DuckDB instead of the
	// dataframe reader.
	PreferDuckDB bool

	Logger *slog.Logger
}

// Load resolves the source for location and loads it.
func (r *Router) Load(ctx context.Context, location string) (*domain.Table, error) {
	kind, src := r.resolve(location)
	if src == nil {
		return nil, domain.ErrDataSource(location, "no "+kind+" source configured", nil)
	}

	start := time.Now()
	tbl, err := src.Load(ctx, location)
	if err != nil {
		return nil, err
	}
	if r.Logger != nil {
		r.Logger.DebugContext(ctx, "table loaded",
			"location", location,
			"source", kind,
			"rows", tbl.Len(),
			"columns", tbl.Width(),
			"duration", time.Since(start),
		)
	}
	return tbl, nil
}

func (r *Router) resolve(location string) (string, domain.TableSource) {
	switch {
	case strings.HasPrefix(location, S3Scheme):
		return "s3", r.S3
	case strings.HasPrefix(location, SQLiteScheme):
		return "sqlite", r.SQLite
	case strings.EqualFold(filepath.Ext(location), ".parquet"):
		return "duckdb", r.DuckDB
	case r.PreferDuckDB:
		return "duckdb", r.DuckDB
	default:
		return "csv", r.CSV
	}
}
