package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver

	"job-dash/internal/domain"
)

// DuckDBSource reads CSV and Parquet files through DuckDB's file readers.
// Every column is cast to VARCHAR so the table model stays string-typed.
type DuckDBSource struct {
	db       *sql.DB
	naTokens []string
}

// OpenDuckDB opens an in-memory DuckDB database for reading files.
func OpenDuckDB() (*sql.DB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return db, nil
}

// NewDuckDBSource wraps an open DuckDB handle.
func NewDuckDBSource(db *sql.DB) *DuckDBSource {
	return &DuckDBSource{db: db, naTokens: DefaultNATokens}
}

// Load reads the file at path. The reader is chosen by file extension.
func (s *DuckDBSource) Load(ctx context.Context, path string) (*domain.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrDataSource(path, "file not found", err)
		}
		return nil, domain.ErrDataSource(path, "cannot stat file", err)
	}

	query, err := s.selectSQL(ctx, path)
	if err != nil {
		return nil, domain.ErrDataSource(path, "unsupported file", err)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.ErrDataSource(path, "cannot read file", err)
	}
	defer rows.Close() //nolint:errcheck

	tbl, err := scanTable(rows)
	if err != nil {
		return nil, domain.ErrDataSource(path, "cannot read file", err)
	}
	return tbl, nil
}

func (s *DuckDBSource) selectSQL(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		from := fmt.Sprintf("read_parquet(%s)", quoteLiteral(path))
		return s.castAllSQL(ctx, from)
	case ".csv", ".tsv", ".txt":
		return fmt.Sprintf(
			"SELECT * FROM read_csv(%s, header = true, all_varchar = true, nullstr = %s)",
			quoteLiteral(path), quoteLiteralList(s.naTokens),
		), nil
	default:
		return "", fmt.Errorf("unsupported file format: %q", filepath.Ext(path))
	}
}

// castAllSQL selects every column of from cast to VARCHAR under its own name.
func (s *DuckDBSource) castAllSQL(ctx context.Context, from string) (string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT column_name FROM (DESCRIBE SELECT * FROM "+from+")")
	if err != nil {
		return "", fmt.Errorf("describe columns: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var exprs []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", fmt.Errorf("scan column name: %w", err)
		}
		q := quoteIdentifier(name)
		exprs = append(exprs, "CAST("+q+" AS VARCHAR) AS "+q)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("describe columns: %w", err)
	}
	if len(exprs) == 0 {
		return "", fmt.Errorf("file has no columns")
	}
	return "SELECT " + strings.Join(exprs, ", ") + " FROM " + from, nil
}

// scanTable drains rows into a Table, reading every cell as a nullable string.
func scanTable(rows *sql.Rows) (*domain.Table, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []domain.Row
	for rows.Next() {
		row := make(domain.Row, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range row {
			ptrs[i] = &row[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return domain.NewTable(cols, out)
}
