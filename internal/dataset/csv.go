// Package dataset loads job-listing tables from files, databases, and object storage.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"job-dash/internal/domain"
)

// DefaultNATokens are the cell values read as missing, matching what pandas
// treats as NA when reading CSV.
var DefaultNATokens = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a", "nan", "null",
}

const utf8BOM = "\ufeff"

// CSVSource reads delimited text files with a header row.
type CSVSource struct {
	// Comma is the field delimiter. Zero means ',' (or '\t' for .tsv files).
	Comma rune
	// NATokens overrides DefaultNATokens when non-nil.
	NATokens []string
}

// NewCSVSource returns a CSVSource using the default delimiter and NA tokens.
func NewCSVSource() *CSVSource {
	return &CSVSource{}
}

// Load reads the file at path.
func (s *CSVSource) Load(ctx context.Context, path string) (*domain.Table, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrDataSource(path, "file not found", err)
		}
		return nil, domain.ErrDataSource(path, "cannot open file", err)
	}
	defer f.Close() //nolint:errcheck

	comma := s.Comma
	if comma == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		comma = '\t'
	}
	return s.read(ctx, path, f, comma)
}

// Read parses CSV content from r. name identifies the source in errors.
func (s *CSVSource) Read(ctx context.Context, name string, r io.Reader) (*domain.Table, error) {
	return s.read(ctx, name, r, s.Comma)
}

func (s *CSVSource) read(ctx context.Context, name string, r io.Reader, comma rune) (*domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	if comma != 0 {
		reader.Comma = comma
	}
	// Every record must match the header's field count.
	reader.FieldsPerRecord = 0

	records, err := reader.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, domain.ErrDataSource(name, fmt.Sprintf("malformed CSV at line %d", perr.Line), perr.Err)
		}
		return nil, domain.ErrDataSource(name, "cannot read file", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrDataSource(name, "file is empty, expected a header row", nil)
	}
	records[0][0] = strings.TrimPrefix(records[0][0], utf8BOM)

	// Validate the header up front: the dataframe reader would silently
	// rename blank and repeated column names.
	header, err := domain.NewTable(records[0], nil)
	if err != nil {
		return nil, domain.ErrDataSource(name, "invalid header", err)
	}
	if len(records) == 1 {
		return header, nil
	}

	tokens := s.NATokens
	if tokens == nil {
		tokens = DefaultNATokens
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(tokens),
	)
	if df.Err != nil {
		return nil, domain.ErrDataSource(name, "cannot build table", df.Err)
	}
	return tableFromDataFrame(name, df)
}

func tableFromDataFrame(name string, df dataframe.DataFrame) (*domain.Table, error) {
	nrow, ncol := df.Dims()
	rows := make([]domain.Row, nrow)
	for i := range nrow {
		row := make(domain.Row, ncol)
		for j := range ncol {
			elem := df.Elem(i, j)
			if elem.IsNA() {
				row[j] = domain.Null
				continue
			}
			row[j] = domain.Value(elem.String())
		}
		rows[i] = row
	}
	tbl, err := domain.NewTable(df.Names(), rows)
	if err != nil {
		return nil, domain.ErrDataSource(name, "invalid table shape", err)
	}
	return tbl, nil
}
