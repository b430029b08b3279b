package domain

import (
	"database/sql"
	"iter"
	"slices"
	"strings"
)

// Row is one record of a Table. Cells are positional and follow the
// table's column order; an invalid NullString is a missing value.
type Row []sql.NullString

// Equal reports whether both rows hold the same values in every position.
// Two missing values compare equal.
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i].Valid != other[i].Valid {
			return false
		}
		if r[i].Valid && r[i].String != other[i].String {
			return false
		}
	}
	return true
}

// Key returns a string that is identical for two rows iff Equal holds.
func (r Row) Key() string {
	var b strings.Builder
	for i := range r {
		if !r[i].Valid {
			b.WriteByte(0)
			continue
		}
		b.WriteByte(1)
		// Length prefix keeps ["ab", "c"] distinct from ["a", "bc"].
		writeLen(&b, len(r[i].String))
		b.WriteString(r[i].String)
	}
	return b.String()
}

func writeLen(b *strings.Builder, n int) {
	for {
		c := byte(n & 0x7f)
		n >>= 7
		if n == 0 {
			b.WriteByte(c)
			return
		}
		b.WriteByte(c | 0x80)
	}
}

// Table is an immutable, ordered set of rows over a fixed list of uniquely
// named columns. Accessors hand out copies so callers cannot mutate it.
type Table struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// NewTable builds a table. Every row must have exactly len(columns) cells and
// column names must be non-empty and unique. The inputs are copied.
func NewTable(columns []string, rows []Row) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" {
			return nil, ErrValidation("column %d has an empty name", i)
		}
		if _, dup := index[c]; dup {
			return nil, ErrValidation("duplicate column name %q", c)
		}
		index[c] = i
	}
	copied := make([]Row, len(rows))
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, ErrValidation("row %d has %d fields, expected %d", i, len(row), len(columns))
		}
		copied[i] = slices.Clone(row)
	}
	return &Table{columns: slices.Clone(columns), index: index, rows: copied}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.columns) }

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, &ColumnNotFoundError{Column: name, Available: t.Columns()}
	}
	return i, nil
}

// Row returns a copy of row i.
func (t *Table) Row(i int) Row { return slices.Clone(t.rows[i]) }

// Cell returns the value of column col in row i.
func (t *Table) Cell(i, col int) sql.NullString { return t.rows[i][col] }

// All iterates over the rows in order. Yielded rows are copies.
func (t *Table) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i := range t.rows {
			if !yield(i, slices.Clone(t.rows[i])) {
				return
			}
		}
	}
}

// Column iterates over the cells of one column in row order.
func (t *Table) Column(col int) iter.Seq2[int, sql.NullString] {
	return func(yield func(int, sql.NullString) bool) {
		for i := range t.rows {
			if !yield(i, t.rows[i][col]) {
				return
			}
		}
	}
}

// Record returns row i as a column-name to value map.
func (t *Table) Record(i int) map[string]sql.NullString {
	rec := make(map[string]sql.NullString, len(t.columns))
	for j, c := range t.columns {
		rec[c] = t.rows[i][j]
	}
	return rec
}

// Subset returns a new table holding the given rows, in the order given.
func (t *Table) Subset(indices []int) *Table {
	rows := make([]Row, len(indices))
	for i, idx := range indices {
		rows[i] = t.rows[idx]
	}
	// Rows are never mutated after construction, so sharing them is safe.
	return &Table{columns: t.columns, index: t.index, rows: rows}
}

// Drop returns a new table without the named columns. It fails with a
// ColumnNotFoundError, dropping nothing, if any column is absent.
func (t *Table) Drop(columns ...string) (*Table, error) {
	for _, c := range columns {
		if _, ok := t.index[c]; !ok {
			return nil, &ColumnNotFoundError{Column: c, Available: t.Columns()}
		}
	}
	return t.without(columns), nil
}

// PruneExisting drops whichever of the named columns are present and ignores
// the rest, so pruning an already pruned table is a no-op.
func (t *Table) PruneExisting(columns ...string) *Table {
	present := make([]string, 0, len(columns))
	for _, c := range columns {
		if _, ok := t.index[c]; ok {
			present = append(present, c)
		}
	}
	return t.without(present)
}

func (t *Table) without(columns []string) *Table {
	if len(columns) == 0 {
		return t
	}
	drop := make(map[int]bool, len(columns))
	for _, c := range columns {
		drop[t.index[c]] = true
	}

	keep := make([]int, 0, len(t.columns)-len(drop))
	names := make([]string, 0, len(t.columns)-len(drop))
	for i, c := range t.columns {
		if !drop[i] {
			keep = append(keep, i)
			names = append(names, c)
		}
	}

	index := make(map[string]int, len(names))
	for i, c := range names {
		index[c] = i
	}
	rows := make([]Row, len(t.rows))
	for i, src := range t.rows {
		row := make(Row, len(keep))
		for j, k := range keep {
			row[j] = src[k]
		}
		rows[i] = row
	}
	return &Table{columns: names, index: index, rows: rows}
}

// Value builds a present cell.
func Value(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }

// Null is the missing cell.
var Null = sql.NullString{}
