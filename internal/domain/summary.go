package domain

import "strconv"

// ColumnMissing reports missing values for one column.
type ColumnMissing struct {
	Column  string   `json:"column"`
	Missing int      `json:"missing"`
	Present int      `json:"present"`
	Percent *float64 `json:"percent"` // nil when the table has no rows
}

// PercentLabel formats the percentage, or "undefined" for an empty table.
func (c ColumnMissing) PercentLabel() string {
	if c.Percent == nil {
		return "undefined"
	}
	return strconv.FormatFloat(*c.Percent, 'f', 2, 64) + "%"
}

// ColumnKind is the inferred type of a column's non-missing values.
type ColumnKind string

const (
	KindInt    ColumnKind = "int64"
	KindFloat  ColumnKind = "float64"
	KindBool   ColumnKind = "bool"
	KindObject ColumnKind = "object"
)

// ColumnInfo describes one column: how many cells are present and what the
// present values look like.
type ColumnInfo struct {
	Position int        `json:"position"`
	Column   string     `json:"column"`
	NonNull  int        `json:"non_null"`
	Kind     ColumnKind `json:"kind"`
}

// Count is a labelled frequency.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary is the read-only overview of a table.
type Summary struct {
	Rows       int             `json:"rows"`
	Columns    int             `json:"columns"`
	Info       []ColumnInfo    `json:"info"`
	Missing    []ColumnMissing `json:"missing"`
	Duplicates *Table          `json:"-"`
	// Warnings lists statistics that degraded to undefined values.
	Warnings []*EmptyTableWarning `json:"-"`
}
