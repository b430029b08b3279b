// Package summary computes the read-only statistics shown on the data
// overview: shape, missing values, duplicate rows, and column profiles.
package summary

import (
	"cmp"
	"slices"

	"job-dash/internal/domain"
)

// Shape returns the number of rows and columns.
func Shape(t *domain.Table) (rows, cols int) {
	return t.Len(), t.Width()
}

// MissingPercentage reports, in column order, how many cells of each column
// are missing and what share of the rows that is. For a table with no rows
// the percentage is nil and a warning is returned alongside.
func MissingPercentage(t *domain.Table) ([]domain.ColumnMissing, *domain.EmptyTableWarning) {
	rows := t.Len()
	out := make([]domain.ColumnMissing, t.Width())
	for j, name := range t.Columns() {
		missing := 0
		for _, cell := range t.Column(j) {
			if !cell.Valid {
				missing++
			}
		}
		out[j] = domain.ColumnMissing{Column: name, Missing: missing, Present: rows - missing}
		if rows > 0 {
			pct := 100 * float64(missing) / float64(rows)
			out[j].Percent = &pct
		}
	}
	if rows == 0 {
		return out, &domain.EmptyTableWarning{Operation: "missing-value percentage"}
	}
	return out, nil
}

// Duplicates returns every row that is equal to at least one other row,
// first occurrences included, in original order. Missing cells compare
// equal to each other.
func Duplicates(t *domain.Table) *domain.Table {
	counts := make(map[string]int, t.Len())
	keys := make([]string, t.Len())
	for i, row := range t.All() {
		keys[i] = row.Key()
		counts[keys[i]]++
	}

	var dup []int
	for i, k := range keys {
		if counts[k] > 1 {
			dup = append(dup, i)
		}
	}
	return t.Subset(dup)
}

// UniqueCounts returns the number of distinct present values per column.
func UniqueCounts(t *domain.Table) []domain.Count {
	out := make([]domain.Count, t.Width())
	for j, name := range t.Columns() {
		seen := make(map[string]struct{})
		for _, cell := range t.Column(j) {
			if cell.Valid {
				seen[cell.String] = struct{}{}
			}
		}
		out[j] = domain.Count{Label: name, Count: len(seen)}
	}
	return out
}

// ValueCounts returns how often each present value of column occurs, most
// frequent first; ties keep the order of first appearance. Values listed in
// exclude are skipped. A limit of zero or less returns every value.
func ValueCounts(t *domain.Table, column string, limit int, exclude ...string) ([]domain.Count, error) {
	col, err := t.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var counts []domain.Count
	for _, cell := range t.Column(col) {
		if !cell.Valid || slices.Contains(exclude, cell.String) {
			continue
		}
		i, ok := index[cell.String]
		if !ok {
			i = len(counts)
			index[cell.String] = i
			counts = append(counts, domain.Count{Label: cell.String})
		}
		counts[i].Count++
	}

	slices.SortStableFunc(counts, func(a, b domain.Count) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}

// Summarize computes everything the data overview displays.
func Summarize(t *domain.Table) domain.Summary {
	rows, cols := Shape(t)
	s := domain.Summary{
		Rows:       rows,
		Columns:    cols,
		Info:       Info(t),
		Duplicates: Duplicates(t),
	}
	var warn *domain.EmptyTableWarning
	s.Missing, warn = MissingPercentage(t)
	if warn != nil {
		s.Warnings = append(s.Warnings, warn)
	}
	return s
}
