package summary

import (
	"strconv"

	"job-dash/internal/domain"
)

// Info profiles every column: its position, present-cell count, and the
// narrowest kind all present values parse as.
func Info(t *domain.Table) []domain.ColumnInfo {
	out := make([]domain.ColumnInfo, t.Width())
	for j, name := range t.Columns() {
		nonNull := 0
		var values []string
		for _, cell := range t.Column(j) {
			if cell.Valid {
				nonNull++
				values = append(values, cell.String)
			}
		}
		out[j] = domain.ColumnInfo{
			Position: j,
			Column:   name,
			NonNull:  nonNull,
			Kind:     inferKind(values, nonNull < t.Len(), t.Len()),
		}
	}
	return out
}

// inferKind follows the CSV reader convention: integer columns with gaps
// widen to float64, and a column with rows but no values is float64.
func inferKind(values []string, hasMissing bool, rows int) domain.ColumnKind {
	if len(values) == 0 {
		if rows == 0 {
			return domain.KindObject
		}
		return domain.KindFloat
	}

	switch {
	case all(values, isInt):
		if hasMissing {
			return domain.KindFloat
		}
		return domain.KindInt
	case all(values, isFloat):
		return domain.KindFloat
	case all(values, isBool):
		if hasMissing {
			return domain.KindObject
		}
		return domain.KindBool
	default:
		return domain.KindObject
	}
}

func all(values []string, pred func(string) bool) bool {
	for _, v := range values {
		if !pred(v) {
			return false
		}
	}
	return true
}

func isInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isBool(s string) bool {
	switch s {
	case "True", "TRUE", "true", "False", "FALSE", "false":
		return true
	}
	return false
}
