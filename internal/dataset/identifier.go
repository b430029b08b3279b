package dataset

import (
	"fmt"
	"regexp"
	"strings"
)

var tableNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

const maxTableNameLen = 128

// validateIdentifier rejects SQLite table names that are empty, longer than
// 128 bytes, or not a plain [a-zA-Z_][a-zA-Z0-9_]* word.
func validateIdentifier(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("table name is required")
	case len(name) > maxTableNameLen:
		return fmt.Errorf("table name %q exceeds %d characters", name, maxTableNameLen)
	case !tableNameRe.MatchString(name):
		return fmt.Errorf("table name %q must match [a-zA-Z_][a-zA-Z0-9_]*", name)
	}
	return nil
}

// quoteIdentifier double-quotes a column or table name, doubling embedded quotes.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteLiteral single-quotes a string for DuckDB table functions.
func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// quoteLiteralList renders values as a DuckDB list literal: ['a', 'b'].
func quoteLiteralList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quoteLiteral(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
