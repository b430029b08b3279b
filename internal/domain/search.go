package domain

// SearchQuery holds the raw text a user typed into the search form.
// A nil field means the input was not supplied at all.
type SearchQuery struct {
	Title    *string
	Location *string
}

// FilteredResult is the ordered subset of a table's rows matching a search.
type FilteredResult struct {
	// Rows holds the matching rows in their original order.
	Rows *Table
	// Positions maps each result row to its row number in the searched table.
	Positions []int
}

// Count returns the number of matching rows.
func (r *FilteredResult) Count() int {
	if r == nil || r.Rows == nil {
		return 0
	}
	return r.Rows.Len()
}
