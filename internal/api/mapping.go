package api

import (
	"job-dash/internal/dispatch"
	"job-dash/internal/domain"
)

// Overview is the JSON form of a table summary.
type Overview struct {
	Rows       int                    `json:"rows"`
	Columns    int                    `json:"columns"`
	Info       []domain.ColumnInfo    `json:"info"`
	Missing    []domain.ColumnMissing `json:"missing"`
	Duplicates TableRows              `json:"duplicates"`
	Warnings   []string               `json:"warnings,omitempty"`
}

// TableRows is a table as a column list plus rows of nullable cells.
type TableRows struct {
	Columns []string    `json:"columns"`
	Rows    [][]*string `json:"rows"`
}

// SearchResult is the JSON form of a search.
type SearchResult struct {
	// Requested is false when no criteria were supplied; nothing else is set then.
	Requested     bool      `json:"requested"`
	Message       string    `json:"message,omitempty"`
	Total         int       `json:"total"`
	Positions     []int     `json:"positions,omitempty"`
	Results       TableRows `json:"results"`
	NextPageToken string    `json:"next_page_token,omitempty"`
}

// NewOverview converts a summary to its JSON form.
func NewOverview(s *domain.Summary) Overview {
	out := Overview{
		Rows:       s.Rows,
		Columns:    s.Columns,
		Info:       s.Info,
		Missing:    s.Missing,
		Duplicates: tableToAPI(s.Duplicates, 0, tableLen(s.Duplicates)),
	}
	for _, w := range s.Warnings {
		out.Warnings = append(out.Warnings, w.Error())
	}
	return out
}

// NewSearchResult converts a search view to its JSON form, keeping only the
// rows on page.
func NewSearchResult(v *dispatch.SearchView, page domain.PageRequest) SearchResult {
	if !v.Requested {
		return SearchResult{Results: TableRows{Columns: []string{}, Rows: [][]*string{}}}
	}
	total := v.Result.Count()
	start, end := page.Bounds(total)
	return SearchResult{
		Requested:     true,
		Message:       v.Message(),
		Total:         total,
		Positions:     v.Result.Positions[start:end],
		Results:       tableToAPI(v.Result.Rows, start, end),
		NextPageToken: domain.NextPageToken(start, page.Limit(), total),
	}
}

func tableLen(t *domain.Table) int {
	if t == nil {
		return 0
	}
	return t.Len()
}

func tableToAPI(t *domain.Table, start, end int) TableRows {
	if t == nil {
		return TableRows{Columns: []string{}, Rows: [][]*string{}}
	}
	rows := make([][]*string, 0, end-start)
	for i := start; i < end; i++ {
		row := t.Row(i)
		cells := make([]*string, len(row))
		for j, c := range row {
			if c.Valid {
				s := c.String
				cells[j] = &s
			}
		}
		rows = append(rows, cells)
	}
	return TableRows{Columns: t.Columns(), Rows: rows}
}
