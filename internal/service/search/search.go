// Package search filters job listings by case-insensitive substring matches
// on the title and location columns.
package search

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"job-dash/internal/domain"
)

// ErrNoFilterRequested is returned when neither pattern was supplied. It is
// distinct from a search that ran and matched nothing.
var ErrNoFilterRequested = errors.New("no search criteria entered")

// EmptyPatternPolicy decides what an empty-string pattern means.
type EmptyPatternPolicy int

const (
	// EmptyAsAbsent treats "" as if the pattern had not been supplied.
	EmptyAsAbsent EmptyPatternPolicy = iota
	// EmptyMatchesAll treats "" as a supplied pattern, which every present
	// cell contains.
	EmptyMatchesAll
)

// String returns the configuration name of the policy.
func (p EmptyPatternPolicy) String() string {
	if p == EmptyMatchesAll {
		return "all"
	}
	return "absent"
}

// ParseEmptyPatternPolicy reads "absent" or "all".
func ParseEmptyPatternPolicy(s string) (EmptyPatternPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "absent":
		return EmptyAsAbsent, nil
	case "all":
		return EmptyMatchesAll, nil
	default:
		return EmptyAsAbsent, fmt.Errorf("invalid empty pattern policy %q: must be absent or all", s)
	}
}

// Engine applies title and location predicates to a table.
type Engine struct {
	TitleColumn    string
	LocationColumn string
	EmptyPolicy    EmptyPatternPolicy
}

// NewEngine creates an Engine matching against the given columns.
func NewEngine(titleColumn, locationColumn string, policy EmptyPatternPolicy) *Engine {
	return &Engine{TitleColumn: titleColumn, LocationColumn: locationColumn, EmptyPolicy: policy}
}

// Search runs Filter with the patterns of q.
func (e *Engine) Search(t *domain.Table, q domain.SearchQuery) (*domain.FilteredResult, error) {
	return e.Filter(t, q.Title, q.Location)
}

// Filter keeps the rows whose title contains title and whose location
// contains location, ignoring case. A nil pattern places no constraint on
// its column; with both nil the result is ErrNoFilterRequested. Missing
// cells never match. Row order is preserved.
func (e *Engine) Filter(t *domain.Table, title, location *string) (*domain.FilteredResult, error) {
	title, location = e.normalize(title), e.normalize(location)
	if title == nil && location == nil {
		return nil, ErrNoFilterRequested
	}

	fold := cases.Fold()
	var preds []predicate
	for _, p := range []struct {
		column  string
		pattern *string
	}{
		{e.TitleColumn, title},
		{e.LocationColumn, location},
	} {
		if p.pattern == nil {
			continue
		}
		col, err := t.ColumnIndex(p.column)
		if err != nil {
			return nil, err
		}
		preds = append(preds, predicate{col: col, needle: fold.String(*p.pattern)})
	}

	var positions []int
	for i := range t.Len() {
		if matchAll(t, i, preds, fold) {
			positions = append(positions, i)
		}
	}
	return &domain.FilteredResult{Rows: t.Subset(positions), Positions: positions}, nil
}

func (e *Engine) normalize(pattern *string) *string {
	if pattern != nil && *pattern == "" && e.EmptyPolicy == EmptyAsAbsent {
		return nil
	}
	return pattern
}

type predicate struct {
	col    int
	needle string
}

func matchAll(t *domain.Table, row int, preds []predicate, fold cases.Caser) bool {
	for _, p := range preds {
		cell := t.Cell(row, p.col)
		if !cell.Valid {
			return false
		}
		if !strings.Contains(fold.String(cell.String), p.needle) {
			return false
		}
	}
	return true
}
