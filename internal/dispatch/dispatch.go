// Package dispatch maps a selected dashboard mode and the tables it needs to
// the data a page renders. Rendering itself is left to the ui, api, and cli
// packages.
package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"job-dash/internal/domain"
	"job-dash/internal/service/search"
	"job-dash/internal/service/summary"
	"job-dash/internal/service/visual"
)

// Mode is a page of the dashboard.
type Mode string

const (
	ModeHome           Mode = "home"
	ModeOverview       Mode = "overview"
	ModeVisualizations Mode = "visualizations"
	ModeSearch         Mode = "search"
)

// Modes lists every mode in navigation order.
var Modes = []Mode{ModeHome, ModeOverview, ModeVisualizations, ModeSearch}

// ParseMode resolves a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", domain.ErrValidation("unknown mode %q", s)
}

// Title is the page heading shown for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeHome:
		return "Home"
	case ModeOverview:
		return "Data Overview"
	case ModeVisualizations:
		return "Visualizations"
	case ModeSearch:
		return "Search for Jobs"
	}
	return string(m)
}

// Variant identifies one of the two dataset variants.
type Variant int

const (
	// VariantRaw is the raw dataset, pruned of identifier columns before use.
	VariantRaw Variant = 1 << iota
	// VariantProcessed is the preprocessed dataset.
	VariantProcessed
)

// Has reports whether v includes other.
func (v Variant) Has(other Variant) bool { return v&other != 0 }

// Needs returns the dataset variants a mode renders from, so a render cycle
// loads nothing else.
func (m Mode) Needs() Variant {
	switch m {
	case ModeOverview:
		return VariantRaw
	case ModeVisualizations, ModeSearch:
		return VariantProcessed
	}
	return 0
}

// Tables carries the loaded dataset variants into Render. Pruned is the raw
// table after column pruning.
type Tables struct {
	Pruned    *domain.Table
	Processed *domain.Table
}

// HomeView is the landing page content.
type HomeView struct {
	Heading string
	Caption string
	Credits []string
}

// SearchView is the outcome of a search action.
type SearchView struct {
	Query domain.SearchQuery
	// Requested is false when no criteria were entered; Result is nil then.
	Requested bool
	Result    *domain.FilteredResult
}

// Message is the line shown above the results, empty when nothing was
// requested.
func (v *SearchView) Message() string {
	switch {
	case !v.Requested:
		return ""
	case v.Result.Count() == 0:
		return "No jobs found based on the search criteria."
	default:
		return fmt.Sprintf("Found %d jobs", v.Result.Count())
	}
}

// View is what one page renders. Exactly one of the mode fields is set.
type View struct {
	Mode           Mode
	Home           *HomeView
	Overview       *domain.Summary
	Visualizations *domain.Visualizations
	Search         *SearchView
}

// Dispatcher routes a mode to the component that computes its view.
type Dispatcher struct {
	Home   HomeView
	Search *search.Engine
	Visual *visual.Service
}

// Render computes the view for mode from the given tables. It never
// modifies the tables.
func (d *Dispatcher) Render(mode Mode, tables Tables, query domain.SearchQuery) (*View, error) {
	if err := requireTables(mode, tables); err != nil {
		return nil, err
	}

	view := &View{Mode: mode}
	switch mode {
	case ModeHome:
		home := d.Home
		view.Home = &home
	case ModeOverview:
		s := summary.Summarize(tables.Pruned)
		view.Overview = &s
	case ModeVisualizations:
		v, err := d.Visual.Build(tables.Processed)
		if err != nil {
			return nil, fmt.Errorf("build visualizations: %w", err)
		}
		view.Visualizations = v
	case ModeSearch:
		sv := &SearchView{Query: query}
		res, err := d.Search.Search(tables.Processed, query)
		switch {
		case errors.Is(err, search.ErrNoFilterRequested):
			// Nothing entered: Requested stays false.
		case err != nil:
			return nil, fmt.Errorf("search: %w", err)
		default:
			sv.Requested = true
			sv.Result = res
		}
		view.Search = sv
	default:
		return nil, domain.ErrValidation("unknown mode %q", mode)
	}
	return view, nil
}

func requireTables(mode Mode, tables Tables) error {
	needs := mode.Needs()
	if needs.Has(VariantRaw) && tables.Pruned == nil {
		return fmt.Errorf("%s view requires the pruned raw table", mode)
	}
	if needs.Has(VariantProcessed) && tables.Processed == nil {
		return fmt.Errorf("%s view requires the processed table", mode)
	}
	return nil
}
