// Package visual aggregates the processed job listings into the groupings
// drawn on the visualizations page.
package visual

import (
	"cmp"
	"slices"

	"job-dash/internal/domain"
	"job-dash/internal/service/summary"
)

// Columns names the dataset columns the charts read.
type Columns struct {
	Title        string
	Location     string
	Salary       string
	Skills       string
	RoleCategory string
	Experience   string
}

// Options configures the aggregations.
type Options struct {
	Columns Columns
	// TopN bounds the salary, title, and location rankings.
	TopN int
	// NotDisclosed is the salary placeholder excluded from salary charts.
	NotDisclosed string
	// MaxWords bounds the skills word list.
	MaxWords int
}

// Defaults used when an Options field is zero.
const (
	DefaultTopN         = 10
	DefaultNotDisclosed = "Not Disclosed by Recruiter"
	DefaultMaxWords     = 100
)

// Service computes chart data from a table.
type Service struct {
	opts Options
}

// New creates a Service, filling zero options with defaults.
func New(opts Options) *Service {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.NotDisclosed == "" {
		opts.NotDisclosed = DefaultNotDisclosed
	}
	if opts.MaxWords <= 0 {
		opts.MaxWords = DefaultMaxWords
	}
	return &Service{opts: opts}
}

// Build computes every chart's aggregate. It fails with a
// ColumnNotFoundError when a configured column is absent.
func (s *Service) Build(t *domain.Table) (*domain.Visualizations, error) {
	c := s.opts.Columns
	for _, name := range []string{c.Title, c.Location, c.Salary, c.Skills, c.RoleCategory, c.Experience} {
		if _, err := t.ColumnIndex(name); err != nil {
			return nil, err
		}
	}

	v := &domain.Visualizations{UniqueCounts: summary.UniqueCounts(t)}
	var err error
	if v.TopSalaries, err = summary.ValueCounts(t, c.Salary, s.opts.TopN); err != nil {
		return nil, err
	}
	if v.SkillWords, err = s.SkillWords(t); err != nil {
		return nil, err
	}
	if v.TitleBreakdowns, err = s.TitleBreakdowns(t); err != nil {
		return nil, err
	}
	if v.RoleSalaries, err = s.RoleSalaries(t); err != nil {
		return nil, err
	}
	if v.LocationRoles, err = s.LocationRoles(t); err != nil {
		return nil, err
	}
	return v, nil
}

// SkillWords returns word frequencies over the distinct skills values.
func (s *Service) SkillWords(t *domain.Table) ([]domain.Count, error) {
	distinct, err := summary.ValueCounts(t, s.opts.Columns.Skills, 0)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(distinct))
	for i, d := range distinct {
		texts[i] = d.Label
	}
	return WordFrequencies(texts, s.opts.MaxWords), nil
}

// TitleBreakdowns returns, for each of the most common titles, how its
// disclosed salaries pair with required experience.
func (s *Service) TitleBreakdowns(t *domain.Table) ([]domain.TitleBreakdown, error) {
	c := s.opts.Columns
	top, err := summary.ValueCounts(t, c.Title, s.opts.TopN)
	if err != nil {
		return nil, err
	}
	titleCol, _ := t.ColumnIndex(c.Title)
	salaryCol, _ := t.ColumnIndex(c.Salary)
	expCol, _ := t.ColumnIndex(c.Experience)

	out := make([]domain.TitleBreakdown, len(top))
	for k, title := range top {
		index := make(map[[2]string]int)
		var pairs []domain.SalaryExperience
		for i := range t.Len() {
			tc, sc, ec := t.Cell(i, titleCol), t.Cell(i, salaryCol), t.Cell(i, expCol)
			if !tc.Valid || tc.String != title.Label || !sc.Valid || !ec.Valid || sc.String == s.opts.NotDisclosed {
				continue
			}
			key := [2]string{sc.String, ec.String}
			j, ok := index[key]
			if !ok {
				j = len(pairs)
				index[key] = j
				pairs = append(pairs, domain.SalaryExperience{Salary: sc.String, Experience: ec.String})
			}
			pairs[j].Count++
		}
		out[k] = domain.TitleBreakdown{Title: title.Label, Pairs: pairs}
	}
	return out, nil
}

// RoleSalaries returns the role-category to salary hierarchy over disclosed
// salaries. Roles are ordered by listing count; salaries within a role are
// in descending order.
func (s *Service) RoleSalaries(t *domain.Table) ([]domain.RoleSalaries, error) {
	c := s.opts.Columns
	roleCol, err := t.ColumnIndex(c.RoleCategory)
	if err != nil {
		return nil, err
	}
	salaryCol, err := t.ColumnIndex(c.Salary)
	if err != nil {
		return nil, err
	}

	type pair struct{ role, salary string }
	var pairs []pair
	for i := range t.Len() {
		rc, sc := t.Cell(i, roleCol), t.Cell(i, salaryCol)
		if !rc.Valid || !sc.Valid || sc.String == s.opts.NotDisclosed {
			continue
		}
		pairs = append(pairs, pair{rc.String, sc.String})
	}
	slices.SortStableFunc(pairs, func(a, b pair) int { return cmp.Compare(b.salary, a.salary) })

	roleIndex := make(map[string]int)
	var roles []domain.RoleSalaries
	salaryIndex := make(map[pair]int)
	for _, p := range pairs {
		r, ok := roleIndex[p.role]
		if !ok {
			r = len(roles)
			roleIndex[p.role] = r
			roles = append(roles, domain.RoleSalaries{Role: p.role})
		}
		roles[r].Count++
		j, ok := salaryIndex[p]
		if !ok {
			j = len(roles[r].Salaries)
			salaryIndex[p] = j
			roles[r].Salaries = append(roles[r].Salaries, domain.Count{Label: p.salary})
		}
		roles[r].Salaries[j].Count++
	}
	slices.SortStableFunc(roles, func(a, b domain.RoleSalaries) int { return cmp.Compare(b.Count, a.Count) })
	return roles, nil
}

// LocationRoles returns the role-category mix of each of the most common
// locations.
func (s *Service) LocationRoles(t *domain.Table) ([]domain.LocationRoles, error) {
	c := s.opts.Columns
	top, err := summary.ValueCounts(t, c.Location, s.opts.TopN)
	if err != nil {
		return nil, err
	}
	locCol, _ := t.ColumnIndex(c.Location)

	out := make([]domain.LocationRoles, len(top))
	for k, loc := range top {
		var rows []int
		for i, cell := range t.Column(locCol) {
			if cell.Valid && cell.String == loc.Label {
				rows = append(rows, i)
			}
		}
		roles, err := summary.ValueCounts(t.Subset(rows), c.RoleCategory, 0)
		if err != nil {
			return nil, err
		}
		out[k] = domain.LocationRoles{Location: loc.Label, Roles: roles}
	}
	return out, nil
}
