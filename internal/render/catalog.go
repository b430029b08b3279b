package render

import (
	"fmt"
	"strconv"
	"strings"

	"job-dash/internal/domain"
)

// Chart IDs. Per-title and per-location charts append their rank,
// e.g. "title-0" or "location-3".
const (
	ChartUniqueCounts = "unique-counts"
	ChartTopSalaries  = "top-salaries"
	ChartRoles        = "roles"
	TitlePrefix       = "title-"
	LocationPrefix    = "location-"
	RolePrefix        = "role-"
)

// Catalog lists every chart drawn for v, in page order.
func Catalog(v *domain.Visualizations) []Chart {
	charts := []Chart{
		{ID: ChartUniqueCounts, Kind: KindBar, Title: "Number of Unique Values", Values: v.UniqueCounts},
		{ID: ChartTopSalaries, Kind: KindBar, Title: "Job Salaries", Values: v.TopSalaries},
	}
	for i, tb := range v.TitleBreakdowns {
		charts = append(charts, titleChart(i, tb))
	}
	charts = append(charts, rolesChart(v.RoleSalaries))
	for i, rs := range v.RoleSalaries {
		charts = append(charts, Chart{
			ID:     RolePrefix + strconv.Itoa(i),
			Kind:   KindPie,
			Title:  "Salaries in " + rs.Role,
			Values: rs.Salaries,
		})
	}
	for i, lr := range v.LocationRoles {
		charts = append(charts, Chart{
			ID:     LocationPrefix + strconv.Itoa(i),
			Kind:   KindPie,
			Title:  "Job Roles in " + lr.Location,
			Values: lr.Roles,
		})
	}
	return charts
}

// Find returns the chart with the given ID.
func Find(v *domain.Visualizations, id string) (Chart, error) {
	for _, c := range Catalog(v) {
		if c.ID == id {
			return c, nil
		}
	}
	return Chart{}, domain.ErrNotFound("chart %q not found", id)
}

func titleChart(rank int, tb domain.TitleBreakdown) Chart {
	values := make([]domain.Count, len(tb.Pairs))
	for i, p := range tb.Pairs {
		values[i] = domain.Count{Label: fmt.Sprintf("%s (%s)", p.Salary, p.Experience), Count: p.Count}
	}
	return Chart{
		ID:     TitlePrefix + strconv.Itoa(rank),
		Kind:   KindBar,
		Title:  strings.TrimSpace(tb.Title) + ": Salary and Experience",
		Values: values,
	}
}

// rolesChart is the inner ring of the role to salary hierarchy.
func rolesChart(roles []domain.RoleSalaries) Chart {
	values := make([]domain.Count, len(roles))
	for i, r := range roles {
		values[i] = domain.Count{Label: r.Role, Count: r.Count}
	}
	return Chart{ID: ChartRoles, Kind: KindPie, Title: "Role Categories with Disclosed Salaries", Values: values}
}
