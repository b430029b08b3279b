package ui

import (
	"errors"
	"strconv"
	"strings"

	"job-dash/internal/dispatch"
	"job-dash/internal/domain"
	"job-dash/internal/render"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

type chartSection struct {
	Heading string
	Charts  []render.Chart
}

// chartSections groups the catalog into page sections, keyed by ID prefix.
func chartSections(v *domain.Visualizations) []chartSection {
	sections := []chartSection{
		{Heading: "Unique Values per Column"},
		{Heading: "Top Job Salaries"},
		{Heading: "Salary and Experience for Top Job Titles"},
		{Heading: "Job Salaries by Role Category"},
		{Heading: "Role Categories in Top Locations"},
	}
	for _, c := range render.Catalog(v) {
		var i int
		switch {
		case c.ID == render.ChartUniqueCounts:
			i = 0
		case c.ID == render.ChartTopSalaries:
			i = 1
		case strings.HasPrefix(c.ID, render.TitlePrefix):
			i = 2
		case c.ID == render.ChartRoles, strings.HasPrefix(c.ID, render.RolePrefix):
			i = 3
		default:
			i = 4
		}
		sections[i].Charts = append(sections[i].Charts, c)
	}
	return sections
}

// visualizationsPage renders every chart inline. draw returns the SVG bytes
// of a chart.
func visualizationsPage(v *domain.Visualizations, draw func(render.Chart) ([]byte, error)) gomponents.Node {
	sections := chartSections(v)
	nodes := make([]gomponents.Node, 0, len(sections)+1)
	for i, s := range sections {
		nodes = append(nodes, sectionCard(s, draw))
		if i == 1 {
			nodes = append(nodes, wordCloudCard(v.SkillWords))
		}
	}
	return appPage(dispatch.ModeVisualizations.Title(), dispatch.ModeVisualizations, gomponents.Group(nodes))
}

func sectionCard(s chartSection, draw func(render.Chart) ([]byte, error)) gomponents.Node {
	if len(s.Charts) == 0 {
		return html.Div(
			html.Class(cardClass()),
			html.H2(gomponents.Text(s.Heading)),
			html.P(html.Class(mutedClass()), gomponents.Text("No data to plot.")),
		)
	}
	panels := make([]gomponents.Node, 0, len(s.Charts))
	for _, c := range s.Charts {
		panels = append(panels, chartPanel(c, draw))
	}
	return html.Div(
		html.Class(cardClass()),
		html.H2(gomponents.Text(s.Heading)),
		html.Div(html.Class("chart-grid"), gomponents.Group(panels)),
	)
}

func chartPanel(c render.Chart, draw func(render.Chart) ([]byte, error)) gomponents.Node {
	svg, err := draw(c)
	var body gomponents.Node
	switch {
	case errors.Is(err, render.ErrNoData):
		body = html.P(html.Class(mutedClass()), gomponents.Text("No data to plot."))
	case err != nil:
		body = html.P(html.Class("color-fg-danger text-small"), gomponents.Text("Chart could not be drawn."))
	default:
		body = html.Div(html.Class("chart"), gomponents.Raw(string(svg)))
	}
	return html.Figure(
		html.Class("chart-panel"),
		html.ID("chart-"+c.ID),
		html.FigCaption(html.Strong(gomponents.Text(c.Title))),
		body,
		gomponents.If(err == nil, html.A(
			html.Href("/ui/charts/"+c.ID+".png"),
			html.Class(mutedClass()),
			gomponents.Attr("download", c.ID+".png"),
			gomponents.Text("Download PNG"),
		)),
	)
}

func wordCloudCard(words []domain.Count) gomponents.Node {
	tags := render.TagCloud(words)
	if len(tags) == 0 {
		return html.Div(
			html.Class(cardClass()),
			html.H2(gomponents.Text("Key Skills")),
			html.P(html.Class(mutedClass()), gomponents.Text("No skills listed.")),
		)
	}
	nodes := make([]gomponents.Node, 0, len(tags))
	for i, t := range tags {
		nodes = append(nodes, html.Span(
			html.Class("tag tag-"+strconv.Itoa(i%5)),
			html.Style("font-size: "+strconv.Itoa(t.Size)+"px"),
			html.Title(strconv.Itoa(words[i].Count)+" listings"),
			gomponents.Text(t.Text),
		))
	}
	return html.Div(
		html.Class(cardClass()),
		html.H2(gomponents.Text("Key Skills")),
		html.Div(html.Class("tag-cloud"), gomponents.Group(nodes)),
	)
}
