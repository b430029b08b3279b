package ui

import (
	"fmt"
	"strconv"
	"strings"

	"job-dash/internal/dispatch"
	"job-dash/internal/domain"

	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"
)

// maxOverviewRows caps the duplicate rows listed on the overview page.
const maxOverviewRows = 200

func overviewPage(s *domain.Summary) gomponents.Node {
	warnings := make([]gomponents.Node, 0, len(s.Warnings))
	for _, w := range s.Warnings {
		warnings = append(warnings, html.P(html.Class("mb-0"), statusLabel("warning", "attention"), gomponents.Text(" "+w.Error())))
	}

	return appPage(dispatch.ModeOverview.Title(), dispatch.ModeOverview,
		gomponents.If(len(warnings) > 0, html.Div(html.Class(cardClass("flash-warn")), gomponents.Group(warnings))),
		html.Div(
			html.Class(cardClass()),
			html.H2(gomponents.Text("Dataset Information")),
			html.P(gomponents.Text(fmt.Sprintf("Shape: (%d, %d)", s.Rows, s.Columns))),
			infoTable(s),
		),
		html.Div(
			html.Class(cardClass()),
			html.H2(gomponents.Text("Duplicate Rows")),
			duplicatesSection(s.Duplicates),
		),
		html.Div(
			html.Class(cardClass()),
			html.H2(gomponents.Text("Percentage of Missing Values")),
			missingTable(s.Missing),
		),
	)
}

func infoTable(s *domain.Summary) gomponents.Node {
	rows := make([]gomponents.Node, 0, len(s.Info))
	for _, c := range s.Info {
		rows = append(rows, html.Tr(
			html.Td(gomponents.Text(strconv.Itoa(c.Position))),
			html.Td(gomponents.Text(c.Column)),
			html.Td(gomponents.Text(fmt.Sprintf("%d non-null", c.NonNull))),
			html.Td(html.Code(gomponents.Text(string(c.Kind)))),
		))
	}
	return html.Div(
		html.Class("table-wrap"),
		html.Table(
			html.Class("data-table"),
			html.THead(html.Tr(
				html.Th(gomponents.Text("#")),
				html.Th(gomponents.Text("Column")),
				html.Th(gomponents.Text("Non-Null Count")),
				html.Th(gomponents.Text("Dtype")),
			)),
			html.TBody(gomponents.Group(rows)),
		),
	)
}

func duplicatesSection(dups *domain.Table) gomponents.Node {
	if dups == nil || dups.Len() == 0 {
		return html.P(html.Class(mutedClass()), gomponents.Text("No duplicate rows."))
	}
	note := fmt.Sprintf("%d rows belong to a duplicated group.", dups.Len())
	if dups.Len() > maxOverviewRows {
		note += fmt.Sprintf(" Showing the first %d.", maxOverviewRows)
	}
	return gomponents.Group([]gomponents.Node{
		html.P(html.Class(mutedClass()), gomponents.Text(note)),
		rowsTable(dups, 0, min(dups.Len(), maxOverviewRows), nil, false),
	})
}

func missingTable(missing []domain.ColumnMissing) gomponents.Node {
	rows := make([]gomponents.Node, 0, len(missing))
	for _, m := range missing {
		rows = append(rows, html.Tr(
			html.Td(gomponents.Text(m.Column)),
			html.Td(gomponents.Text(strconv.Itoa(m.Missing))),
			html.Td(gomponents.Text(m.PercentLabel())),
		))
	}
	return html.Div(
		html.Class("table-wrap"),
		html.Table(
			html.Class("data-table"),
			html.THead(html.Tr(
				html.Th(gomponents.Text("Column")),
				html.Th(gomponents.Text("Missing")),
				html.Th(gomponents.Text("Percent")),
			)),
			html.TBody(gomponents.Group(rows)),
		),
	)
}

// rowsTable renders rows [start, end) of t. positions, when set, supplies the
// index shown for each row. With filterable set, rows hide when they do not
// contain the quick-filter text.
func rowsTable(t *domain.Table, start, end int, positions []int, filterable bool) gomponents.Node {
	header := []gomponents.Node{html.Th(gomponents.Text(""))}
	for _, c := range t.Columns() {
		header = append(header, html.Th(gomponents.Text(c)))
	}

	body := make([]gomponents.Node, 0, end-start)
	for i := start; i < end; i++ {
		index := i
		if positions != nil {
			index = positions[i]
		}
		row := t.Row(i)
		cells := []gomponents.Node{html.Td(html.Class(mutedClass()), gomponents.Text(strconv.Itoa(index)))}
		texts := make([]string, 0, len(row))
		for _, cell := range row {
			text := cellText(cell.String, cell.Valid)
			texts = append(texts, text)
			cells = append(cells, html.Td(gomponents.Text(text)))
		}
		if filterable {
			cells = append(cells, data.Show(containsExpr(strings.Join(texts, " "))))
		}
		body = append(body, html.Tr(cells...))
	}

	return html.Div(
		html.Class("table-wrap"),
		html.Table(
			html.Class("data-table"),
			html.THead(html.Tr(header...)),
			html.TBody(gomponents.Group(body)),
		),
	)
}
