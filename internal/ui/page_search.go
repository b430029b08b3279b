package ui

import (
	"net/url"

	"job-dash/internal/dispatch"
	"job-dash/internal/domain"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

func searchPage(view *dispatch.SearchView, page domain.PageRequest) gomponents.Node {
	title, location := "", ""
	if view.Query.Title != nil {
		title = *view.Query.Title
	}
	if view.Query.Location != nil {
		location = *view.Query.Location
	}

	return appPage(dispatch.ModeSearch.Title(), dispatch.ModeSearch,
		html.Div(
			html.Class(cardClass()),
			html.Form(
				html.Method("get"),
				html.Action("/ui/search"),
				html.Input(html.Type("hidden"), html.Name("submitted"), html.Value("1")),
				html.Div(
					html.Class("form-group"),
					html.Label(html.For("search-title"), gomponents.Text("Job Title")),
					html.Input(html.ID("search-title"), html.Type("text"), html.Name("title"), html.Class("form-control"), html.Value(title)),
				),
				html.Div(
					html.Class("form-group"),
					html.Label(html.For("search-location"), gomponents.Text("Location")),
					html.Input(html.ID("search-location"), html.Type("text"), html.Name("location"), html.Class("form-control"), html.Value(location)),
				),
				html.Button(html.Type("submit"), html.Class(primaryButtonClass()), gomponents.Text("Search")),
			),
		),
		searchResults(view, page),
	)
}

func searchResults(view *dispatch.SearchView, page domain.PageRequest) gomponents.Node {
	if !view.Requested {
		return nil
	}
	message := html.P(html.Class("search-message"), html.Strong(gomponents.Text(view.Message())))
	if view.Result.Count() == 0 {
		return html.Div(html.Class(cardClass()), message)
	}

	params := url.Values{"submitted": {"1"}}
	if view.Query.Title != nil {
		params.Set("title", *view.Query.Title)
	}
	if view.Query.Location != nil {
		params.Set("location", *view.Query.Location)
	}

	total := view.Result.Count()
	start, end := page.Bounds(total)
	return gomponents.Group([]gomponents.Node{
		html.Div(html.Class(cardClass()), message),
		quickFilterCard("Filter the rows on this page"),
		html.Div(
			html.Class(cardClass()),
			rowsTable(view.Result.Rows, start, end, view.Result.Positions, true),
		),
		paginationCard("/ui/search", params, page, total),
	})
}
