package ui

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"job-dash/internal/dispatch"
	"job-dash/internal/domain"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Mode dispatch.Mode
	Href string
	Icon string
}

var navItems = []navItem{
	{Mode: dispatch.ModeHome, Href: "/ui", Icon: "house"},
	{Mode: dispatch.ModeOverview, Href: "/ui/overview", Icon: "table-2"},
	{Mode: dispatch.ModeVisualizations, Href: "/ui/visualizations", Icon: "chart-column"},
	{Mode: dispatch.ModeSearch, Href: "/ui/search", Icon: "search"},
}

func appPage(title string, active dispatch.Mode, body ...Node) Node {
	nav := make([]Node, 0, len(navItems))
	for _, item := range navItems {
		className := "app-nav-link Link--secondary d-flex flex-items-center"
		if item.Mode == active {
			className += " active"
		}
		nav = append(nav, A(
			Href(item.Href),
			Class(className),
			I(Class("nav-icon"), Attr("data-lucide", item.Icon), Attr("aria-hidden", "true")),
			Span(Text(item.Mode.Title())),
		))
	}

	return HTML(
		Lang("en"),
		Attr("data-color-mode", "auto"),
		Attr("data-light-theme", "light"),
		Attr("data-dark-theme", "dark"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | Job Dashboard")),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
			Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
			Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
			Link(Rel("stylesheet"), Href("/ui/static/app.css")),
			Script(Src("https://unpkg.com/lucide@latest/dist/umd/lucide.min.js")),
			Script(
				Type("module"),
				Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
			),
		),
		Body(
			Main(Class("app-shell"),
				Aside(
					Class("app-sidebar"),
					Div(
						Class("brand"),
						Strong(Text("Job Dashboard")),
						P(Class("color-fg-muted text-small mb-0"), Text("Choose a page")),
					),
					Nav(Class("app-nav"), Group(nav)),
				),
				Section(
					Class("app-main"),
					Div(
						Class("topbar"),
						H1(Class("page-title"), Text(title)),
					),
					Div(Class("content"), Group(body)),
				),
			),
			Script(Raw("if (window.lucide) { window.lucide.createIcons(); }")),
		),
	)
}

// errorPage keeps the navigation so the user can pick another page.
func errorPage(title, message string) Node {
	return appPage(title, "",
		Div(
			Class(cardClass("flash-error")),
			P(Class("mb-2"), Text(message)),
			P(Class(mutedClass()), A(Href("/ui"), Text("Back to home"))),
		),
	)
}

// containsExpr is the datastar quick-filter test for a row whose text is value.
// JSON string syntax is a valid JS string literal.
func containsExpr(value string) string {
	lit, _ := json.Marshal(strings.ToLower(value))
	return "$q === '' || " + string(lit) + ".includes($q.toLowerCase())"
}

// paginationCard links to the next page of basePath, carrying params along.
func paginationCard(basePath string, params url.Values, page domain.PageRequest, total int) Node {
	start, end := page.Bounds(total)
	summary := fmt.Sprintf("Showing %d-%d of %d entries.", min(start+1, end), end, total)
	if total == 0 {
		summary = "No entries."
	}
	nextToken := domain.NextPageToken(start, page.Limit(), total)
	if nextToken == "" {
		return Div(Class(cardClass()), P(Class(mutedClass()), Text(summary)))
	}

	next := url.Values{}
	for k, v := range params {
		next[k] = v
	}
	next.Set("max_results", strconv.Itoa(page.Limit()))
	next.Set("page_token", nextToken)
	return Div(
		Class(cardClass()),
		P(Class(mutedClass()), Text(summary)),
		A(Href(basePath+"?"+next.Encode()), Text("Next page ->")),
	)
}

func cardClass(extra ...string) string {
	parts := []string{"Box", "p-3", "mb-3", "card"}
	parts = append(parts, extra...)
	return strings.Join(parts, " ")
}

func mutedClass() string {
	return "color-fg-muted text-small"
}

func primaryButtonClass() string {
	return "btn btn-primary"
}

func quickFilterCard(placeholder string) Node {
	return Div(
		Class(cardClass("toolbar")),
		data.Signals(map[string]any{"q": ""}),
		Div(
			Class("d-flex flex-items-center gap-2 flex-1"),
			Label(Class("sr-only"), Text("Quick filter")),
			Input(Type("search"), Class("form-control"), Placeholder(placeholder), data.Bind("q"), AutoComplete("off")),
		),
	)
}

func statusLabel(text, tone string) Node {
	className := "Label"
	if tone != "" {
		className += " Label--" + tone
	}
	return Span(Class(className), Text(text))
}

// cellText renders a missing cell the way the overview tables show it.
func cellText(v string, ok bool) string {
	if !ok {
		return "NaN"
	}
	return v
}
