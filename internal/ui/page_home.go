package ui

import (
	"job-dash/internal/dispatch"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

func homePage(view *dispatch.HomeView) gomponents.Node {
	credits := make([]gomponents.Node, 0, len(view.Credits))
	for _, c := range view.Credits {
		credits = append(credits, html.Li(gomponents.Text(c)))
	}

	return appPage(dispatch.ModeHome.Title(), dispatch.ModeHome,
		html.Div(
			html.Class(cardClass("hero")),
			html.H2(html.Class("mb-3"), gomponents.Text(view.Heading)),
			html.Figure(
				html.Img(html.Src("/ui/static/hero.svg"), html.Alt(view.Caption), html.Class("hero-image")),
				html.FigCaption(html.Class(mutedClass()), gomponents.Text(view.Caption)),
			),
		),
		gomponents.If(len(credits) > 0, html.Div(
			html.Class(cardClass()),
			html.H3(gomponents.Text("Developed By:")),
			html.Ul(html.Class("credits"), gomponents.Group(credits)),
		)),
		html.Div(
			html.Class(cardClass()),
			html.P(html.Class(mutedClass()), gomponents.Text("Choose a page from the sidebar to explore the job listings.")),
		),
	)
}
