package pages

import (
	"settleedge_web/services/shell"
	"settleedge_web/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFound is the fallback shown in the page slot for paths outside the
// route table. suggestion may be empty.
func NotFound(path string, suggestion shell.Route) g.Node {
	return h.Div(h.Class("page-mount"),
		components.Section(
			components.Eyebrow("404"),
			components.Headline("This page is", "not here."),
			components.Lead("We could not find "+path+"."),
			g.If(suggestion != "",
				h.P(g.Text("Did you mean "), h.A(h.Href(suggestion.Fragment()), g.Text(string(suggestion))), g.Text("?")),
			),
			h.A(h.Class("button"), h.Href(shell.RouteHome.Fragment()), g.Text("Back to Home")),
		),
	)
}
