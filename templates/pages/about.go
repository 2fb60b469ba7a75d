package pages

import (
	"settleedge_web/services/shell"
	"settleedge_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// About describes the consultancy and its operating principles.
func About() templ.Component {
	principles := []struct{ title, text string }{
		{"Consultancy, not lending", "We are not a lender or recovery agency. Our role is to structure your case and document it professionally."},
		{"Document-backed dialogue", "Every engagement is grounded in a clear record: statements, agreements and formal correspondence."},
		{"Advocates on panel", "Where representation is needed, we work alongside experienced advocates on our panel."},
	}

	return components.Static(components.Section(
		components.Eyebrow("About Us"),
		components.Headline("A structured, transparent", "consultancy."),
		components.Lead("SettleEdge Legal helps individuals and businesses make informed decisions about financial resolution, property documentation and intellectual property."),
		h.Div(h.Class("grid"),
			g.Map(principles, func(p struct{ title, text string }) g.Node {
				return h.Article(h.Class("card"), h.H3(g.Text(p.title)), h.P(g.Text(p.text)))
			}),
		),
		h.P(h.A(h.Class("button"), h.Href(shell.RouteProcess.Fragment()), g.Text("Our Methodology"))),
	))
}
