package pages

import (
	"settleedge_web/services/shell"
	"settleedge_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type pillar struct {
	num, title, text string
}

var homePillars = []pillar{
	{"01", "Advocacy", "We advocate for borrowers through professional dialogue and document-backed planning."},
	{"02", "Compliance", "Property and IPR documentation handled with strict adherence to statutory Indian laws."},
	{"03", "Vision", "Resolution is the first step toward rebuilding financial health and commercial stability."},
}

// Home is the landing page.
func Home() templ.Component {
	return components.Static(g.Group{
		components.Section(
			components.Eyebrow("Premium Resolution Consultancy"),
			components.Headline("Resolution with", "Edge and Precision."),
			components.Lead("Professional consultancy for loan resolution, property documentation, and IPR. We deliver structured strategies focused on transparency and legal integrity."),
			h.Div(h.Class("actions"),
				h.A(h.Class("button"), h.Href(shell.RouteContact.Fragment()), g.Text("Start Evaluation")),
				g.Text(" "),
				h.A(h.Class("button ghost"), h.Href(shell.RouteServices.Fragment()), g.Text("Explore Services")),
			),
		),
		components.Section(
			components.Eyebrow("Integrity First"),
			h.Div(h.Class("grid"),
				g.Map(homePillars, func(p pillar) g.Node {
					return h.Article(h.Class("card"),
						h.Span(h.Class("feature"), g.Text(p.num)),
						h.H3(g.Text(p.title)),
						h.P(g.Text(p.text)),
					)
				}),
			),
		),
	})
}
