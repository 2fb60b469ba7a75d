package pages

import (
	"settleedge_web/services/shell"
	"settleedge_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// IPR covers the intellectual property documentation practice.
func IPR() templ.Component {
	areas := []struct{ title, text string }{
		{"Trademark Filing & Prosecution", "Availability searches, class selection, filing and responses to examination reports."},
		{"Copyright Registration", "Registration of literary, artistic, software and creative works."},
		{"Design & Patent Advisory", "Guidance on protecting product designs and inventions before disclosure."},
		{"Brand Protection Strategy", "Monitoring and documentation to keep your marks enforceable."},
	}

	return components.Static(components.Section(
		components.Eyebrow("Intellectual Property"),
		components.Headline("Protect what makes you", "distinct."),
		components.Lead("Our Intellectual Property Rights services ensure that your commercial and creative assets are legally safeguarded, from trademark searches to copyright filings."),
		h.Div(h.Class("grid"),
			g.Map(areas, func(a struct{ title, text string }) g.Node {
				return h.Article(h.Class("card"), h.H3(g.Text(a.title)), h.P(g.Text(a.text)))
			}),
		),
		h.P(h.A(h.Class("button"), h.Href(shell.RouteContact.Fragment()), g.Text("Discuss My Brand"))),
	))
}
