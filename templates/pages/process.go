package pages

import (
	"fmt"

	"settleedge_web/services/shell"
	"settleedge_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var processSteps = []struct{ title, desc string }{
	{"Case Discovery", "Confidential consultation to understand your financial situation, debt structure, and genuine hardship."},
	{"Document Audit", "Analyzing loan agreements and statements to verify outstanding amounts and payment histories."},
	{"Strategy", "Mapping potential resolution paths, outlining pros, cons, and long-term credit impact."},
	{"Mediation", "Assisting in drafting professional correspondence and navigating lender resolution dialogues."},
	{"Resolution", "Guiding final payments and ensuring proper 'No Dues' certification is received."},
}

// Process walks through the five engagement steps.
func Process() templ.Component {
	steps := make(g.Group, 0, len(processSteps))
	for i, s := range processSteps {
		steps = append(steps, h.Li(h.Class("step"),
			h.Span(h.Class("feature"), g.Text(fmt.Sprintf("%02d", i+1))),
			h.H3(g.Text(s.title)),
			h.P(g.Text(s.desc)),
		))
	}

	return components.Static(components.Section(
		components.Eyebrow("The Process"),
		components.Headline("A commitment to transparency,", "one step at a time."),
		h.Ol(h.Class("steps"), steps),
		h.Div(h.Class("card featured"),
			h.H3(g.Text("Ready to Resolve?")),
			h.A(h.Class("button"), h.Href(shell.RouteContact.Fragment()), g.Text("Start Step 01 Today →")),
		),
	))
}
