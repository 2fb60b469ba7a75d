package pages

import (
	"settleedge_web/models"
	"settleedge_web/services/shell"
	"settleedge_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	gc "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// Services lists the catalog. Clicking a card loads its detail modal.
func Services(catalog []models.ServiceDetail) templ.Component {
	return components.Static(components.Section(
		components.Eyebrow("Service Portfolio"),
		components.Headline("Strategic Solutions for", "Complexity."),
		components.Lead("SettleEdge Legal provides corporate-grade consultancy. Click on any service to understand our professional approach and deliverables."),
		h.Div(h.Class("grid"), g.Map(catalog, serviceCard)),
	))
}

func serviceCard(s models.ServiceDetail) g.Node {
	return h.Article(
		gc.Classes{"card": true, "featured": s.Featured},
		h.ID("service-"+s.ID),
		components.HX("get", "/services/"+s.ID),
		components.HX("target", "#modal-slot"),
		components.HX("swap", "outerHTML"),
		h.H4(g.Text(s.Title)),
		h.P(g.Text(s.ShortDesc)),
		g.Map(s.PreviewFeatures(), func(f string) g.Node {
			return h.Div(h.Class("feature"), g.Text("• "+f))
		}),
		h.Span(h.Class("feature"), g.Text("Learn More →")),
	)
}

// ServiceModal is the detail view for one catalog entry. The backdrop and
// the close button empty the modal slot; "Discuss My Case" navigates to the
// contact page, and every navigation closes the modal.
func ServiceModal(s models.ServiceDetail) templ.Component {
	closeModal := g.Group{
		components.HX("get", "/services/modal/close"),
		components.HX("target", "#modal-slot"),
		components.HX("swap", "outerHTML"),
	}

	return components.Static(h.Div(h.ID("modal-slot"),
		h.Div(h.Class("modal"), h.Role("dialog"), h.Aria("modal", "true"), h.Aria("labelledby", "modal-title"),
			h.Div(h.Class("modal-backdrop"), closeModal),
			h.Div(h.Class("modal-panel"),
				h.Button(h.Type("button"), h.Class("modal-close"), h.Aria("label", "Close"), closeModal, g.Text("✕")),
				components.Eyebrow("Detailed View"),
				h.H3(h.ID("modal-title"), h.Class("headline"), g.Text(s.Title)),
				components.Lead(s.LongDesc),
				h.Ul(g.Map(s.Features, func(f string) g.Node {
					return h.Li(g.Text(f))
				})),
				h.A(h.Class("button"), h.Href(shell.RouteContact.Fragment()), g.Text("Discuss My Case")),
			),
		),
	))
}

// EmptyModalSlot closes the modal.
func EmptyModalSlot() templ.Component {
	return components.Static(h.Div(h.ID("modal-slot")))
}
