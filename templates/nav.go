package templates

import (
	"strconv"

	"settleedge_web/config"
	"settleedge_web/services/shell"
	"settleedge_web/templates/components"

	g "maragu.dev/gomponents"
	gc "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// NavBar renders the navigation: brand, the desktop links, the call to
// action, the menu toggle and, when expanded, the mobile panel. With oob
// set it replaces the existing bar through an htmx out-of-band swap.
func NavBar(nav *config.Navigation, current shell.Route, menu shell.MenuState, oob bool) g.Node {
	icon := "☰"
	if menu.Expanded() {
		icon = "✕"
	}

	return h.Nav(
		h.ID("site-nav"),
		h.Class("site-nav"),
		g.If(oob, components.HX("swap-oob", "true")),
		h.Div(h.Class("nav-bar"),
			h.A(h.Href(shell.RouteHome.Fragment()), h.Class("brand"),
				g.Text("Settle"), h.Span(h.Class("edge"), g.Text("Edge")), g.Text(" "), h.Span(h.Class("legal"), g.Text("Legal")),
			),
			h.Div(h.Class("nav-links"), navLinks(nav.Desktop, current)),
			h.A(h.Href(nav.CTA.Route.Fragment()), h.Class("nav-cta"), g.Text(nav.CTA.Label)),
			h.Button(
				h.Type("button"),
				h.Class("menu-toggle"),
				h.Aria("label", "Toggle menu"),
				h.Aria("expanded", strconv.FormatBool(menu.Expanded())),
				h.Aria("controls", "mobile-menu"),
				components.HX("post", "/shell/menu"),
				components.HX("target", "#site-nav"),
				components.HX("swap", "outerHTML"),
				g.Text(icon),
			),
		),
		g.If(menu.Expanded(),
			h.Div(h.ID("mobile-menu"), h.Class("mobile-menu"), navLinks(nav.Mobile, current)),
		),
	)
}

func navLinks(links []shell.NavLink, current shell.Route) g.Node {
	active := shell.ActiveLinkIndex(links, current)
	nodes := make(g.Group, 0, len(links))
	for i, l := range links {
		nodes = append(nodes, h.A(
			h.Href(l.Route.Fragment()),
			gc.Classes{"nav-link": true, "active": i == active},
			g.If(i == active, h.Aria("current", "page")),
			g.Text(l.Label),
		))
	}
	return nodes
}
