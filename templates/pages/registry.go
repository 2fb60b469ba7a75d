// Package pages holds the page views mounted by the shell, one per route,
// plus the fragments they swap in (service modal, contact form states).
package pages

import (
	"settleedge_web/models"
	"settleedge_web/services/shell"
)

// Registry maps every route to its page view.
func Registry(catalog []models.ServiceDetail) shell.Pages {
	return shell.Pages{
		shell.RouteHome:     Home(),
		shell.RouteAbout:    About(),
		shell.RouteServices: Services(catalog),
		shell.RouteProcess:  Process(),
		shell.RouteIPR:      IPR(),
		shell.RouteFAQ:      FAQ(),
		shell.RouteContact:  Contact(),
	}
}

var titles = map[shell.Route]string{
	shell.RouteHome:     "SettleEdge Legal | Resolution with Edge and Precision",
	shell.RouteAbout:    "About Us | SettleEdge Legal",
	shell.RouteServices: "Services | SettleEdge Legal",
	shell.RouteProcess:  "The Process | SettleEdge Legal",
	shell.RouteIPR:      "IPR Documentation | SettleEdge Legal",
	shell.RouteFAQ:      "FAQ | SettleEdge Legal",
	shell.RouteContact:  "Free Evaluation | SettleEdge Legal",
}

// Title returns the document title for a route.
func Title(r shell.Route) string {
	if t, ok := titles[r]; ok {
		return t
	}
	return "SettleEdge Legal"
}
