package shell

import (
	"errors"
	"strings"
)

// ErrUnknownRoute is returned when a path does not belong to the route table.
var ErrUnknownRoute = errors.New("unknown route")

// Route is a canonical page path. The set of routes is closed; see Routes.
type Route string

const (
	RouteHome     Route = "/"
	RouteAbout    Route = "/about"
	RouteServices Route = "/services"
	RouteProcess  Route = "/process"
	RouteIPR      Route = "/ipr"
	RouteFAQ      Route = "/faq"
	RouteContact  Route = "/contact"
)

// Routes lists every known route in display order.
var Routes = []Route{
	RouteHome,
	RouteAbout,
	RouteServices,
	RouteProcess,
	RouteIPR,
	RouteFAQ,
	RouteContact,
}

// Valid reports whether r is one of the known routes.
func (r Route) Valid() bool {
	for _, known := range Routes {
		if r == known {
			return true
		}
	}
	return false
}

// Name is the route's path without the leading slash ("home" for the root).
// It is used as the partial endpoint segment, e.g. /pages/about.
func (r Route) Name() string {
	if r == RouteHome {
		return "home"
	}
	return strings.TrimPrefix(string(r), "/")
}

// Fragment returns the hash URL for the route, e.g. "#/about".
func (r Route) Fragment() string {
	return "#" + string(r)
}

func (r Route) String() string {
	return string(r)
}

// ParseRoute resolves a request path to a route. A trailing slash is ignored.
func ParseRoute(path string) (Route, bool) {
	if path == "" {
		return RouteHome, true
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	r := Route(path)
	if !r.Valid() {
		return "", false
	}
	return r, true
}

// ParseFragment resolves a hash URL ("#/faq", "#", "") to a route.
// An empty fragment means the root, as browsers report it for "/".
func ParseFragment(fragment string) (Route, bool) {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return RouteHome, true
	}
	if !strings.HasPrefix(fragment, "/") {
		return "", false
	}
	return ParseRoute(fragment)
}

// RouteByName is the inverse of Route.Name.
func RouteByName(name string) (Route, bool) {
	for _, r := range Routes {
		if r.Name() == name {
			return r, true
		}
	}
	return "", false
}
