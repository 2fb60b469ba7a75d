package shell

// NavLink pairs a display label with a target route.
type NavLink struct {
	Label string `json:"label"`
	Route Route  `json:"route"`
}

// ActiveLinkIndex returns the index of the link pointing at current, or -1.
// Link lists carry each route at most once, so at most one link matches.
func ActiveLinkIndex(links []NavLink, current Route) int {
	for i, link := range links {
		if link.Route == current {
			return i
		}
	}
	return -1
}
