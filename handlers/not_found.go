package handlers

import (
	"errors"
	"net/http"
	"strings"

	"settleedge_web/config"
	"settleedge_web/services/shell"
	"settleedge_web/templates"
	"settleedge_web/templates/components"
	"settleedge_web/templates/pages"

	"github.com/agnivade/levenshtein"
	"github.com/labstack/echo/v4"
)

// maxSuggestionDistance bounds how far a mistyped path may be from a route
// for it to be suggested.
const maxSuggestionDistance = 3

// SuggestRoute returns the route closest to path by edit distance, if one
// is close enough.
func SuggestRoute(path string) (shell.Route, bool) {
	path = strings.ToLower(strings.TrimSuffix(path, "/"))
	if path == "" {
		return "", false
	}

	best, bestDist := shell.Route(""), maxSuggestionDistance+1
	for _, r := range shell.Routes {
		if r == shell.RouteHome {
			continue
		}
		if d := levenshtein.ComputeDistance(path, string(r)); d < bestDist {
			best, bestDist = r, d
		}
	}
	return best, best != ""
}

// HTTPErrorHandler renders the fallback view for paths outside the route
// table and leaves every other error to echo.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		c.Echo().DefaultHTTPErrorHandler(err, c)
		return
	}

	path := requestedPath(c)
	suggestion, _ := SuggestRoute(path)
	view := pages.NotFound(path, suggestion)

	if isHTMX(c) {
		if rerr := render(c, http.StatusNotFound, components.Static(view)); rerr != nil {
			c.Logger().Error(rerr)
		}
		return
	}

	cfg, ok := c.Get("config").(*config.Config)
	if !ok || cfg.Navigation == nil {
		c.Echo().DefaultHTTPErrorHandler(err, c)
		return
	}

	rerr := render(c, http.StatusNotFound, templates.Layout(templates.LayoutProps{
		Title:      pages.Title(""),
		Navigation: cfg.Navigation,
		Menu:       shell.MenuCollapsed,
		Transition: cfg.TransitionDuration,
		Slot:       view,
	}))
	if rerr != nil {
		c.Logger().Error(rerr)
	}
}

// requestedPath is the path the visitor asked for; for fragment navigation
// that is the page name, not the partial endpoint.
func requestedPath(c echo.Context) string {
	path := c.Request().URL.Path
	if name, ok := strings.CutPrefix(path, "/pages/"); ok {
		return "/" + name
	}
	return path
}
