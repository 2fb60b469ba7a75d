package handlers

import (
	"errors"
	"net/http"

	"settleedge_web/services/shell"
	"settleedge_web/templates"
	"settleedge_web/templates/pages"

	"github.com/labstack/echo/v4"
)

// SitePageHandler renders the full document for a route path. It serves
// first loads, reloads and deep links without JavaScript.
func SitePageHandler(c echo.Context) error {
	cfg, sh, err := shellContext(c)
	if err != nil {
		return err
	}

	tr, err := sh.NavigatePath(c.Request().URL.Path)
	if err != nil {
		if errors.Is(err, shell.ErrUnknownRoute) {
			return echo.ErrNotFound
		}
		return err
	}

	ctx := c.Request().Context()
	return render(c, http.StatusOK, templates.Layout(templates.LayoutProps{
		Title:      pages.Title(tr.Route),
		Navigation: cfg.Navigation,
		Current:    tr.Route,
		Menu:       sh.Menu(),
		Transition: sh.TransitionDuration(),
		Slot:       templates.MountNode(ctx, sh.Active()),
	}))
}

// PagePartialHandler answers a fragment navigation with the new page mount
// and out-of-band updates for the navigation and the modal slot. Navigating
// to the page already shown only refreshes the navigation.
func PagePartialHandler(c echo.Context) error {
	route, ok := shell.RouteByName(c.Param("name"))
	if !ok {
		return echo.ErrNotFound
	}

	cfg, sh, err := shellContext(c)
	if err != nil {
		return err
	}

	tr, err := sh.Navigate(route)
	if err != nil {
		return err
	}

	if tr.ScrollReset {
		c.Response().Header().Set(headerTriggerAfterSwap, scrollTopEvent)
	}
	if !tr.Changed {
		c.Response().Header().Set(headerReswap, "none")
	}

	return render(c, http.StatusOK, templates.PagePartial(cfg.Navigation, tr.Route, sh.Menu(), sh.Active()))
}
