package handlers

import (
	"net/http"
	"time"

	"settleedge_web/templates"
	"settleedge_web/templates/components"

	"github.com/labstack/echo/v4"
)

// ToggleMenuHandler flips the mobile menu and returns the navigation bar.
func ToggleMenuHandler(c echo.Context) error {
	cfg, sh, err := shellContext(c)
	if err != nil {
		return err
	}

	menu := sh.ToggleMenu()
	return render(c, http.StatusOK, components.Static(templates.NavBar(cfg.Navigation, sh.CurrentRoute(), menu, false)))
}

// CompleteTransitionHandler receives the end-of-animation signal for a
// mount. Signals for superseded or unknown mounts get 409.
func CompleteTransitionHandler(c echo.Context) error {
	_, sh, err := shellContext(c)
	if err != nil {
		return err
	}

	if !sh.Complete(c.Param("id")) {
		return c.NoContent(http.StatusConflict)
	}
	return c.NoContent(http.StatusNoContent)
}

// ShellStateHandler returns the visitor's shell state as JSON. Transitions
// past their duration are finished first.
func ShellStateHandler(c echo.Context) error {
	_, sh, err := shellContext(c)
	if err != nil {
		return err
	}

	sh.CompleteOverdue(time.Now())
	return c.JSON(http.StatusOK, sh.Snapshot())
}
