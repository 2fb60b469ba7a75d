package handlers

import (
	"net/http"

	"settleedge_web/config"
	"settleedge_web/middleware"
	"settleedge_web/services/shell"

	"github.com/labstack/echo/v4"
)

// htmx response headers
const (
	headerTriggerAfterSwap = "HX-Trigger-After-Swap"
	headerReswap           = "HX-Reswap"
)

// scrollTopEvent is handled by static/js/shell.js
const scrollTopEvent = "shell:scroll-top"

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// shellContext returns the config and the visitor's shell set up by the
// middleware chain.
func shellContext(c echo.Context) (*config.Config, *shell.Shell, error) {
	cfg, ok := c.Get("config").(*config.Config)
	if !ok || cfg.Navigation == nil {
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "Configuration unavailable")
	}
	sh := middleware.GetShell(c)
	if sh == nil {
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "Session unavailable")
	}
	return cfg, sh, nil
}
