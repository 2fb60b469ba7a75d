package main

import (
	"net/http"

	"settleedge_web/config"
	"settleedge_web/handlers"
	"settleedge_web/middleware"
	"settleedge_web/services"
	"settleedge_web/services/shell"
	"settleedge_web/static"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// newServer builds the echo instance. Only the routes that read or change
// the visitor's shell get a shell session; static assets, the modal, the
// contact endpoints and unknown paths never allocate one.
func newServer(cfg *config.Config, sessions *services.ShellSessions, contactLimiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(middleware.CSPNonce())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	e.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.IsProduction(),
		CookieSameSite: http.SameSiteLaxMode,
	}))
	e.Use(middleware.CSRFContext())

	// Static files
	e.StaticFS("/static", static.FS)

	// Route-level, so unmatched paths never reach it
	withShell := middleware.ShellSession(sessions, cfg)

	// Full pages, one per route
	for _, r := range shell.Routes {
		e.GET(string(r), handlers.SitePageHandler, withShell)
	}

	// Fragment navigation and shell signals (HTMX)
	e.GET("/pages/:name", handlers.PagePartialHandler, withShell)
	e.POST("/shell/menu", handlers.ToggleMenuHandler, withShell)
	e.POST("/shell/mounts/:id/complete", handlers.CompleteTransitionHandler, withShell)
	e.GET("/shell/state", handlers.ShellStateHandler, withShell)

	// Service catalog modal
	e.GET("/services/modal/close", handlers.CloseServiceModalHandler)
	e.GET("/services/:id", handlers.ServiceDetailHandler)

	// Contact form
	e.POST("/contact", handlers.ContactSubmitHandler, contactLimiter.Middleware())
	e.GET("/contact/form", handlers.ContactFormHandler)

	return e
}
