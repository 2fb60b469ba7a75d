package main

import (
	"log"
	"time"

	"settleedge_web/config"
	"settleedge_web/middleware"
	"settleedge_web/services"
	"settleedge_web/services/shell"
	"settleedge_web/static"
	"settleedge_web/templates/pages"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Hash static assets for cache busting
	middleware.InitAssetVersions(static.FS)

	// One shell per visitor, all sharing the same page views
	views := pages.Registry(services.ServiceCatalog)
	sessions := services.NewShellSessions(func() (*shell.Shell, error) {
		return shell.New(views, shell.RouteHome, shell.Options{
			TransitionDuration: cfg.TransitionDuration,
		})
	}, cfg.SessionIdleTimeout)

	contactLimiter := middleware.ContactFormRateLimiter(cfg.ContactRateLimit)
	defer contactLimiter.Stop()

	e := newServer(cfg, sessions, contactLimiter)

	// Sweep idle shell sessions
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			sessions.CleanupIdle()
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
