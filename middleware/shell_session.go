package middleware

import (
	"net/http"

	"settleedge_web/config"
	"settleedge_web/services"
	"settleedge_web/services/shell"

	"github.com/labstack/echo/v4"
)

// ShellCookieName holds the visitor's shell session id
const ShellCookieName = "se_shell"

const shellContextKey = "shell"

// shellResolver looks the session up the first time a handler asks for it,
// so requests that end before needing a shell allocate nothing.
type shellResolver struct {
	c     echo.Context
	store *services.ShellSessions
	cfg   *config.Config

	resolved bool
	shell    *shell.Shell
}

func (r *shellResolver) resolve() *shell.Shell {
	if r.resolved {
		return r.shell
	}
	r.resolved = true

	var id string
	if cookie, err := r.c.Cookie(ShellCookieName); err == nil {
		id = cookie.Value
	}

	resolved, sh, err := r.store.Resolve(id)
	if err != nil {
		r.c.Logger().Errorf("Failed to resolve shell session: %v", err)
		return nil
	}

	if resolved != id {
		cookie := new(http.Cookie)
		cookie.Name = ShellCookieName
		cookie.Value = resolved
		cookie.Path = "/"
		cookie.HttpOnly = true
		cookie.SameSite = http.SameSiteLaxMode
		if r.cfg.IsProduction() {
			cookie.Secure = true
		}
		r.c.SetCookie(cookie)
	}

	r.shell = sh
	return sh
}

// ShellSession makes the visitor's shell available through GetShell. The
// session (and its cookie) is created on first use, for a first visit or
// after the old one expired. The cookie lives for the browser session only.
func ShellSession(store *services.ShellSessions, cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(shellContextKey, &shellResolver{c: c, store: store, cfg: cfg})
			return next(c)
		}
	}
}

// GetShell returns the visitor's shell, or nil when there is no session
// middleware or the session could not be created.
func GetShell(c echo.Context) *shell.Shell {
	switch v := c.Get(shellContextKey).(type) {
	case *shell.Shell:
		return v
	case *shellResolver:
		return v.resolve()
	}
	return nil
}
