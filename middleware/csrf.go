package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
)

const csrfContextKey contextKey = "csrf"

// GetCSRFToken retrieves the CSRF token from the Echo context
// This token should be included in forms and AJAX requests
func GetCSRFToken(c echo.Context) string {
	token := c.Get("csrf")
	if token == nil {
		return ""
	}
	if tokenStr, ok := token.(string); ok {
		return tokenStr
	}
	return ""
}

// CSRFContext copies the token set by echo's CSRF middleware into the
// request context, so page views that take no arguments can embed it.
// Register it after the CSRF middleware.
func CSRFContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := GetCSRFToken(c); token != "" {
				ctx := context.WithValue(c.Request().Context(), csrfContextKey, token)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

// CSRFTokenFromContext returns the token stored by CSRFContext
func CSRFTokenFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(csrfContextKey).(string); ok {
		return val
	}
	return ""
}
