package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"settleedge_web/config"
	"settleedge_web/services"
	"settleedge_web/services/shell"
	"settleedge_web/templates/pages"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	nav, err := config.LoadNavigation()
	require.NoError(t, err)
	return &config.Config{
		Environment:        "test",
		TransitionDuration: shell.DefaultTransitionDuration,
		SessionIdleTimeout: 30 * time.Minute,
		ContactRateLimit:   5,
		LogContactDetails:  true,
		Navigation:         nav,
	}
}

func newTestShell(t *testing.T, initial shell.Route) *shell.Shell {
	t.Helper()
	sh, err := shell.New(pages.Registry(services.ServiceCatalog), initial, shell.Options{})
	require.NoError(t, err)
	return sh
}

// setupEcho builds a context carrying the config and the given shell, as
// the server's middleware chain would.
func setupEcho(t *testing.T, method, path string, body io.Reader, sh *shell.Shell) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("config", testConfig(t))
	if sh != nil {
		c.Set("shell", sh)
	}
	return e, c, rec
}

func withParam(c echo.Context, path, name, value string) {
	c.SetPath(path)
	c.SetParamNames(name)
	c.SetParamValues(value)
}
