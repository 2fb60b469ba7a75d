package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactForm(fields map[string]string) *strings.Reader {
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	return strings.NewReader(form.Encode())
}

func validContact() map[string]string {
	return map[string]string{
		"name":      "Asha Rao",
		"phone":     "+91 98765 43210",
		"loan_type": "Personal Loan",
		"lender":    "Example Bank",
		"city":      "Pune",
	}
}

func TestContactSubmitHandler(t *testing.T) {
	post := func(t *testing.T, fields map[string]string, htmx bool) (echo.Context, *http.Response, string, error) {
		_, c, rec := setupEcho(t, http.MethodPost, "/contact", contactForm(fields), nil)
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		if htmx {
			c.Request().Header.Set("HX-Request", "true")
		}
		err := ContactSubmitHandler(c)
		return c, rec.Result(), rec.Body.String(), err
	}

	t.Run("HTMX success", func(t *testing.T) {
		_, res, body, err := post(t, validContact(), true)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, "Inquiry Received")
	})

	t.Run("Plain form success redirects", func(t *testing.T) {
		_, res, _, err := post(t, validContact(), false)
		require.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, res.StatusCode)
		assert.Equal(t, "/contact", res.Header.Get("Location"))
	})

	t.Run("HTMX missing fields", func(t *testing.T) {
		fields := validContact()
		delete(fields, "lender")
		fields["city"] = "   "

		_, res, body, err := post(t, fields, true)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "form-error")
		assert.Contains(t, body, `value="Asha Rao"`)
	})

	t.Run("Plain form missing fields", func(t *testing.T) {
		_, _, _, err := post(t, map[string]string{"name": "Asha"}, false)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestContactFormHandler(t *testing.T) {
	_, c, rec := setupEcho(t, http.MethodGet, "/contact/form", nil, nil)

	require.NoError(t, ContactFormHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hx-post="/contact"`)
	assert.NotContains(t, rec.Body.String(), "form-error")
}

func TestContactSubmitHandlerWithoutConfig(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/contact", contactForm(validContact()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c := e.NewContext(req, httptest.NewRecorder())

	err := ContactSubmitHandler(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}
