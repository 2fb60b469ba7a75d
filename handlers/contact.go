package handlers

import (
	"errors"
	"net/http"

	"settleedge_web/config"
	"settleedge_web/models"
	"settleedge_web/services"
	"settleedge_web/templates/pages"

	"github.com/labstack/echo/v4"
)

// ContactSubmitHandler logs an evaluation request. htmx submissions get the
// confirmation (or the form with its missing fields) in place; plain form
// posts are redirected back to the contact page.
func ContactSubmitHandler(c echo.Context) error {
	cfg, ok := c.Get("config").(*config.Config)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Configuration unavailable")
	}

	var in models.ContactInquiry
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}

	in, err := services.LogInquiry(in, cfg.LogContactDetails)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidInquiry) {
			return err
		}
		if isHTMX(c) {
			return render(c, http.StatusBadRequest, pages.ContactForm(in, services.MissingInquiryFields(in)))
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Please fill in all required fields")
	}

	if isHTMX(c) {
		return render(c, http.StatusOK, pages.InquiryReceived())
	}
	return c.Redirect(http.StatusSeeOther, "/contact")
}

// ContactFormHandler returns an empty contact form.
func ContactFormHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.ContactForm(models.ContactInquiry{LoanType: models.LoanTypes[0]}, nil))
}
