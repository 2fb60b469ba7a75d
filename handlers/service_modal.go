package handlers

import (
	"errors"
	"net/http"

	"settleedge_web/services"
	"settleedge_web/templates/pages"

	"github.com/labstack/echo/v4"
)

// ServiceDetailHandler returns the detail modal for a catalog entry.
func ServiceDetailHandler(c echo.Context) error {
	detail, err := services.GetServiceDetail(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Service not found")
		}
		return err
	}
	return render(c, http.StatusOK, pages.ServiceModal(*detail))
}

// CloseServiceModalHandler empties the modal slot.
func CloseServiceModalHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.EmptyModalSlot())
}
