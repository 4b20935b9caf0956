package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kintai/timesheet-system/internal/core/ports"
)

// ReferenceHandler serves the read-only master data the entry form binds to.
type ReferenceHandler struct {
	service ports.ReferenceService
}

func NewReferenceHandler(service ports.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

// Activities handles GET /v1/activities.
//
// @Summary      List the activity master with budget hours
// @Tags         references
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Activity
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/activities [get]
func (h *ReferenceHandler) Activities(c echo.Context) error {
	activities, err := h.service.Activities(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

// Locations handles GET /v1/locations.
//
// @Summary      List the selectable work locations
// @Tags         references
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   locationOption
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/locations [get]
func (h *ReferenceHandler) Locations(c echo.Context) error {
	locations, err := h.service.Locations(c.Request().Context())
	if err != nil {
		return err
	}

	options := make([]locationOption, 0, len(locations))
	for _, loc := range locations {
		options = append(options, locationOption{Value: loc, Label: loc})
	}
	return c.JSON(http.StatusOK, options)
}
