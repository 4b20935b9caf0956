package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kintai/timesheet-system/internal/core/ports"
)

// EntryHandler handles HTTP requests for timesheet entry CRUD.
type EntryHandler struct {
	service ports.EntryService
}

func NewEntryHandler(service ports.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// List handles GET /v1/entries.
//
// @Summary      List all timesheet entries
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.TimeEntry
// @Failure      401  {object}  errorResponse
// @Router       /v1/entries [get]
func (h *EntryHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Create handles POST /v1/entries. The entry is booked against the
// authenticated user; the body carries no user id.
//
// @Summary      Record a new timesheet entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      createEntryRequest  true  "Entry fields"
// @Success      201      {object}  createEntryResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Router       /v1/entries [post]
func (h *EntryHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Create(c.Request().Context(), ports.CreateEntryInput{
		UserID:     userID,
		Start:      req.Start,
		End:        req.End,
		Engagement: req.Engagement,
		Activity:   req.Activity,
		Location:   req.Location,
		Details:    req.Details,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createEntryResponse{
		Message: "entry created",
		ID:      entry.ID,
	})
}

// Update handles PUT /v1/entries/:id.
//
// @Summary      Update an existing timesheet entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string              true  "Entry id"
// @Param        request  body      updateEntryRequest  true  "Entry fields"
// @Success      200      {object}  messageResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/entries/{id} [put]
func (h *EntryHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "entry id is required")
	}

	var req updateEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Update(c.Request().Context(), id, ports.UpdateEntryInput{
		Start:      req.Start,
		End:        req.End,
		Engagement: req.Engagement,
		Activity:   req.Activity,
		Location:   req.Location,
		Details:    req.Details,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "entry updated"})
}

// Delete handles DELETE /v1/entries/:id.
//
// @Summary      Delete a timesheet entry
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/entries/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "entry id is required")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "entry deleted"})
}
