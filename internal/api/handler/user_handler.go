package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kintai/timesheet-system/internal/core/ports"
)

// UserHandler serves the authenticated user's own profile data.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Role handles GET /v1/me/role.
//
// @Summary      Get the authenticated user's role
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  roleResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/me/role [get]
func (h *UserHandler) Role(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	role, err := h.service.Role(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{Role: role})
}

// Permissions handles GET /v1/me/permissions.
//
// @Summary      Get the authenticated user's capability flags
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Permissions
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/me/permissions [get]
func (h *UserHandler) Permissions(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	perms, err := h.service.Permissions(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, perms)
}

// Engagements handles GET /v1/me/engagements.
//
// @Summary      List the engagements the user may book time against
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Engagement
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/me/engagements [get]
func (h *UserHandler) Engagements(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	engagements, err := h.service.Engagements(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, engagements)
}
