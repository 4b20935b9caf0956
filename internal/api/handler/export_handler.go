package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kintai/timesheet-system/internal/core/ports"
)

// ExportHandler streams timesheet exports as file downloads.
type ExportHandler struct {
	service ports.ExportService
	users   ports.UserService
}

func NewExportHandler(service ports.ExportService, users ports.UserService) *ExportHandler {
	return &ExportHandler{service: service, users: users}
}

// Export handles POST /v1/export. Users may always export their own rows;
// exporting another user's rows, or everyone's, requires ExportAll.
//
// @Summary      Export timesheet rows as CSV or XLSX
// @Tags         export
// @Accept       json
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        request  body  exportRequest  true  "Date range, optional user filter, and format"
// @Success      200  {file}    file
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/export [post]
func (h *ExportHandler) Export(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req exportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.UserID != userID {
		perms, err := h.users.Permissions(c.Request().Context(), userID)
		if err != nil {
			return err
		}
		if !perms.CanExportAll {
			return echo.NewHTTPError(http.StatusForbidden, "export of other users requires the ExportAll permission")
		}
	}

	format := req.Format
	if format == "" {
		format = ports.FormatCSV
	}

	file, err := h.service.Export(c.Request().Context(), ports.ExportInput{
		UserID:    req.UserID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Format:    format,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}
