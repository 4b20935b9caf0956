package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kintai/timesheet-system/internal/core/ports"
)

// ReportHandler serves the aggregated reporting views. Capability checks
// happen in the route middleware, not here.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// BudgetActuals handles GET /v1/reports/budget-actuals.
//
// @Summary      Budget vs. actual hours per entry
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.BudgetActualRow
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reports/budget-actuals [get]
func (h *ReportHandler) BudgetActuals(c echo.Context) error {
	rows, err := h.service.BudgetActuals(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// MonthlySummary handles GET /v1/reports/monthly-summary.
//
// @Summary      Total hours per user per month
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.MonthlyTotal
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reports/monthly-summary [get]
func (h *ReportHandler) MonthlySummary(c echo.Context) error {
	totals, err := h.service.MonthlySummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, totals)
}
