package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kintai/timesheet-system/internal/core/domain"
	"github.com/kintai/timesheet-system/internal/core/ports"
)

// Permission gates a route on one of the user's capability flags. The flags
// live on the Users sheet, so they are re-read per request like everything
// else; there is no cached session state to invalidate.
func Permission(users ports.UserService, allowed func(domain.Permissions) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			perms, err := users.Permissions(c.Request().Context(), userID)
			if err != nil {
				if err == domain.ErrUserNotFound {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
				return err
			}
			if !allowed(*perms) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// Capability predicates for route wiring.
func CanViewReport(p domain.Permissions) bool     { return p.CanViewReport }
func CanViewUserReport(p domain.Permissions) bool { return p.CanViewUserReport }
func CanViewDashboard(p domain.Permissions) bool  { return p.CanViewDashboard }
