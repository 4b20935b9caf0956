package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/kintai/timesheet-system/docs"
	"github.com/kintai/timesheet-system/internal/api/handler"
	"github.com/kintai/timesheet-system/internal/api/middleware"
	"github.com/kintai/timesheet-system/internal/core/service"
	"github.com/kintai/timesheet-system/internal/infrastructure/config"
	"github.com/kintai/timesheet-system/internal/infrastructure/sheets"
	"github.com/kintai/timesheet-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *sheets.Client, cfg *config.Config, loc *time.Location) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Named("api"))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("timesheet"))

	// --- Dependencies ---
	entryRepo := sheets.NewEntryRepository(client, cfg.Sheets.TimesheetGID)
	userRepo := sheets.NewUserRepository(client)
	refRepo := sheets.NewReferenceRepository(client)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	entryService := service.NewEntryService(entryRepo, userRepo, loc, logger.Named("entries"))
	userService := service.NewUserService(userRepo, refRepo)
	referenceService := service.NewReferenceService(refRepo)
	reportService := service.NewReportService(entryRepo, refRepo, logger.Named("reports"))
	exportService := service.NewExportService(entryRepo, logger.Named("export"))

	authHandler := handler.NewAuthHandler(authService)
	entryHandler := handler.NewEntryHandler(entryService)
	userHandler := handler.NewUserHandler(userService)
	referenceHandler := handler.NewReferenceHandler(referenceService)
	reportHandler := handler.NewReportHandler(reportService)
	exportHandler := handler.NewExportHandler(exportService, userService)
	healthHandler := handler.NewHealthHandler(client)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.POST("/v1/auth/login", authHandler.Login)

	e.GET("/health", healthHandler.Live)           // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Ready)    // readiness – is the spreadsheet reachable?
	e.GET("/metrics", echoprometheus.NewHandler()) // prometheus scrape endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.POST("/auth/change-password", authHandler.ChangePassword)

	v1.GET("/me/role", userHandler.Role)
	v1.GET("/me/permissions", userHandler.Permissions)
	v1.GET("/me/engagements", userHandler.Engagements)

	v1.GET("/entries", entryHandler.List)
	v1.POST("/entries", entryHandler.Create)
	v1.PUT("/entries/:id", entryHandler.Update)
	v1.DELETE("/entries/:id", entryHandler.Delete)

	v1.GET("/activities", referenceHandler.Activities)
	v1.GET("/locations", referenceHandler.Locations)

	v1.GET("/reports/budget-actuals", reportHandler.BudgetActuals,
		middleware.Permission(userService, middleware.CanViewReport))
	v1.GET("/reports/monthly-summary", reportHandler.MonthlySummary,
		middleware.Permission(userService, middleware.CanViewUserReport))

	v1.POST("/export", exportHandler.Export)

	return e
}
