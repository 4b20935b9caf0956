package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kintai/timesheet-system/internal/api"
	"github.com/kintai/timesheet-system/internal/infrastructure/config"
	"github.com/kintai/timesheet-system/internal/infrastructure/sheets"
	"github.com/kintai/timesheet-system/pkg/logger"
)

// @title           Timesheet System API
// @version         1.0
// @description     Timesheet recording and budget reporting backed by a shared spreadsheet.

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		lg := logger.Get()
		lg.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("invalid timezone")
	}

	ctx := context.Background()
	client := sheets.NewClient(ctx, sheets.Config{
		SpreadsheetID: cfg.Sheets.SpreadsheetID,
		ProjectID:     cfg.Sheets.ProjectID,
		ClientEmail:   cfg.Sheets.ClientEmail,
		PrivateKey:    cfg.Sheets.PrivateKey,
	})
	if err := client.Ping(ctx); err != nil {
		// Not fatal: the spreadsheet may come back, and readiness reports it.
		log.Warn().Err(err).Msg("spreadsheet not reachable at startup")
	}

	e := api.NewRouter(client, cfg, loc)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
