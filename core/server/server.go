package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventmap-api/core/cache"
	"eventmap-api/core/config"
	"eventmap-api/core/database"
	"eventmap-api/core/logger"
	coremw "eventmap-api/core/middleware"
	"eventmap-api/core/utils"
	"eventmap-api/core/validator"
	"eventmap-api/modules/auth"
	"eventmap-api/modules/event"
	"eventmap-api/modules/location"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires configuration, storage, cache and modules together and serves
// until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Init(cfg.Server.Env)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.MigrateUp("migrations/postgres"); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Migrations applied successfully")

	readCache := cache.New(cfg.Redis)

	e := newEcho(&db, readCache)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.Server.Port)
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-signalChan:
		logger.Info("Received signal, shutting down", "signal", sig.String())
	case err := <-errChan:
		logger.Error("Server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", "error", err)
		return err
	}

	logger.Info("Shutdown complete")
	return nil
}

func newEcho(db database.IDatabase, readCache cache.Cache) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: utils.GenerateRequestID,
	}))
	e.Use(accessLogMiddleware())
	e.Use(echomw.Recover())

	mw := coremw.NewMiddleware()

	auth.Init(e, db, mw)
	location.Init(e, db, readCache)
	event.Init(e, db, readCache)

	e.GET("/health", healthHandler(db))

	return e
}

func healthHandler(db database.IDatabase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.SQLx().PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

func accessLogMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.Info("Access log",
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency", time.Since(start).String(),
			)
			return err
		}
	}
}
