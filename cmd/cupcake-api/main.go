package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Victor-armando18/cupcake-corner/internal/config"
	"github.com/Victor-armando18/cupcake-corner/internal/domain"
	"github.com/Victor-armando18/cupcake-corner/internal/infrastructure"
	"github.com/Victor-armando18/cupcake-corner/internal/interfaces"
	"github.com/Victor-armando18/cupcake-corner/internal/usecase"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// cupcake-api stands in for the remote /api/cupcakes service during development.
func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := cfg.Logger()
	slog.SetDefault(logger)

	guards := usecase.NewGuardService(
		infrastructure.NewFileRuleLoader(cfg.Server.RulesDir),
		infrastructure.NewJsonLogicExecutor(),
	)
	e := newServer(guards, cfg.Server.RulesVersion, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("cupcake api listening", "address", cfg.Server.Listen, "rules_version", cfg.Server.RulesVersion)
		if err := e.Start(cfg.Server.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func newServer(guards interfaces.GuardFacade, rulesVersion string, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	e.POST("/api/cupcakes", handlePlaceOrder(guards, rulesVersion, logger))
	e.GET("/api/cupcakes/flavors", handleListFlavors)

	return e
}

func handlePlaceOrder(guards interfaces.GuardFacade, rulesVersion string, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable body"})
		}

		order, err := domain.DecodeOrder(body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		result, err := guards.Evaluate(c.Request().Context(), order, rulesVersion)
		if err != nil {
			logger.Error("guard evaluation failed",
				"error", err,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if len(result.GuardsHit) > 0 {
			return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "Blocked by guards",
				"guards": result.GuardsHit,
			})
		}

		return c.JSON(http.StatusCreated, domain.PlacedOrder{
			Order:     order,
			ID:        uuid.NewString(),
			CreatedAt: time.Now(),
		})
	}
}

type flavor struct {
	Type int    `json:"type"`
	Name string `json:"name"`
}

func handleListFlavors(c echo.Context) error {
	flavors := make([]flavor, 0, len(domain.Flavors))
	for i, name := range domain.Flavors {
		flavors = append(flavors, flavor{Type: i, Name: name})
	}
	return c.JSON(http.StatusOK, flavors)
}
