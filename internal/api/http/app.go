package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/config"
	"github.com/spec-kit/scholarship-service/internal/observability"
)

// NewApp builds the Fiber application with global middleware and routes.
func NewApp(cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics, routes RouteConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: errorHandler,
		// params are retained past the handler by the in-memory store
		Immutable:    true,
		UnescapePath: true,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	RegisterMiddlewares(app, logger, metrics, cfg.App.AllowedOrigins, cfg.App.RequestTimeout())
	RegisterRoutes(app, routes)
	return app
}
