package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/skillpath/api/http/handlers"
	"github.com/artem13815/skillpath/api/http/middleware"
	"github.com/artem13815/skillpath/api/http/presenter"
	"github.com/artem13815/skillpath/pkg/logging"
)

// NewApp builds the Fiber app with the shared middleware stack.
func NewApp(log logging.Logger, corsOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "skillpath",
		ErrorHandler:          presenter.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(log))
	app.Use(recover.New())
	app.Use(middleware.CORS(corsOrigins))
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, rec *handlers.RecommendationHandler, health *handlers.HealthHandler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	a := app.Group("/auth")
	a.Post("/signup", auth.Signup)
	a.Post("/login", auth.Login)

	app.Post("/recommendation", rec.Recommend)

	app.Get("/swagger/*", swagger.HandlerDefault)
}
