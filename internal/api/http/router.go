package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholarship-service/internal/api/http/handlers"
	"github.com/spec-kit/scholarship-service/internal/auth"
	"github.com/spec-kit/scholarship-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Users        *handlers.UsersHandler
	Scholarships *handlers.ScholarshipsHandler
	Orders       *handlers.OrdersHandler
	Payments     *handlers.PaymentsHandler
	Checkout     *handlers.CheckoutHandler
	Session      *handlers.SessionHandler

	SessionMiddleware *auth.SessionMiddleware
	UserLookup        auth.UserLookup
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	token := cfg.SessionMiddleware.Handle
	admin := auth.RequireRole(cfg.UserLookup, domain.RoleAdmin)

	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	app.Post("/users/:email", cfg.Users.Register)
	app.Get("/users/role/:email", cfg.Users.Role)
	app.Get("/all-users/:email", token, admin, cfg.Users.ListOthers)
	app.Patch("/user/role/:email", token, admin, cfg.Users.UpdateRole)

	app.Get("/scholarship", cfg.Scholarships.List)
	app.Post("/scholarship", token, cfg.Scholarships.Create)
	app.Get("/scholarship/:id", cfg.Scholarships.Get)

	app.Post("/order", token, cfg.Orders.Create)
	app.Get("/customer-orders/:email", token, cfg.Orders.CustomerOrders)
	app.Delete("/orders/:id", token, cfg.Orders.Cancel)

	app.Post("/create-payment-intent", cfg.Payments.CreateIntent)
	app.Post("/payments", token, cfg.Payments.Record)
	app.Get("/payments/:email", token, auth.RequireSelf("email"), cfg.Payments.List)

	app.Get("/checkout", cfg.Checkout.List)
	app.Get("/checkout/:id", cfg.Checkout.Get)
	app.Post("/checkout", cfg.Checkout.Save)

	app.Post("/jwt", cfg.Session.Issue)
	app.Post("/logout", cfg.Session.Logout)
	app.Get("/protected", token, cfg.Session.Protected)
}
