package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/iskiospa/iskio-api/config"
	"github.com/iskiospa/iskio-api/middleware"
	"github.com/iskiospa/iskio-api/models"
)

// guards holds the middleware chains shared by the route groups.
type guards struct {
	auth  fiber.Handler
	admin []fiber.Handler
	staff []fiber.Handler
}

func newGuards(cfg *config.Config) guards {
	protected := middleware.Protected(cfg.JWTSecret)
	return guards{
		auth:  protected,
		admin: []fiber.Handler{protected, middleware.RequireRole(models.RoleAdmin)},
		staff: []fiber.Handler{protected, middleware.RequireRole(models.RoleAdmin, models.RoleStaff)},
	}
}

// with appends the final handler to a guard chain.
func with(chain []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	handlers := make([]fiber.Handler, 0, len(chain)+1)
	handlers = append(handlers, chain...)
	return append(handlers, handler)
}

// Setup mounts every API route under /api.
func Setup(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")
	g := newGuards(cfg)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	SetupAuthRoutes(api, cfg, g)
	SetupAvailabilityRoutes(api, g)
	SetupAppointmentRoutes(api, g)
	SetupServiceRoutes(api, g)
	SetupContentRoutes(api, g)
	SetupDashboardRoutes(api, g)
}

// NewApp builds the Fiber application with the global middleware and every route.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "ISKIO Spa API",
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ISKIO Spa API")
	})
	Setup(app, cfg)
	return app
}
