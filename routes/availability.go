package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/controllers"
)

// SetupAvailabilityRoutes configures the slot calendar routes
func SetupAvailabilityRoutes(api fiber.Router, g guards) {
	api.Get("/disponibilidad", controllers.GetDisponibilidad)
	api.Post("/disponibilidad", with(g.admin, controllers.CreateDisponibilidad)...)
	api.Delete("/disponibilidad", with(g.admin, controllers.DeleteDisponibilidad)...)
}
