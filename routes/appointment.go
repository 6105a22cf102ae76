package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(api fiber.Router, g guards) {
	api.Post("/citas", controllers.CreateCita)
	api.Get("/citas", with(g.staff, controllers.ListCitas)...)
	api.Put("/citas", with(g.staff, controllers.UpdateCita)...)
	api.Delete("/citas", with(g.admin, controllers.DeleteCita)...)
}
