package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/controllers"
)

// SetupServiceRoutes configures the service catalog routes
func SetupServiceRoutes(api fiber.Router, g guards) {
	servicios := api.Group("/servicios")
	servicios.Get("/", controllers.GetAllServices)
	servicios.Post("/", with(g.admin, controllers.CreateService)...)
	servicios.Post("/imagen", with(g.admin, controllers.UploadServiceImage)...)
	servicios.Put("/:id", with(g.admin, controllers.UpdateService)...)
	servicios.Delete("/:id", with(g.admin, controllers.DeleteService)...)

	api.Get("/categorias", controllers.GetCategories)
}
