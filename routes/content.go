package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/controllers"
)

// SetupContentRoutes configures the home page and Instagram routes
func SetupContentRoutes(api fiber.Router, g guards) {
	api.Get("/home-content", controllers.GetHomeContent)
	api.Post("/home-content", with(g.admin, controllers.CreateHomeContent)...)
	api.Put("/home-content", with(g.admin, controllers.UpdateHomeContent)...)
	api.Delete("/home-content", with(g.admin, controllers.DeleteHomeContent)...)

	api.Get("/instagram", controllers.GetInstagramPosts)
	api.Post("/instagram", with(g.admin, controllers.CreateInstagramPost)...)
	api.Put("/instagram", with(g.admin, controllers.UpdateInstagramPost)...)
	api.Delete("/instagram", with(g.admin, controllers.DeleteInstagramPost)...)
}

// SetupDashboardRoutes configures the admin dashboard routes
func SetupDashboardRoutes(api fiber.Router, g guards) {
	dashboard := api.Group("/dashboard", g.staff...)
	dashboard.Get("/overview", controllers.GetDashboardOverview)
	dashboard.Get("/citas-hoy", controllers.GetDashboardCitasHoy)
	dashboard.Get("/top-servicios", controllers.GetDashboardTopServicios)
}
