package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/config"
	"github.com/iskiospa/iskio-api/controllers"
)

// SetupAuthRoutes configures authentication and account routes
func SetupAuthRoutes(api fiber.Router, cfg *config.Config, g guards) {
	// Public routes
	api.Post("/login", controllers.Login(cfg))
	api.Post("/forgot-password", controllers.ForgotPassword(cfg))
	api.Post("/reset-password", controllers.ResetPassword)

	// Protected routes
	api.Get("/me", g.auth, controllers.Me)
	api.Post("/logout", g.auth, controllers.Logout)
	api.Get("/account", g.auth, controllers.GetAccount)
	api.Put("/account", g.auth, controllers.UpdateAccount)
}
