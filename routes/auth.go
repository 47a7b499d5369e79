package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/healeasy/healeasy-api/controllers"
	"github.com/healeasy/healeasy-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Put("/me", middleware.Protected(), controllers.UpdateProfile)
	auth.Put("/me/password", middleware.Protected(), controllers.UpdatePassword)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
}
