package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/healeasy/healeasy-api/controllers"
	"github.com/healeasy/healeasy-api/middleware"
)

// SetupAdminRoutes configures the admin-only user directory
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireRole("ADMIN"))

	admin.Get("/users", controllers.ListUsers)
	admin.Get("/users/:id", controllers.GetUser)
	admin.Delete("/users/:id", controllers.DeleteUser)
	admin.Put("/password", controllers.UpdateAdminPassword)
}
