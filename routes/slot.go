package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/healeasy/healeasy-api/controllers"
	"github.com/healeasy/healeasy-api/middleware"
)

// SetupSlotRoutes configures availability slot routes
func SetupSlotRoutes(app *fiber.App) {
	slot := app.Group("/slots")

	// Patients browse availability without authentication
	slot.Get("/doctor/:doctorId", controllers.GetDoctorSlots)
	slot.Get("/:id", controllers.GetSlot)

	// Only doctors and admins manage slots
	slot.Post("/doctor/:doctorId", middleware.Protected(), middleware.RequireRole("ADMIN", "DOCTOR"), controllers.CreateSlot)
	slot.Put("/:id", middleware.Protected(), middleware.RequireRole("ADMIN", "DOCTOR"), controllers.UpdateSlot)
	slot.Delete("/:id", middleware.Protected(), middleware.RequireRole("ADMIN", "DOCTOR"), controllers.DeleteSlot)
}
