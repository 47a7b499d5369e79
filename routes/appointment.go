package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/healeasy/healeasy-api/controllers"
	"github.com/healeasy/healeasy-api/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments", middleware.Protected())

	appointment.Post("/", controllers.ScheduleAppointment)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Get("/doctor/:id", controllers.GetDoctorAppointments)
	appointment.Get("/patient/:id", controllers.GetPatientAppointments)
	appointment.Get("/status/:status", middleware.RequireRole("ADMIN"), controllers.GetAppointmentsByStatus)
	appointment.Patch("/:id/status", controllers.UpdateAppointmentStatus)
	appointment.Patch("/:id/reschedule", controllers.RescheduleAppointment)
	appointment.Delete("/:id", controllers.CancelAppointment)
}
