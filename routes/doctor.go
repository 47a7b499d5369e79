package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/healeasy/healeasy-api/controllers"
	"github.com/healeasy/healeasy-api/middleware"
)

// SetupDoctorRoutes configures doctor onboarding and lifecycle routes
func SetupDoctorRoutes(app *fiber.App) {
	doctor := app.Group("/doctors")

	// Public onboarding
	doctor.Post("/register", controllers.RegisterDoctor)
	doctor.Get("/invitation/validate", controllers.ValidateInvitationCode)
	doctor.Post("/invitation/complete", controllers.CompleteRegistration)

	doctor.Get("/:id", controllers.GetDoctor)

	// Admin review workflow
	doctor.Get("/", middleware.Protected(), middleware.RequireRole("ADMIN"), controllers.GetDoctorsByStatus)
	doctor.Post("/:id/approve", middleware.Protected(), middleware.RequireRole("ADMIN"), controllers.ApproveDoctor)
	doctor.Post("/:id/reject", middleware.Protected(), middleware.RequireRole("ADMIN"), controllers.RejectDoctor)
	doctor.Post("/:id/invitation", middleware.Protected(), middleware.RequireRole("ADMIN"), controllers.GenerateInvitationCode)

	// Document upload for a pending application
	doctor.Post("/:id/documents", middleware.Protected(), middleware.RequireRole("ADMIN", "DOCTOR", "PENDING_DOCTOR"), controllers.UploadDoctorDocument)
}
