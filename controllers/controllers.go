package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/healeasy/healeasy-api/db"
	"github.com/healeasy/healeasy-api/services"
	"github.com/healeasy/healeasy-api/utils"
)

var validate = validator.New()

func doctorService() *services.DoctorService {
	return services.NewDoctorService(db.DB, utils.DefaultMailer, utils.DefaultUploader)
}

func appointmentService() *services.AppointmentService {
	return services.NewAppointmentService(db.DB, utils.DefaultZoomClient)
}

func slotService() *services.SlotService {
	return services.NewSlotService(db.DB)
}

func userService() *services.UserService {
	return services.NewUserService(db.DB, utils.DefaultUploader)
}

func adminService() *services.AdminService {
	return services.NewAdminService(db.DB)
}

// respondError translates domain errors into HTTP responses.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Request failed"

	var uploadErr *utils.UploadError
	switch {
	case services.IsNotFound(err):
		status = fiber.StatusNotFound
		message = "Resource not found"
	case services.IsConflict(err):
		status = fiber.StatusConflict
		message = "Conflicting resource state"
	case services.IsInvalidArgument(err):
		status = fiber.StatusBadRequest
		message = "Invalid request"
	case services.IsInvalidState(err):
		status = fiber.StatusConflict
		message = "Operation not allowed in current state"
	case services.IsUnauthorized(err):
		status = fiber.StatusUnauthorized
		message = "Authentication failed"
	case services.IsForbidden(err):
		status = fiber.StatusForbidden
		message = "Operation not permitted"
	case errors.Is(err, utils.ErrFileTooLarge):
		status = fiber.StatusRequestEntityTooLarge
		message = "File too large"
	case errors.Is(err, utils.ErrInvalidFileType):
		status = fiber.StatusBadRequest
		message = "Invalid file type"
	case errors.As(err, &uploadErr):
		status = fiber.StatusInternalServerError
		message = "File upload failed"
	}

	return c.Status(status).JSON(utils.ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}
