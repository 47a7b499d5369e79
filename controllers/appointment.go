package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ScheduleAppointment books a consultation and provisions its video meeting
func ScheduleAppointment(c *fiber.Ctx) error {
	type ScheduleInput struct {
		DoctorID        uint      `json:"doctor_id" validate:"required"`
		PatientID       uint      `json:"patient_id" validate:"required"`
		ScheduleTime    time.Time `json:"schedule_time" validate:"required"`
		DurationMinutes int       `json:"duration_minutes"`
		Description     string    `json:"description"`
	}

	input := new(ScheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	appointment, err := appointmentService().Schedule(
		input.DoctorID,
		input.PatientID,
		input.ScheduleTime,
		input.DurationMinutes,
		input.Description,
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetAppointment returns an appointment by ID
func GetAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	appointment, err := appointmentService().GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appointment)
}

// GetDoctorAppointments lists a doctor's appointments, optionally filtered by
// status or limited to upcoming ones
func GetDoctorAppointments(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}

	svc := appointmentService()
	switch {
	case c.QueryBool("upcoming"):
		appointments, err := svc.GetUpcomingForDoctor(uint(id))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(appointments)
	case c.Query("status") != "":
		appointments, err := svc.GetByDoctorAndStatus(uint(id), c.Query("status"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(appointments)
	default:
		appointments, err := svc.GetByDoctor(uint(id))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(appointments)
	}
}

// GetPatientAppointments lists a patient's appointments, optionally filtered
// by status or limited to upcoming ones
func GetPatientAppointments(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid patient ID",
		})
	}

	svc := appointmentService()
	switch {
	case c.QueryBool("upcoming"):
		appointments, err := svc.GetUpcomingForPatient(uint(id))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(appointments)
	case c.Query("status") != "":
		appointments, err := svc.GetByPatientAndStatus(uint(id), c.Query("status"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(appointments)
	default:
		appointments, err := svc.GetByPatient(uint(id))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(appointments)
	}
}

// GetAppointmentsByStatus lists all appointments with the given status
func GetAppointmentsByStatus(c *fiber.Ctx) error {
	appointments, err := appointmentService().GetByStatus(c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appointments)
}

// UpdateAppointmentStatus overwrites the appointment status
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	type StatusInput struct {
		Status string `json:"status" validate:"required"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	appointment, err := appointmentService().UpdateStatus(uint(id), input.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appointment)
}

// RescheduleAppointment moves an appointment and updates its video meeting
func RescheduleAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	type RescheduleInput struct {
		ScheduleTime    time.Time `json:"schedule_time" validate:"required"`
		DurationMinutes *int      `json:"duration_minutes"`
	}
	input := new(RescheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	appointment, err := appointmentService().Reschedule(uint(id), input.ScheduleTime, input.DurationMinutes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appointment)
}

// CancelAppointment cancels an appointment and deletes its video meeting
func CancelAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	appointment, err := appointmentService().Cancel(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appointment)
}
