package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateSlot declares a new open time window for a doctor
func CreateSlot(c *fiber.Ctx) error {
	id, err := c.ParamsInt("doctorId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}

	type SlotInput struct {
		StartTime time.Time `json:"start_time" validate:"required"`
		EndTime   time.Time `json:"end_time" validate:"required"`
	}
	input := new(SlotInput)
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

	slot, err := slotService().CreateSlot(uint(id), input.StartTime, input.EndTime)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

// GetDoctorSlots lists a doctor's open windows, optionally within a range
func GetDoctorSlots(c *fiber.Ctx) error {
	id, err := c.ParamsInt("doctorId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr != "" && toStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid 'from' time, expected RFC3339",
			})
		}
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid 'to' time, expected RFC3339",
			})
		}

		slots, err := slotService().GetSlotsByDoctorInRange(uint(id), from, to)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(slots)
	}

	slots, err := slotService().GetSlotsByDoctor(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slots)
}

// GetSlot returns a slot by ID
func GetSlot(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid slot ID",
		})
	}

	slot, err := slotService().GetSlotByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slot)
}

// UpdateSlot replaces a slot's bounds
func UpdateSlot(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid slot ID",
		})
	}

	type SlotInput struct {
		StartTime time.Time `json:"start_time" validate:"required"`
		EndTime   time.Time `json:"end_time" validate:"required"`
	}
	input := new(SlotInput)
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

	slot, err := slotService().UpdateSlot(uint(id), input.StartTime, input.EndTime)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slot)
}

// DeleteSlot removes a slot
func DeleteSlot(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid slot ID",
		})
	}

	if err := slotService().DeleteSlot(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
