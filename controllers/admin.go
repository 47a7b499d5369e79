package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/healeasy/healeasy-api/services"
)

func pageRequestFromQuery(c *fiber.Ctx) services.PageRequest {
	req := services.DefaultPageRequest()
	req.Page = c.QueryInt("page", req.Page)
	req.Size = c.QueryInt("size", req.Size)
	if field := c.Query("sort_field"); field != "" {
		req.SortField = field
	}
	if dir := c.Query("direction"); dir != "" {
		req.Direction = dir
	}
	return req
}

// ListUsers serves the admin user directory. A role filter and a search term
// are both optional; search wins when both are present.
func ListUsers(c *fiber.Ctx) error {
	req := pageRequestFromQuery(c)

	if term := c.Query("search"); term != "" {
		page, err := adminService().SearchUsers(term, req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(page)
	}

	if role := c.Query("role"); role != "" {
		page, err := adminService().ListUsersByRole(role, req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(page)
	}

	page, err := adminService().ListUsers(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// GetUser returns a single user by ID with the password hash blanked
func GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	user, err := adminService().GetUserByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// DeleteUser removes a user account. The last remaining admin cannot be
// deleted.
func DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	if err := adminService().DeleteUser(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}

// UpdateAdminPassword changes the authenticated admin's password
func UpdateAdminPassword(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	type PasswordInput struct {
		OldPassword string `json:"old_password" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
	input := new(PasswordInput)
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

	if err := adminService().UpdateAdminPassword(adminID, input.OldPassword, input.NewPassword); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Password updated successfully",
	})
}
