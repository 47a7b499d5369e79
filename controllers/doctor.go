package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/healeasy/healeasy-api/services"
)

// RegisterDoctor handles a doctor's application submission (multipart form
// with optional license and ID documents)
func RegisterDoctor(c *fiber.Ctx) error {
	fee, _ := strconv.Atoi(c.FormValue("consultation_fee"))
	req := &services.DoctorRegistrationRequest{
		Username:        c.FormValue("username"),
		Email:           c.FormValue("email"),
		PhoneNumber:     c.FormValue("phone_number"),
		Specialization:  c.FormValue("specialization"),
		LicenseNumber:   c.FormValue("license_number"),
		ConsultationFee: fee,
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if file, err := c.FormFile("license_document"); err == nil {
		req.LicenseDocument = file
	}
	if file, err := c.FormFile("id_document"); err == nil {
		req.IDDocument = file
	}

	doctor, err := doctorService().RegisterDoctor(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doctor)
}

// GetDoctor returns a doctor by ID
func GetDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}

	doctor, err := doctorService().GetDoctorByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doctor)
}

// GetDoctorsByStatus lists doctors filtered by lifecycle status
func GetDoctorsByStatus(c *fiber.Ctx) error {
	status := c.Query("status", "PENDING")

	doctors, err := doctorService().GetDoctorsByStatus(status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doctors)
}

// ApproveDoctor approves a pending application and emails the invitation code
func ApproveDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}

	doctor, err := doctorService().ApproveDoctor(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doctor)
}

// RejectDoctor rejects a pending application with an optional reason
func RejectDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}

	type RejectInput struct {
		Reason string `json:"reason"`
	}
	input := new(RejectInput)
	// The reason is optional, so a missing body is fine
	_ = c.BodyParser(input)

	doctor, err := doctorService().RejectDoctor(uint(id), input.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doctor)
}

// GenerateInvitationCode issues a fresh invitation code for a doctor
func GenerateInvitationCode(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}

	days := c.QueryInt("expiration_days", 7)

	code, err := doctorService().GenerateInvitationCode(uint(id), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(code)
}

// ValidateInvitationCode checks a code and returns the owning doctor
func ValidateInvitationCode(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invitation code is required",
		})
	}

	doctor, err := doctorService().ValidateInvitationCode(code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doctor)
}

// CompleteRegistration redeems an invitation code, sets the doctor's password
// and optional profile photo, and activates the account
func CompleteRegistration(c *fiber.Ctx) error {
	type CompletionInput struct {
		Code     string `json:"code" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
	input := &CompletionInput{
		Code:     c.FormValue("code"),
		Password: c.FormValue("password"),
	}
	if input.Code == "" && input.Password == "" {
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse request body",
			})
		}
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	photo, err := c.FormFile("profile_photo")
	if err != nil {
		photo = nil
	}

	doctor, err := doctorService().CompleteRegistration(input.Code, input.Password, photo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doctor)
}

// UploadDoctorDocument replaces a doctor's license or ID document
func UploadDoctorDocument(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}

	docType := c.FormValue("type")
	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Document file is required",
		})
	}

	url, err := doctorService().UploadDocument(uint(id), docType, file)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}
