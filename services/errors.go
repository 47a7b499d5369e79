package services

import "errors"

// Domain errors returned by the service layer. Controllers classify them with
// the helpers below and translate them to HTTP status codes.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotNotFound        = errors.New("slot not found")
	ErrCodeNotFound        = errors.New("invitation code not found")

	ErrEmailExists   = errors.New("email already exists")
	ErrPhoneExists   = errors.New("phone number already exists")
	ErrLicenseExists = errors.New("license number already exists")
	ErrCodeCollision = errors.New("failed to generate a unique invitation code")

	ErrInvalidCode        = errors.New("invitation code is invalid, expired or already used")
	ErrInvalidTimeRange   = errors.New("start time must be before end time")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidRole        = errors.New("invalid role value")
	ErrInvalidDocType     = errors.New("invalid document type, must be 'license' or 'id'")
	ErrInvalidOldPassword = errors.New("invalid old password")

	ErrDoctorNotPending = errors.New("doctor is not in PENDING status")

	ErrInvalidCredentials = errors.New("invalid username, email or password")
	ErrNotAdmin           = errors.New("not authorized to use this operation")
	ErrLastAdmin          = errors.New("cannot delete the last admin user")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrDoctorNotFound) ||
		errors.Is(err, ErrPatientNotFound) ||
		errors.Is(err, ErrAppointmentNotFound) ||
		errors.Is(err, ErrSlotNotFound) ||
		errors.Is(err, ErrCodeNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailExists) ||
		errors.Is(err, ErrPhoneExists) ||
		errors.Is(err, ErrLicenseExists) ||
		errors.Is(err, ErrCodeCollision)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidCode) ||
		errors.Is(err, ErrInvalidTimeRange) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrInvalidDocType) ||
		errors.Is(err, ErrInvalidOldPassword)
}

func IsInvalidState(err error) bool {
	return errors.Is(err, ErrDoctorNotPending)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrNotAdmin) || errors.Is(err, ErrLastAdmin)
}
