package services

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/healeasy/healeasy-api/models"
	"github.com/healeasy/healeasy-api/utils"
)

// invitationExpirationDays is how long a newly issued invitation code stays
// redeemable.
const invitationExpirationDays = 7

// codeGenerationAttempts bounds the retry loop on invitation-code collisions.
const codeGenerationAttempts = 3

// DoctorRegistrationRequest carries a doctor's application.
type DoctorRegistrationRequest struct {
	Username        string `json:"username" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	PhoneNumber     string `json:"phone_number" validate:"required"`
	Specialization  string `json:"specialization" validate:"required"`
	LicenseNumber   string `json:"license_number" validate:"required"`
	ConsultationFee int    `json:"consultation_fee"`

	LicenseDocument *multipart.FileHeader `json:"-"`
	IDDocument      *multipart.FileHeader `json:"-"`
}

// DoctorService drives the doctor lifecycle: registration, admin
// approval/rejection, invitation codes, and credential completion.
type DoctorService struct {
	db       *gorm.DB
	mailer   Mailer
	uploader Uploader
	codes    *InvitationCodeStore
}

func NewDoctorService(db *gorm.DB, mailer Mailer, uploader Uploader) *DoctorService {
	return &DoctorService{
		db:       db,
		mailer:   mailer,
		uploader: uploader,
		codes:    NewInvitationCodeStore(db),
	}
}

// Codes exposes the invitation-code ledger.
func (s *DoctorService) Codes() *InvitationCodeStore {
	return s.codes
}

// RegisterDoctor creates the PENDING_DOCTOR user and PENDING doctor records,
// uploads the supporting documents, and sends the application-received email.
// Document upload failure aborts the registration; the email is best-effort.
func (s *DoctorService) RegisterDoctor(req *DoctorRegistrationRequest) (*models.Doctor, error) {
	var exists int64
	if err := s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, ErrEmailExists
	}
	if err := s.db.Model(&models.User{}).Where("phone_number = ?", req.PhoneNumber).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, ErrPhoneExists
	}
	inUse, err := s.IsLicenseNumberInUse(req.LicenseNumber)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, ErrLicenseExists
	}

	// Upload documents before touching the database so a storage failure
	// aborts the whole registration.
	var licenseURL, idURL string
	if req.LicenseDocument != nil {
		licenseURL, err = s.uploader.UploadDocument(req.LicenseDocument)
		if err != nil {
			return nil, err
		}
	}
	if req.IDDocument != nil {
		idURL, err = s.uploader.UploadDocument(req.IDDocument)
		if err != nil {
			return nil, err
		}
	}

	user := models.User{
		Username:        req.Username,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Role:            models.RolePendingDoctor,
		ProfileImageURL: models.DefaultAvatarURL,
	}
	doctor := models.Doctor{
		Specialization:     req.Specialization,
		LicenseNumber:      req.LicenseNumber,
		LicenseDocumentURL: licenseURL,
		IDDocumentURL:      idURL,
		ConsultationFee:    req.ConsultationFee,
		Status:             models.DoctorPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		doctor.ID = user.ID
		return tx.Create(&doctor).Error
	})
	if err != nil {
		return nil, err
	}
	doctor.User = user

	if !s.mailer.SendDoctorApplicationSubmissionEmail(user.Email, user.Username) {
		log.Printf("Failed to send application submission email to doctor: %s", user.Email)
	}

	return &doctor, nil
}

// ApproveDoctor moves a PENDING doctor to APPROVED, issues a 7-day invitation
// code, and mails it. The email is best-effort; the admin can issue a new code
// later if it never arrives.
func (s *DoctorService) ApproveDoctor(doctorID uint) (*models.Doctor, error) {
	doctor, err := s.GetDoctorByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor.Status != models.DoctorPending {
		return nil, ErrDoctorNotPending
	}

	doctor.Status = models.DoctorApproved
	if err := s.db.Save(doctor).Error; err != nil {
		return nil, err
	}

	code, err := s.GenerateInvitationCode(doctorID, invitationExpirationDays)
	if err != nil {
		return nil, err
	}

	expires := code.ExpirationDate.Format("2006-01-02 15:04")
	if !s.mailer.SendDoctorInvitationEmail(doctor.User.Email, doctor.User.Username, code.Code, expires) {
		log.Printf("Failed to send invitation email to doctor: %s", doctor.User.Email)
	}

	return doctor, nil
}

// RejectDoctor moves a PENDING doctor to REJECTED and mails the optional
// reason. The email is best-effort.
func (s *DoctorService) RejectDoctor(doctorID uint, reason string) (*models.Doctor, error) {
	doctor, err := s.GetDoctorByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor.Status != models.DoctorPending {
		return nil, ErrDoctorNotPending
	}

	doctor.Status = models.DoctorRejected
	if err := s.db.Save(doctor).Error; err != nil {
		return nil, err
	}

	if !s.mailer.SendDoctorApplicationRejectionEmail(doctor.User.Email, doctor.User.Username, reason) {
		log.Printf("Failed to send rejection email to doctor: %s", doctor.User.Email)
	}

	return doctor, nil
}

// GenerateInvitationCode issues a fresh single-use code for the doctor,
// retrying with a new random code when the unique constraint trips.
func (s *DoctorService) GenerateInvitationCode(doctorID uint, expirationDays int) (*models.InvitationCode, error) {
	if _, err := s.GetDoctorByID(doctorID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		code := models.InvitationCode{
			Code:           utils.GenerateInvitationCode(),
			DoctorID:       doctorID,
			Used:           false,
			ExpirationDate: time.Now().AddDate(0, 0, expirationDays),
		}
		err := s.codes.Create(&code)
		if err == nil {
			return &code, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, ErrCodeCollision
}

// ValidateInvitationCode returns the owning doctor for a redeemable code.
// Unknown, expired and already-used codes are indistinguishable to the caller.
func (s *DoctorService) ValidateInvitationCode(code string) (*models.Doctor, error) {
	ic, err := s.codes.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if !ic.IsValid() {
		return nil, ErrCodeNotFound
	}
	return &ic.Doctor, nil
}

// CompleteRegistration redeems an invitation code: sets the doctor's password,
// stores the optional profile photo, promotes the user to DOCTOR, and marks
// the code used. Password, role, and code consumption change atomically; a
// photo upload failure aborts with the code unconsumed.
func (s *DoctorService) CompleteRegistration(code, password string, profilePhoto *multipart.FileHeader) (*models.Doctor, error) {
	if code == "" {
		return nil, ErrInvalidCode
	}

	ic, err := s.codes.FindByCode(code)
	if err != nil {
		if errors.Is(err, ErrCodeNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}
	if !ic.IsValid() {
		return nil, ErrInvalidCode
	}

	var photoURL string
	if profilePhoto != nil {
		photoURL, err = s.uploader.UploadImage(profilePhoto)
		if err != nil {
			return nil, err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	doctor := ic.Doctor
	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := doctor.User
		user.Password = string(hashed)
		if photoURL != "" {
			user.ProfileImageURL = photoURL
		}
		user.Role = models.RoleDoctor
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		doctor.User = user

		ic.Used = true
		return tx.Model(&models.InvitationCode{}).Where("id = ?", ic.ID).Update("used", true).Error
	})
	if err != nil {
		return nil, err
	}

	return &doctor, nil
}

func (s *DoctorService) GetDoctorByID(doctorID uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := s.db.Preload("User").First(&doctor, doctorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (s *DoctorService) GetDoctorsByStatus(status string) ([]models.Doctor, error) {
	parsed, ok := models.ParseDoctorStatus(strings.ToUpper(status))
	if !ok {
		return nil, ErrInvalidStatus
	}

	var doctors []models.Doctor
	err := s.db.Preload("User").Where("status = ?", parsed).Find(&doctors).Error
	return doctors, err
}

func (s *DoctorService) IsLicenseNumberInUse(licenseNumber string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Doctor{}).Where("license_number = ?", licenseNumber).Count(&count).Error
	return count > 0, err
}

// UploadDocument replaces a doctor's licence or ID document and returns the
// stored URL.
func (s *DoctorService) UploadDocument(doctorID uint, documentType string, file *multipart.FileHeader) (string, error) {
	doctor, err := s.GetDoctorByID(doctorID)
	if err != nil {
		return "", err
	}

	docType := strings.ToLower(documentType)
	if docType != "license" && docType != "id" {
		return "", ErrInvalidDocType
	}

	url, err := s.uploader.UploadDocument(file)
	if err != nil {
		return "", err
	}

	if docType == "license" {
		doctor.LicenseDocumentURL = url
	} else {
		doctor.IDDocumentURL = url
	}

	if err := s.db.Save(doctor).Error; err != nil {
		return "", err
	}
	return url, nil
}
