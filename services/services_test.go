package services

import (
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/healeasy/healeasy-api/models"
	"github.com/healeasy/healeasy-api/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.InvitationCode{},
		&models.Appointment{},
		&models.AvailableSlot{},
	))
	return db
}

// stubMailer records sends and reports the configured outcome.
type stubMailer struct {
	succeed         bool
	invitationSends int
	submissionSends int
	rejectionSends  int
	lastCode        string
}

func newStubMailer() *stubMailer {
	return &stubMailer{succeed: true}
}

func (m *stubMailer) SendSimpleEmail(to, subject, text string) bool { return m.succeed }
func (m *stubMailer) SendHTMLEmail(to, subject, html string) bool   { return m.succeed }

func (m *stubMailer) SendDoctorInvitationEmail(to, doctorName, code, expirationDate string) bool {
	m.invitationSends++
	m.lastCode = code
	return m.succeed
}

func (m *stubMailer) SendDoctorApplicationSubmissionEmail(to, doctorName string) bool {
	m.submissionSends++
	return m.succeed
}

func (m *stubMailer) SendDoctorApplicationRejectionEmail(to, doctorName, reason string) bool {
	m.rejectionSends++
	return m.succeed
}

// stubUploader returns fixed URLs, or the configured error.
type stubUploader struct {
	err     error
	uploads int
	deletes int
}

func (u *stubUploader) UploadImage(file *multipart.FileHeader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.uploads++
	return "https://res.cloudinary.com/test/image/upload/profiles/photo.jpg", nil
}

func (u *stubUploader) UploadDocument(file *multipart.FileHeader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.uploads++
	return "https://res.cloudinary.com/test/image/upload/documents/doc.pdf", nil
}

func (u *stubUploader) DeleteImage(publicID string) error {
	u.deletes++
	return u.err
}

// stubMeetings hands out deterministic meeting details and tracks calls.
type stubMeetings struct {
	createErr error
	updateErr error
	deleteErr error
	created   int
	updated   int
	deleted   int
}

func (m *stubMeetings) CreateMeeting(topic string, startTime time.Time, durationMinutes int, agenda string) (*utils.MeetingDetails, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created++
	return &utils.MeetingDetails{
		ID:       "86412345678",
		Topic:    topic,
		JoinURL:  "https://zoom.us/j/86412345678",
		StartURL: "https://zoom.us/s/86412345678",
		Password: "x7kPq2",
	}, nil
}

func (m *stubMeetings) GetMeeting(meetingID string) (*utils.MeetingDetails, error) {
	return &utils.MeetingDetails{ID: meetingID}, nil
}

func (m *stubMeetings) UpdateMeeting(meetingID, topic string, startTime time.Time, durationMinutes int, agenda string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated++
	return nil
}

func (m *stubMeetings) DeleteMeeting(meetingID string) (bool, error) {
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	m.deleted++
	return true, nil
}

var errProvider = errors.New("provider unavailable")

func createUser(t *testing.T, db *gorm.DB, name string, role models.UserRole) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:        name,
		Email:           name + "@example.com",
		PhoneNumber:     "+1555" + name,
		Password:        string(hashed),
		ProfileImageURL: models.DefaultAvatarURL,
		Role:            role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createDoctor(t *testing.T, db *gorm.DB, name string, status models.DoctorStatus) *models.Doctor {
	t.Helper()

	user := createUser(t, db, name, models.RolePendingDoctor)
	doctor := models.Doctor{
		ID:             user.ID,
		Specialization: "Cardiology",
		LicenseNumber:  "LIC-" + name,
		Status:         status,
	}
	require.NoError(t, db.Create(&doctor).Error)
	doctor.User = *user
	return &doctor
}

func createPatient(t *testing.T, db *gorm.DB, name string) *models.Patient {
	t.Helper()

	user := createUser(t, db, name, models.RolePatient)
	patient := models.Patient{ID: user.ID, ActiveStatus: true}
	require.NoError(t, db.Create(&patient).Error)
	patient.User = *user
	return &patient
}
