package services

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/healeasy/healeasy-api/models"
)

func newDoctorService(t *testing.T) (*DoctorService, *stubMailer, *stubUploader) {
	t.Helper()
	db := newTestDB(t)
	mailer := newStubMailer()
	uploader := &stubUploader{}
	return NewDoctorService(db, mailer, uploader), mailer, uploader
}

func TestRegisterDoctorCreatesPendingApplication(t *testing.T) {
	svc, mailer, _ := newDoctorService(t)

	doctor, err := svc.RegisterDoctor(&DoctorRegistrationRequest{
		Username:       "drhouse",
		Email:          "house@example.com",
		PhoneNumber:    "+15551000001",
		Specialization: "Diagnostics",
		LicenseNumber:  "LIC-0001",
	})
	require.NoError(t, err)

	assert.Equal(t, models.DoctorPending, doctor.Status)
	assert.Equal(t, models.RolePendingDoctor, doctor.User.Role)
	assert.Equal(t, doctor.User.ID, doctor.ID)
	assert.Equal(t, 1, mailer.submissionSends)
}

func TestRegisterDoctorRejectsDuplicates(t *testing.T) {
	svc, _, _ := newDoctorService(t)

	base := DoctorRegistrationRequest{
		Username:       "drwho",
		Email:          "who@example.com",
		PhoneNumber:    "+15551000002",
		Specialization: "Temporal Medicine",
		LicenseNumber:  "LIC-0002",
	}
	_, err := svc.RegisterDoctor(&base)
	require.NoError(t, err)

	dupEmail := base
	dupEmail.Username = "other"
	dupEmail.PhoneNumber = "+15551000003"
	dupEmail.LicenseNumber = "LIC-0003"
	_, err = svc.RegisterDoctor(&dupEmail)
	assert.ErrorIs(t, err, ErrEmailExists)

	dupPhone := base
	dupPhone.Email = "other@example.com"
	dupPhone.LicenseNumber = "LIC-0003"
	_, err = svc.RegisterDoctor(&dupPhone)
	assert.ErrorIs(t, err, ErrPhoneExists)

	dupLicense := base
	dupLicense.Email = "other@example.com"
	dupLicense.PhoneNumber = "+15551000003"
	_, err = svc.RegisterDoctor(&dupLicense)
	assert.ErrorIs(t, err, ErrLicenseExists)
}

func TestApproveDoctorIssuesInvitation(t *testing.T) {
	svc, mailer, _ := newDoctorService(t)
	db := svc.db
	doctor := createDoctor(t, db, "drgrey", models.DoctorPending)

	approved, err := svc.ApproveDoctor(doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DoctorApproved, approved.Status)
	assert.Equal(t, 1, mailer.invitationSends)
	require.Len(t, mailer.lastCode, 8)

	code, err := svc.Codes().FindByCode(mailer.lastCode)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, code.DoctorID)
	assert.False(t, code.Used)
	assert.True(t, code.IsValid())
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), code.ExpirationDate, time.Minute)
}

func TestApproveDoctorRequiresPendingStatus(t *testing.T) {
	svc, _, _ := newDoctorService(t)
	db := svc.db

	for _, status := range []models.DoctorStatus{models.DoctorApproved, models.DoctorRejected} {
		doctor := createDoctor(t, db, "dr"+string(status), status)

		_, err := svc.ApproveDoctor(doctor.ID)
		assert.ErrorIs(t, err, ErrDoctorNotPending)

		// the failed transition must leave the record untouched
		reloaded, err := svc.GetDoctorByID(doctor.ID)
		require.NoError(t, err)
		assert.Equal(t, status, reloaded.Status)
	}
}

func TestRejectDoctor(t *testing.T) {
	svc, mailer, _ := newDoctorService(t)
	doctor := createDoctor(t, svc.db, "drstrange", models.DoctorPending)

	rejected, err := svc.RejectDoctor(doctor.ID, "incomplete paperwork")
	require.NoError(t, err)
	assert.Equal(t, models.DoctorRejected, rejected.Status)
	assert.Equal(t, 1, mailer.rejectionSends)

	_, err = svc.RejectDoctor(doctor.ID, "again")
	assert.ErrorIs(t, err, ErrDoctorNotPending)
}

func TestApproveDoctorNotFound(t *testing.T) {
	svc, _, _ := newDoctorService(t)

	_, err := svc.ApproveDoctor(9999)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestGenerateInvitationCodeFormat(t *testing.T) {
	svc, _, _ := newDoctorService(t)
	doctor := createDoctor(t, svc.db, "drformat", models.DoctorApproved)

	code, err := svc.GenerateInvitationCode(doctor.ID, 7)
	require.NoError(t, err)

	assert.Len(t, code.Code, 8)
	assert.Equal(t, strings.ToUpper(code.Code), code.Code)
	assert.False(t, code.Used)
}

func TestValidateInvitationCode(t *testing.T) {
	svc, _, _ := newDoctorService(t)
	doctor := createDoctor(t, svc.db, "drvalid", models.DoctorApproved)

	code, err := svc.GenerateInvitationCode(doctor.ID, 7)
	require.NoError(t, err)

	owner, err := svc.ValidateInvitationCode(code.Code)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, owner.ID)

	_, err = svc.ValidateInvitationCode("NOPE1234")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestValidateInvitationCodeRejectsExpired(t *testing.T) {
	svc, _, _ := newDoctorService(t)
	doctor := createDoctor(t, svc.db, "drexpired", models.DoctorApproved)

	code := models.InvitationCode{
		Code:           "OLDCODE1",
		DoctorID:       doctor.ID,
		ExpirationDate: time.Now().Add(-time.Hour),
	}
	require.NoError(t, svc.Codes().Create(&code))

	_, err := svc.ValidateInvitationCode(code.Code)
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestCompleteRegistrationPromotesDoctor(t *testing.T) {
	svc, _, _ := newDoctorService(t)
	doctor := createDoctor(t, svc.db, "drcomplete", models.DoctorApproved)

	code, err := svc.GenerateInvitationCode(doctor.ID, 7)
	require.NoError(t, err)

	completed, err := svc.CompleteRegistration(code.Code, "new-password-123", nil)
	require.NoError(t, err)
	assert.Equal(t, models.RoleDoctor, completed.User.Role)

	var user models.User
	require.NoError(t, svc.db.First(&user, doctor.ID).Error)
	assert.Equal(t, models.RoleDoctor, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new-password-123")))

	// the code is consumed and cannot be redeemed twice
	stored, err := svc.Codes().FindByCode(code.Code)
	require.NoError(t, err)
	assert.True(t, stored.Used)

	_, err = svc.CompleteRegistration(code.Code, "another-password", nil)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestCompleteRegistrationRejectsBadCodes(t *testing.T) {
	svc, _, _ := newDoctorService(t)

	_, err := svc.CompleteRegistration("", "password123", nil)
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = svc.CompleteRegistration("UNKNOWN1", "password123", nil)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestDoctorLifecycleEndToEnd(t *testing.T) {
	svc, mailer, _ := newDoctorService(t)

	doctor, err := svc.RegisterDoctor(&DoctorRegistrationRequest{
		Username:       "drjourney",
		Email:          "journey@example.com",
		PhoneNumber:    "+15551000042",
		Specialization: "Family Medicine",
		LicenseNumber:  "LIC-0042",
	})
	require.NoError(t, err)

	_, err = svc.ApproveDoctor(doctor.ID)
	require.NoError(t, err)

	owner, err := svc.ValidateInvitationCode(mailer.lastCode)
	require.NoError(t, err)
	require.Equal(t, doctor.ID, owner.ID)

	completed, err := svc.CompleteRegistration(mailer.lastCode, "chosen-password", nil)
	require.NoError(t, err)
	assert.Equal(t, models.RoleDoctor, completed.User.Role)

	has, err := svc.Codes().HasValidCodes(doctor.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestGetDoctorsByStatus(t *testing.T) {
	svc, _, _ := newDoctorService(t)
	createDoctor(t, svc.db, "drpending1", models.DoctorPending)
	createDoctor(t, svc.db, "drpending2", models.DoctorPending)
	createDoctor(t, svc.db, "drapproved", models.DoctorApproved)

	pending, err := svc.GetDoctorsByStatus("pending")
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	approved, err := svc.GetDoctorsByStatus("APPROVED")
	require.NoError(t, err)
	assert.Len(t, approved, 1)

	_, err = svc.GetDoctorsByStatus("bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDoctorResponsesOmitPasswordHash(t *testing.T) {
	svc, _, _ := newDoctorService(t)
	doctor := createDoctor(t, svc.db, "drleak", models.DoctorApproved)

	code, err := svc.GenerateInvitationCode(doctor.ID, 7)
	require.NoError(t, err)

	fetched, err := svc.GetDoctorByID(doctor.ID)
	require.NoError(t, err)
	owner, err := svc.ValidateInvitationCode(code.Code)
	require.NoError(t, err)

	// these records travel through public endpoints, so the stored hash
	// must never survive JSON marshaling
	for _, v := range []interface{}{fetched, owner} {
		body, err := json.Marshal(v)
		require.NoError(t, err)
		assert.NotContains(t, string(body), `"password"`)
		assert.NotContains(t, string(body), doctor.User.Password)
	}
}

func TestUploadDocumentValidatesType(t *testing.T) {
	svc, _, uploader := newDoctorService(t)
	doctor := createDoctor(t, svc.db, "drupload", models.DoctorPending)

	_, err := svc.UploadDocument(doctor.ID, "passport", nil)
	assert.ErrorIs(t, err, ErrInvalidDocType)
	assert.Zero(t, uploader.uploads)

	url, err := svc.UploadDocument(doctor.ID, "license", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	reloaded, err := svc.GetDoctorByID(doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, url, reloaded.LicenseDocumentURL)
}
