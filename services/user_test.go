package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healeasy/healeasy-api/models"
)

func newUserService(t *testing.T) (*UserService, *stubUploader) {
	t.Helper()
	uploader := &stubUploader{}
	return NewUserService(newTestDB(t), uploader), uploader
}

func TestRegisterCreatesPatient(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Register(&UserRegistrationRequest{
		Username:    "newpatient",
		Email:       "newpatient@example.com",
		PhoneNumber: "+15552000001",
		Password:    "strong-password",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RolePatient, user.Role)
	assert.Equal(t, models.DefaultAvatarURL, user.ProfileImageURL)
	assert.Empty(t, user.Password)

	var patient models.Patient
	require.NoError(t, svc.db.First(&patient, user.ID).Error)
	assert.True(t, patient.ActiveStatus)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newUserService(t)

	req := UserRegistrationRequest{
		Username:    "original",
		Email:       "original@example.com",
		PhoneNumber: "+15552000002",
		Password:    "strong-password",
	}
	_, err := svc.Register(&req)
	require.NoError(t, err)

	dupEmail := req
	dupEmail.Username = "someoneelse"
	dupEmail.PhoneNumber = "+15552000003"
	_, err = svc.Register(&dupEmail)
	assert.ErrorIs(t, err, ErrEmailExists)

	dupPhone := req
	dupPhone.Username = "someoneelse"
	dupPhone.Email = "someoneelse@example.com"
	_, err = svc.Register(&dupPhone)
	assert.ErrorIs(t, err, ErrPhoneExists)
}

func TestLoginMatchesUsernameOrEmail(t *testing.T) {
	svc, _ := newUserService(t)
	createUser(t, svc.db, "loginuser", models.RolePatient)

	byName, err := svc.Login("loginuser", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "loginuser", byName.Username)

	byEmail, err := svc.Login("loginuser@example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, byName.ID, byEmail.ID)

	_, err = svc.Login("loginuser", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "secret-password")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdatePassword(t *testing.T) {
	svc, _ := newUserService(t)
	user := createUser(t, svc.db, "pwchange", models.RolePatient)

	err := svc.UpdatePassword(user.ID, "wrong-password", "brand-new-pass")
	assert.ErrorIs(t, err, ErrInvalidOldPassword)

	require.NoError(t, svc.UpdatePassword(user.ID, "secret-password", "brand-new-pass"))

	_, err = svc.Login("pwchange", "brand-new-pass")
	require.NoError(t, err)
}

func TestUpdateProfileReplacesImage(t *testing.T) {
	svc, uploader := newUserService(t)
	user := createUser(t, svc.db, "profuser", models.RolePatient)

	updated, err := svc.UpdateProfile(user.ID, "renamed", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	assert.Equal(t, user.Email, updated.Email)
	assert.Zero(t, uploader.deletes)
}

func TestGetUserRole(t *testing.T) {
	svc, _ := newUserService(t)
	user := createUser(t, svc.db, "roleuser", models.RoleAdmin)

	role, err := svc.GetUserRole(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	_, err = svc.GetUserRole(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
