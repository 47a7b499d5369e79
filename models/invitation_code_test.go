package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvitationCodeIsValid(t *testing.T) {
	fresh := InvitationCode{ExpirationDate: time.Now().Add(time.Hour)}
	assert.True(t, fresh.IsValid())
	assert.False(t, fresh.IsExpired())

	used := InvitationCode{Used: true, ExpirationDate: time.Now().Add(time.Hour)}
	assert.False(t, used.IsValid())

	expired := InvitationCode{ExpirationDate: time.Now().Add(-time.Minute)}
	assert.True(t, expired.IsExpired())
	assert.False(t, expired.IsValid())

	usedAndExpired := InvitationCode{Used: true, ExpirationDate: time.Now().Add(-time.Minute)}
	assert.False(t, usedAndExpired.IsValid())
}

func TestParseUserRole(t *testing.T) {
	for _, valid := range []string{"PATIENT", "DOCTOR", "PENDING_DOCTOR", "ADMIN"} {
		role, ok := ParseUserRole(valid)
		assert.True(t, ok)
		assert.Equal(t, UserRole(valid), role)
	}

	_, ok := ParseUserRole("patient")
	assert.False(t, ok)
	_, ok = ParseUserRole("")
	assert.False(t, ok)
}

func TestParseDoctorStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "APPROVED", "REJECTED"} {
		status, ok := ParseDoctorStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, DoctorStatus(valid), status)
	}

	_, ok := ParseDoctorStatus("ACTIVE")
	assert.False(t, ok)
}

func TestParseAppointmentStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "CONFIRMED", "CANCELLED", "COMPLETED"} {
		status, ok := ParseAppointmentStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, AppointmentStatus(valid), status)
	}

	_, ok := ParseAppointmentStatus("DONE")
	assert.False(t, ok)
}
