package models

import (
	"time"
)

// InvitationCode is a single-use token mailed to an approved doctor so they can
// set a password and activate their account.
type InvitationCode struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Code           string    `json:"code" gorm:"uniqueIndex;not null"`
	DoctorID       uint      `json:"doctor_id" gorm:"not null"`
	Doctor         Doctor    `json:"doctor" gorm:"foreignKey:DoctorID"`
	Used           bool      `json:"used" gorm:"not null;default:false"`
	ExpirationDate time.Time `json:"expiration_date" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (ic *InvitationCode) IsExpired() bool {
	return time.Now().After(ic.ExpirationDate)
}

// IsValid reports whether the code can still be redeemed.
func (ic *InvitationCode) IsValid() bool {
	return !ic.Used && !ic.IsExpired()
}
