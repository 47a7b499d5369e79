package models

import (
	"time"
)

type UserRole string

const (
	RolePatient       UserRole = "PATIENT"
	RoleDoctor        UserRole = "DOCTOR"
	RolePendingDoctor UserRole = "PENDING_DOCTOR"
	RoleAdmin         UserRole = "ADMIN"
)

// DefaultAvatarURL is assigned to users who register without a profile image.
const DefaultAvatarURL = "https://upload.wikimedia.org/wikipedia/commons/7/7c/Profile_avatar_placeholder_large.png"

type User struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Username        string    `json:"username" gorm:"column:user_name;uniqueIndex"`
	Email           string    `json:"email" gorm:"uniqueIndex"`
	Password        string    `json:"-"`
	PhoneNumber     string    `json:"phone_number" gorm:"uniqueIndex"`
	ProfileImageURL string    `json:"profile_image_url"`
	Role            UserRole  `json:"role"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ParseUserRole maps a role string to its enum value.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RolePatient, RoleDoctor, RolePendingDoctor, RoleAdmin:
		return UserRole(s), true
	}
	return "", false
}
