package models

import (
	"time"
)

// Patient shares its primary key with the owning User record.
type Patient struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	User         User      `json:"user" gorm:"foreignKey:ID"`
	ActiveStatus bool      `json:"active_status" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
