package models

import (
	"time"
)

// AvailableSlot is a doctor-declared open time window that patients can book
// against. It is not itself an appointment.
type AvailableSlot struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	DoctorID  uint      `json:"doctor_id"`
	Doctor    Doctor    `json:"doctor" gorm:"foreignKey:DoctorID"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
