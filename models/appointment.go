package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

// DefaultDurationMinutes is used when an appointment is scheduled without an
// explicit duration.
const DefaultDurationMinutes = 30

type Appointment struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	DoctorID        uint              `json:"doctor_id"`
	Doctor          Doctor            `json:"doctor" gorm:"foreignKey:DoctorID"`
	PatientID       uint              `json:"patient_id"`
	Patient         Patient           `json:"patient" gorm:"foreignKey:PatientID"`
	ScheduleTime    time.Time         `json:"schedule_time"`
	DurationMinutes int               `json:"duration_minutes"`
	Description     string            `json:"description"`
	Status          AppointmentStatus `json:"status"`
	ZoomMeetingID   string            `json:"zoom_meeting_id"`
	ZoomJoinURL     string            `json:"zoom_join_url"`
	ZoomStartURL    string            `json:"zoom_start_url"`
	ZoomPassword    string            `json:"zoom_password,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.DurationMinutes == 0 {
		a.DurationMinutes = DefaultDurationMinutes
	}
	return nil
}

// ParseAppointmentStatus maps a status string to its enum value.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return AppointmentStatus(s), true
	}
	return "", false
}
