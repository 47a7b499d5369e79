package models

import (
	"time"
)

type DoctorStatus string

const (
	DoctorPending  DoctorStatus = "PENDING"
	DoctorApproved DoctorStatus = "APPROVED"
	DoctorRejected DoctorStatus = "REJECTED"
)

// Doctor shares its primary key with the owning User record.
type Doctor struct {
	ID                 uint         `json:"id" gorm:"primaryKey"`
	User               User         `json:"user" gorm:"foreignKey:ID"`
	Specialization     string       `json:"specialization"`
	LicenseNumber      string       `json:"license_number" gorm:"uniqueIndex"`
	LicenseDocumentURL string       `json:"license_document_url"`
	IDDocumentURL      string       `json:"id_document_url"`
	ConsultationFee    int          `json:"consultation_fee"`
	Status             DoctorStatus `json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// ParseDoctorStatus maps a status string to its enum value.
func ParseDoctorStatus(s string) (DoctorStatus, bool) {
	switch DoctorStatus(s) {
	case DoctorPending, DoctorApproved, DoctorRejected:
		return DoctorStatus(s), true
	}
	return "", false
}
