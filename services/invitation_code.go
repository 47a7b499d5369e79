package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/healeasy/healeasy-api/models"
)

// InvitationCodeStore is the ledger of single-use registration codes.
type InvitationCodeStore struct {
	db *gorm.DB
}

func NewInvitationCodeStore(db *gorm.DB) *InvitationCodeStore {
	return &InvitationCodeStore{db: db}
}

func (s *InvitationCodeStore) Create(code *models.InvitationCode) error {
	return s.db.Create(code).Error
}

func (s *InvitationCodeStore) FindByCode(code string) (*models.InvitationCode, error) {
	var ic models.InvitationCode
	err := s.db.Preload("Doctor.User").Where("code = ?", code).First(&ic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ic, nil
}

// FindValidCodesByDoctor returns all unused, unexpired codes for a doctor.
func (s *InvitationCodeStore) FindValidCodesByDoctor(doctorID uint) ([]models.InvitationCode, error) {
	var codes []models.InvitationCode
	err := s.db.
		Where("doctor_id = ? AND used = ? AND expiration_date > ?", doctorID, false, time.Now()).
		Find(&codes).Error
	return codes, err
}

// FindMostRecentValidCode returns the newest unused, unexpired code for a
// doctor.
func (s *InvitationCodeStore) FindMostRecentValidCode(doctorID uint) (*models.InvitationCode, error) {
	var ic models.InvitationCode
	err := s.db.
		Where("doctor_id = ? AND used = ? AND expiration_date > ?", doctorID, false, time.Now()).
		Order("created_at desc").
		First(&ic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ic, nil
}

func (s *InvitationCodeStore) HasValidCodes(doctorID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.InvitationCode{}).
		Where("doctor_id = ? AND used = ? AND expiration_date > ?", doctorID, false, time.Now()).
		Count(&count).Error
	return count > 0, err
}

// FindExpiredUnusedCodes lists codes that lapsed without being redeemed. No
// cleanup job consumes this yet.
func (s *InvitationCodeStore) FindExpiredUnusedCodes() ([]models.InvitationCode, error) {
	var codes []models.InvitationCode
	err := s.db.
		Where("expiration_date <= ? AND used = ?", time.Now(), false).
		Find(&codes).Error
	return codes, err
}
