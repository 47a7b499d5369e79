package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/healeasy/healeasy-api/models"
)

// SlotService manages a doctor's offered time windows. Overlapping slots are
// not checked.
type SlotService struct {
	db *gorm.DB
}

func NewSlotService(db *gorm.DB) *SlotService {
	return &SlotService{db: db}
}

// CreateSlot declares a new open window. Start must be strictly before end.
func (s *SlotService) CreateSlot(doctorID uint, startTime, endTime time.Time) (*models.AvailableSlot, error) {
	if startTime.IsZero() || endTime.IsZero() || !startTime.Before(endTime) {
		return nil, ErrInvalidTimeRange
	}

	var count int64
	if err := s.db.Model(&models.Doctor{}).Where("id = ?", doctorID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrDoctorNotFound
	}

	slot := models.AvailableSlot{
		DoctorID:  doctorID,
		StartTime: startTime,
		EndTime:   endTime,
	}
	if err := s.db.Create(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *SlotService) GetSlotsByDoctor(doctorID uint) ([]models.AvailableSlot, error) {
	var count int64
	if err := s.db.Model(&models.Doctor{}).Where("id = ?", doctorID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrDoctorNotFound
	}

	var slots []models.AvailableSlot
	err := s.db.Where("doctor_id = ?", doctorID).Order("start_time asc").Find(&slots).Error
	return slots, err
}

// GetSlotsByDoctorInRange returns slots fully contained in [startTime, endTime].
func (s *SlotService) GetSlotsByDoctorInRange(doctorID uint, startTime, endTime time.Time) ([]models.AvailableSlot, error) {
	if startTime.IsZero() || endTime.IsZero() || startTime.After(endTime) {
		return nil, ErrInvalidTimeRange
	}

	var count int64
	if err := s.db.Model(&models.Doctor{}).Where("id = ?", doctorID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrDoctorNotFound
	}

	var slots []models.AvailableSlot
	err := s.db.
		Where("doctor_id = ? AND start_time >= ? AND end_time <= ?", doctorID, startTime, endTime).
		Order("start_time asc").
		Find(&slots).Error
	return slots, err
}

// UpdateSlot replaces the slot's bounds. Start must be strictly before end.
func (s *SlotService) UpdateSlot(slotID uint, startTime, endTime time.Time) (*models.AvailableSlot, error) {
	if startTime.IsZero() || endTime.IsZero() || !startTime.Before(endTime) {
		return nil, ErrInvalidTimeRange
	}

	slot, err := s.GetSlotByID(slotID)
	if err != nil {
		return nil, err
	}

	slot.StartTime = startTime
	slot.EndTime = endTime
	if err := s.db.Save(slot).Error; err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *SlotService) DeleteSlot(slotID uint) error {
	slot, err := s.GetSlotByID(slotID)
	if err != nil {
		return err
	}
	return s.db.Delete(slot).Error
}

func (s *SlotService) GetSlotByID(slotID uint) (*models.AvailableSlot, error) {
	var slot models.AvailableSlot
	err := s.db.First(&slot, slotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}
