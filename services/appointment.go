package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/healeasy/healeasy-api/models"
)

// AppointmentService owns appointment CRUD and keeps the meeting provider in
// step with scheduling changes.
type AppointmentService struct {
	db       *gorm.DB
	meetings MeetingProvider
}

func NewAppointmentService(db *gorm.DB, meetings MeetingProvider) *AppointmentService {
	return &AppointmentService{db: db, meetings: meetings}
}

func meetingTopic(doctor *models.Doctor) string {
	return "Appointment with Dr. " + doctor.User.Username
}

// Schedule books an appointment and provisions its meeting resource. A
// provider failure aborts scheduling with no appointment persisted.
func (s *AppointmentService) Schedule(doctorID, patientID uint, scheduleTime time.Time, durationMinutes int, description string) (*models.Appointment, error) {
	var doctor models.Doctor
	err := s.db.Preload("User").First(&doctor, doctorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, err
	}

	var patient models.Patient
	err = s.db.Preload("User").First(&patient, patientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}

	if durationMinutes <= 0 {
		durationMinutes = models.DefaultDurationMinutes
	}

	meeting, err := s.meetings.CreateMeeting(meetingTopic(&doctor), scheduleTime, durationMinutes, description)
	if err != nil {
		return nil, err
	}

	appointment := models.Appointment{
		DoctorID:        doctorID,
		PatientID:       patientID,
		ScheduleTime:    scheduleTime,
		DurationMinutes: durationMinutes,
		Description:     description,
		Status:          models.StatusPending,
		ZoomMeetingID:   meeting.ID,
		ZoomJoinURL:     meeting.JoinURL,
		ZoomStartURL:    meeting.StartURL,
		ZoomPassword:    meeting.Password,
	}
	if err := s.db.Create(&appointment).Error; err != nil {
		return nil, err
	}
	appointment.Doctor = doctor
	appointment.Patient = patient

	return &appointment, nil
}

func (s *AppointmentService) GetByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Preload("Doctor.User").Preload("Patient.User").First(&appointment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *AppointmentService) GetByDoctor(doctorID uint) ([]models.Appointment, error) {
	if err := s.requireDoctor(doctorID); err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	err := s.db.Preload("Patient.User").Where("doctor_id = ?", doctorID).Find(&appointments).Error
	return appointments, err
}

func (s *AppointmentService) GetByPatient(patientID uint) ([]models.Appointment, error) {
	if err := s.requirePatient(patientID); err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	err := s.db.Preload("Doctor.User").Where("patient_id = ?", patientID).Find(&appointments).Error
	return appointments, err
}

func (s *AppointmentService) GetByStatus(status string) ([]models.Appointment, error) {
	parsed, ok := models.ParseAppointmentStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	var appointments []models.Appointment
	err := s.db.Preload("Doctor.User").Preload("Patient.User").
		Where("status = ?", parsed).Find(&appointments).Error
	return appointments, err
}

func (s *AppointmentService) GetByDoctorAndStatus(doctorID uint, status string) ([]models.Appointment, error) {
	parsed, ok := models.ParseAppointmentStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}
	if err := s.requireDoctor(doctorID); err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	err := s.db.Preload("Patient.User").
		Where("doctor_id = ? AND status = ?", doctorID, parsed).Find(&appointments).Error
	return appointments, err
}

func (s *AppointmentService) GetByPatientAndStatus(patientID uint, status string) ([]models.Appointment, error) {
	parsed, ok := models.ParseAppointmentStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}
	if err := s.requirePatient(patientID); err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	err := s.db.Preload("Doctor.User").
		Where("patient_id = ? AND status = ?", patientID, parsed).Find(&appointments).Error
	return appointments, err
}

// UpdateStatus overwrites the appointment status. Any known status value is
// accepted; there is no transition table.
func (s *AppointmentService) UpdateStatus(id uint, status string) (*models.Appointment, error) {
	parsed, ok := models.ParseAppointmentStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	appointment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	appointment.Status = parsed
	if err := s.db.Save(appointment).Error; err != nil {
		return nil, err
	}
	return appointment, nil
}

// Reschedule moves the appointment and, when a meeting resource exists,
// updates it with the same derived topic and agenda.
func (s *AppointmentService) Reschedule(id uint, newTime time.Time, newDurationMinutes *int) (*models.Appointment, error) {
	appointment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	appointment.ScheduleTime = newTime
	if newDurationMinutes != nil && *newDurationMinutes > 0 {
		appointment.DurationMinutes = *newDurationMinutes
	}

	if appointment.ZoomMeetingID != "" {
		err := s.meetings.UpdateMeeting(
			appointment.ZoomMeetingID,
			meetingTopic(&appointment.Doctor),
			newTime,
			appointment.DurationMinutes,
			appointment.Description,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := s.db.Save(appointment).Error; err != nil {
		return nil, err
	}
	return appointment, nil
}

// Cancel sets the appointment CANCELLED and deletes its meeting resource. The
// provider's delete result is not checked; cancelling an already-cancelled
// appointment is a no-op.
func (s *AppointmentService) Cancel(id uint) (*models.Appointment, error) {
	appointment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if appointment.Status == models.StatusCancelled {
		return appointment, nil
	}

	appointment.Status = models.StatusCancelled
	if appointment.ZoomMeetingID != "" {
		if _, err := s.meetings.DeleteMeeting(appointment.ZoomMeetingID); err != nil {
			return nil, err
		}
	}

	if err := s.db.Save(appointment).Error; err != nil {
		return nil, err
	}
	return appointment, nil
}

// GetUpcomingForDoctor returns appointments scheduled strictly after now.
func (s *AppointmentService) GetUpcomingForDoctor(doctorID uint) ([]models.Appointment, error) {
	if err := s.requireDoctor(doctorID); err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	err := s.db.Preload("Patient.User").
		Where("doctor_id = ? AND schedule_time > ?", doctorID, time.Now()).
		Order("schedule_time asc").
		Find(&appointments).Error
	return appointments, err
}

// GetUpcomingForPatient returns appointments scheduled strictly after now.
func (s *AppointmentService) GetUpcomingForPatient(patientID uint) ([]models.Appointment, error) {
	if err := s.requirePatient(patientID); err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	err := s.db.Preload("Doctor.User").
		Where("patient_id = ? AND schedule_time > ?", patientID, time.Now()).
		Order("schedule_time asc").
		Find(&appointments).Error
	return appointments, err
}

func (s *AppointmentService) requireDoctor(doctorID uint) error {
	var count int64
	if err := s.db.Model(&models.Doctor{}).Where("id = ?", doctorID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

func (s *AppointmentService) requirePatient(patientID uint) error {
	var count int64
	if err := s.db.Model(&models.Patient{}).Where("id = ?", patientID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrPatientNotFound
	}
	return nil
}
