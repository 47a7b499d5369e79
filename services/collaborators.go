package services

import (
	"mime/multipart"
	"time"

	"github.com/healeasy/healeasy-api/utils"
)

// Mailer sends the platform's notification emails. Templated sends report
// success as a bool; callers log failures and carry on.
type Mailer interface {
	SendSimpleEmail(to, subject, text string) bool
	SendHTMLEmail(to, subject, html string) bool
	SendDoctorInvitationEmail(to, doctorName, code, expirationDate string) bool
	SendDoctorApplicationSubmissionEmail(to, doctorName string) bool
	SendDoctorApplicationRejectionEmail(to, doctorName, reason string) bool
}

// Uploader stores profile images and supporting documents.
type Uploader interface {
	UploadImage(file *multipart.FileHeader) (string, error)
	UploadDocument(file *multipart.FileHeader) (string, error)
	DeleteImage(publicID string) error
}

// MeetingProvider provisions a video-conference resource per appointment.
type MeetingProvider interface {
	CreateMeeting(topic string, startTime time.Time, durationMinutes int, agenda string) (*utils.MeetingDetails, error)
	GetMeeting(meetingID string) (*utils.MeetingDetails, error)
	UpdateMeeting(meetingID, topic string, startTime time.Time, durationMinutes int, agenda string) error
	DeleteMeeting(meetingID string) (bool, error)
}
