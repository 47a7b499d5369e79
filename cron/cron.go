package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/healeasy/healeasy-api/db"
	"github.com/healeasy/healeasy-api/models"
	"github.com/healeasy/healeasy-api/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders checks for appointments and sends reminders
func sendAppointmentReminders() {
	var appointments []models.Appointment
	now := time.Now()
	// Look for appointments starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Doctor.User").Preload("Patient.User").
		Where("status = ? AND schedule_time BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Patient.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Consultation with Dr. %s", appointment.Doctor.User.Username)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your consultation scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> Dr. %s (%s)</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Duration:</strong> %d minutes</li>
		</ul>
		<p><a href="%s">Join the video consultation</a></p>
		<p>If you need to reschedule or cancel, please do so as soon as possible.</p>
		<p>Best regards,</p>
		<p>The HealEasy Team</p>
	`, appointment.Patient.User.Username,
		appointment.Doctor.User.Username,
		appointment.Doctor.Specialization,
		appointment.ScheduleTime.Format("2006-01-02 15:04:05"),
		appointment.DurationMinutes,
		appointment.ZoomJoinURL)

	return utils.SendEmail(appointment.Patient.User.Email, subject, body)
}
