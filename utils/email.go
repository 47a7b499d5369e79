package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

// SendEmail sends an HTML email through the configured SMTP server.
func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SMTPMailer sends the platform's notification emails. All templated sends
// report success as a bool so callers can treat delivery failure as non-fatal.
type SMTPMailer struct{}

var DefaultMailer = &SMTPMailer{}

func (m *SMTPMailer) SendSimpleEmail(to, subject, text string) bool {
	msg := gomail.NewMessage()
	msg.SetHeader("From", os.Getenv("EMAIL_USER"))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)

	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("EMAIL_USER"), os.Getenv("EMAIL_PASS"))
	if err := d.DialAndSend(msg); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return false
	}
	return true
}

func (m *SMTPMailer) SendHTMLEmail(to, subject, html string) bool {
	if err := SendEmail(to, subject, html); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return false
	}
	return true
}

// SendDoctorInvitationEmail mails the invitation code an approved doctor needs
// to complete registration.
func (m *SMTPMailer) SendDoctorInvitationEmail(to, doctorName, code, expirationDate string) bool {
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	registrationLink := fmt.Sprintf("%s/doctor/complete-registration?code=%s", frontendURL, code)

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! Your application to join HealEasy as a doctor has been approved.</p>
		<p>To complete your registration, please use the following invitation code:</p>
		<h2 style="text-align: center;">%s</h2>
		<p>This code will expire on %s.</p>
		<p><a href="%s">Complete Registration</a></p>
		<p>If the link doesn't work, copy and paste the following URL into your browser:</p>
		<p>%s</p>
		<p>This is an automated message. Please do not reply to this email.</p>
		<p>&copy; %d HealEasy. All rights reserved.</p>
	`, doctorName, code, expirationDate, registrationLink, registrationLink, time.Now().Year())

	return m.SendHTMLEmail(to, "Complete Your HealEasy Doctor Registration", body)
}

// SendDoctorApplicationSubmissionEmail confirms that a doctor's application was
// received and is awaiting review.
func (m *SMTPMailer) SendDoctorApplicationSubmissionEmail(to, doctorName string) bool {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for applying to join HealEasy as a doctor.</p>
		<p>We have received your application and supporting documents. Our team will
		review them and get back to you shortly.</p>
		<p>This is an automated message. Please do not reply to this email.</p>
		<p>&copy; %d HealEasy. All rights reserved.</p>
	`, doctorName, time.Now().Year())

	return m.SendHTMLEmail(to, "HealEasy Doctor Application Received", body)
}

// SendDoctorApplicationRejectionEmail notifies a doctor that their application
// was rejected, with an optional reason.
func (m *SMTPMailer) SendDoctorApplicationRejectionEmail(to, doctorName, reason string) bool {
	reasonBlock := ""
	if reason != "" {
		reasonBlock = fmt.Sprintf("<p><strong>Reason:</strong> %s</p>", reason)
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We regret to inform you that your application to join HealEasy as a doctor
		has not been approved.</p>
		%s
		<p>You may submit a new application with updated documents at any time.</p>
		<p>This is an automated message. Please do not reply to this email.</p>
		<p>&copy; %d HealEasy. All rights reserved.</p>
	`, doctorName, reasonBlock, time.Now().Year())

	return m.SendHTMLEmail(to, "HealEasy Doctor Application Update", body)
}
