package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func emailConfigFromEnv() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendEmail sends an HTML email to the ops mailbox
func SendEmail(to, subject, body string) error {
	config := emailConfigFromEnv()
	if config.Host == "" || to == "" {
		return fmt.Errorf("email is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

// SendManualReviewAlert notifies ops that a review submission needs a
// human decision. Best-effort: failures are logged, never returned.
func SendManualReviewAlert(reservationID uint, reviewURL, reason string) {
	to := os.Getenv("ADMIN_EMAIL")
	body := fmt.Sprintf(`
		<h2>Review needs manual verification</h2>
		<p>Reservation: %d</p>
		<p>Link: <a href="%s">%s</a></p>
		<p>Reason: %s</p>
	`, reservationID, reviewURL, reviewURL, reason)

	if err := SendEmail(to, "Review pending manual verification", body); err != nil {
		LogError("Failed to send manual review alert for reservation %d: %v", reservationID, err)
	}
}

// SendSyncFailureAlert notifies ops that a reservation/booking mirror
// write failed and the pair may have diverged.
func SendSyncFailureAlert(kind string, id uint, cause error) {
	to := os.Getenv("ADMIN_EMAIL")
	body := fmt.Sprintf(`
		<h2>Record sync failure</h2>
		<p>Source record: %s %d</p>
		<p>Cause: %v</p>
		<p>Check the reconciliation report for divergence.</p>
	`, kind, id, cause)

	if err := SendEmail(to, "Reservation/booking sync failure", body); err != nil {
		LogError("Failed to send sync failure alert for %s %d: %v", kind, id, err)
	}
}
