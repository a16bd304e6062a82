package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"os"
)

// Service sends transactional mail over SMTP. Configuration comes from the
// environment at construction time.
type Service struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewMailService() *Service {
	return &Service{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
}

// Send delivers a single plain-text message.
func (s *Service) Send(to, subject, body string) error {
	msg := []byte("From: " + s.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	addr := s.host + ":" + s.port
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// SendVerificationEmail delivers the signup OTP.
func (s *Service) SendVerificationEmail(to, code string) error {
	body := fmt.Sprintf("Your verification code is %s. It expires in 1 hour.", code)
	return s.Send(to, "Verify your email", body)
}

// NotifyBooking sends the session confirmation to both attendees. It
// satisfies the booking orchestrator's Notifier interface.
func (s *Service) NotifyBooking(ctx context.Context, userEmail, speakerEmail, date, timeSlot string) error {
	subject := "Session booking confirmed"
	body := fmt.Sprintf("Your speaker session on %s at %s is confirmed.", date, timeSlot)

	if err := s.Send(userEmail, subject, body); err != nil {
		return err
	}
	return s.Send(speakerEmail, subject, body)
}
