package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendBookingConfirmation(toEmail, studentName, tutorName, day, timeRange, schedulingLink string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendBookingConfirmation(toEmail, studentName, tutorName, day, timeRange, schedulingLink string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Tutoring Session is Booked")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your tutoring session with <strong>%s</strong> is confirmed:</p>
			<p><strong>%s</strong> at <strong>%s</strong></p>
			<p>Add it to your calendar:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Schedule Session</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>If you didn't book this session, please ignore this email.</p>
		</div>
	`, studentName, tutorName, day, timeRange, schedulingLink, schedulingLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send booking confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Booking confirmation sent to %s\n", toEmail)
	return nil
}
