// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendSubmissionAlert(toEmail, featureTitle string, featureId int, submitterEmail string, submittedAt time.Time) error
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

// SendSubmissionAlert notifies the admin about a new roadmap submission so
// obvious spam can be declined before it gathers votes.
func (s *emailService) SendSubmissionAlert(toEmail, featureTitle string, featureId int, submitterEmail string, submittedAt time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New roadmap submission: %s", featureTitle))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New Feature Submitted</h2>
			<p><strong>Title:</strong> %s</p>
			<p><strong>ID:</strong> #%d</p>
			<p><strong>Submitter:</strong> %s</p>
			<p><strong>Submitted:</strong> %s</p>
			<p>It is now listed on the public roadmap with status "Under Review".</p>
		</div>
	`, featureTitle, featureId, submitterEmail, submittedAt.Format(time.RFC1123))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send submission alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Submission alert sent to %s\n", toEmail)
	return nil
}
