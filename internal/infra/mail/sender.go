package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/bizzyglass/glass-crm/internal/entity"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendLeadCaptured tells the owner a new lead came in through the form.
func (s *EmailSender) SendLeadCaptured(to string, lead *entity.Lead) error {
	subject := fmt.Sprintf("New lead: %s %s (%s %s)", lead.FirstName, lead.LastName, lead.Make, lead.Model)
	body := fmt.Sprintf(
		"<p>A new lead just came in.</p>"+
			"<p><b>%s %s</b><br>%s<br>%s</p>"+
			"<p>Vehicle: %s %s %s (%s)<br>Urgency: %s</p>"+
			"<p>Damage: %s</p>",
		lead.FirstName, lead.LastName, lead.Phone, lead.Email,
		lead.Year, lead.Make, lead.Model, lead.BodyType, lead.Urgency,
		lead.DamageDescription,
	)
	return s.send(to, subject, body)
}

// SendPaymentReceived tells the owner a checkout session completed.
func (s *EmailSender) SendPaymentReceived(to string, lead *entity.Lead, mode string, amountCents int64) error {
	subject := fmt.Sprintf("Payment received: %s %s ($%.2f %s)",
		lead.FirstName, lead.LastName, float64(amountCents)/100, mode)
	body := fmt.Sprintf(
		"<p><b>%s %s</b> paid <b>$%.2f</b> (%s) for the %s %s %s.</p>"+
			"<p>The lead has been moved to SCHEDULED.</p>",
		lead.FirstName, lead.LastName, float64(amountCents)/100, mode,
		lead.Year, lead.Make, lead.Model,
	)
	return s.send(to, subject, body)
}

func (s *EmailSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}

	return nil
}
