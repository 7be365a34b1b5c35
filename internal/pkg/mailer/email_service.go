package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendTrialStarted(toEmail, planName, expiresAt string) error
	SendOrderCompleted(toEmail, planName, amount string) error
	SendOrderRejected(toEmail, planName, reason string) error
	SendRequestDecided(toEmail, planName, decision string) error
	Send(toEmail, subject, htmlBody string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) Send(toEmail, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}
	return nil
}

func (s *emailService) SendTrialStarted(toEmail, planName, expiresAt string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your trial has started</h2>
			<p>You now have full access to the <b>%s</b> plan.</p>
			<p>The trial runs until <b>%s</b>. Pick a plan before then to keep your workspace running.</p>
			<a href="%s/billing" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View Plans</a>
		</div>
	`, planName, expiresAt, s.frontendURL)
	return s.Send(toEmail, "Your trial has started", body)
}

func (s *emailService) SendOrderCompleted(toEmail, planName, amount string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment received</h2>
			<p>Your payment of <b>%s</b> for the <b>%s</b> plan was successful.</p>
			<p>The plan is active on your workspace now.</p>
		</div>
	`, amount, planName)
	return s.Send(toEmail, "Payment received", body)
}

func (s *emailService) SendOrderRejected(toEmail, planName, reason string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Order not completed</h2>
			<p>Your order for the <b>%s</b> plan could not be completed.</p>
			<p>Reason: %s</p>
			<p>You can retry the payment from your billing page.</p>
		</div>
	`, planName, reason)
	return s.Send(toEmail, "Order not completed", body)
}

func (s *emailService) SendRequestDecided(toEmail, planName, decision string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Plan change %s</h2>
			<p>Your request to switch to the <b>%s</b> plan was <b>%s</b>.</p>
		</div>
	`, decision, planName, decision)
	return s.Send(toEmail, "Plan change request update", body)
}
