package notifications

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// SMTPServiceImpl implements domain.Mailer over plain SMTP with AUTH
type SMTPServiceImpl struct {
	host        string
	port        int
	user        string
	pass        string
	from        string
	frontendURL string
}

// NewSMTPService creates a new SMTP mailer. Links in rendered emails point
// at frontendURL, which forwards tokens back to the API.
func NewSMTPService(host string, port int, user, pass, from, frontendURL string) domain.Mailer {
	return &SMTPServiceImpl{
		host:        host,
		port:        port,
		user:        user,
		pass:        pass,
		from:        from,
		frontendURL: frontendURL,
	}
}

// SendVerification implements domain.Mailer
func (s *SMTPServiceImpl) SendVerification(to, name, token string) error {
	subject, html := VerificationEmail(s.frontendURL, name, token)
	return s.Send(to, subject, html)
}

// SendPasswordReset implements domain.Mailer
func (s *SMTPServiceImpl) SendPasswordReset(to, name, token string) error {
	subject, html := ResetPasswordEmail(s.frontendURL, name, token)
	return s.Send(to, subject, html)
}

// SendWelcome implements domain.Mailer
func (s *SMTPServiceImpl) SendWelcome(to, name string) error {
	subject, html := WelcomeEmail(name)
	return s.Send(to, subject, html)
}

// Send implements domain.Mailer. If credentials are not configured the
// message is printed instead of sent, so local setups work without SMTP.
func (s *SMTPServiceImpl) Send(to, subject, htmlBody string) error {
	if s.user == "" || s.host == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s\n", to, subject)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + s.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		htmlBody,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
