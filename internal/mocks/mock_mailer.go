package mocks

import "sync"

// SentMail captures one delivery attempt
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailer implements domain.Mailer interface for testing. Deliveries
// happen on background goroutines, so the capture slice is guarded.
type MockMailer struct {
	mu   sync.Mutex
	sent []SentMail

	SendFunc              func(to, subject, htmlBody string) error
	SendVerificationFunc  func(to, name, token string) error
	SendPasswordResetFunc func(to, name, token string) error
	SendWelcomeFunc       func(to, name string) error
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// Send records a raw delivery
func (m *MockMailer) Send(to, subject, htmlBody string) error {
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, htmlBody)
	}
	m.record(to, subject, htmlBody)
	return nil
}

// SendVerification records a verification email
func (m *MockMailer) SendVerification(to, name, token string) error {
	if m.SendVerificationFunc != nil {
		return m.SendVerificationFunc(to, name, token)
	}
	m.record(to, "verification", token)
	return nil
}

// SendPasswordReset records a password reset email
func (m *MockMailer) SendPasswordReset(to, name, token string) error {
	if m.SendPasswordResetFunc != nil {
		return m.SendPasswordResetFunc(to, name, token)
	}
	m.record(to, "password-reset", token)
	return nil
}

// SendWelcome records a welcome email
func (m *MockMailer) SendWelcome(to, name string) error {
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(to, name)
	}
	m.record(to, "welcome", "")
	return nil
}

// Sent returns a copy of everything recorded so far
func (m *MockMailer) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *MockMailer) record(to, subject, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMail{To: to, Subject: subject, Body: body})
}
