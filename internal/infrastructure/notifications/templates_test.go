package notifications

import (
	"strings"
	"testing"
)

func TestVerificationEmail(t *testing.T) {
	subject, html := VerificationEmail("https://app.example.com", "Jane Doe", "tok123")

	if subject == "" {
		t.Error("expected a subject")
	}
	if !strings.Contains(html, "https://app.example.com/verify-email?token=tok123") {
		t.Error("expected the verification link")
	}
	if !strings.Contains(html, "Jane Doe") {
		t.Error("expected the recipient name")
	}
}

func TestResetPasswordEmail(t *testing.T) {
	subject, html := ResetPasswordEmail("https://app.example.com", "Jane Doe", "tok456")

	if !strings.Contains(subject, "password") && !strings.Contains(subject, "Password") {
		t.Errorf("unexpected subject %q", subject)
	}
	if !strings.Contains(html, "https://app.example.com/reset-password?token=tok456") {
		t.Error("expected the reset link")
	}
}

func TestWelcomeEmail(t *testing.T) {
	subject, html := WelcomeEmail("Jane Doe")

	if subject == "" {
		t.Error("expected a subject")
	}
	if !strings.Contains(html, "Jane Doe") {
		t.Error("expected the recipient name")
	}
}

func TestSendWithoutCredentialsDoesNotDial(t *testing.T) {
	svc := NewSMTPService("", 0, "", "", "", "https://app.example.com")

	// Unconfigured SMTP must not attempt a network call.
	if err := svc.Send("jane@example.com", "Hello", "<p>hi</p>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.SendVerification("jane@example.com", "Jane", "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
