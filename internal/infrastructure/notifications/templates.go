package notifications

import "fmt"

// Email bodies mirror the dashboard frontend's branding. Links point at
// the frontend, which forwards the token back to the API.

// VerificationEmail renders the account verification message
func VerificationEmail(frontendURL, name, token string) (subject, html string) {
	url := fmt.Sprintf("%s/verify-email?token=%s", frontendURL, token)
	html = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #0ea5e9;">Welcome to NEXORA!</h1>
  <p>Hi %s,</p>
  <p>Thank you for registering with NEXORA. Please verify your email address by clicking the button below:</p>
  <a href="%s" style="display: inline-block; background-color: #0ea5e9; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 16px 0;">Verify Email</a>
  <p>Or copy and paste this link: %s</p>
  <p>This link will expire in 24 hours.</p>
  <p>If you didn't create an account, please ignore this email.</p>
  <p>Best regards,<br>The NEXORA Team</p>
</div>`, name, url, url)
	return "Verify your NEXORA account", html
}

// ResetPasswordEmail renders the password reset message
func ResetPasswordEmail(frontendURL, name, token string) (subject, html string) {
	url := fmt.Sprintf("%s/reset-password?token=%s", frontendURL, token)
	html = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #0ea5e9;">Reset Your Password</h1>
  <p>Hi %s,</p>
  <p>We received a request to reset your password. Click the button below to create a new password:</p>
  <a href="%s" style="display: inline-block; background-color: #0ea5e9; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 16px 0;">Reset Password</a>
  <p>Or copy and paste this link: %s</p>
  <p>This link will expire in 1 hour.</p>
  <p>If you didn't request a password reset, please ignore this email.</p>
  <p>Best regards,<br>The NEXORA Team</p>
</div>`, name, url, url)
	return "Reset your NEXORA password", html
}

// WelcomeEmail renders the post-verification welcome message
func WelcomeEmail(name string) (subject, html string) {
	html = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #0ea5e9;">Welcome to NEXORA!</h1>
  <p>Hi %s,</p>
  <p>Welcome to NEXORA! We're excited to have you on board.</p>
  <p>With NEXORA, you can:</p>
  <ul>
    <li>Manage your account</li>
    <li>Access advanced features</li>
    <li>Connect with our community</li>
  </ul>
  <p>If you have any questions, feel free to reach out to our support team.</p>
  <p>Best regards,<br>The NEXORA Team</p>
</div>`, name)
	return "Welcome to NEXORA!", html
}
