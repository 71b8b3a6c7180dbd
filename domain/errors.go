package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailNotVerified   = errors.New("please verify your email first")
	ErrAccountSuspended   = errors.New("your account has been suspended")
)

// Verification and reset errors
var (
	ErrInvalidVerifyToken = errors.New("invalid verification token")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

// Token errors
var (
	ErrTokenInvalid        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
)
