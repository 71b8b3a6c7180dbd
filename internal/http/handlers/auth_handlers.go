package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/http/middleware"
)

// forgotPasswordMessage is returned whether or not the email exists, so
// responses cannot be used to enumerate accounts.
const forgotPasswordMessage = "If the email exists, a reset link will be sent"

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required,min=2"`
	LastName  string `json:"lastName" binding:"required,min=2"`
	Phone     string `json:"phone,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest carries a verification token
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// ForgotPasswordRequest carries the account email
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest carries a reset token and the replacement password
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

var (
	hasLower = regexp.MustCompile(`[a-z]`)
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasDigit = regexp.MustCompile(`\d`)
)

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		if err == domain.ErrEmailTaken {
			fail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		internalError(c)
		return
	}

	ok(c, http.StatusCreated,
		"Registration successful. Please check your email to verify your account.",
		gin.H{"user": NewUserView(user)})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	meta := domain.ClientMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password, meta)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			fail(c, http.StatusUnauthorized, "Invalid credentials")
		case domain.ErrEmailNotVerified:
			fail(c, http.StatusForbidden, "Please verify your email first")
		case domain.ErrAccountSuspended:
			fail(c, http.StatusForbidden, "Your account has been suspended")
		default:
			internalError(c)
		}
		return
	}

	ok(c, http.StatusOK, "Login successful", gin.H{
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"user":         NewUserView(result.User),
	})
}

// VerifyEmail handles email verification
func (h *AuthHandlers) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	if err := h.authSvc.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		if err == domain.ErrInvalidVerifyToken {
			fail(c, http.StatusBadRequest, "Invalid verification token")
			return
		}
		internalError(c)
		return
	}

	ok(c, http.StatusOK, "Email verified successfully", nil)
}

// ForgotPassword handles password reset requests
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		internalError(c)
		return
	}

	ok(c, http.StatusOK, forgotPasswordMessage, nil)
}

// ResetPassword handles password resets
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	if !hasLower.MatchString(req.Password) || !hasUpper.MatchString(req.Password) || !hasDigit.MatchString(req.Password) {
		fail(c, http.StatusBadRequest, "Password must contain uppercase, lowercase and number")
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		if err == domain.ErrInvalidResetToken {
			fail(c, http.StatusBadRequest, "Invalid or expired reset token")
			return
		}
		internalError(c)
		return
	}

	ok(c, http.StatusOK, "Password reset successfully", nil)
}

// Refresh handles access token refresh
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	accessToken, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if err == domain.ErrInvalidRefreshToken {
			fail(c, http.StatusUnauthorized, "Invalid refresh token")
			return
		}
		internalError(c)
		return
	}

	ok(c, http.StatusOK, "Token refreshed successfully", gin.H{
		"accessToken": accessToken,
	})
}

// Logout invalidates the caller's sessions (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	userID, exists := c.Get(middleware.CtxUserID)
	if !exists {
		fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), userID.(string)); err != nil {
		internalError(c)
		return
	}

	ok(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the caller's profile (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, exists := c.Get(middleware.CtxUserID)
	if !exists {
		fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.authSvc.Profile(c.Request.Context(), userID.(string))
	if err != nil {
		if err == domain.ErrUserNotFound {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		internalError(c)
		return
	}

	ok(c, http.StatusOK, "Success", gin.H{"user": NewUserView(user)})
}
