package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// sessionTTL is the fixed expiry stamped on every session row. It does not
// track the configurable refresh token lifetime.
const sessionTTL = 7 * 24 * time.Hour

// AuthServiceConfig carries the policy knobs for the auth flow
type AuthServiceConfig struct {
	// RequireEmailVerification gates the PENDING -> ACTIVE transition
	// behind the emailed token. When false (development setups),
	// registration creates active, verified accounts and login silently
	// activates stale PENDING ones.
	RequireEmailVerification bool
	ResetTokenTTL            time.Duration
}

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	mailer      domain.Mailer
	config      AuthServiceConfig
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	mailer domain.Mailer,
	config AuthServiceConfig,
) domain.AuthService {
	if config.ResetTokenTTL <= 0 {
		config.ResetTokenTTL = time.Hour
	}
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		mailer:      mailer,
		config:      config,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         domain.RoleUser,
	}

	if s.config.RequireEmailVerification {
		user.Status = domain.StatusPending
		user.EmailVerifyToken = newOpaqueToken()
	} else {
		user.Status = domain.StatusActive
		user.IsEmailVerified = true
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.config.RequireEmailVerification {
		s.dispatch("verification email", user.Email, func() error {
			return s.mailer.SendVerification(user.Email, user.FullName(), user.EmailVerifyToken)
		})
	}

	return user, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string, meta domain.ClientMeta) (*domain.AuthResult, error) {
	// Lookup and password failures are deliberately indistinguishable.
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if user.Status == domain.StatusPending {
		if s.config.RequireEmailVerification {
			return nil, domain.ErrEmailNotVerified
		}
		user.Status = domain.StatusActive
		user.IsEmailVerified = true
		user.EmailVerifyToken = ""
	}

	if user.Status == domain.StatusSuspended {
		return nil, domain.ErrAccountSuspended
	}

	accessToken, err := s.tokenSvc.IssueAccess(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.IssueRefresh(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	session := &domain.Session{
		UserID:       user.ID,
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(sessionTTL),
		IPAddress:    orUnknown(meta.IPAddress),
		UserAgent:    orUnknown(meta.UserAgent),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// A new login supersedes any previously stored refresh token.
	now := time.Now()
	user.LastLogin = &now
	user.RefreshToken = refreshToken
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyEmail implements domain.AuthService. The token is single-use:
// a successful match clears it.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.userRepo.FindByVerifyToken(ctx, token)
	if err != nil {
		return domain.ErrInvalidVerifyToken
	}

	user.IsEmailVerified = true
	user.Status = domain.StatusActive
	user.EmailVerifyToken = ""
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	s.dispatch("welcome email", user.Email, func() error {
		return s.mailer.SendWelcome(user.Email, user.FullName())
	})

	return nil
}

// ForgotPassword implements domain.AuthService. It never reports whether
// the email exists; the HTTP boundary always returns the same message.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil
	}

	expires := time.Now().Add(s.config.ResetTokenTTL)
	user.ResetPasswordToken = newOpaqueToken()
	user.ResetPasswordExpires = &expires
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	token := user.ResetPasswordToken
	s.dispatch("reset password email", user.Email, func() error {
		return s.mailer.SendPasswordReset(user.Email, user.FullName(), token)
	})

	return nil
}

// ResetPassword implements domain.AuthService. A successful reset clears
// the token pair and revokes every session for the user.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		return domain.ErrInvalidResetToken
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.ResetPasswordToken = ""
	user.ResetPasswordExpires = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := s.sessionRepo.DeleteByUser(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	return nil
}

// RefreshToken implements domain.AuthService. Only the most recently
// issued refresh token for a user is accepted; a token superseded by a
// later login fails closed.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokenSvc.VerifyRefresh(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", domain.ErrInvalidRefreshToken
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return "", domain.ErrInvalidRefreshToken
	}

	accessToken, err := s.tokenSvc.IssueAccess(user.ID, user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	return accessToken, nil
}

// Logout implements domain.AuthService. Idempotent.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID string) error {
	if err := s.sessionRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil
		}
		return err
	}

	user.RefreshToken = ""
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// dispatch runs a side effect off the request path. Failures are logged
// and never surface to the caller.
func (s *AuthServiceImpl) dispatch(what, email string, fn func() error) {
	go func() {
		if err := fn(); err != nil {
			log.Printf("MAIL_DISPATCH_FAILED: kind=%q to=%s error=%v", what, email, err)
		}
	}()
}

// newOpaqueToken returns a single-use token with 256 bits of entropy
// (64 hex characters).
func newOpaqueToken() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
