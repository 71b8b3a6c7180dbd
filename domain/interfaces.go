package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByVerifyToken(ctx context.Context, token string) (*User, error)
	FindByResetToken(ctx context.Context, token string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q UserListQuery) ([]*User, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByRoles(ctx context.Context, roles ...string) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// SessionRepository defines session ledger operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	DeleteByUser(ctx context.Context, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*Session, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// AuditLogRepository defines audit trail persistence
type AuditLogRepository interface {
	Create(ctx context.Context, entry *AuditLog) error
	List(ctx context.Context, q AuditLogQuery) ([]*AuditLog, int64, error)
}

// AuthService defines the account lifecycle operations
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string, meta ClientMeta) (*AuthResult, error)
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, userID string) error
	Profile(ctx context.Context, userID string) (*User, error)
}

// UserService defines profile and admin user management operations
type UserService interface {
	ListUsers(ctx context.Context, q UserListQuery) ([]*User, int64, error)
	GetUser(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, id string, fields UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id string) error
	UpdateProfile(ctx context.Context, id string, fields ProfileUpdate) (*User, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

// UserUpdate carries optional admin-editable user fields
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Role      *string
	Status    *string
}

// ProfileUpdate carries optional self-service profile fields
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Avatar    *string
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService issues and verifies the two token classes. Access and
// refresh tokens are signed with distinct secrets.
type TokenService interface {
	IssueAccess(userID, email, role string) (string, error)
	IssueRefresh(userID, email string) (string, error)
	VerifyAccess(token string) (*AccessClaims, error)
	VerifyRefresh(token string) (*RefreshClaims, error)
	// Decode extracts claims without verifying the signature. Never use
	// the result to establish identity.
	Decode(token string) (*AccessClaims, error)
}

// Mailer defines the email-sending collaborator. Send is the raw
// {to, subject, htmlBody} primitive; the remaining methods render the
// account lifecycle templates.
type Mailer interface {
	Send(to, subject, htmlBody string) error
	SendVerification(to, name, token string) error
	SendPasswordReset(to, name, token string) error
	SendWelcome(to, name string) error
}

// AuditRecorder accepts audit entries without blocking the caller
type AuditRecorder interface {
	Record(entry *AuditLog)
}

// PolicyService answers role/resource/action authorization checks
type PolicyService interface {
	CheckPermission(role, resource, action string) (bool, error)
}
