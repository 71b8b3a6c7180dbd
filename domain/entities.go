package domain

import "time"

// User roles
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// User account statuses
const (
	StatusPending   = "PENDING"
	StatusActive    = "ACTIVE"
	StatusSuspended = "SUSPENDED"
	StatusInactive  = "INACTIVE"
)

// Audit actions
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionLogin  = "LOGIN"
)

// User represents an identity record in the system
type User struct {
	ID                   string
	Email                string
	PasswordHash         string
	FirstName            string
	LastName             string
	Phone                string
	Avatar               string
	Role                 string
	Status               string
	IsEmailVerified      bool
	EmailVerifyToken     string
	ResetPasswordToken   string
	ResetPasswordExpires *time.Time
	RefreshToken         string
	LastLogin            *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// FullName returns the user's display name for email templates
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Session represents one issued login
type Session struct {
	ID           string
	UserID       string
	Token        string
	RefreshToken string
	ExpiresAt    time.Time
	IPAddress    string
	UserAgent    string
	CreatedAt    time.Time
}

// AuditLog is an append-only record of an HTTP call attributed to a user
type AuditLog struct {
	ID        string
	UserID    string
	Action    string
	Entity    string
	Details   string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
}

// AccessClaims are the verified contents of an access token
type AccessClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// RefreshClaims are the verified contents of a refresh token
type RefreshClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

// RegisterInput carries the fields accepted at registration
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// ClientMeta carries request-level metadata into the auth flow
type ClientMeta struct {
	IPAddress string
	UserAgent string
}

// UserListQuery describes admin user listing options
type UserListQuery struct {
	Page   int
	Limit  int
	Search string
	Sort   string
	Order  string
}

// AuditLogQuery describes audit log listing options
type AuditLogQuery struct {
	Page   int
	Limit  int
	UserID string
	Action string
}

// DashboardStats aggregates user counts for the admin dashboard
type DashboardStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	ActiveUsers       int64 `json:"activeUsers"`
	AdminUsers        int64 `json:"adminUsers"`
	NewUsersThisMonth int64 `json:"newUsersThisMonth"`
}
