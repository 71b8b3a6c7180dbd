package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID                   string     `gorm:"primaryKey;size:36"`
	Email                string     `gorm:"uniqueIndex;size:255"`
	PasswordHash         string     `gorm:"column:password;size:255"`
	FirstName            string     `gorm:"size:128"`
	LastName             string     `gorm:"size:128"`
	Phone                *string    `gorm:"size:32"`
	Avatar               *string    `gorm:"size:512"`
	Role                 string     `gorm:"index;size:32;default:USER"`
	Status               string     `gorm:"index;size:32;default:PENDING"`
	IsEmailVerified      bool       `gorm:"index"`
	EmailVerifyToken     *string    `gorm:"index;size:128"`
	ResetPasswordToken   *string    `gorm:"index;size:128"`
	ResetPasswordExpires *time.Time
	RefreshToken         *string `gorm:"size:1024"`
	LastLogin            *time.Time
	CreatedAt            time.Time `gorm:"index"`
	UpdatedAt            time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	dbUser := userToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByVerifyToken implements domain.UserRepository
func (r *UserRepositoryImpl) FindByVerifyToken(ctx context.Context, token string) (*domain.User, error) {
	return r.findOne(ctx, "email_verify_token = ?", token)
}

// FindByResetToken implements domain.UserRepository. Only a token whose
// expiry is still in the future matches.
func (r *UserRepositoryImpl) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return r.findOne(ctx, "reset_password_token = ? AND reset_password_expires > ?", token, time.Now())
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := userToDB(user)
	return r.db.WithContext(ctx).Save(dbUser).Error
}

// Delete implements domain.UserRepository. Hard delete.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBUser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List implements domain.UserRepository with search, sort and pagination
func (r *UserRepositoryImpl) List(ctx context.Context, q domain.UserListQuery) ([]*domain.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&DBUser{})

	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sort := q.Sort
	switch sort {
	case "email", "first_name", "last_name", "role", "status", "created_at", "last_login":
	default:
		sort = "created_at"
	}
	order := "DESC"
	if q.Order == "asc" {
		order = "ASC"
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	var dbUsers []DBUser
	err := query.
		Order(sort + " " + order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&dbUsers).Error
	if err != nil {
		return nil, 0, err
	}

	users := make([]*domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, userToDomain(&dbUsers[i]))
	}
	return users, total, nil
}

// Count implements domain.UserRepository
func (r *UserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Count(&n).Error
	return n, err
}

// CountByStatus implements domain.UserRepository
func (r *UserRepositoryImpl) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

// CountByRoles implements domain.UserRepository
func (r *UserRepositoryImpl) CountByRoles(ctx context.Context, roles ...string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where("role IN ?", roles).Count(&n).Error
	return n, err
}

// CountCreatedSince implements domain.UserRepository
func (r *UserRepositoryImpl) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where("created_at >= ?", since).Count(&n).Error
	return n, err
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, cond string, args ...interface{}) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where(cond, args...).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userToDomain(&dbUser), nil
}

// userToDB converts a domain user to the database model
func userToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:                   user.ID,
		Email:                user.Email,
		PasswordHash:         user.PasswordHash,
		FirstName:            user.FirstName,
		LastName:             user.LastName,
		Phone:                strPtr(user.Phone),
		Avatar:               strPtr(user.Avatar),
		Role:                 user.Role,
		Status:               user.Status,
		IsEmailVerified:      user.IsEmailVerified,
		EmailVerifyToken:     strPtr(user.EmailVerifyToken),
		ResetPasswordToken:   strPtr(user.ResetPasswordToken),
		ResetPasswordExpires: user.ResetPasswordExpires,
		RefreshToken:         strPtr(user.RefreshToken),
		LastLogin:            user.LastLogin,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
}

// userToDomain converts the database model to a domain user
func userToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:                   dbUser.ID,
		Email:                dbUser.Email,
		PasswordHash:         dbUser.PasswordHash,
		FirstName:            dbUser.FirstName,
		LastName:             dbUser.LastName,
		Phone:                strVal(dbUser.Phone),
		Avatar:               strVal(dbUser.Avatar),
		Role:                 dbUser.Role,
		Status:               dbUser.Status,
		IsEmailVerified:      dbUser.IsEmailVerified,
		EmailVerifyToken:     strVal(dbUser.EmailVerifyToken),
		ResetPasswordToken:   strVal(dbUser.ResetPasswordToken),
		ResetPasswordExpires: dbUser.ResetPasswordExpires,
		RefreshToken:         strVal(dbUser.RefreshToken),
		LastLogin:            dbUser.LastLogin,
		CreatedAt:            dbUser.CreatedAt,
		UpdatedAt:            dbUser.UpdatedAt,
	}
}

// strPtr maps the empty string to NULL so single-use tokens are cleared,
// not stored as "".
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
