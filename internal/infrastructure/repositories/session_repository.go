package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using GORM.
// The ledger is append/bulk-delete only: rows are never updated.
type SessionRepositoryImpl struct {
	db *gorm.DB
}

// DBSession represents the database model for Session
type DBSession struct {
	ID           string    `gorm:"primaryKey;size:36"`
	UserID       string    `gorm:"index;size:36"`
	Token        string    `gorm:"size:1024"`
	RefreshToken string    `gorm:"size:1024"`
	ExpiresAt    time.Time `gorm:"index"`
	IPAddress    string    `gorm:"size:64"`
	UserAgent    string    `gorm:"size:512"`
	CreatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBSession) TableName() string {
	return "sessions"
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) domain.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	dbSession := &DBSession{
		ID:           session.ID,
		UserID:       session.UserID,
		Token:        session.Token,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    session.ExpiresAt,
		IPAddress:    session.IPAddress,
		UserAgent:    session.UserAgent,
	}
	if err := r.db.WithContext(ctx).Create(dbSession).Error; err != nil {
		return err
	}
	session.CreatedAt = dbSession.CreatedAt
	return nil
}

// DeleteByUser implements domain.SessionRepository. Deleting zero rows is
// not an error.
func (r *SessionRepositoryImpl) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBSession{}).Error
}

// ListByUser implements domain.SessionRepository
func (r *SessionRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*domain.Session, error) {
	var dbSessions []DBSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dbSessions).Error
	if err != nil {
		return nil, err
	}

	sessions := make([]*domain.Session, 0, len(dbSessions))
	for i := range dbSessions {
		s := dbSessions[i]
		sessions = append(sessions, &domain.Session{
			ID:           s.ID,
			UserID:       s.UserID,
			Token:        s.Token,
			RefreshToken: s.RefreshToken,
			ExpiresAt:    s.ExpiresAt,
			IPAddress:    s.IPAddress,
			UserAgent:    s.UserAgent,
			CreatedAt:    s.CreatedAt,
		})
	}
	return sessions, nil
}

// CountByUser implements domain.SessionRepository
func (r *SessionRepositoryImpl) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&DBSession{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
