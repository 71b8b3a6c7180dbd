package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// AuditLogRepositoryImpl implements domain.AuditLogRepository using GORM
type AuditLogRepositoryImpl struct {
	db *gorm.DB
}

// DBAuditLog represents the database model for AuditLog
type DBAuditLog struct {
	ID        string  `gorm:"primaryKey;size:36"`
	UserID    *string `gorm:"index;size:36"`
	Action    string  `gorm:"index;size:16"`
	Entity    string  `gorm:"index;size:64"`
	Details   string  `gorm:"type:text"`
	IPAddress string  `gorm:"size:64"`
	UserAgent string  `gorm:"size:512"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAuditLog) TableName() string {
	return "audit_logs"
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) domain.AuditLogRepository {
	return &AuditLogRepositoryImpl{db: db}
}

// Create implements domain.AuditLogRepository
func (r *AuditLogRepositoryImpl) Create(ctx context.Context, entry *domain.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	dbEntry := &DBAuditLog{
		ID:        entry.ID,
		UserID:    strPtr(entry.UserID),
		Action:    entry.Action,
		Entity:    entry.Entity,
		Details:   entry.Details,
		IPAddress: entry.IPAddress,
		UserAgent: entry.UserAgent,
	}
	return r.db.WithContext(ctx).Create(dbEntry).Error
}

// List implements domain.AuditLogRepository with optional user/action filters
func (r *AuditLogRepositoryImpl) List(ctx context.Context, q domain.AuditLogQuery) ([]*domain.AuditLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&DBAuditLog{})

	if q.UserID != "" {
		query = query.Where("user_id = ?", q.UserID)
	}
	if q.Action != "" {
		query = query.Where("action = ?", q.Action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	var dbEntries []DBAuditLog
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&dbEntries).Error
	if err != nil {
		return nil, 0, err
	}

	entries := make([]*domain.AuditLog, 0, len(dbEntries))
	for i := range dbEntries {
		e := dbEntries[i]
		entries = append(entries, &domain.AuditLog{
			ID:        e.ID,
			UserID:    strVal(e.UserID),
			Action:    e.Action,
			Entity:    e.Entity,
			Details:   e.Details,
			IPAddress: e.IPAddress,
			UserAgent: e.UserAgent,
			CreatedAt: e.CreatedAt,
		})
	}
	return entries, total, nil
}
