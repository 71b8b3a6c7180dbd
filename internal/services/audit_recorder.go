package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

const auditWriteTimeout = 5 * time.Second

// AuditRecorderImpl implements domain.AuditRecorder. Entries are handed to
// a single background worker through a buffered channel; enqueueing never
// blocks the request path and persistence failures are logged, not
// surfaced. When the buffer is full the entry is dropped.
type AuditRecorderImpl struct {
	repo      domain.AuditLogRepository
	entries   chan *domain.AuditLog
	done      chan struct{}
	closeOnce sync.Once
}

// NewAuditRecorder creates the recorder and starts its worker
func NewAuditRecorder(repo domain.AuditLogRepository, buffer int) *AuditRecorderImpl {
	if buffer <= 0 {
		buffer = 256
	}
	r := &AuditRecorderImpl{
		repo:    repo,
		entries: make(chan *domain.AuditLog, buffer),
		done:    make(chan struct{}),
	}
	go r.run()
	return r
}

// Record implements domain.AuditRecorder
func (r *AuditRecorderImpl) Record(entry *domain.AuditLog) {
	select {
	case r.entries <- entry:
	default:
		log.Printf("AUDIT_DROPPED: action=%s entity=%s user=%s", entry.Action, entry.Entity, entry.UserID)
	}
}

// Close stops accepting entries, drains the buffer and waits for the
// worker to finish.
func (r *AuditRecorderImpl) Close() {
	r.closeOnce.Do(func() {
		close(r.entries)
	})
	<-r.done
}

func (r *AuditRecorderImpl) run() {
	defer close(r.done)
	for entry := range r.entries {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		if err := r.repo.Create(ctx, entry); err != nil {
			log.Printf("AUDIT_WRITE_FAILED: action=%s entity=%s user=%s error=%v",
				entry.Action, entry.Entity, entry.UserID, err)
		}
		cancel()
	}
}
