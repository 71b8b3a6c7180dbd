package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/mocks"
)

func TestAuditRecorderImpl_PersistsEntries(t *testing.T) {
	repo := mocks.NewMockAuditLogRepository()

	var mu sync.Mutex
	var written []*domain.AuditLog
	repo.CreateFunc = func(ctx context.Context, entry *domain.AuditLog) error {
		mu.Lock()
		written = append(written, entry)
		mu.Unlock()
		return nil
	}

	recorder := NewAuditRecorder(repo, 8)
	recorder.Record(&domain.AuditLog{UserID: "user-1", Action: domain.ActionCreate, Entity: "users"})
	recorder.Record(&domain.AuditLog{UserID: "user-1", Action: domain.ActionDelete, Entity: "users"})
	recorder.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(written) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(written))
	}
	if written[0].Action != domain.ActionCreate || written[1].Action != domain.ActionDelete {
		t.Error("expected entries in submission order")
	}
}

func TestAuditRecorderImpl_RecordNeverBlocks(t *testing.T) {
	repo := mocks.NewMockAuditLogRepository()
	blocked := make(chan struct{})
	repo.CreateFunc = func(ctx context.Context, entry *domain.AuditLog) error {
		<-blocked
		return nil
	}

	recorder := NewAuditRecorder(repo, 1)
	defer func() {
		close(blocked)
		recorder.Close()
	}()

	done := make(chan struct{})
	go func() {
		// Worker is stuck; buffer holds one; the rest must be dropped,
		// not queued.
		for i := 0; i < 10; i++ {
			recorder.Record(&domain.AuditLog{UserID: "user-1", Action: domain.ActionLogin, Entity: "auth"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full buffer")
	}
}

func TestAuditRecorderImpl_WriteFailureDoesNotStopWorker(t *testing.T) {
	repo := mocks.NewMockAuditLogRepository()

	var mu sync.Mutex
	var calls int
	repo.CreateFunc = func(ctx context.Context, entry *domain.AuditLog) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 1 {
			return context.DeadlineExceeded
		}
		return nil
	}

	recorder := NewAuditRecorder(repo, 8)
	recorder.Record(&domain.AuditLog{UserID: "user-1", Action: domain.ActionUpdate, Entity: "users"})
	recorder.Record(&domain.AuditLog{UserID: "user-1", Action: domain.ActionUpdate, Entity: "users"})
	recorder.Close()

	mu.Lock()
	defer mu.Unlock()
	if calls != 2 {
		t.Fatalf("expected worker to keep going after a failure, got %d calls", calls)
	}
}
