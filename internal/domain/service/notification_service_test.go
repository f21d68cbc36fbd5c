package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/testutil/mocks"
)

func setupNotificationService(t *testing.T) (NotificationService, *mocks.MockNotificationRepository) {
	notificationRepo := mocks.NewMockNotificationRepository()
	svc := NewNotificationService(notificationRepo)
	return svc, notificationRepo
}

func TestNotificationService_List_NewestFirst(t *testing.T) {
	svc, notificationRepo := setupNotificationService(t)
	ctx := context.Background()

	first := &entity.Notification{UserID: "u-1", Title: "first"}
	second := &entity.Notification{UserID: "u-1", Title: "second"}
	other := &entity.Notification{UserID: "u-2", Title: "other"}
	notificationRepo.AddNotification(first)
	notificationRepo.AddNotification(second)
	notificationRepo.AddNotification(other)

	got, err := svc.List(ctx, "u-1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d notifications, want 2", len(got))
	}
	if got[0].Title != "second" || got[1].Title != "first" {
		t.Errorf("List() order = [%v %v], want [second first]", got[0].Title, got[1].Title)
	}
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	svc, notificationRepo := setupNotificationService(t)
	ctx := context.Background()

	n := &entity.Notification{UserID: "u-1"}
	notificationRepo.AddNotification(n)

	if err := svc.MarkRead(ctx, n.ID); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if !n.Read {
		t.Error("MarkRead() did not mark the notification read")
	}
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	svc, _ := setupNotificationService(t)
	ctx := context.Background()

	err := svc.MarkRead(ctx, "missing")
	if !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("MarkRead() error = %v, want ErrNotificationNotFound", err)
	}
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	svc, notificationRepo := setupNotificationService(t)
	ctx := context.Background()

	mine := &entity.Notification{UserID: "u-1"}
	other := &entity.Notification{UserID: "u-2"}
	notificationRepo.AddNotification(mine)
	notificationRepo.AddNotification(other)

	if err := svc.MarkAllRead(ctx, "u-1"); err != nil {
		t.Fatalf("MarkAllRead() error = %v", err)
	}
	if !mine.Read {
		t.Error("MarkAllRead() skipped the user's notification")
	}
	if other.Read {
		t.Error("MarkAllRead() touched another user's notification")
	}
}

func TestNotificationService_Delete_NotFound(t *testing.T) {
	svc, _ := setupNotificationService(t)
	ctx := context.Background()

	err := svc.Delete(ctx, "missing")
	if !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotificationNotFound", err)
	}
}

func TestNotificationService_PurgeRead(t *testing.T) {
	svc, notificationRepo := setupNotificationService(t)
	ctx := context.Background()

	old := time.Now().Add(-60 * 24 * time.Hour)
	notificationRepo.AddNotification(&entity.Notification{UserID: "u-1", Read: true, Timestamp: old})
	notificationRepo.AddNotification(&entity.Notification{UserID: "u-1", Read: false, Timestamp: old})
	notificationRepo.AddNotification(&entity.Notification{UserID: "u-1", Read: true, Timestamp: time.Now()})

	removed, err := svc.PurgeRead(ctx, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("PurgeRead() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("PurgeRead() removed %d, want 1", removed)
	}
	if got := len(notificationRepo.All()); got != 2 {
		t.Errorf("PurgeRead() left %d notifications, want 2", got)
	}
}
