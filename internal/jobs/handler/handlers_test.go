package handler

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/testutil/mocks"
)

func setupHandlers(t *testing.T) (*Handlers, *mocks.MockNotificationRepository, *mocks.MockCircleRepository) {
	notificationRepo := mocks.NewMockNotificationRepository()
	circleRepo := mocks.NewMockCircleRepository()
	notificationService := service.NewNotificationService(notificationRepo)
	h := NewHandlers(notificationService, circleRepo, zap.NewNop())
	return h, notificationRepo, circleRepo
}

func TestHandlers_CleanupNotifications(t *testing.T) {
	h, notificationRepo, _ := setupHandlers(t)
	ctx := context.Background()

	old := time.Now().Add(-45 * 24 * time.Hour)
	notificationRepo.AddNotification(&entity.Notification{UserID: "u-1", Read: true, Timestamp: old})
	notificationRepo.AddNotification(&entity.Notification{UserID: "u-1", Read: false, Timestamp: old})

	err := h.CleanupNotifications(ctx, NotificationCleanupPayload{RetentionDays: 30})
	if err != nil {
		t.Fatalf("CleanupNotifications() error = %v", err)
	}
	if got := len(notificationRepo.All()); got != 1 {
		t.Errorf("CleanupNotifications() left %d notifications, want 1", got)
	}
}

func TestHandlers_CleanupNotifications_DryRun(t *testing.T) {
	h, notificationRepo, _ := setupHandlers(t)
	ctx := context.Background()

	old := time.Now().Add(-45 * 24 * time.Hour)
	notificationRepo.AddNotification(&entity.Notification{UserID: "u-1", Read: true, Timestamp: old})

	err := h.CleanupNotifications(ctx, NotificationCleanupPayload{RetentionDays: 30, DryRun: true})
	if err != nil {
		t.Fatalf("CleanupNotifications() error = %v", err)
	}
	if got := len(notificationRepo.All()); got != 1 {
		t.Errorf("dry run deleted notifications, %d left, want 1", got)
	}
}

func TestHandlers_CleanupNotifications_DefaultRetention(t *testing.T) {
	h, notificationRepo, _ := setupHandlers(t)
	ctx := context.Background()

	// Read but only a week old; the 30-day default must keep it.
	notificationRepo.AddNotification(&entity.Notification{
		UserID: "u-1", Read: true, Timestamp: time.Now().Add(-7 * 24 * time.Hour),
	})

	if err := h.CleanupNotifications(ctx, NotificationCleanupPayload{}); err != nil {
		t.Fatalf("CleanupNotifications() error = %v", err)
	}
	if got := len(notificationRepo.All()); got != 1 {
		t.Errorf("CleanupNotifications() left %d notifications, want 1", got)
	}
}

func TestHandlers_ReconcileMembers_SingleCircle(t *testing.T) {
	h, _, circleRepo := setupHandlers(t)
	ctx := context.Background()

	circle := &entity.ReadingCircle{
		Name:         "Drifted",
		Members:      []string{"u-1", "u-2"},
		MembersCount: 7,
	}
	circleRepo.AddCircle(circle)

	err := h.ReconcileMembers(ctx, MemberReconcilePayload{CircleID: circle.ID})
	if err != nil {
		t.Fatalf("ReconcileMembers() error = %v", err)
	}
	if circle.MembersCount != 2 {
		t.Errorf("ReconcileMembers() MembersCount = %d, want 2", circle.MembersCount)
	}
}

func TestHandlers_ReconcileMembers_AllCircles(t *testing.T) {
	h, _, circleRepo := setupHandlers(t)
	ctx := context.Background()

	drifted := &entity.ReadingCircle{Members: []string{"u-1"}, MembersCount: 9}
	consistent := &entity.ReadingCircle{Members: []string{"u-1"}, MembersCount: 1}
	circleRepo.AddCircle(drifted)
	circleRepo.AddCircle(consistent)

	if err := h.ReconcileMembers(ctx, MemberReconcilePayload{}); err != nil {
		t.Fatalf("ReconcileMembers() error = %v", err)
	}
	if drifted.MembersCount != 1 {
		t.Errorf("ReconcileMembers() drifted count = %d, want 1", drifted.MembersCount)
	}
	if consistent.MembersCount != 1 {
		t.Errorf("ReconcileMembers() consistent count = %d, want 1", consistent.MembersCount)
	}
}

func TestHandlers_ReconcileMembers_MissingCircle(t *testing.T) {
	h, _, _ := setupHandlers(t)
	ctx := context.Background()

	// A circle deleted between scheduling and execution is not an error.
	if err := h.ReconcileMembers(ctx, MemberReconcilePayload{CircleID: "gone"}); err != nil {
		t.Errorf("ReconcileMembers() error = %v, want nil", err)
	}
}
