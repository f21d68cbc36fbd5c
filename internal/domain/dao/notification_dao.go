package dao

import (
	"context"
	"time"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// NotificationDAO defines data access for notifications.
type NotificationDAO interface {
	// Create inserts a single notification, assigning its UUID when empty
	Create(ctx context.Context, n *entity.Notification) error

	// CreateMany inserts a batch of notifications in one write
	CreateMany(ctx context.Context, ns []*entity.Notification) error

	// FindByUserID retrieves up to limit notifications for a user,
	// newest first
	FindByUserID(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)

	// MarkRead marks one notification read; returns found=false when no
	// document matched
	MarkRead(ctx context.Context, id string) (bool, error)

	// MarkAllRead marks every unread notification for a user as read
	MarkAllRead(ctx context.Context, userID string) error

	// Delete hard-deletes a notification; returns found=false when no
	// document matched
	Delete(ctx context.Context, id string) (bool, error)

	// DeleteReadBefore removes read notifications older than cutoff and
	// returns the number removed
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
