package repository

import (
	"context"
	"time"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// TradeRepository defines the interface for trade data operations
type TradeRepository interface {
	// Create creates a new trade
	Create(ctx context.Context, trade *entity.Trade) error

	// GetByID retrieves a trade by public UUID
	GetByID(ctx context.Context, id string) (*entity.Trade, error)

	// GetByUserID retrieves trades where the user is requester or owner
	GetByUserID(ctx context.Context, userID string) ([]*entity.Trade, error)

	// UpdateStatus sets the status and returns the updated trade, or nil
	// when the trade does not exist
	UpdateStatus(ctx context.Context, id string, status entity.TradeStatus) (*entity.Trade, error)
}

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	// Create creates a single notification
	Create(ctx context.Context, n *entity.Notification) error

	// CreateMany creates a batch of notifications in one write
	CreateMany(ctx context.Context, ns []*entity.Notification) error

	// GetByUserID retrieves up to limit notifications, newest first
	GetByUserID(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)

	// MarkRead marks one notification read; found=false when absent
	MarkRead(ctx context.Context, id string) (bool, error)

	// MarkAllRead marks every unread notification for a user as read
	MarkAllRead(ctx context.Context, userID string) error

	// Delete hard-deletes a notification; found=false when absent
	Delete(ctx context.Context, id string) (bool, error)

	// DeleteReadBefore purges read notifications older than cutoff
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// OptionsRepository defines the interface for the options singleton
type OptionsRepository interface {
	// Get retrieves the options document, or nil when none exists
	Get(ctx context.Context) (*entity.Options, error)

	// Upsert creates or overwrites the options document
	Upsert(ctx context.Context, options *entity.Options) error
}
