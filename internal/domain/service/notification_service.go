package service

import (
	"context"
	"time"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
)

// listLimit caps how many notifications a single fetch returns.
const listLimit = 50

// NotificationService manages a user's notification inbox.
type NotificationService interface {
	// List returns the user's most recent notifications, newest first
	List(ctx context.Context, userID string) ([]*entity.Notification, error)

	// MarkRead marks a single notification as read
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead marks all of a user's notifications as read
	MarkAllRead(ctx context.Context, userID string) error

	// Delete removes a notification
	Delete(ctx context.Context, id string) error

	// PurgeRead deletes read notifications older than the retention window
	// and returns how many were removed
	PurgeRead(ctx context.Context, retention time.Duration) (int64, error)
}

// notificationService implements NotificationService
type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService instance
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) List(ctx context.Context, userID string) ([]*entity.Notification, error) {
	return s.notificationRepo.GetByUserID(ctx, userID, listLimit)
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	found, err := s.notificationRepo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	found, err := s.notificationRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) PurgeRead(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.notificationRepo.DeleteReadBefore(ctx, cutoff)
}
