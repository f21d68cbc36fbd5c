package service

import "github.com/bookloop/bookloop-go/internal/domain/entity"

// EventPublisher pushes realtime events to connected clients. Delivery is
// best-effort; persistence happens before publishing.
type EventPublisher interface {
	// PublishNotification pushes a stored notification to its recipient.
	PublishNotification(n *entity.Notification)

	// PublishCircleEvent pushes a discussion event to a circle's room.
	PublishCircleEvent(circleID string, event any)
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops all events.
func NewNopPublisher() EventPublisher {
	return nopPublisher{}
}

func (nopPublisher) PublishNotification(*entity.Notification) {}

func (nopPublisher) PublishCircleEvent(string, any) {}
