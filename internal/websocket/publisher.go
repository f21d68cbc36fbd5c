package websocket

import (
	"time"

	"github.com/google/uuid"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/service"
)

// hubPublisher implements service.EventPublisher on top of the hub. Messages
// are dropped when the recipient has no open connection; the inbox endpoints
// remain the source of truth.
type hubPublisher struct {
	hub *Hub
}

// NewHubPublisher creates an EventPublisher backed by the WebSocket hub.
func NewHubPublisher(hub *Hub) service.EventPublisher {
	return &hubPublisher{hub: hub}
}

func (p *hubPublisher) PublishNotification(n *entity.Notification) {
	p.hub.BroadcastToUser(n.UserID, &Message{
		ID:        uuid.New().String(),
		Type:      MessageTypeNotification,
		Data:      n,
		Timestamp: time.Now(),
	})
}

func (p *hubPublisher) PublishCircleEvent(circleID string, event any) {
	p.hub.BroadcastToRoom(CircleRoom(circleID), &Message{
		ID:        uuid.New().String(),
		Type:      MessageTypeEvent,
		Event:     "circle_activity",
		Data:      event,
		Timestamp: time.Now(),
	})
}
