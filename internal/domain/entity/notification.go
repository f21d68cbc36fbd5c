package entity

import "time"

// NotificationType categorizes a notification.
type NotificationType string

const (
	NotificationTrade  NotificationType = "trade"
	NotificationCircle NotificationType = "circle"
	NotificationSystem NotificationType = "system"
)

// Notification is delivered to a single user. RelatedID points at the entity
// that triggered it (trade, circle, ...).
type Notification struct {
	ID        string           `bson:"id" json:"id"`
	UserID    string           `bson:"userId" json:"userId"`
	Type      NotificationType `bson:"type" json:"type"`
	Title     string           `bson:"title" json:"title"`
	Message   string           `bson:"message" json:"message"`
	Timestamp time.Time        `bson:"timestamp" json:"timestamp"`
	Read      bool             `bson:"read" json:"read"`
	ActionURL string           `bson:"actionUrl" json:"actionUrl"`
	RelatedID string           `bson:"relatedId" json:"relatedId"`
}
