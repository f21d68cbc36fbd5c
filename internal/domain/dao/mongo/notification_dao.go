package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// notificationDAO implements dao.NotificationDAO using MongoDB.
type notificationDAO struct {
	*baseMongoDAO
}

// NewNotificationDAO creates a new MongoDB-based NotificationDAO.
func NewNotificationDAO(db *mongo.Database) dao.NotificationDAO {
	return &notificationDAO{
		baseMongoDAO: newBaseMongoDAO(db, "notifications"),
	}
}

func prepareNotification(n *entity.Notification) {
	if n.ID == "" {
		n.ID = newID()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
}

// Create inserts a single notification into MongoDB.
func (d *notificationDAO) Create(ctx context.Context, n *entity.Notification) error {
	prepareNotification(n)
	return d.insertOne(ctx, n)
}

// CreateMany inserts a batch of notifications in one write.
func (d *notificationDAO) CreateMany(ctx context.Context, ns []*entity.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	docs := make([]any, 0, len(ns))
	for _, n := range ns {
		prepareNotification(n)
		docs = append(docs, n)
	}
	_, err := d.collection.InsertMany(ctx, docs)
	return err
}

// FindByUserID retrieves up to limit notifications for a user, newest first.
func (d *notificationDAO) FindByUserID(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	var notifications []*entity.Notification
	if err := d.findManyByFilter(ctx, bson.M{"userId": userID}, opts, &notifications); err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []*entity.Notification{}
	}
	return notifications, nil
}

// MarkRead marks one notification read.
func (d *notificationDAO) MarkRead(ctx context.Context, id string) (bool, error) {
	res, err := d.collection.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// MarkAllRead marks every unread notification for a user as read.
func (d *notificationDAO) MarkAllRead(ctx context.Context, userID string) error {
	filter := bson.M{"userId": userID, "read": false}
	return d.updateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}})
}

// Delete hard-deletes a notification.
func (d *notificationDAO) Delete(ctx context.Context, id string) (bool, error) {
	return d.deleteOne(ctx, byID(id))
}

// DeleteReadBefore removes read notifications older than cutoff.
func (d *notificationDAO) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{"read": true, "timestamp": bson.M{"$lt": cutoff}}
	return d.deleteMany(ctx, filter)
}
