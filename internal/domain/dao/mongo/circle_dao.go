package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// circleDAO implements dao.CircleDAO using MongoDB.
type circleDAO struct {
	*baseMongoDAO
}

// NewCircleDAO creates a new MongoDB-based CircleDAO.
func NewCircleDAO(db *mongo.Database) dao.CircleDAO {
	return &circleDAO{
		baseMongoDAO: newBaseMongoDAO(db, "circles"),
	}
}

// Create inserts a new circle into MongoDB.
func (d *circleDAO) Create(ctx context.Context, circle *entity.ReadingCircle) error {
	if circle.ID == "" {
		circle.ID = newID()
	}
	if circle.Members == nil {
		circle.Members = []string{}
	}
	if circle.Posts == nil {
		circle.Posts = []string{}
	}
	circle.MembersCount = len(circle.Members)
	return d.insertOne(ctx, circle)
}

// FindByID retrieves a circle by its public UUID.
func (d *circleDAO) FindByID(ctx context.Context, id string) (*entity.ReadingCircle, error) {
	var circle entity.ReadingCircle
	err := d.findOneByFilter(ctx, byID(id), &circle)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &circle, nil
}

// FindAll retrieves all circles in stable id order.
func (d *circleDAO) FindAll(ctx context.Context) ([]*entity.ReadingCircle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})

	var circles []*entity.ReadingCircle
	if err := d.findManyByFilter(ctx, bson.M{}, opts, &circles); err != nil {
		return nil, err
	}
	if circles == nil {
		circles = []*entity.ReadingCircle{}
	}
	return circles, nil
}

// AddMember appends the user and bumps the cached counter in one atomic
// update, so two concurrent joins cannot lose an increment.
func (d *circleDAO) AddMember(ctx context.Context, circleID, userID string) error {
	update := bson.M{
		"$push": bson.M{"members": userID},
		"$inc":  bson.M{"memberscount": 1},
	}
	return d.updateOne(ctx, byID(circleID), update)
}

// SetMembership overwrites the members list and the cached counter.
func (d *circleDAO) SetMembership(ctx context.Context, circleID string, members []string, count int) error {
	if members == nil {
		members = []string{}
	}
	update := bson.M{"$set": bson.M{"members": members, "memberscount": count}}
	return d.updateOne(ctx, byID(circleID), update)
}

// SetMembersCount overwrites only the cached counter.
func (d *circleDAO) SetMembersCount(ctx context.Context, circleID string, count int) error {
	return d.updateOne(ctx, byID(circleID), bson.M{"$set": bson.M{"memberscount": count}})
}

// AppendPost appends postID to the circle's ordered posts list.
func (d *circleDAO) AppendPost(ctx context.Context, circleID, postID string) error {
	return d.updateOne(ctx, byID(circleID), bson.M{"$push": bson.M{"posts": postID}})
}
