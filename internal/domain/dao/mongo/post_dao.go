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

// postDAO implements dao.PostDAO using MongoDB.
type postDAO struct {
	*baseMongoDAO
}

// NewPostDAO creates a new MongoDB-based PostDAO.
func NewPostDAO(db *mongo.Database) dao.PostDAO {
	return &postDAO{
		baseMongoDAO: newBaseMongoDAO(db, "posts"),
	}
}

// Create inserts a new post into MongoDB.
func (d *postDAO) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == "" {
		post.ID = newID()
	}
	if post.Timestamp.IsZero() {
		post.Timestamp = time.Now()
	}
	if post.Comments == nil {
		post.Comments = []string{}
	}
	return d.insertOne(ctx, post)
}

// FindByID retrieves a post by its public UUID.
func (d *postDAO) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	var post entity.Post
	err := d.findOneByFilter(ctx, byID(id), &post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByIDs batch-fetches posts with a single $in query.
func (d *postDAO) FindByIDs(ctx context.Context, ids []string) ([]*entity.Post, error) {
	if len(ids) == 0 {
		return []*entity.Post{}, nil
	}

	var posts []*entity.Post
	filter := bson.M{"id": bson.M{"$in": ids}}
	if err := d.findManyByFilter(ctx, filter, options.Find(), &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*entity.Post{}
	}
	return posts, nil
}

// FindByCircleID retrieves all posts that belong to a circle, oldest first.
func (d *postDAO) FindByCircleID(ctx context.Context, circleID string) ([]*entity.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	var posts []*entity.Post
	if err := d.findManyByFilter(ctx, bson.M{"circleId": circleID}, opts, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*entity.Post{}
	}
	return posts, nil
}

// AppendComment appends commentID to the post's ordered comments list.
func (d *postDAO) AppendComment(ctx context.Context, postID, commentID string) error {
	return d.updateOne(ctx, byID(postID), bson.M{"$push": bson.M{"comments": commentID}})
}
