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

// commentDAO implements dao.CommentDAO using MongoDB.
type commentDAO struct {
	*baseMongoDAO
}

// NewCommentDAO creates a new MongoDB-based CommentDAO.
func NewCommentDAO(db *mongo.Database) dao.CommentDAO {
	return &commentDAO{
		baseMongoDAO: newBaseMongoDAO(db, "comments"),
	}
}

// Create inserts a new comment into MongoDB.
func (d *commentDAO) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = newID()
	}
	if comment.Timestamp.IsZero() {
		comment.Timestamp = time.Now()
	}
	return d.insertOne(ctx, comment)
}

// FindByIDs batch-fetches comments with a single $in query.
func (d *commentDAO) FindByIDs(ctx context.Context, ids []string) ([]*entity.Comment, error) {
	if len(ids) == 0 {
		return []*entity.Comment{}, nil
	}

	var comments []*entity.Comment
	filter := bson.M{"id": bson.M{"$in": ids}}
	if err := d.findManyByFilter(ctx, filter, options.Find(), &comments); err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*entity.Comment{}
	}
	return comments, nil
}

// FindByPostID retrieves all comments that belong to a post, oldest first.
func (d *commentDAO) FindByPostID(ctx context.Context, postID string) ([]*entity.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	var comments []*entity.Comment
	if err := d.findManyByFilter(ctx, bson.M{"postId": postID}, opts, &comments); err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*entity.Comment{}
	}
	return comments, nil
}
