package dao

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// PostDAO defines data access for discussion posts.
type PostDAO interface {
	// Create inserts a new post, assigning its UUID when empty
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a post by public UUID
	FindByID(ctx context.Context, id string) (*entity.Post, error)

	// FindByIDs batch-fetches posts by UUID in a single query
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Post, error)

	// FindByCircleID retrieves all posts that belong to a circle
	FindByCircleID(ctx context.Context, circleID string) ([]*entity.Post, error)

	// AppendComment appends commentID to the post's ordered comments list
	AppendComment(ctx context.Context, postID, commentID string) error
}

// CommentDAO defines data access for comments.
type CommentDAO interface {
	// Create inserts a new comment, assigning its UUID when empty
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByIDs batch-fetches comments by UUID in a single query
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Comment, error)

	// FindByPostID retrieves all comments that belong to a post
	FindByPostID(ctx context.Context, postID string) ([]*entity.Comment, error)
}
