package repository

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// CircleRepository defines the interface for reading-circle data operations
type CircleRepository interface {
	// Create creates a new circle
	Create(ctx context.Context, circle *entity.ReadingCircle) error

	// GetByID retrieves a circle by public UUID
	GetByID(ctx context.Context, id string) (*entity.ReadingCircle, error)

	// List retrieves all circles in stable order
	List(ctx context.Context) ([]*entity.ReadingCircle, error)

	// AddMember atomically appends a member and bumps the cached counter
	AddMember(ctx context.Context, circleID, userID string) error

	// SetMembership overwrites the members list and the cached counter
	SetMembership(ctx context.Context, circleID string, members []string, count int) error

	// SetMembersCount overwrites only the cached counter
	SetMembersCount(ctx context.Context, circleID string, count int) error

	// AppendPost appends a post ID to the circle's ordered feed
	AppendPost(ctx context.Context, circleID, postID string) error
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	// Create creates a new post
	Create(ctx context.Context, post *entity.Post) error

	// GetByID retrieves a post by public UUID
	GetByID(ctx context.Context, id string) (*entity.Post, error)

	// GetByIDs batch-fetches posts in one query
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Post, error)

	// GetByCircleID retrieves all posts of a circle, oldest first
	GetByCircleID(ctx context.Context, circleID string) ([]*entity.Post, error)

	// AppendComment appends a comment ID to the post's ordered list
	AppendComment(ctx context.Context, postID, commentID string) error
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, comment *entity.Comment) error

	// GetByIDs batch-fetches comments in one query
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Comment, error)

	// GetByPostID retrieves all comments of a post, oldest first
	GetByPostID(ctx context.Context, postID string) ([]*entity.Comment, error)
}
