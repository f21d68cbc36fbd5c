package dao

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// CircleDAO defines data access for reading circles.
type CircleDAO interface {
	// Create inserts a new circle, assigning its UUID when empty
	Create(ctx context.Context, circle *entity.ReadingCircle) error

	// FindByID retrieves a circle by public UUID
	FindByID(ctx context.Context, id string) (*entity.ReadingCircle, error)

	// FindAll retrieves all circles in stable id order
	FindAll(ctx context.Context) ([]*entity.ReadingCircle, error)

	// AddMember atomically appends userID to members and increments the
	// cached member counter in a single update
	AddMember(ctx context.Context, circleID, userID string) error

	// SetMembership overwrites the members list and the cached counter
	SetMembership(ctx context.Context, circleID string, members []string, count int) error

	// SetMembersCount overwrites only the cached counter
	SetMembersCount(ctx context.Context, circleID string, count int) error

	// AppendPost appends postID to the circle's ordered posts list
	AppendPost(ctx context.Context, circleID, postID string) error
}
