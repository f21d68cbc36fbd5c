package repository

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by public UUID
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *entity.User) error

	// AddJoinedCircle records circle membership on the user side
	AddJoinedCircle(ctx context.Context, userID, circleID string) error

	// RemoveJoinedCircle removes circle membership on the user side
	RemoveJoinedCircle(ctx context.Context, userID, circleID string) error

	// AddFavorite adds a book to the user's favorites
	AddFavorite(ctx context.Context, userID, bookID string) error

	// RemoveFavorite removes a book from the user's favorites
	RemoveFavorite(ctx context.Context, userID, bookID string) error

	// AddOwnedBook records book ownership on the user side
	AddOwnedBook(ctx context.Context, userID, bookID string) error
}
