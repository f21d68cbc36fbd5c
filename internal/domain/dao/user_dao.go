// Package dao defines data-access interfaces. Implementations live in the
// mongo subpackage; a nil entity with a nil error means "not found".
package dao

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// UserDAO defines data access for users.
type UserDAO interface {
	// Create inserts a new user, assigning its UUID when empty
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by public UUID
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a user by email
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update overwrites an existing user document
	Update(ctx context.Context, user *entity.User) error

	// AddJoinedCircle appends circleID to the user's circlesjoined list
	AddJoinedCircle(ctx context.Context, userID, circleID string) error

	// RemoveJoinedCircle removes circleID from the user's circlesjoined list
	RemoveJoinedCircle(ctx context.Context, userID, circleID string) error

	// AddFavorite adds bookID to the user's favorites (set semantics)
	AddFavorite(ctx context.Context, userID, bookID string) error

	// RemoveFavorite removes bookID from the user's favorites
	RemoveFavorite(ctx context.Context, userID, bookID string) error

	// AddOwnedBook appends bookID to the user's booksowned list
	AddOwnedBook(ctx context.Context, userID, bookID string) error
}
