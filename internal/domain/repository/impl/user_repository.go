// Package impl provides repository implementations that delegate to the DAO
// layer. This separation allows repositories to focus on business concerns
// while DAOs handle database-specific operations.
package impl

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
)

// userRepository implements repository.UserRepository by delegating to UserDAO.
type userRepository struct {
	dao dao.UserDAO
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(userDAO dao.UserDAO) repository.UserRepository {
	return &userRepository{dao: userDAO}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.dao.Create(ctx, user)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.dao.FindByEmail(ctx, email)
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.dao.Update(ctx, user)
}

func (r *userRepository) AddJoinedCircle(ctx context.Context, userID, circleID string) error {
	return r.dao.AddJoinedCircle(ctx, userID, circleID)
}

func (r *userRepository) RemoveJoinedCircle(ctx context.Context, userID, circleID string) error {
	return r.dao.RemoveJoinedCircle(ctx, userID, circleID)
}

func (r *userRepository) AddFavorite(ctx context.Context, userID, bookID string) error {
	return r.dao.AddFavorite(ctx, userID, bookID)
}

func (r *userRepository) RemoveFavorite(ctx context.Context, userID, bookID string) error {
	return r.dao.RemoveFavorite(ctx, userID, bookID)
}

func (r *userRepository) AddOwnedBook(ctx context.Context, userID, bookID string) error {
	return r.dao.AddOwnedBook(ctx, userID, bookID)
}
