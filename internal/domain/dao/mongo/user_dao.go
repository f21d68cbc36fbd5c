package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// userDAO implements dao.UserDAO using MongoDB.
type userDAO struct {
	*baseMongoDAO
}

// NewUserDAO creates a new MongoDB-based UserDAO.
func NewUserDAO(db *mongo.Database) dao.UserDAO {
	return &userDAO{
		baseMongoDAO: newBaseMongoDAO(db, "users"),
	}
}

// Create inserts a new user into MongoDB.
func (d *userDAO) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = newID()
	}
	if user.BooksOwned == nil {
		user.BooksOwned = []string{}
	}
	if user.CirclesJoined == nil {
		user.CirclesJoined = []string{}
	}
	if user.Favorites == nil {
		user.Favorites = []string{}
	}
	return d.insertOne(ctx, user)
}

// FindByID retrieves a user by their public UUID.
func (d *userDAO) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := d.findOneByFilter(ctx, byID(id), &user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail retrieves a user by their email.
func (d *userDAO) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := d.findOneByFilter(ctx, bson.M{"email": email}, &user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update overwrites an existing user document.
func (d *userDAO) Update(ctx context.Context, user *entity.User) error {
	return d.updateOne(ctx, byID(user.ID), bson.M{"$set": user})
}

// AddJoinedCircle appends circleID to the user's circlesjoined list.
func (d *userDAO) AddJoinedCircle(ctx context.Context, userID, circleID string) error {
	return d.updateOne(ctx, byID(userID), bson.M{"$addToSet": bson.M{"circlesjoined": circleID}})
}

// RemoveJoinedCircle removes circleID from the user's circlesjoined list.
func (d *userDAO) RemoveJoinedCircle(ctx context.Context, userID, circleID string) error {
	return d.updateOne(ctx, byID(userID), bson.M{"$pull": bson.M{"circlesjoined": circleID}})
}

// AddFavorite adds bookID to the user's favorites.
func (d *userDAO) AddFavorite(ctx context.Context, userID, bookID string) error {
	return d.updateOne(ctx, byID(userID), bson.M{"$addToSet": bson.M{"favorites": bookID}})
}

// RemoveFavorite removes bookID from the user's favorites.
func (d *userDAO) RemoveFavorite(ctx context.Context, userID, bookID string) error {
	return d.updateOne(ctx, byID(userID), bson.M{"$pull": bson.M{"favorites": bookID}})
}

// AddOwnedBook appends bookID to the user's booksowned list.
func (d *userDAO) AddOwnedBook(ctx context.Context, userID, bookID string) error {
	return d.updateOne(ctx, byID(userID), bson.M{"$addToSet": bson.M{"booksowned": bookID}})
}
