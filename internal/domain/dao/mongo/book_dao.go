package mongo

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// kmPerDegreeLat is the rough conversion used for the bounding-box filter.
const kmPerDegreeLat = 111.0

// bookDAO implements dao.BookDAO using MongoDB.
type bookDAO struct {
	*baseMongoDAO
}

// NewBookDAO creates a new MongoDB-based BookDAO.
func NewBookDAO(db *mongo.Database) dao.BookDAO {
	return &bookDAO{
		baseMongoDAO: newBaseMongoDAO(db, "books"),
	}
}

// Create inserts a new book into MongoDB.
func (d *bookDAO) Create(ctx context.Context, book *entity.Book) error {
	if book.ID == "" {
		book.ID = newID()
	}
	return d.insertOne(ctx, book)
}

// FindByID retrieves a book by its public UUID.
func (d *bookDAO) FindByID(ctx context.Context, id string) (*entity.Book, error) {
	var book entity.Book
	err := d.findOneByFilter(ctx, byID(id), &book)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// FindAll retrieves all books, optionally restricted to a bounding box around
// the given point.
func (d *bookDAO) FindAll(ctx context.Context, geo *dao.GeoFilter) ([]*entity.Book, error) {
	filter := bson.M{}
	if geo != nil {
		latRange := geo.Radius / kmPerDegreeLat
		lngRange := geo.Radius / (kmPerDegreeLat * math.Cos(geo.Lat*math.Pi/180))
		filter = bson.M{
			"location.coordinates.lat": bson.M{
				"$gte": geo.Lat - latRange,
				"$lte": geo.Lat + latRange,
			},
			"location.coordinates.lng": bson.M{
				"$gte": geo.Lng - lngRange,
				"$lte": geo.Lng + lngRange,
			},
		}
	}

	var books []*entity.Book
	if err := d.findManyByFilter(ctx, filter, options.Find(), &books); err != nil {
		return nil, err
	}
	if books == nil {
		books = []*entity.Book{}
	}
	return books, nil
}

// Update overwrites an existing book document.
func (d *bookDAO) Update(ctx context.Context, book *entity.Book) error {
	return d.updateOne(ctx, byID(book.ID), bson.M{"$set": book})
}

// Delete hard-deletes a book.
func (d *bookDAO) Delete(ctx context.Context, id string) (bool, error) {
	return d.deleteOne(ctx, byID(id))
}
