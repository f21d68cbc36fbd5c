package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// optionsDAO implements dao.OptionsDAO using MongoDB. The collection holds a
// single document.
type optionsDAO struct {
	*baseMongoDAO
}

// NewOptionsDAO creates a new MongoDB-based OptionsDAO.
func NewOptionsDAO(db *mongo.Database) dao.OptionsDAO {
	return &optionsDAO{
		baseMongoDAO: newBaseMongoDAO(db, "options"),
	}
}

// Get retrieves the options document, or nil when none exists.
func (d *optionsDAO) Get(ctx context.Context) (*entity.Options, error) {
	var opts entity.Options
	err := d.findOneByFilter(ctx, bson.M{}, &opts)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &opts, nil
}

// Upsert creates or overwrites the options document. The empty filter matches
// the singleton, so repeated upserts never create a second document.
func (d *optionsDAO) Upsert(ctx context.Context, o *entity.Options) error {
	update := bson.M{
		"$set": bson.M{
			"genres":    o.Genres,
			"languages": o.Languages,
			"authors":   o.Authors,
		},
		"$setOnInsert": bson.M{"id": newID()},
	}
	opts := options.Update().SetUpsert(true)
	_, err := d.collection.UpdateOne(ctx, bson.M{}, update, opts)
	return err
}
