// Package mongo provides MongoDB-based DAO implementations.
package mongo

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// baseMongoDAO provides common MongoDB operations for all entity DAOs.
// Every collection keys its documents by an application-generated UUID in the
// "id" field; the Mongo ObjectID is never used as a public identifier.
type baseMongoDAO struct {
	collection *mongo.Collection
}

// newBaseMongoDAO creates a new base MongoDB DAO instance.
func newBaseMongoDAO(db *mongo.Database, collectionName string) *baseMongoDAO {
	return &baseMongoDAO{
		collection: db.Collection(collectionName),
	}
}

// newID returns a fresh UUID string for a document's public key.
func newID() string {
	return uuid.NewString()
}

// byID returns the filter matching a document's public UUID.
func byID(id string) bson.M {
	return bson.M{"id": id}
}

// findOneByFilter finds a single document matching the filter.
func (d *baseMongoDAO) findOneByFilter(ctx context.Context, filter bson.M, result any) error {
	return d.collection.FindOne(ctx, filter).Decode(result)
}

// findManyByFilter finds all documents matching the filter.
func (d *baseMongoDAO) findManyByFilter(ctx context.Context, filter bson.M, opts *options.FindOptions, results any) error {
	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

// insertOne inserts a single document.
func (d *baseMongoDAO) insertOne(ctx context.Context, doc any) error {
	_, err := d.collection.InsertOne(ctx, doc)
	return err
}

// updateOne updates a single document matching the filter.
func (d *baseMongoDAO) updateOne(ctx context.Context, filter bson.M, update bson.M) error {
	_, err := d.collection.UpdateOne(ctx, filter, update)
	return err
}

// updateMany updates all documents matching the filter.
func (d *baseMongoDAO) updateMany(ctx context.Context, filter bson.M, update bson.M) error {
	_, err := d.collection.UpdateMany(ctx, filter, update)
	return err
}

// deleteOne deletes a single document; returns whether one matched.
func (d *baseMongoDAO) deleteOne(ctx context.Context, filter bson.M) (bool, error) {
	res, err := d.collection.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// deleteMany deletes all documents matching the filter and returns the count.
func (d *baseMongoDAO) deleteMany(ctx context.Context, filter bson.M) (int64, error) {
	res, err := d.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
