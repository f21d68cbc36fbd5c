package di

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/config"
	"github.com/bookloop/bookloop-go/internal/resilience"
)

// DatabaseModule provides the MongoDB connection
var DatabaseModule = fx.Module("database",
	fx.Provide(provideMongoDatabase),
	fx.Invoke(createMongoIndexes),
)

// provideMongoDatabase connects to MongoDB and verifies the connection.
// Startup fails when the database is unreachable.
func provideMongoDatabase(lc fx.Lifecycle, cfg *config.DatabaseConfig, logger *zap.Logger) (*mongo.Database, error) {
	logger.Info("Connecting to MongoDB",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOpts := options.Client().ApplyURI(cfg.MongoURI())
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// The first ping can race a database that is still coming up
	err = resilience.Retry(ctx, resilience.DefaultRetryConfig(), func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MongoDB connection")
			return client.Disconnect(ctx)
		},
	})

	return client.Database(cfg.Name), nil
}

// createMongoIndexes creates the indexes each collection relies on. Every
// collection carries a unique index on the public UUID; the rest back the
// hot lookup paths.
func createMongoIndexes(db *mongo.Database, logger *zap.Logger) error {
	ctx := context.Background()

	uniqueID := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	indexes := map[string][]mongo.IndexModel{
		"users": {
			uniqueID,
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		"books": {
			uniqueID,
			{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		},
		"circles": {
			uniqueID,
		},
		"posts": {
			uniqueID,
			{Keys: bson.D{{Key: "circleId", Value: 1}}},
		},
		"comments": {
			uniqueID,
			{Keys: bson.D{{Key: "postId", Value: 1}}},
		},
		"trades": {
			uniqueID,
			{Keys: bson.D{{Key: "requesterId", Value: 1}}},
			{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		},
		"notifications": {
			uniqueID,
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			logger.Error("Failed to create indexes",
				zap.String("collection", collection),
				zap.Error(err),
			)
			return err
		}
	}

	logger.Info("MongoDB indexes created")
	return nil
}
