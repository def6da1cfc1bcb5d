// api/db/mongo.go
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/config"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
)

var MongoClient *mongo.Client

// InitMongo connects to MongoDB and returns the configured database.
func InitMongo(ctx context.Context) (*mongo.Database, error) {
	uri := config.GetString("mongo.uri")
	logger.Info("Connecting to MongoDB", zap.String("database", config.GetString("mongo.database")))

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	MongoClient = client
	logger.Info("Successfully connected to MongoDB")
	return client.Database(config.GetString("mongo.database")), nil
}

func CloseMongo() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		logger.Error("Error closing MongoDB connection", zap.Error(err))
	} else {
		logger.Info("MongoDB connection closed successfully")
	}
}
