package commands

import (
	"context"
	"fmt"

	"github.com/appetiteclub/apt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClearDemo removes demo orders, leaving the seeded catalog in place
func ClearDemo(ctx context.Context, config *apt.Config, logger apt.Logger) error {
	logger.Info("Starting demo data cleanup...")

	// Connect to MongoDB
	mongoURL, _ := config.GetString("db.mongo.url")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}
	defer client.Disconnect(ctx)

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}

	logger.Info("Connected to MongoDB")

	dbName, _ := config.GetString("db.mongo.name")
	if dbName == "" {
		dbName = "canteen"
	}
	db := client.Database(dbName)

	if err := clearOrderDemo(ctx, db, logger); err != nil {
		return fmt.Errorf("clear order demo: %w", err)
	}

	return nil
}

func clearOrderDemo(ctx context.Context, db *mongo.Database, logger apt.Logger) error {
	logger.Info("Clearing order demo data...")

	// Delete orders placed by demo users
	ordersCollection := db.Collection("orders")
	ordersResult, err := ordersCollection.DeleteMany(ctx, bson.M{"user_id": bson.M{"$regex": "^demo-"}})
	if err != nil {
		return fmt.Errorf("delete demo orders: %w", err)
	}
	logger.Info("Deleted demo orders", "count", ordersResult.DeletedCount)

	// Clear seed tracker
	seedsCollection := db.Collection("_seeds")
	trackerResult, err := seedsCollection.DeleteOne(ctx, bson.M{"_id": "demo_orders_v1"})
	if err != nil {
		return fmt.Errorf("delete order seed tracker: %w", err)
	}
	logger.Info("Cleared order seed tracker", "deleted", trackerResult.DeletedCount)

	return nil
}
