package commands

import (
	"context"
	"fmt"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/seed"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campuscanteen/canteen/cmd/utils/internal/seeding"
	"github.com/campuscanteen/canteen/internal/menu"
)

// SeedDemo applies the sample menu and creates demo orders
func SeedDemo(ctx context.Context, config *apt.Config, logger apt.Logger) error {
	logger.Info("Starting demo seeding process...")

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

	// The catalog goes through the same tracked seeds the service applies
	// at startup, so neither side re-runs the other's work.
	tracker := seed.NewMongoTracker(db)
	if err := seed.Apply(ctx, tracker, menu.Seeds(db), "canteen-utils"); err != nil {
		return fmt.Errorf("seed menu catalog: %w", err)
	}
	logger.Info("Menu catalog seeds applied")

	if err := seedOrderDemo(ctx, db, logger); err != nil {
		return fmt.Errorf("seed order demo: %w", err)
	}

	return nil
}

func seedOrderDemo(ctx context.Context, db *mongo.Database, logger apt.Logger) error {
	// Check if already seeded
	seedsCollection := db.Collection("_seeds")
	count, err := seedsCollection.CountDocuments(ctx, bson.M{"_id": "demo_orders_v1"})
	if err != nil {
		return fmt.Errorf("check seed status: %w", err)
	}

	if count > 0 {
		logger.Info("Order demo seeds already applied, skipping")
		return nil
	}

	// Apply the seed
	if err := seeding.SeedOrders(ctx, db); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	// Mark as seeded
	_, err = seedsCollection.InsertOne(ctx, bson.M{
		"_id":         "demo_orders_v1",
		"description": "Create demo orders with a realistic spread of statuses and pickup times",
		"applied_at":  bson.M{"$currentDate": bson.M{"$type": "timestamp"}},
	})
	if err != nil {
		logger.Infof("⚠️  Failed to mark seed as applied: %v", err)
	}

	logger.Info("Order demo seeds applied successfully")
	return nil
}
