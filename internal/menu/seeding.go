package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/seed"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds returns all seeds for the canteen catalog
func Seeds(db *mongo.Database) []seed.Seed {
	return []seed.Seed{
		{
			ID:          "2026-08-20_canteen_sample_menu",
			Description: "Seed the sample campus canteen menu",
			Run: func(ctx context.Context) error {
				return seedSampleMenuItems(ctx, db)
			},
		},
	}
}

func seedSampleMenuItems(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection("menu_items")
	now := time.Now()
	items := []struct {
		Name        string
		Description string
		Price       float64
		Image       string
		Category    Category
	}{
		{
			"Avocado Toast",
			"Freshly baked sourdough topped with smashed avocado, poached eggs, and microgreens",
			8.99,
			"https://images.unsplash.com/photo-1588137378633-dea1336ce1e2?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			CategoryBreakfast,
		},
		{
			"Quinoa Power Bowl",
			"Protein-packed quinoa bowl with roasted vegetables, kale, and tahini dressing",
			10.99,
			"https://images.unsplash.com/photo-1546069901-ba9599a7e63c?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			CategoryLunch,
		},
		{
			"Margherita Pizza",
			"Classic Neapolitan pizza with tomato sauce, fresh mozzarella, and basil",
			12.99,
			"https://images.unsplash.com/photo-1594007654729-407eedc4be65?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			CategoryDinner,
		},
		{
			"Fresh Fruit Parfait",
			"Layers of Greek yogurt, seasonal fruits, and granola drizzled with honey",
			6.99,
			"https://images.unsplash.com/photo-1590135987412-4d891cb76cc1?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			CategoryBreakfast,
		},
		{
			"Poke Bowl",
			"Fresh ahi tuna, cucumber, avocado, and pickled vegetables on a bed of rice",
			14.99,
			"https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			CategoryLunch,
		},
	}

	for _, item := range items {
		doc := bson.M{
			"_id":               uuid.New().String(),
			"name":              item.Name,
			"description":       item.Description,
			"price":             bson.M{"amount": item.Price, "currency_code": "USD"},
			"image":             item.Image,
			"category":          string(item.Category),
			"available":         true,
			"prep_time_minutes": DefaultPrepTimeMinutes,
			"created_at":        now,
			"updated_at":        now,
		}

		filter := bson.M{"name": item.Name}
		update := bson.M{"$setOnInsert": doc}
		if _, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("seed menu item %s: %w", item.Name, err)
		}
	}

	return nil
}

// SeedingFunc returns a function for running seeds during service startup
func SeedingFunc(appName string, dbFn func() *mongo.Database, logger apt.Logger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		logger.Info("Applying canteen catalog seeds...")
		db := dbFn()
		tracker := seed.NewMongoTracker(db)
		seeds := Seeds(db)
		if err := seed.Apply(ctx, tracker, seeds, appName); err != nil {
			return fmt.Errorf("apply seeds: %w", err)
		}
		logger.Info("Canteen catalog seeds applied successfully")
		return nil
	}
}
