package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campuscanteen/canteen/internal/menu"
)

// MenuItemRepo implements the menu.MenuItemRepo interface using MongoDB
type MenuItemRepo struct {
	collection *mongo.Collection
}

// NewMenuItemRepo creates a new MongoDB menu item repository
func NewMenuItemRepo(db *mongo.Database) *MenuItemRepo {
	return &MenuItemRepo{
		collection: db.Collection("menu_items"),
	}
}

// EnsureIndexes creates the indexes listing and category queries rely on.
func (r *MenuItemRepo) EnsureIndexes(ctx context.Context) error {
	availableIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "available", Value: 1}},
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, availableIndex); err != nil {
		return fmt.Errorf("cannot create available index: %w", err)
	}

	categoryIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, categoryIndex); err != nil {
		return fmt.Errorf("cannot create category index: %w", err)
	}

	return nil
}

// Create inserts a new menu item
func (r *MenuItemRepo) Create(ctx context.Context, item *menu.MenuItem) error {
	if item == nil {
		return fmt.Errorf("menu item is nil")
	}

	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("cannot create menu item: %w", err)
	}
	return nil
}

// Get retrieves a menu item by ID, available or not
func (r *MenuItemRepo) Get(ctx context.Context, id uuid.UUID) (*menu.MenuItem, error) {
	var item menu.MenuItem

	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot get menu item: %w", err)
	}
	return &item, nil
}

// List retrieves all menu items, including unavailable ones
func (r *MenuItemRepo) List(ctx context.Context) ([]*menu.MenuItem, error) {
	return r.find(ctx, bson.M{})
}

// ListAvailable retrieves all available menu items in insertion order
func (r *MenuItemRepo) ListAvailable(ctx context.Context) ([]*menu.MenuItem, error) {
	return r.find(ctx, bson.M{"available": true})
}

// ListAvailableByCategory retrieves available menu items with exactly the
// given category
func (r *MenuItemRepo) ListAvailableByCategory(ctx context.Context, category menu.Category) ([]*menu.MenuItem, error) {
	return r.find(ctx, bson.M{"category": string(category), "available": true})
}

// Save updates an existing menu item
func (r *MenuItemRepo) Save(ctx context.Context, item *menu.MenuItem) error {
	if item == nil {
		return fmt.Errorf("menu item is nil")
	}

	filter := bson.M{"_id": item.GetID().String()}
	update := bson.M{"$set": item}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("cannot update menu item: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("menu item not found")
	}

	return nil
}

// ReplaceAll deletes every menu item and inserts the given set. This backs
// the development-only seed operation; the two writes are not transactional.
func (r *MenuItemRepo) ReplaceAll(ctx context.Context, items []*menu.MenuItem) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("cannot clear menu items: %w", err)
	}

	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("cannot insert menu items: %w", err)
	}

	return nil
}

func (r *MenuItemRepo) find(ctx context.Context, filter bson.M) ([]*menu.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("cannot list menu items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*menu.MenuItem
	for cursor.Next(ctx) {
		var item menu.MenuItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("cannot decode menu item: %w", err)
		}
		items = append(items, &item)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return items, nil
}
