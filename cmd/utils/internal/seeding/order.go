package seeding

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campuscanteen/canteen/internal/menu"
	"github.com/campuscanteen/canteen/internal/order"
)

// Demo user IDs share the demo- prefix so clear-demo can find their orders.
const demoUserPrefix = "demo-"

// SeedOrders creates demo orders from whatever the catalog currently holds
func SeedOrders(ctx context.Context, db *mongo.Database) error {
	ordersCollection := db.Collection("orders")

	// Fetch available menu items to snapshot into order lines
	cursor, err := db.Collection("menu_items").Find(ctx, bson.M{"available": true})
	if err != nil {
		return fmt.Errorf("cannot fetch menu items: %w", err)
	}
	var items []*menu.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return fmt.Errorf("cannot decode menu items: %w", err)
	}
	cursor.Close(ctx)

	if len(items) < 3 {
		return fmt.Errorf("need at least 3 available menu items for demo data (found %d), seed the catalog first", len(items))
	}

	now := time.Now()

	// Scenario 1: a completed breakfast pickup from two hours ago
	order1 := demoOrder(demoUserPrefix+"alice", now.Add(-2*time.Hour),
		line(items[0], 2), line(items[1], 1))
	order1.MarkAsCompleted()

	// Scenario 2: an order currently on the grill
	order2 := demoOrder(demoUserPrefix+"bob", now.Add(-20*time.Minute),
		line(items[2], 1))
	order2.MarkAsPreparing()

	// Scenario 3: a fresh order scheduled for pickup in half an hour
	order3 := demoOrder(demoUserPrefix+"carol", now.Add(-5*time.Minute),
		line(items[0], 3))
	pickup := now.Add(30 * time.Minute)
	order3.PickupTime = &pickup

	for _, o := range []*order.Order{order1, order2, order3} {
		if _, err := ordersCollection.InsertOne(ctx, o); err != nil {
			return fmt.Errorf("insert demo order for %s: %w", o.UserID, err)
		}
	}

	return nil
}

func demoOrder(userID string, createdAt time.Time, lines ...order.Line) *order.Order {
	o := order.NewOrder()
	o.UserID = userID
	o.Items = lines

	total := menu.Price{}
	for _, l := range lines {
		total.Amount += l.Price.Amount * float64(l.Quantity)
		total.CurrencyCode = l.Price.CurrencyCode
	}
	o.TotalAmount = total

	o.BeforeCreate()
	o.CreatedAt = createdAt
	o.UpdatedAt = createdAt
	return o
}

func line(item *menu.MenuItem, quantity int) order.Line {
	return order.Line{
		MenuItemID: item.ID.String(),
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   quantity,
	}
}
