package order

import (
	"fmt"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuscanteen/canteen/internal/menu"
)

// Statuses an order moves through while being fulfilled. The machine is
// deliberately permissive: any status may be written from any current one,
// including out of completed or cancelled. See DESIGN.md before tightening.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the five order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order is a user's placed purchase: a snapshot of selected items, a total,
// and a mutable fulfillment status.
type Order struct {
	ID          uuid.UUID  `json:"id" bson:"_id"`
	UserID      string     `json:"user_id" bson:"user_id"`
	Items       []Line     `json:"items" bson:"items"`
	TotalAmount menu.Price `json:"total_amount" bson:"total_amount"`
	Status      string     `json:"status" bson:"status"`
	PickupTime  *time.Time `json:"pickup_time,omitempty" bson:"pickup_time,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}

// Line is a value snapshot of a menu item at order time. Name and price are
// copied, not referenced, so later catalog changes never alter a placed
// order.
type Line struct {
	MenuItemID string     `json:"menu_item_id" bson:"menu_item_id"`
	Name       string     `json:"name" bson:"name"`
	Price      menu.Price `json:"price" bson:"price"`
	Quantity   int        `json:"quantity" bson:"quantity"`
}

func NewOrder() *Order {
	return &Order{
		ID:     apt.GenerateNewID(),
		Status: StatusPending,
	}
}

func (o *Order) GetID() uuid.UUID {
	return o.ID
}

func (o *Order) SetID(id uuid.UUID) {
	o.ID = id
}

func (o *Order) ResourceType() string {
	return "orders"
}

func (o *Order) EnsureID() {
	if o.ID == uuid.Nil {
		o.ID = apt.GenerateNewID()
	}
}

func (o *Order) BeforeCreate() {
	o.EnsureID()
	o.CreatedAt = time.Now()
	o.UpdatedAt = time.Now()
}

func (o *Order) BeforeUpdate() {
	o.UpdatedAt = time.Now()
}

func (o *Order) MarkAsPending() {
	o.Status = StatusPending
	o.UpdatedAt = time.Now()
}

func (o *Order) MarkAsPreparing() {
	o.Status = StatusPreparing
	o.UpdatedAt = time.Now()
}

func (o *Order) MarkAsReady() {
	o.Status = StatusReady
	o.UpdatedAt = time.Now()
}

func (o *Order) MarkAsCompleted() {
	o.Status = StatusCompleted
	o.UpdatedAt = time.Now()
}

func (o *Order) Cancel() {
	o.Status = StatusCancelled
	o.UpdatedAt = time.Now()
}

// MarshalBSON custom BSON marshaling for UUID handling
func (o *Order) MarshalBSON() ([]byte, error) {
	lines := make([]bson.M, len(o.Items))
	for i, l := range o.Items {
		lines[i] = bson.M{
			"menu_item_id": l.MenuItemID,
			"name":         l.Name,
			"price":        bson.M{"amount": l.Price.Amount, "currency_code": l.Price.CurrencyCode},
			"quantity":     l.Quantity,
		}
	}

	doc := bson.M{
		"_id":          o.ID.String(),
		"user_id":      o.UserID,
		"items":        lines,
		"total_amount": bson.M{"amount": o.TotalAmount.Amount, "currency_code": o.TotalAmount.CurrencyCode},
		"status":       o.Status,
		"created_at":   o.CreatedAt,
		"updated_at":   o.UpdatedAt,
	}
	if o.PickupTime != nil {
		doc["pickup_time"] = *o.PickupTime
	}

	return bson.Marshal(doc)
}

// UnmarshalBSON custom BSON unmarshaling for UUID handling
func (o *Order) UnmarshalBSON(data []byte) error {
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}

	if idStr, ok := doc["_id"].(string); ok && idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return fmt.Errorf("invalid UUID format for _id: %w", err)
		}
		o.ID = id
	}

	if v, ok := doc["user_id"].(string); ok {
		o.UserID = v
	}

	if linesArr, ok := doc["items"].(bson.A); ok {
		o.Items = make([]Line, len(linesArr))
		for i, l := range linesArr {
			lineMap, ok := l.(bson.M)
			if !ok {
				continue
			}
			if v, ok := lineMap["menu_item_id"].(string); ok {
				o.Items[i].MenuItemID = v
			}
			if v, ok := lineMap["name"].(string); ok {
				o.Items[i].Name = v
			}
			o.Items[i].Price = decodePrice(lineMap["price"])
			if v, ok := lineMap["quantity"].(int32); ok {
				o.Items[i].Quantity = int(v)
			} else if v, ok := lineMap["quantity"].(int64); ok {
				o.Items[i].Quantity = int(v)
			}
		}
	}

	o.TotalAmount = decodePrice(doc["total_amount"])

	if v, ok := doc["status"].(string); ok {
		o.Status = v
	}
	if pickup := decodeTime(doc["pickup_time"]); !pickup.IsZero() {
		o.PickupTime = &pickup
	}
	o.CreatedAt = decodeTime(doc["created_at"])
	o.UpdatedAt = decodeTime(doc["updated_at"])

	return nil
}

func decodeTime(raw interface{}) time.Time {
	switch v := raw.(type) {
	case time.Time:
		return v
	case primitive.DateTime:
		return v.Time()
	}
	return time.Time{}
}

func decodePrice(raw interface{}) menu.Price {
	var p menu.Price
	priceMap, ok := raw.(bson.M)
	if !ok {
		return p
	}
	if amount, ok := priceMap["amount"].(float64); ok {
		p.Amount = amount
	}
	if currency, ok := priceMap["currency_code"].(string); ok {
		p.CurrencyCode = currency
	}
	return p
}
