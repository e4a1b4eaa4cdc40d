package menu

import (
	"fmt"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPrepTimeMinutes applies when a menu item is created without an
// explicit preparation time.
const DefaultPrepTimeMinutes = 15

// MenuItem represents a dish, drink or any offerable product in the catalog
type MenuItem struct {
	ID              uuid.UUID `json:"id" bson:"_id"`
	Name            string    `json:"name" bson:"name"`
	Description     string    `json:"description" bson:"description"`
	Price           Price     `json:"price" bson:"price"`
	Image           string    `json:"image" bson:"image"` // External asset URL, not validated
	Category        Category  `json:"category" bson:"category"`
	Available       bool      `json:"is_available" bson:"available"`
	PrepTimeMinutes int       `json:"preparation_time" bson:"prep_time_minutes"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// Price represents a currency amount
type Price struct {
	Amount       float64 `json:"amount" bson:"amount"`
	CurrencyCode string  `json:"currency_code" bson:"currency_code"` // ISO 4217
}

// GetID returns the menu item ID
func (m *MenuItem) GetID() uuid.UUID {
	return m.ID
}

// SetID sets the menu item ID
func (m *MenuItem) SetID(id uuid.UUID) {
	m.ID = id
}

// ResourceType returns the resource type for URL generation
func (m *MenuItem) ResourceType() string {
	return "menu"
}

// EnsureID generates a new UUID if ID is nil
func (m *MenuItem) EnsureID() {
	if m.ID == uuid.Nil {
		m.ID = apt.GenerateNewID()
	}
}

// BeforeCreate sets up the menu item before creation. New items are
// available by default; availability is toggled off to soft-remove an item
// from listings, items are never deleted in normal operation.
func (m *MenuItem) BeforeCreate() {
	m.EnsureID()
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	m.Available = true
	if m.PrepTimeMinutes == 0 {
		m.PrepTimeMinutes = DefaultPrepTimeMinutes
	}
}

// BeforeUpdate updates the timestamp
func (m *MenuItem) BeforeUpdate() {
	m.UpdatedAt = time.Now()
}

// MarshalBSON custom BSON marshaling for UUID handling
func (m *MenuItem) MarshalBSON() ([]byte, error) {
	return bson.Marshal(bson.M{
		"_id":               m.ID.String(),
		"name":              m.Name,
		"description":       m.Description,
		"price":             m.Price,
		"image":             m.Image,
		"category":          string(m.Category),
		"available":         m.Available,
		"prep_time_minutes": m.PrepTimeMinutes,
		"created_at":        m.CreatedAt,
		"updated_at":        m.UpdatedAt,
	})
}

// UnmarshalBSON custom BSON unmarshaling for UUID handling
func (m *MenuItem) UnmarshalBSON(data []byte) error {
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}

	if idStr, ok := doc["_id"].(string); ok && idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return fmt.Errorf("invalid UUID format for _id: %w", err)
		}
		m.ID = id
	}

	if v, ok := doc["name"].(string); ok {
		m.Name = v
	}
	if v, ok := doc["description"].(string); ok {
		m.Description = v
	}

	if priceMap, ok := doc["price"].(bson.M); ok {
		if amount, ok := priceMap["amount"].(float64); ok {
			m.Price.Amount = amount
		}
		if currency, ok := priceMap["currency_code"].(string); ok {
			m.Price.CurrencyCode = currency
		}
	}

	if v, ok := doc["image"].(string); ok {
		m.Image = v
	}
	if v, ok := doc["category"].(string); ok {
		m.Category = Category(v)
	}
	if v, ok := doc["available"].(bool); ok {
		m.Available = v
	}

	if v, ok := doc["prep_time_minutes"].(int32); ok {
		m.PrepTimeMinutes = int(v)
	} else if v, ok := doc["prep_time_minutes"].(int64); ok {
		m.PrepTimeMinutes = int(v)
	}

	m.CreatedAt = decodeTime(doc["created_at"])
	m.UpdatedAt = decodeTime(doc["updated_at"])

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
