package event

import "time"

const (
	OrdersTopic             = "orders.events"
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status.changed"
)

// OrderEvent represents an order lifecycle event published to NATS.
// Consumers (kitchen displays, notification fan-out) subscribe to
// OrdersTopic; the canteen service itself never reads these back.
type OrderEvent struct {
	EventType      string    `json:"event_type"`
	OccurredAt     time.Time `json:"occurred_at"`
	OrderID        string    `json:"order_id"`
	UserID         string    `json:"user_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	TotalAmount    float64   `json:"total_amount"`
	Currency       string    `json:"currency,omitempty"`
}
