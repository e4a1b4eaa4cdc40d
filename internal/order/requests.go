package order

import (
	"time"

	"github.com/campuscanteen/canteen/internal/menu"
)

type OrderCreateRequest struct {
	UserID      string      `json:"user_id"`
	Items       []Line      `json:"items"`
	TotalAmount *menu.Price `json:"total_amount"`
	PickupTime  *time.Time  `json:"pickup_time,omitempty"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}
