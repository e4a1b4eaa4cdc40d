package order

import (
	"context"

	"github.com/google/uuid"
)

type OrderRepo interface {
	Create(ctx context.Context, order *Order) error
	Get(ctx context.Context, id uuid.UUID) (*Order, error)
	// ListByUser returns the user's orders newest-created-first.
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
	Save(ctx context.Context, order *Order) error
}
