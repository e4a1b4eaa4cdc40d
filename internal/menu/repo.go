package menu

import (
	"context"

	"github.com/google/uuid"
)

// MenuItemRepo defines the repository interface for menu items
type MenuItemRepo interface {
	Create(ctx context.Context, item *MenuItem) error
	Get(ctx context.Context, id uuid.UUID) (*MenuItem, error)
	List(ctx context.Context) ([]*MenuItem, error)
	ListAvailable(ctx context.Context) ([]*MenuItem, error)
	ListAvailableByCategory(ctx context.Context, category Category) ([]*MenuItem, error)
	Save(ctx context.Context, item *MenuItem) error
	ReplaceAll(ctx context.Context, items []*MenuItem) error
}
