package menu

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MockMenuItemRepo is a mock implementation of MenuItemRepo for testing.
// Items are kept in insertion order, matching the store contract.
type MockMenuItemRepo struct {
	mu    sync.RWMutex
	items []*MenuItem

	CreateFunc         func(ctx context.Context, item *MenuItem) error
	GetFunc            func(ctx context.Context, id uuid.UUID) (*MenuItem, error)
	ListAvailableFunc  func(ctx context.Context) ([]*MenuItem, error)
	ListByCategoryFunc func(ctx context.Context, category Category) ([]*MenuItem, error)
	SaveFunc           func(ctx context.Context, item *MenuItem) error
	ReplaceAllFunc     func(ctx context.Context, items []*MenuItem) error
}

func NewMockMenuItemRepo() *MockMenuItemRepo {
	return &MockMenuItemRepo{}
}

func (m *MockMenuItemRepo) Create(ctx context.Context, item *MenuItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)
	return nil
}

func (m *MockMenuItemRepo) Get(ctx context.Context, id uuid.UUID) (*MenuItem, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, nil
}

func (m *MockMenuItemRepo) List(ctx context.Context) ([]*MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*MenuItem, len(m.items))
	copy(result, m.items)
	return result, nil
}

func (m *MockMenuItemRepo) ListAvailable(ctx context.Context) ([]*MenuItem, error) {
	if m.ListAvailableFunc != nil {
		return m.ListAvailableFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*MenuItem
	for _, item := range m.items {
		if item.Available {
			result = append(result, item)
		}
	}
	return result, nil
}

func (m *MockMenuItemRepo) ListAvailableByCategory(ctx context.Context, category Category) ([]*MenuItem, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, category)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*MenuItem
	for _, item := range m.items {
		if item.Available && item.Category == category {
			result = append(result, item)
		}
	}
	return result, nil
}

func (m *MockMenuItemRepo) Save(ctx context.Context, item *MenuItem) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.items {
		if existing.ID == item.ID {
			m.items[i] = item
			return nil
		}
	}
	return fmt.Errorf("menu item not found")
}

func (m *MockMenuItemRepo) ReplaceAll(ctx context.Context, items []*MenuItem) error {
	if m.ReplaceAllFunc != nil {
		return m.ReplaceAllFunc(ctx, items)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make([]*MenuItem, len(items))
	copy(m.items, items)
	return nil
}
