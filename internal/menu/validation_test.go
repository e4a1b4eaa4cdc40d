package menu

import (
	"context"
	"testing"
)

func validItem() *MenuItem {
	return &MenuItem{
		Name:        "Avocado Toast",
		Description: "Freshly baked sourdough topped with smashed avocado",
		Price:       Price{Amount: 8.99, CurrencyCode: "USD"},
		Category:    CategoryBreakfast,
	}
}

func TestValidateCreateMenuItem(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*MenuItem)
		wantErrors int
	}{
		{
			name:       "valid",
			mutate:     func(*MenuItem) {},
			wantErrors: 0,
		},
		{
			name:       "emptyName",
			mutate:     func(m *MenuItem) { m.Name = "   " },
			wantErrors: 1,
		},
		{
			name:       "emptyDescription",
			mutate:     func(m *MenuItem) { m.Description = "" },
			wantErrors: 1,
		},
		{
			name:       "negativePrice",
			mutate:     func(m *MenuItem) { m.Price.Amount = -1 },
			wantErrors: 1,
		},
		{
			name:       "badCurrencyCode",
			mutate:     func(m *MenuItem) { m.Price.CurrencyCode = "DOLLARS" },
			wantErrors: 1,
		},
		{
			name:       "emptyCurrencyCodeAllowed",
			mutate:     func(m *MenuItem) { m.Price.CurrencyCode = "" },
			wantErrors: 0,
		},
		{
			name:       "invalidCategory",
			mutate:     func(m *MenuItem) { m.Category = Category("Brunch") },
			wantErrors: 1,
		},
		{
			name:       "lowercaseCategoryRejected",
			mutate:     func(m *MenuItem) { m.Category = Category("lunch") },
			wantErrors: 1,
		},
		{
			name:       "negativePrepTime",
			mutate:     func(m *MenuItem) { m.PrepTimeMinutes = -5 },
			wantErrors: 1,
		},
		{
			name: "multipleErrors",
			mutate: func(m *MenuItem) {
				m.Name = ""
				m.Description = ""
				m.Category = ""
			},
			wantErrors: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(item)

			errors := ValidateCreateMenuItem(context.Background(), item)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidateCreateMenuItem() returned %d errors, want %d: %v", len(errors), tt.wantErrors, errors)
			}
		})
	}
}

func TestValidateSeedItems(t *testing.T) {
	tests := []struct {
		name       string
		items      []*MenuItem
		wantErrors int
	}{
		{
			name:       "emptyBatch",
			items:      nil,
			wantErrors: 1,
		},
		{
			name:       "validBatch",
			items:      []*MenuItem{validItem(), validItem()},
			wantErrors: 0,
		},
		{
			name: "oneInvalidEntryRejectsBatch",
			items: []*MenuItem{
				validItem(),
				{Name: "", Description: "no name", Category: CategoryLunch},
			},
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateSeedItems(context.Background(), tt.items)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidateSeedItems() returned %d errors, want %d: %v", len(errors), tt.wantErrors, errors)
			}
		})
	}
}
