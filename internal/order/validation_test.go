package order

import (
	"context"
	"testing"

	"github.com/campuscanteen/canteen/internal/menu"
)

func validCreateRequest() OrderCreateRequest {
	return OrderCreateRequest{
		UserID: "u1",
		Items: []Line{
			{
				MenuItemID: "m1",
				Name:       "Avocado Toast",
				Price:      menu.Price{Amount: 8.99, CurrencyCode: "USD"},
				Quantity:   2,
			},
		},
		TotalAmount: &menu.Price{Amount: 17.98, CurrencyCode: "USD"},
	}
}

func TestValidateOrderCreate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*OrderCreateRequest)
		wantErrors int
	}{
		{
			name:       "valid",
			mutate:     func(*OrderCreateRequest) {},
			wantErrors: 0,
		},
		{
			name:       "emptyUserID",
			mutate:     func(r *OrderCreateRequest) { r.UserID = "  " },
			wantErrors: 1,
		},
		{
			name:       "emptyItems",
			mutate:     func(r *OrderCreateRequest) { r.Items = nil },
			wantErrors: 1,
		},
		{
			name:       "missingTotalAmount",
			mutate:     func(r *OrderCreateRequest) { r.TotalAmount = nil },
			wantErrors: 1,
		},
		{
			name:       "negativeTotalAmount",
			mutate:     func(r *OrderCreateRequest) { r.TotalAmount = &menu.Price{Amount: -1} },
			wantErrors: 1,
		},
		{
			name:       "zeroQuantity",
			mutate:     func(r *OrderCreateRequest) { r.Items[0].Quantity = 0 },
			wantErrors: 1,
		},
		{
			name:       "missingLineMenuItemID",
			mutate:     func(r *OrderCreateRequest) { r.Items[0].MenuItemID = "" },
			wantErrors: 1,
		},
		{
			name:       "missingLineName",
			mutate:     func(r *OrderCreateRequest) { r.Items[0].Name = "" },
			wantErrors: 1,
		},
		{
			name: "multipleErrors",
			mutate: func(r *OrderCreateRequest) {
				r.UserID = ""
				r.Items = nil
				r.TotalAmount = nil
			},
			wantErrors: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			errors := ValidateOrderCreate(context.Background(), req)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidateOrderCreate() returned %d errors, want %d: %v", len(errors), tt.wantErrors, errors)
			}
		})
	}
}

func TestValidateStatusUpdate(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantErrors int
	}{
		{"pending", StatusPending, 0},
		{"preparing", StatusPreparing, 0},
		{"ready", StatusReady, 0},
		{"completed", StatusCompleted, 0},
		{"cancelled", StatusCancelled, 0},
		{"shipped", "shipped", 1},
		{"empty", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateStatusUpdate(context.Background(), StatusUpdateRequest{Status: tt.status})
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidateStatusUpdate(%q) returned %d errors, want %d", tt.status, len(errors), tt.wantErrors)
			}
		})
	}
}
