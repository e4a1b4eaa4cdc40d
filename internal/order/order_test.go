package order

import (
	"testing"

	"github.com/google/uuid"

	"github.com/campuscanteen/canteen/internal/menu"
)

func TestNewOrder(t *testing.T) {
	order := NewOrder()

	if order == nil {
		t.Fatal("NewOrder() returned nil")
	}

	if order.ID == uuid.Nil {
		t.Error("NewOrder() should generate a non-nil UUID")
	}

	if order.Status != StatusPending {
		t.Errorf("NewOrder() Status = %q, want %q", order.Status, StatusPending)
	}
}

func TestValidStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{"pending", StatusPending, true},
		{"preparing", StatusPreparing, true},
		{"ready", StatusReady, true},
		{"completed", StatusCompleted, true},
		{"cancelled", StatusCancelled, true},
		{"shipped", "shipped", false},
		{"empty", "", false},
		{"uppercase", "Pending", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidStatus(tt.status); got != tt.want {
				t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name       string
		transition func(*Order)
		want       string
	}{
		{"pending", (*Order).MarkAsPending, StatusPending},
		{"preparing", (*Order).MarkAsPreparing, StatusPreparing},
		{"ready", (*Order).MarkAsReady, StatusReady},
		{"completed", (*Order).MarkAsCompleted, StatusCompleted},
		{"cancelled", (*Order).Cancel, StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := NewOrder()
			before := order.UpdatedAt

			tt.transition(order)

			if order.Status != tt.want {
				t.Errorf("transition set status %q, want %q", order.Status, tt.want)
			}
			if order.UpdatedAt.Before(before) {
				t.Error("transition should advance UpdatedAt")
			}
		})
	}
}

// The status machine is intentionally permissive: there are no adjacency
// rules, so an order can leave completed or cancelled. A future stricter
// machine must change this test deliberately.
func TestOrderStatusNoAdjacencyRules(t *testing.T) {
	order := NewOrder()

	order.MarkAsCompleted()
	if order.Status != StatusCompleted {
		t.Fatalf("Status = %q, want %q", order.Status, StatusCompleted)
	}

	order.MarkAsPending()
	if order.Status != StatusPending {
		t.Errorf("completed order should move back to pending, Status = %q", order.Status)
	}

	order.Cancel()
	order.MarkAsReady()
	if order.Status != StatusReady {
		t.Errorf("cancelled order should move to ready, Status = %q", order.Status)
	}
}

func TestOrderGetSetID(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	order := &Order{}
	order.SetID(id)

	if got := order.GetID(); got != id {
		t.Errorf("Order.GetID() = %v, want %v", got, id)
	}
}

func TestOrderEnsureID(t *testing.T) {
	tests := []struct {
		name        string
		order       *Order
		expectNewID bool
	}{
		{
			name:        "generatesIDWhenNil",
			order:       &Order{ID: uuid.Nil},
			expectNewID: true,
		},
		{
			name:        "preservesExistingID",
			order:       &Order{ID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440002")},
			expectNewID: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalID := tt.order.ID
			tt.order.EnsureID()

			if tt.expectNewID {
				if tt.order.ID == uuid.Nil {
					t.Error("EnsureID() should generate non-nil UUID")
				}
			} else {
				if tt.order.ID != originalID {
					t.Errorf("EnsureID() changed existing ID from %v to %v", originalID, tt.order.ID)
				}
			}
		})
	}
}

func TestOrderResourceType(t *testing.T) {
	order := &Order{}
	if got := order.ResourceType(); got != "orders" {
		t.Errorf("Order.ResourceType() = %q, want %q", got, "orders")
	}
}

func TestOrderBSONRoundTrip(t *testing.T) {
	order := NewOrder()
	order.UserID = "u1"
	order.Items = []Line{
		{
			MenuItemID: "m1",
			Name:       "Avocado Toast",
			Price:      menu.Price{Amount: 8.99, CurrencyCode: "USD"},
			Quantity:   2,
		},
	}
	order.TotalAmount = menu.Price{Amount: 17.98, CurrencyCode: "USD"}
	order.BeforeCreate()

	data, err := order.MarshalBSON()
	if err != nil {
		t.Fatalf("MarshalBSON() error = %v", err)
	}

	var decoded Order
	if err := decoded.UnmarshalBSON(data); err != nil {
		t.Fatalf("UnmarshalBSON() error = %v", err)
	}

	if decoded.ID != order.ID {
		t.Errorf("round trip ID = %v, want %v", decoded.ID, order.ID)
	}
	if decoded.UserID != "u1" {
		t.Errorf("round trip UserID = %q, want %q", decoded.UserID, "u1")
	}
	if decoded.Status != StatusPending {
		t.Errorf("round trip Status = %q, want %q", decoded.Status, StatusPending)
	}
	if len(decoded.Items) != 1 {
		t.Fatalf("round trip Items length = %d, want 1", len(decoded.Items))
	}
	if decoded.Items[0] != order.Items[0] {
		t.Errorf("round trip line = %+v, want %+v", decoded.Items[0], order.Items[0])
	}
	if decoded.TotalAmount != order.TotalAmount {
		t.Errorf("round trip TotalAmount = %+v, want %+v", decoded.TotalAmount, order.TotalAmount)
	}
	if decoded.PickupTime != nil {
		t.Error("round trip PickupTime should stay nil when unset")
	}
}
