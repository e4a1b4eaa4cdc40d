package order

import (
	"context"
	"fmt"
	"strings"
)

// ValidateOrderCreate checks an order-placement request. Line items are
// trusted snapshots: menu_item_id is not cross-checked against the catalog
// and the total is not recomputed from the lines.
func ValidateOrderCreate(ctx context.Context, req OrderCreateRequest) []string {
	var errors []string

	if strings.TrimSpace(req.UserID) == "" {
		errors = append(errors, "user_id is required")
	}

	if len(req.Items) == 0 {
		errors = append(errors, "at least one item is required")
	}

	for i, line := range req.Items {
		if strings.TrimSpace(line.MenuItemID) == "" {
			errors = append(errors, fmt.Sprintf("items[%d].menu_item_id is required", i))
		}
		if strings.TrimSpace(line.Name) == "" {
			errors = append(errors, fmt.Sprintf("items[%d].name is required", i))
		}
		if line.Quantity < 1 {
			errors = append(errors, fmt.Sprintf("items[%d].quantity must be at least 1", i))
		}
		if line.Price.Amount < 0 {
			errors = append(errors, fmt.Sprintf("items[%d].price cannot be negative", i))
		}
	}

	if req.TotalAmount == nil {
		errors = append(errors, "total_amount is required")
	} else if req.TotalAmount.Amount < 0 {
		errors = append(errors, "total_amount cannot be negative")
	}

	return errors
}

// ValidateStatusUpdate checks a status-transition request. Only membership
// in the status set is enforced; there are no adjacency rules between
// statuses.
func ValidateStatusUpdate(ctx context.Context, req StatusUpdateRequest) []string {
	var errors []string

	if !ValidStatus(req.Status) {
		errors = append(errors, "status must be one of: pending, preparing, ready, completed, cancelled")
	}

	return errors
}
