package menu

import (
	"context"
	"fmt"
	"strings"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateCreateMenuItem validates a menu item before creation
func ValidateCreateMenuItem(ctx context.Context, item *MenuItem) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(item.Name) == "" {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if strings.TrimSpace(item.Description) == "" {
		errors = append(errors, ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if item.Price.Amount < 0 {
		errors = append(errors, ValidationError{
			Field:   "price.amount",
			Message: "price amount cannot be negative",
		})
	}

	if item.Price.CurrencyCode != "" && len(item.Price.CurrencyCode) != 3 {
		errors = append(errors, ValidationError{
			Field:   "price.currency_code",
			Message: "currency code must be 3 characters (ISO 4217)",
		})
	}

	if !item.Category.Valid() {
		errors = append(errors, ValidationError{
			Field:   "category",
			Message: "category must be one of: Breakfast, Lunch, Dinner",
		})
	}

	if item.PrepTimeMinutes < 0 {
		errors = append(errors, ValidationError{
			Field:   "preparation_time",
			Message: "preparation time cannot be negative",
		})
	}

	return errors
}

// ValidateSeedItems validates a bulk seed payload before the catalog is
// replaced. The whole batch is rejected when any entry is invalid so a
// partial replace never happens.
func ValidateSeedItems(ctx context.Context, items []*MenuItem) []ValidationError {
	if len(items) == 0 {
		return []ValidationError{{
			Field:   "items",
			Message: "at least one seed item is required",
		}}
	}

	var errors []ValidationError
	for i, item := range items {
		for _, ve := range ValidateCreateMenuItem(ctx, item) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("items[%d].%s", i, ve.Field),
				Message: ve.Message,
			})
		}
	}
	return errors
}
