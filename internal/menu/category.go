package menu

import "unicode"

// Category partitions the catalog for browsing.
type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategoryDinner    Category = "Dinner"
)

// Categories lists every category the catalog accepts.
func Categories() []Category {
	return []Category{CategoryBreakfast, CategoryLunch, CategoryDinner}
}

// Valid reports whether the category is one of the accepted values.
func (c Category) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner:
		return true
	}
	return false
}

// NormalizeCategory upper-cases the first rune and leaves the rest of the
// input as supplied, so "breakfast" and "Breakfast" match the stored value
// while "breakFast" does not. An unknown category is not an error here;
// lookups with one simply match nothing.
func NormalizeCategory(s string) Category {
	if s == "" {
		return Category(s)
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return Category(string(runes))
}
