package notes

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Category groups notes. The zero value is not a category; filters use it
// to mean "all categories".
type Category string

const (
	CategoryLike        Category = "like"
	CategoryDislike     Category = "dislike"
	CategoryHobby       Category = "hobby"
	CategoryAnniversary Category = "anniversary"
	CategoryFamily      Category = "family"
	CategorySchool      Category = "school"
	CategoryWork        Category = "work"
)

// All is the filter that matches every category.
const All Category = ""

type categoryInfo struct {
	label      string
	icon       string
	filledIcon string
	color      string
}

var categoryOrder = []Category{
	CategoryLike,
	CategoryDislike,
	CategoryHobby,
	CategoryAnniversary,
	CategoryFamily,
	CategorySchool,
	CategoryWork,
}

var categoryTable = map[Category]categoryInfo{
	CategoryLike:        {label: "Like", icon: "♡", filledIcon: "♥", color: "#ff2d55"},
	CategoryDislike:     {label: "Dislike", icon: "✗", filledIcon: "✖", color: "#007aff"},
	CategoryHobby:       {label: "Hobby", icon: "☆", filledIcon: "★", color: "#1e7f86"},
	CategoryAnniversary: {label: "Anniversary", icon: "◇", filledIcon: "◆", color: "#ff9500"},
	CategoryFamily:      {label: "Family", icon: "○", filledIcon: "●", color: "#af52de"},
	CategorySchool:      {label: "School", icon: "□", filledIcon: "■", color: "#5856d6"},
	CategoryWork:        {label: "Work", icon: "▷", filledIcon: "▶", color: "#a2845e"},
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory converts a stored name back to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryTable[c]; !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Valid reports whether c is a real category (not All).
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// Label is the display name. All is labelled "All".
func (c Category) Label() string {
	if c == All {
		return "All"
	}
	return categoryTable[c].label
}

// Icon is the outline glyph shown when the category is not selected.
func (c Category) Icon() string {
	if c == All {
		return "∗"
	}
	return categoryTable[c].icon
}

// FilledIcon is the glyph shown when the category is selected. All has none.
func (c Category) FilledIcon() string {
	return categoryTable[c].filledIcon
}

// Color is the category's highlight color. All uses a neutral gray.
func (c Category) Color() colorful.Color {
	info, ok := categoryTable[c]
	if !ok {
		return colorful.Color{R: 0.55, G: 0.55, B: 0.6}
	}
	col, err := colorful.Hex(info.color)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return col
}

// SortOrder is the category's position in display order; All sorts first.
func (c Category) SortOrder() int {
	for i, cc := range categoryOrder {
		if cc == c {
			return i
		}
	}
	return -1
}

// Matches reports whether a note of category n passes filter c.
func (c Category) Matches(n Category) bool {
	return c == All || c == n
}
