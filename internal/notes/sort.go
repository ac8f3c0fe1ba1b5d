package notes

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortType selects how the note list is ordered.
type SortType string

const (
	SortByCategory        SortType = "category"
	SortByCreatedDate     SortType = "createdDate"
	SortByTitle           SortType = "title"
	SortByAnniversaryDate SortType = "anniversaryDate"
)

// SortTypes returns every sort type in display order.
func SortTypes() []SortType {
	return []SortType{SortByCategory, SortByCreatedDate, SortByTitle, SortByAnniversaryDate}
}

// Label is the display name of the sort type.
func (t SortType) Label() string {
	switch t {
	case SortByCategory:
		return "Category"
	case SortByCreatedDate:
		return "Created"
	case SortByTitle:
		return "Title"
	case SortByAnniversaryDate:
		return "Anniversary"
	default:
		return string(t)
	}
}

// Icon is the glyph shown for the sort type.
func (t SortType) Icon() string {
	switch t {
	case SortByCategory:
		return "▤"
	case SortByCreatedDate:
		return "◷"
	case SortByTitle:
		return "Aa"
	case SortByAnniversaryDate:
		return "◆"
	default:
		return "?"
	}
}

// SortOrder is ascending or descending.
type SortOrder string

const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

// Toggle returns the opposite order.
func (o SortOrder) Toggle() SortOrder {
	if o == Descending {
		return Ascending
	}
	return Descending
}

// Arrow is a one-cell indicator of the order.
func (o SortOrder) Arrow() string {
	if o == Descending {
		return "↓"
	}
	return "↑"
}

// FilterFor returns the category filter to apply after switching to sort
// type t: category sorting shows everything, anniversary sorting shows only
// anniversaries, and the other types keep the current filter.
func FilterFor(t SortType, current Category) Category {
	switch t {
	case SortByCategory:
		return All
	case SortByAnniversaryDate:
		return CategoryAnniversary
	default:
		return current
	}
}

// Sort returns a sorted copy of list.
//
// Category and anniversary sorting apply the order themselves and keep
// notes inside a group oldest first. Created date and title sort ascending
// and then reverse the whole list for descending.
func Sort(list []Note, t SortType, o SortOrder) []Note {
	out := slices.Clone(list)
	asc := o != Descending

	switch t {
	case SortByCategory:
		slices.SortStableFunc(out, func(a, b Note) int {
			if c := cmp.Compare(a.Category.SortOrder(), b.Category.SortOrder()); c != 0 {
				if asc {
					return c
				}
				return -c
			}
			return a.CreatedAt.Compare(b.CreatedAt)
		})
		return out

	case SortByAnniversaryDate:
		slices.SortStableFunc(out, func(a, b Note) int {
			return compareAnniversary(a, b, asc)
		})
		return out

	case SortByTitle:
		col := newTitleCollator()
		slices.SortStableFunc(out, func(a, b Note) int {
			if c := col.CompareString(a.Title, b.Title); c != 0 {
				return c
			}
			return a.CreatedAt.Compare(b.CreatedAt)
		})

	default:
		slices.SortStableFunc(out, func(a, b Note) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	}

	if !asc {
		slices.Reverse(out)
	}
	return out
}

// compareAnniversary puts anniversary notes first, dated ones before
// undated ones, then everything else in category order.
func compareAnniversary(a, b Note, asc bool) int {
	aAnn := a.Category == CategoryAnniversary
	bAnn := b.Category == CategoryAnniversary
	switch {
	case aAnn && !bAnn:
		return -1
	case !aAnn && bAnn:
		return 1
	case aAnn && bAnn:
		switch {
		case a.AnniversaryDate == nil && b.AnniversaryDate != nil:
			return 1
		case a.AnniversaryDate != nil && b.AnniversaryDate == nil:
			return -1
		case a.AnniversaryDate != nil && b.AnniversaryDate != nil:
			if c := a.AnniversaryDate.Compare(*b.AnniversaryDate); c != 0 {
				if asc {
					return c
				}
				return -c
			}
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	}
	if c := cmp.Compare(a.Category.SortOrder(), b.Category.SortOrder()); c != 0 {
		return c
	}
	return a.CreatedAt.Compare(b.CreatedAt)
}

// newTitleCollator orders titles case-insensitively with digit runs
// compared by value, so "Note 2" sorts before "Note 10". A collator keeps
// per-call buffers; use one per sort.
func newTitleCollator() *collate.Collator {
	return collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
}
