package notes

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/sukinote/internal/dial"
)

// CategoryFilters lists the category dial entries: All, then every category.
func CategoryFilters() []Category {
	return append([]Category{All}, categoryOrder...)
}

// CategoryDialItems builds the category dial, All first.
func CategoryDialItems() []dial.Item {
	filters := CategoryFilters()
	items := make([]dial.Item, len(filters))
	for i, c := range filters {
		items[i] = dial.Item{
			Icon:            c.Icon(),
			HighlightedIcon: c.FilledIcon(),
			Label:           c.Label(),
			HighlightColor:  c.Color(),
		}
	}
	return items
}

// EditorDialItems builds the category picker used by the editor; All is
// not offered.
func EditorDialItems() []dial.Item {
	return CategoryDialItems()[1:]
}

// SortDialItems builds the sort type dial.
func SortDialItems() []dial.Item {
	types := SortTypes()
	items := make([]dial.Item, len(types))
	for i, t := range types {
		items[i] = dial.Item{
			Icon:           t.Icon(),
			Label:          t.Label(),
			HighlightColor: sortColor(t),
		}
	}
	return items
}

// sortColor borrows a category color so the sort dial matches the palette.
func sortColor(t SortType) colorful.Color {
	switch t {
	case SortByCreatedDate:
		return CategoryFamily.Color()
	case SortByTitle:
		return CategorySchool.Color()
	case SortByAnniversaryDate:
		return CategoryAnniversary.Color()
	default:
		return CategoryHobby.Color()
	}
}
