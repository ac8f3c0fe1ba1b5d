package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 11, 9, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time { return base.AddDate(0, 0, n) }

func note(title string, c Category, created int) Note {
	return Note{Title: title, Category: c, CreatedAt: day(created)}
}

func anniversary(title string, created int, date *time.Time) Note {
	n := note(title, CategoryAnniversary, created)
	n.AnniversaryDate = date
	return n
}

func titles(list []Note) []string {
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = n.Title
	}
	return out
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sample() []Note {
	return []Note{
		note("coffee", CategoryLike, -1),
		note("humidity", CategoryDislike, -2),
		note("photography", CategoryHobby, -3),
		anniversary("launch", -4, datePtr(2024, 4, 1)),
		note("jazz", CategoryLike, -5),
		anniversary("wedding", -20, datePtr(2020, 6, 15)),
		anniversary("someday", -6, nil),
		note("reviews", CategoryWork, -9),
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name  string
		typ   SortType
		order SortOrder
		want  []string
	}{
		{
			name:  "category ascending keeps oldest first inside a category",
			typ:   SortByCategory,
			order: Ascending,
			want:  []string{"jazz", "coffee", "humidity", "photography", "wedding", "someday", "launch", "reviews"},
		},
		{
			name:  "category descending reverses categories only",
			typ:   SortByCategory,
			order: Descending,
			want:  []string{"reviews", "wedding", "someday", "launch", "photography", "humidity", "jazz", "coffee"},
		},
		{
			name:  "created ascending",
			typ:   SortByCreatedDate,
			order: Ascending,
			want:  []string{"wedding", "reviews", "someday", "jazz", "launch", "photography", "humidity", "coffee"},
		},
		{
			name:  "created descending",
			typ:   SortByCreatedDate,
			order: Descending,
			want:  []string{"coffee", "humidity", "photography", "launch", "jazz", "someday", "reviews", "wedding"},
		},
		{
			name:  "title ascending",
			typ:   SortByTitle,
			order: Ascending,
			want:  []string{"coffee", "humidity", "jazz", "launch", "photography", "reviews", "someday", "wedding"},
		},
		{
			name:  "anniversary ascending puts dated anniversaries first",
			typ:   SortByAnniversaryDate,
			order: Ascending,
			want:  []string{"wedding", "launch", "someday", "jazz", "coffee", "humidity", "photography", "reviews"},
		},
		{
			name:  "anniversary descending only flips the dates",
			typ:   SortByAnniversaryDate,
			order: Descending,
			want:  []string{"launch", "wedding", "someday", "jazz", "coffee", "humidity", "photography", "reviews"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := sample()
			got := Sort(list, tt.typ, tt.order)
			assert.Equal(t, tt.want, titles(got))
			assert.Equal(t, titles(sample()), titles(list), "input must not be reordered")
		})
	}
}

func TestSort_TitleIsNatural(t *testing.T) {
	list := []Note{
		note("Note 10", CategoryLike, 0),
		note("note 2", CategoryLike, 0),
		note("Note 1", CategoryLike, 0),
		note("apple", CategoryLike, 0),
	}
	assert.Equal(t, []string{"apple", "Note 1", "note 2", "Note 10"}, titles(Sort(list, SortByTitle, Ascending)))
}

func TestTitleCollator(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "b", -1},
		{"B", "a", 1},
		{"Note 2", "note 10", -1},
		{"x10", "x9", 1},
		{"Recipe", "recipe", 0},
		{"étude", "fig", -1},
		{"abc", "ab", 1},
		{"", "", 0},
	}
	col := newTitleCollator()
	for _, tt := range tests {
		assert.Equal(t, tt.want, col.CompareString(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestFilterFor(t *testing.T) {
	assert.Equal(t, All, FilterFor(SortByCategory, CategoryHobby))
	assert.Equal(t, CategoryAnniversary, FilterFor(SortByAnniversaryDate, All))
	assert.Equal(t, CategoryHobby, FilterFor(SortByTitle, CategoryHobby))
	assert.Equal(t, CategoryWork, FilterFor(SortByCreatedDate, CategoryWork))
}

func TestFilter(t *testing.T) {
	list := sample()
	assert.Len(t, Filter(list, All), len(list))
	assert.Equal(t, []string{"coffee", "jazz"}, titles(Filter(list, CategoryLike)))
	assert.Empty(t, Filter(list, CategorySchool))
}

func TestCountByCategory(t *testing.T) {
	counts := CountByCategory(sample())
	assert.Equal(t, 2, counts[CategoryLike])
	assert.Equal(t, 3, counts[CategoryAnniversary])
	assert.Zero(t, counts[CategoryFamily])
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 7)
	for i, c := range cats {
		assert.True(t, c.Valid())
		assert.Equal(t, i, c.SortOrder())
		assert.NotEmpty(t, c.Label())
		assert.NotEmpty(t, c.FilledIcon())
	}
	assert.False(t, All.Valid())
	assert.Equal(t, "All", All.Label())
	assert.Equal(t, -1, All.SortOrder())

	c, err := ParseCategory("hobby")
	require.NoError(t, err)
	assert.Equal(t, CategoryHobby, c)
	_, err = ParseCategory("nope")
	assert.Error(t, err)
}

func TestNote_NormalizeAndValidate(t *testing.T) {
	n := New(CategoryLike, "  coffee  ", " oat milk ", base)
	n.AnniversaryDate = datePtr(2020, 1, 1)
	n.Annual = true
	n = n.Normalize()

	assert.Equal(t, "coffee", n.Title)
	assert.Equal(t, "oat milk", n.Content)
	assert.Nil(t, n.AnniversaryDate, "only anniversaries keep a date")
	assert.False(t, n.Annual)
	assert.NoError(t, n.Validate())

	a := anniversary("wedding", 0, datePtr(2020, 6, 15))
	a.Annual = true
	a = a.Normalize()
	assert.NotNil(t, a.AnniversaryDate)
	assert.True(t, a.Annual)

	assert.ErrorIs(t, Note{Category: CategoryLike, Title: "  "}.Validate(), ErrEmptyTitle)
	assert.Error(t, Note{Title: "x"}.Validate())
}

func TestNote_AnalyticsParams(t *testing.T) {
	n := anniversary("結婚記念日", 0, datePtr(2020, 6, 15))
	params := n.AnalyticsParams()
	assert.Equal(t, "anniversary", params["category"])
	assert.Equal(t, 5, params["title_length"])
	assert.Equal(t, true, params["has_anniversary_date"])
}

func TestDialItems(t *testing.T) {
	cats := CategoryDialItems()
	require.Len(t, cats, 8)
	assert.Equal(t, "All", cats[0].Label)
	assert.False(t, cats[0].HasHighlightedIcon())
	assert.Equal(t, "♥", cats[1].HighlightedIcon)

	editor := EditorDialItems()
	require.Len(t, editor, 7)
	assert.Equal(t, "Like", editor[0].Label)

	assert.Len(t, SortDialItems(), len(SortTypes()))
}

func TestSamples(t *testing.T) {
	list := Samples(base)
	require.NotEmpty(t, list)
	seen := map[string]bool{}
	for _, n := range list {
		assert.NoError(t, n.Validate(), n.Title)
		assert.False(t, seen[n.ID.String()], "duplicate id")
		seen[n.ID.String()] = true
		assert.True(t, n.CreatedAt.Before(base))
	}
	assert.Len(t, Filter(list, CategoryAnniversary), 2)
}
