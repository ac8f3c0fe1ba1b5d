package notes

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// searchSource matches a query against each note's title and content.
type searchSource []Note

func (s searchSource) String(i int) string { return s[i].Title + " " + s[i].Content }

func (s searchSource) Len() int { return len(s) }

// Search returns the notes fuzzy-matching query, in list order. A blank
// query matches everything.
func Search(list []Note, query string) []Note {
	query = strings.TrimSpace(query)
	if query == "" {
		return list
	}
	matches := fuzzy.FindFrom(query, searchSource(list))
	idx := make([]int, len(matches))
	for i, match := range matches {
		idx[i] = match.Index
	}
	slices.Sort(idx)

	out := make([]Note, len(idx))
	for i, j := range idx {
		out[i] = list[j]
	}
	return out
}
