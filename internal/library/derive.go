// Package library implements the derivation pipeline: pure functions
// that turn the raw catalog plus the user's filter settings into the
// view list presented by the TUI. Nothing here mutates its input and
// nothing is cached, so recomputing on every keystroke is safe.
package library

import (
	"sort"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter is the user-controlled view configuration. Both fields are
// always defined; the zero value means "show everything, by title".
type Filter struct {
	Query  string
	SortBy domain.SortKey
}

// titleCollator compares titles with locale-aware, case-insensitive
// ordering so "éclair" sorts next to "eclair" rather than after "z".
var titleCollator = collate.New(language.English, collate.IgnoreCase)

// Match keeps the movies whose title contains the query as a
// case-insensitive substring. An empty query matches everything.
// The input slice is never modified.
func Match(movies []domain.Movie, query string) []domain.Movie {
	if query == "" {
		return append([]domain.Movie(nil), movies...)
	}

	q := strings.ToLower(query)
	var out []domain.Movie
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), q) {
			out = append(out, m)
		}
	}
	return out
}

// Sort returns a new slice ordered by the given key.
//
// Title sorts ascending with collation; Year and Runtime sort descending
// by numeric value (most recent and longest first). Values that fail to
// parse sort after every parseable value, keeping their relative input
// order, so a stray "N/A" never scrambles the rest of the list.
func Sort(movies []domain.Movie, key domain.SortKey) []domain.Movie {
	out := append([]domain.Movie(nil), movies...)

	switch key {
	case domain.SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return titleCollator.CompareString(out[i].Title, out[j].Title) < 0
		})
	case domain.SortYear:
		sort.SliceStable(out, func(i, j int) bool {
			return numericLess(out[i].YearValue, out[j].YearValue)
		})
	case domain.SortRuntime:
		sort.SliceStable(out, func(i, j int) bool {
			return numericLess(out[i].RuntimeMinutes, out[j].RuntimeMinutes)
		})
	}

	return out
}

// numericLess orders two parsed values descending, with unparseable
// values last.
func numericLess(left, right func() (int, bool)) bool {
	lv, lok := left()
	rv, rok := right()
	if lok != rok {
		return lok
	}
	return lv > rv
}

// Derive produces the view list for a raw catalog and filter: the
// movies matching the query, ordered by the selected key.
func Derive(movies []domain.Movie, f Filter) []domain.Movie {
	return Sort(Match(movies, f.Query), f.SortBy)
}
