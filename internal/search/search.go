// Package search provides fuzzy title matching for the jump overlay
// and for "did you mean" suggestions on empty results. It operates on
// an already-derived view list and never changes what the grid shows;
// the substring filter in the library package stays authoritative.
package search

import (
	"log/slog"
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/sahilm/fuzzy"
)

// Result is a single fuzzy match against the movie list.
type Result struct {
	Movie          domain.Movie
	Index          int   // position in the searched slice
	Score          int   // higher is better (sahilm/fuzzy convention)
	MatchedIndexes []int // rune positions for highlighting
}

// index implements fuzzy.Source over lowercase movie titles.
type index struct {
	movies      []domain.Movie
	lowerTitles []string
}

func newIndex(movies []domain.Movie) *index {
	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = strings.ToLower(m.Title)
	}
	return &index{movies: movies, lowerTitles: titles}
}

func (idx *index) String(i int) string { return idx.lowerTitles[i] }
func (idx *index) Len() int            { return len(idx.movies) }

// Matcher performs fuzzy lookups over a movie list.
type Matcher struct {
	logger *slog.Logger
}

// NewMatcher creates a matcher. A nil logger falls back to the default.
func NewMatcher(logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{logger: logger}
}

// Find returns movies whose titles fuzzy-match the query, best match
// first. An empty query matches nothing.
func (m *Matcher) Find(query string, movies []domain.Movie) []Result {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, newIndex(movies))
	m.logger.Debug("fuzzy find", "query", query, "matches", len(matches))

	results := make([]Result, len(matches))
	for i, match := range matches {
		results[i] = Result{
			Movie:          movies[match.Index],
			Index:          match.Index,
			Score:          match.Score,
			MatchedIndexes: match.MatchedIndexes,
		}
	}
	return results
}

// Suggest returns up to limit titles closest to the query by rank
// distance. Used for the "did you mean" hint when the substring filter
// comes up empty.
func (m *Matcher) Suggest(query string, movies []domain.Movie, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	titles := make([]string, len(movies))
	for i, mv := range movies {
		titles[i] = mv.Title
	}

	ranks := lfuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)

	var out []string
	for _, r := range ranks {
		out = append(out, r.Target)
		if len(out) == limit {
			break
		}
	}
	return out
}
