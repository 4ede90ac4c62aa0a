package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Movie represents a single catalog entry as returned by the listing
// endpoint. All fields arrive as strings; Year and Runtime are decimal
// digit strings and Runtime is a total in minutes. The record is never
// mutated after it is received.
type Movie struct {
	Title   string `json:"Title"`
	Year    string `json:"Year"`
	Runtime string `json:"Runtime"`
	Poster  string `json:"Poster,omitempty"`
}

// YearValue parses the Year string as an integer.
// ok is false when the field is not a decimal number.
func (m Movie) YearValue() (int, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(m.Year))
	if err != nil {
		return 0, false
	}
	return y, true
}

// RuntimeMinutes parses the Runtime string as total minutes.
// ok is false when the field is not a decimal number.
func (m Movie) RuntimeMinutes() (int, bool) {
	mins, err := strconv.Atoi(strings.TrimSpace(m.Runtime))
	if err != nil {
		return 0, false
	}
	return mins, true
}

// FormattedRuntime returns the runtime in a human-readable format:
// "2h 16m" for 136 minutes, "45m" for sub-hour runtimes. A Runtime that
// does not parse renders as "--" rather than breaking the card.
func (m Movie) FormattedRuntime() string {
	mins, ok := m.RuntimeMinutes()
	if !ok {
		return "--"
	}
	h := mins / 60
	rem := mins % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, rem)
	}
	return fmt.Sprintf("%dm", rem)
}

// HasPoster reports whether the movie carries a usable poster URL.
// The upstream API uses "N/A" for missing posters.
func (m Movie) HasPoster() bool {
	return m.Poster != "" && m.Poster != "N/A"
}

// DisplayTitle returns the title with the year appended when present,
// e.g. "Inception (2010)".
func (m Movie) DisplayTitle() string {
	if _, ok := m.YearValue(); ok {
		return fmt.Sprintf("%s (%s)", m.Title, m.Year)
	}
	return m.Title
}
