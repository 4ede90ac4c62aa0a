package tui

import (
	"github.com/mmcdole/marquee/internal/domain"
)

// Message types for the TUI

// ErrMsg represents a terminal fetch failure
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// MoviesLoadedMsg signals that the catalog has been fetched
type MoviesLoadedMsg struct {
	Movies []domain.Movie
}

// JumpToMovieMsg moves the grid cursor to a view-list index chosen in
// the search overlay
type JumpToMovieMsg struct {
	Index int
}
