package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/catalog"
)

// Command factories for async operations

// FetchMoviesCmd fetches the movie catalog. Issued exactly once at
// session start; failures are terminal (restart to retry).
func FetchMoviesCmd(client *catalog.Client, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		movies, err := client.FetchMovies(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return MoviesLoadedMsg{Movies: movies}
	}
}
