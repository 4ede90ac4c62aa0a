package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/domain"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func gridWith(n int, width, height int) CardGrid {
	movies := make([]domain.Movie, n)
	for i := range movies {
		movies[i] = domain.Movie{Title: strings.Repeat("x", i+1), Year: "2000", Runtime: "90"}
	}
	g := NewCardGrid()
	g.SetSize(width, height)
	g.SetMovies(movies)
	return g
}

func TestCardGrid_HorizontalNavigation(t *testing.T) {
	g := gridWith(6, 120, 40) // 4 columns at width 120

	g, _ = g.Update(keyMsg("l"))
	if g.Cursor() != 1 {
		t.Errorf("after l, expected cursor 1, got %d", g.Cursor())
	}

	g, _ = g.Update(keyMsg("h"))
	if g.Cursor() != 0 {
		t.Errorf("after h, expected cursor 0, got %d", g.Cursor())
	}

	// h at the first card stays put.
	g, _ = g.Update(keyMsg("h"))
	if g.Cursor() != 0 {
		t.Errorf("h at start should stay at 0, got %d", g.Cursor())
	}
}

func TestCardGrid_VerticalNavigationByRow(t *testing.T) {
	g := gridWith(6, 120, 40) // rows of 4: [0..3], [4,5]

	g, _ = g.Update(keyMsg("j"))
	if g.Cursor() != 4 {
		t.Errorf("after j, expected cursor 4 (next row), got %d", g.Cursor())
	}

	g, _ = g.Update(keyMsg("k"))
	if g.Cursor() != 0 {
		t.Errorf("after k, expected cursor 0, got %d", g.Cursor())
	}
}

func TestCardGrid_DownIntoPartialRow(t *testing.T) {
	g := gridWith(6, 120, 40)

	// Column 3 of row 0 (index 3); row 1 only has indexes 4 and 5.
	g.SetCursor(3)
	g, _ = g.Update(keyMsg("j"))
	if g.Cursor() != 5 {
		t.Errorf("j into a short row should land on its last card, got %d", g.Cursor())
	}
}

func TestCardGrid_HomeEnd(t *testing.T) {
	g := gridWith(10, 120, 40)

	g, _ = g.Update(keyMsg("G"))
	if g.Cursor() != 9 {
		t.Errorf("after G, expected cursor 9, got %d", g.Cursor())
	}

	g, _ = g.Update(keyMsg("g"))
	if g.Cursor() != 0 {
		t.Errorf("after g, expected cursor 0, got %d", g.Cursor())
	}
}

func TestCardGrid_SetCursorClamps(t *testing.T) {
	g := gridWith(3, 120, 40)

	g.SetCursor(99)
	if g.Cursor() != 2 {
		t.Errorf("expected cursor clamped to 2, got %d", g.Cursor())
	}

	g.SetCursor(-5)
	if g.Cursor() != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", g.Cursor())
	}
}

func TestCardGrid_SelectedMovie(t *testing.T) {
	g := NewCardGrid()
	g.SetSize(120, 40)
	g.SetMovies([]domain.Movie{
		{Title: "Alpha", Year: "2019", Runtime: "108"},
		{Title: "Zeta", Year: "1969", Runtime: "86"},
	})

	sel := g.SelectedMovie()
	if sel == nil || sel.Title != "Alpha" {
		t.Fatalf("expected Alpha selected, got %v", sel)
	}

	g.SetCursor(1)
	sel = g.SelectedMovie()
	if sel == nil || sel.Title != "Zeta" {
		t.Fatalf("expected Zeta selected, got %v", sel)
	}
}

func TestCardGrid_EmptyGrid(t *testing.T) {
	g := NewCardGrid()
	g.SetSize(120, 40)
	g.SetMovies(nil)

	if !g.IsEmpty() {
		t.Error("expected empty grid")
	}
	if g.SelectedMovie() != nil {
		t.Error("expected nil selection on empty grid")
	}
	if g.View() != "" {
		t.Error("empty grid should render nothing; the caller owns the empty state")
	}
}

func TestCardGrid_SetMoviesResetsCursor(t *testing.T) {
	g := gridWith(6, 120, 40)
	g.SetCursor(5)

	g.SetMovies([]domain.Movie{{Title: "Solo", Year: "2018", Runtime: "135"}})
	if g.Cursor() != 0 {
		t.Errorf("expected cursor reset after SetMovies, got %d", g.Cursor())
	}
}

func TestCardGrid_ViewShowsRuntimeAndYear(t *testing.T) {
	g := NewCardGrid()
	g.SetSize(120, 40)
	g.SetMovies([]domain.Movie{{Title: "The Matrix", Year: "1999", Runtime: "136"}})

	view := g.View()
	if !strings.Contains(view, "The Matrix") {
		t.Error("card should show the title")
	}
	if !strings.Contains(view, "1999") {
		t.Error("card should show the year")
	}
	if !strings.Contains(view, "2h 16m") {
		t.Error("card should show the formatted runtime")
	}
}
