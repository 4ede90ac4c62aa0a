package tui_test

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/tui"
)

func testMovies() []domain.Movie {
	return []domain.Movie{
		{Title: "Zeta", Year: "1969", Runtime: "86"},
		{Title: "Alpha", Year: "2019", Runtime: "108"},
		{Title: "The Matrix", Year: "1999", Runtime: "136"},
	}
}

func newTestModel() tui.Model {
	return tui.NewModel(nil, search.NewMatcher(nil), domain.SortTitle, 0, nil)
}

// readyModel returns a model that has been sized and given a catalog.
func readyModel(t *testing.T, movies []domain.Movie) tui.Model {
	t.Helper()
	m := newTestModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(tui.Model)

	updated, _ = m.Update(tui.MoviesLoadedMsg{Movies: movies})
	return updated.(tui.Model)
}

func press(t *testing.T, m tui.Model, keys ...string) tui.Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.Msg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(tui.Model)
	}
	return m
}

func typeText(t *testing.T, m tui.Model, text string) tui.Model {
	t.Helper()
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(tui.Model)
	}
	return m
}

func viewTitles(m tui.Model) []string {
	movies := m.ViewList()
	titles := make([]string, len(movies))
	for i, mv := range movies {
		titles[i] = mv.Title
	}
	return titles
}

func TestLifecycle_StartsLoading(t *testing.T) {
	m := newTestModel()
	if m.State != tui.StateLoading {
		t.Errorf("expected initial state Loading, got %v", m.State)
	}
}

func TestLifecycle_ReadyAfterLoad(t *testing.T) {
	m := readyModel(t, testMovies())

	if m.State != tui.StateReady {
		t.Fatalf("expected state Ready, got %v", m.State)
	}

	// Default sort is by title ascending.
	got := viewTitles(m)
	want := []string{"Alpha", "The Matrix", "Zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("view[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLifecycle_HTTPFailureMessage(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(tui.Model)

	updated, _ = m.Update(tui.ErrMsg{Err: domain.ErrFetchFailed})
	m = updated.(tui.Model)

	if m.State != tui.StateError {
		t.Fatalf("expected state Error, got %v", m.State)
	}
	if m.ErrMsg != "Failed to fetch movies" {
		t.Errorf("expected fixed HTTP failure message, got %q", m.ErrMsg)
	}
	if !strings.Contains(m.View(), "Failed to fetch movies") {
		t.Error("error view should show the failure message")
	}
}

func TestLifecycle_BlankErrorGetsGenericMessage(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(tui.ErrMsg{Err: errors.New("")})
	m = updated.(tui.Model)

	if m.ErrMsg != "An error occurred" {
		t.Errorf("expected generic fallback message, got %q", m.ErrMsg)
	}
}

func TestSearch_FiltersOnEveryKeystroke(t *testing.T) {
	m := readyModel(t, testMovies())

	m = press(t, m, "/")
	m = typeText(t, m, "ze")

	got := viewTitles(m)
	if len(got) != 1 || got[0] != "Zeta" {
		t.Errorf("expected [Zeta], got %v", got)
	}
	if m.SearchTerm() != "ze" {
		t.Errorf("expected search term 'ze', got %q", m.SearchTerm())
	}
}

func TestSearch_EscClearsTermAndRestoresView(t *testing.T) {
	m := readyModel(t, testMovies())

	m = press(t, m, "/")
	m = typeText(t, m, "zeta")
	m = press(t, m, "esc")

	if m.SearchTerm() != "" {
		t.Errorf("expected cleared term, got %q", m.SearchTerm())
	}
	if len(m.ViewList()) != 3 {
		t.Errorf("expected full view list after esc, got %d items", len(m.ViewList()))
	}
}

func TestSearch_NoResultsMessage(t *testing.T) {
	m := readyModel(t, testMovies())

	m = press(t, m, "/")
	m = typeText(t, m, "zz")

	if len(m.ViewList()) != 0 {
		t.Fatalf("expected empty view list, got %d items", len(m.ViewList()))
	}
	if !strings.Contains(m.View(), "No movies match") {
		t.Error("empty result should render the explicit no-results message")
	}
}

func TestSortModal_ChangesOrder(t *testing.T) {
	m := readyModel(t, testMovies())

	// s opens the modal on Title; j moves to Year; enter applies.
	m = press(t, m, "s", "j", "enter")

	if m.SortKey() != domain.SortYear {
		t.Fatalf("expected sort by year, got %v", m.SortKey())
	}

	got := viewTitles(m)
	if got[0] != "Alpha" {
		t.Errorf("expected most recent movie first, got %v", got)
	}
	if m.SortModal.IsVisible() {
		t.Error("modal should close after enter")
	}
}

func TestSortModal_EscKeepsOrder(t *testing.T) {
	m := readyModel(t, testMovies())

	m = press(t, m, "s", "j", "esc")

	if m.SortKey() != domain.SortTitle {
		t.Errorf("esc should keep the previous sort key, got %v", m.SortKey())
	}
}

func TestJumpOverlay_MovesCursor(t *testing.T) {
	m := readyModel(t, testMovies())

	m = press(t, m, "f")
	if !m.Overlay.IsVisible() {
		t.Fatal("expected overlay to open on f")
	}

	m = typeText(t, m, "zeta")
	m = press(t, m, "enter")

	if m.Overlay.IsVisible() {
		t.Error("overlay should close after selection")
	}
	// View is title-sorted: Alpha, The Matrix, Zeta.
	if m.Grid.Cursor() != 2 {
		t.Errorf("expected cursor on Zeta (index 2), got %d", m.Grid.Cursor())
	}
}

func TestGridNavigation_AfterLoad(t *testing.T) {
	m := readyModel(t, testMovies())

	m = press(t, m, "l")
	if m.Grid.Cursor() != 1 {
		t.Errorf("expected cursor 1 after l, got %d", m.Grid.Cursor())
	}

	m = press(t, m, "h")
	if m.Grid.Cursor() != 0 {
		t.Errorf("expected cursor 0 after h, got %d", m.Grid.Cursor())
	}
}

func TestSearch_ResetsCursor(t *testing.T) {
	m := readyModel(t, testMovies())

	m = press(t, m, "l", "l")
	m = press(t, m, "/")
	m = typeText(t, m, "a")

	if m.Grid.Cursor() != 0 {
		t.Errorf("expected cursor reset on filter change, got %d", m.Grid.Cursor())
	}
}
