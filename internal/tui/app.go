package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/library"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// SessionState represents the fetch lifecycle. Exactly one state is
// active at any time; the catalog is fetched once per session and a
// failure is terminal until restart.
type SessionState int

const (
	StateLoading SessionState = iota
	StateError
	StateReady
)

// Vertical chrome around the grid: title line, search line, footer.
const chromeHeight = 3

// Model is the main Bubble Tea model for the application
type Model struct {
	// Lifecycle
	State  SessionState
	ErrMsg string

	// Data: raw is replaced wholesale on load and never mutated;
	// view is rederived from raw + filter on every change.
	raw    []domain.Movie
	filter library.Filter
	view   []domain.Movie

	// Collaborators
	client  *catalog.Client
	matcher *search.Matcher
	timeout time.Duration
	logger  *slog.Logger

	// UI components
	searchInput textinput.Model
	spin        spinner.Model
	Grid        components.CardGrid
	SortModal   components.SortModal
	Overlay     components.SearchOverlay

	// Dimensions
	Width  int
	Height int
	Ready  bool
}

// NewModel creates the application model
func NewModel(client *catalog.Client, matcher *search.Matcher, defaultSort domain.SortKey, timeout time.Duration, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "search titles..."
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.PromptStyle = styles.SearchPromptStyle
	ti.TextStyle = styles.SearchTextStyle
	ti.PlaceholderStyle = styles.DimStyle

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.SpinnerStyle),
	)

	return Model{
		State:       StateLoading,
		client:      client,
		matcher:     matcher,
		timeout:     timeout,
		logger:      logger,
		filter:      library.Filter{SortBy: defaultSort},
		searchInput: ti,
		spin:        sp,
		Grid:        components.NewCardGrid(),
		SortModal:   components.NewSortModal(),
		Overlay:     components.NewSearchOverlay(),
	}
}

// SearchTerm returns the active search term
func (m Model) SearchTerm() string {
	return m.filter.Query
}

// SortKey returns the active sort key
func (m Model) SortKey() domain.SortKey {
	return m.filter.SortBy
}

// ViewList returns the current derived view list
func (m Model) ViewList() []domain.Movie {
	return m.view
}

// Init starts the spinner and issues the one catalog fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		FetchMoviesCmd(m.client, m.timeout),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.searchInput.Width = min(40, msg.Width-6)
		m.Grid.SetSize(msg.Width, msg.Height-chromeHeight)
		m.Overlay.SetSize(msg.Width, msg.Height-chromeHeight)
		return m, nil

	case spinner.TickMsg:
		if m.State != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case MoviesLoadedMsg:
		// Loading ends here no matter what the payload looks like.
		m.State = StateReady
		m.raw = msg.Movies
		m.rederive()
		m.logger.Info("catalog ready", "movies", len(m.raw))
		return m, nil

	case ErrMsg:
		m.State = StateError
		m.ErrMsg = domain.ErrorMessage(msg.Err)
		m.logger.Error("fetch failed", "error", msg.Err)
		return m, nil

	case JumpToMovieMsg:
		m.Grid.SetCursor(msg.Index)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from anywhere, including text entry.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.Overlay.IsVisible() {
		return m.handleOverlayKey(msg)
	}

	if m.SortModal.IsVisible() {
		if handled, selection := m.SortModal.HandleKey(msg.String()); handled {
			if selection != nil {
				m.filter.SortBy = *selection
				m.rederive()
			}
			return m, nil
		}
	}

	if m.searchInput.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Search):
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, Keys.Sort):
		if m.State == StateReady {
			m.SortModal.Show(m.filter.SortBy)
		}
		return m, nil

	case key.Matches(msg, Keys.Jump):
		if m.State == StateReady {
			m.Overlay.Show()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.filter.Query != "" {
			m.searchInput.SetValue("")
			m.filter.Query = ""
			m.rederive()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(msg)
	return m, cmd
}

// handleSearchKey routes keys to the search box. Every keystroke
// commits the term and rederives the view list synchronously.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filter.Query = ""
		m.rederive()
		return m, nil
	case "enter":
		// Keep the term, hand keys back to the grid.
		m.searchInput.Blur()
		return m, nil
	case "backspace":
		if m.searchInput.Value() == "" {
			m.searchInput.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.filter.Query != m.searchInput.Value() {
		m.filter.Query = m.searchInput.Value()
		m.rederive()
	}
	return m, cmd
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		chosen bool
	)
	m.Overlay, cmd, chosen = m.Overlay.Update(msg)

	if chosen {
		if sel := m.Overlay.Selected(); sel != nil {
			m.Overlay.Hide()
			m.Grid.SetCursor(sel.Index)
		}
		return m, nil
	}

	if m.Overlay.QueryChanged() {
		m.Overlay.SetResults(m.matcher.Find(m.Overlay.Query(), m.view))
	}
	return m, cmd
}

// rederive recomputes the view list from the raw catalog and the
// current filter. Pure and cheap, so it runs on every change.
func (m *Model) rederive() {
	m.view = library.Derive(m.raw, m.filter)
	m.Grid.SetMovies(m.view)
}
