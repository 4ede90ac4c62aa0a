package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Layout constants for the card grid
const (
	// Total card footprint including border and padding
	CardWidth  = 24
	CardHeight = 6

	// Horizontal gap between cards
	CardGap = 1

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// Border (2) + Padding(0,1) (2) around card content
	cardChrome = 4
)

// CardGrid renders the derived view list as a grid of movie cards.
// It holds only what it displays; filtering and sorting happen upstream.
type CardGrid struct {
	movies []domain.Movie

	cursor    int
	rowOffset int

	width       int
	height      int
	columns     int
	visibleRows int
	focused     bool
}

// NewCardGrid creates a new grid component
func NewCardGrid() CardGrid {
	return CardGrid{columns: 1, visibleRows: 1, focused: true}
}

// SetMovies replaces the displayed list and resets the cursor
func (g *CardGrid) SetMovies(movies []domain.Movie) {
	g.movies = movies
	g.cursor = 0
	g.rowOffset = 0
}

// SetSize updates the component dimensions
func (g *CardGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.recalcLayout()
	g.ensureVisible()
}

// SetFocused sets the focus state
func (g *CardGrid) SetFocused(focused bool) {
	g.focused = focused
}

// Count returns the number of displayed movies
func (g CardGrid) Count() int {
	return len(g.movies)
}

// IsEmpty returns true if there are no movies to show
func (g CardGrid) IsEmpty() bool {
	return len(g.movies) == 0
}

// Cursor returns the current cursor position
func (g CardGrid) Cursor() int {
	return g.cursor
}

// SetCursor moves the cursor to pos, clamped to the list bounds
func (g *CardGrid) SetCursor(pos int) {
	max := len(g.movies) - 1
	if max < 0 {
		g.cursor = 0
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > max {
		pos = max
	}
	g.cursor = pos
	g.ensureVisible()
}

// SelectedMovie returns the movie under the cursor, or nil when empty
func (g CardGrid) SelectedMovie() *domain.Movie {
	if len(g.movies) == 0 || g.cursor >= len(g.movies) {
		return nil
	}
	return &g.movies[g.cursor]
}

func (g *CardGrid) recalcLayout() {
	g.columns = (g.width + CardGap) / (CardWidth + CardGap)
	if g.columns < 1 {
		g.columns = 1
	}
	g.visibleRows = (g.height - ScrollIndicatorLines) / CardHeight
	if g.visibleRows < 1 {
		g.visibleRows = 1
	}
}

func (g *CardGrid) rowCount() int {
	if len(g.movies) == 0 {
		return 0
	}
	return (len(g.movies) + g.columns - 1) / g.columns
}

// ensureVisible scrolls so the cursor's row is on screen
func (g *CardGrid) ensureVisible() {
	row := g.cursor / g.columns
	if row < g.rowOffset {
		g.rowOffset = row
	}
	if row >= g.rowOffset+g.visibleRows {
		g.rowOffset = row - g.visibleRows + 1
	}
}

// Init initializes the component
func (g CardGrid) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys
func (g CardGrid) Update(msg tea.Msg) (CardGrid, tea.Cmd) {
	if !g.focused || len(g.movies) == 0 {
		return g, nil
	}

	count := len(g.movies)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "l", "right":
			if g.cursor < count-1 {
				g.cursor++
				g.ensureVisible()
			}
		case "h", "left":
			if g.cursor > 0 {
				g.cursor--
				g.ensureVisible()
			}
		case "j", "down":
			if g.cursor+g.columns < count {
				g.cursor += g.columns
			} else if g.cursor/g.columns < (count-1)/g.columns {
				// Last row is partial; land on its final card
				g.cursor = count - 1
			}
			g.ensureVisible()
		case "k", "up":
			if g.cursor-g.columns >= 0 {
				g.cursor -= g.columns
			}
			g.ensureVisible()
		case "g", "home":
			g.cursor = 0
			g.rowOffset = 0
		case "G", "end":
			g.cursor = count - 1
			g.ensureVisible()
		case "ctrl+d":
			g.cursor += (g.visibleRows / 2) * g.columns
			if g.cursor >= count {
				g.cursor = count - 1
			}
			g.ensureVisible()
		case "ctrl+u":
			g.cursor -= (g.visibleRows / 2) * g.columns
			if g.cursor < 0 {
				g.cursor = 0
			}
			g.ensureVisible()
		}
	}

	return g, nil
}

// View renders the grid
func (g CardGrid) View() string {
	if len(g.movies) == 0 {
		return ""
	}

	rows := g.rowCount()
	end := g.rowOffset + g.visibleRows
	if end > rows {
		end = rows
	}

	var rendered []string

	// Header scroll indicator keeps its line even when blank so the
	// grid does not shift while scrolling.
	header := " "
	if g.rowOffset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	rendered = append(rendered, header)

	for row := g.rowOffset; row < end; row++ {
		var cards []string
		for col := 0; col < g.columns; col++ {
			idx := row*g.columns + col
			if idx >= len(g.movies) {
				break
			}
			cards = append(cards, g.renderCard(g.movies[idx], idx == g.cursor))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	footer := " "
	if end < rows {
		footer = styles.DimStyle.Render("↓ more")
	}
	rendered = append(rendered, footer)

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// renderCard renders one movie card: poster placeholder, title, year,
// runtime.
func (g CardGrid) renderCard(m domain.Movie, selected bool) string {
	inner := CardWidth - cardChrome

	poster := styles.DimStyle.Render(styles.Pad("· no poster ·", inner))
	if m.HasPoster() {
		poster = styles.AccentStyle.Render(styles.Pad("▣ poster", inner))
	}

	title := styles.TitleStyle.Render(styles.Pad(styles.Truncate(m.Title, inner), inner))
	year := styles.SubtitleStyle.Render(styles.Pad(m.Year, inner))
	runtime := styles.DimStyle.Render(styles.Pad(m.FormattedRuntime(), inner))

	content := poster + "\n" + title + "\n" + year + "\n" + runtime

	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	return style.Render(content)
}
