package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// View renders the whole application
func (m Model) View() string {
	if !m.Ready {
		return ""
	}

	switch m.State {
	case StateLoading:
		return m.renderLoading()
	case StateError:
		return m.renderError()
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	var content string
	switch {
	case m.Overlay.IsVisible():
		content = m.Overlay.View()
	case m.SortModal.IsVisible():
		content = lipgloss.Place(m.Width, m.Height-chromeHeight,
			lipgloss.Center, lipgloss.Center, m.SortModal.View())
	case len(m.view) == 0:
		content = m.renderEmpty()
	default:
		content = m.Grid.View()
	}

	// Pin the footer to the bottom row.
	body := lipgloss.NewStyle().Height(m.Height - chromeHeight).Render(content)

	return header + "\n" + body + "\n" + footer
}

// renderLoading is the full-screen state while the one fetch is in
// flight.
func (m Model) renderLoading() string {
	msg := m.spin.View() + " Loading movies..."
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, msg)
}

// renderError is the full-screen terminal failure state. The whole
// view is replaced; there is no partial data display.
func (m Model) renderError() string {
	body := styles.ErrorStyle.Render(m.ErrMsg) + "\n\n" +
		styles.DimStyle.Render("press q to quit")
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, body)
}

// renderEmpty is shown when the derived list has zero entries, so an
// over-narrow search never looks like a broken screen.
func (m Model) renderEmpty() string {
	var b strings.Builder

	if m.filter.Query != "" {
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("No movies match %q", m.filter.Query)))
		if hints := m.matcher.Suggest(m.filter.Query, m.raw, 1); len(hints) > 0 {
			b.WriteString("\n\n")
			b.WriteString(styles.DimStyle.Render("Did you mean: "))
			b.WriteString(styles.AccentStyle.Render(hints[0]))
			b.WriteString(styles.DimStyle.Render("?"))
		}
	} else {
		b.WriteString(styles.SubtitleStyle.Render("The catalog is empty"))
	}

	return lipgloss.Place(m.Width, m.Height-chromeHeight,
		lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) renderHeader() string {
	title := styles.AccentStyle.Render("MARQUEE")
	return title + "\n" + m.searchInput.View()
}

func (m Model) renderFooter() string {
	arrow := "↑"
	if m.filter.SortBy != domain.SortTitle {
		arrow = "↓"
	}

	count := fmt.Sprintf("%d of %d movies", len(m.view), len(m.raw))
	sort := fmt.Sprintf("sort: %s %s", strings.ToLower(m.filter.SortBy.String()), arrow)
	hints := "/ search · s sort · f jump · q quit"

	return styles.DimStyle.Render(count + "  ·  " + sort + "  ·  " + hints)
}
