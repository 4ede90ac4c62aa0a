package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// directionArrow shows the fixed sort direction for a key: titles sort
// A-Z, year and runtime sort newest/longest first.
func directionArrow(key domain.SortKey) string {
	if key == domain.SortTitle {
		return "↑"
	}
	return "↓"
}

// SortModal is a small popup for choosing the sort key
type SortModal struct {
	visible bool
	options []domain.SortKey
	cursor  int
	active  domain.SortKey
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{options: domain.SortKeys()}
}

// Show displays the modal with the cursor on the active key
func (m *SortModal) Show(active domain.SortKey) {
	m.visible = true
	m.active = active
	m.cursor = 0
	for i, opt := range m.options {
		if opt == active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a choice.
func (m *SortModal) HandleKey(key string) (handled bool, selection *domain.SortKey) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
		return true, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, nil
	case "enter":
		chosen := m.options[m.cursor]
		m.visible = false
		return true, &chosen
	case "esc", "s":
		m.visible = false
		return true, nil
	}

	return true, nil // consume all keys when visible
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible {
		return ""
	}

	var lines []string
	for i, opt := range m.options {
		selected := i == m.cursor
		isActive := opt == m.active

		prefix := "  "
		if isActive {
			prefix = "✓ "
		}

		text := prefix + opt.String() + " " + directionArrow(opt)

		switch {
		case selected:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.White).
				Background(styles.SlateLight).
				Render(styles.Pad(text, 16)))
		case isActive:
			lines = append(lines, styles.AccentStyle.Render(styles.Pad(text, 16)))
		default:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.LightGray).
				Render(styles.Pad(text, 16)))
		}
	}

	content := strings.Join(lines, "\n")
	return styles.ModalStyle.Render(styles.ModalTitleStyle.Render("Sort by") + "\n" + content)
}
