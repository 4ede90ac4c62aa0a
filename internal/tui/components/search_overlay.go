package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// SearchOverlay is the fuzzy jump modal: type a few characters, pick a
// title, and the grid cursor moves there. It never changes what the
// grid shows.
type SearchOverlay struct {
	ti        textinput.Model
	results   []search.Result
	cursor    int
	visible   bool
	width     int
	height    int
	prevQuery string
}

// NewSearchOverlay creates a new overlay component
func NewSearchOverlay() SearchOverlay {
	ti := textinput.New()
	ti.Placeholder = "Jump to movie..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = styles.SearchTextStyle
	ti.PlaceholderStyle = styles.DimStyle

	return SearchOverlay{ti: ti}
}

// Show makes the overlay visible and focuses the input
func (o *SearchOverlay) Show() {
	o.visible = true
	o.ti.Focus()
	o.ti.SetValue("")
	o.results = nil
	o.cursor = 0
	o.prevQuery = ""
}

// Hide hides the overlay
func (o *SearchOverlay) Hide() {
	o.visible = false
	o.ti.Blur()
}

// IsVisible returns true if the overlay is visible
func (o SearchOverlay) IsVisible() bool {
	return o.visible
}

// SetResults sets the match list
func (o *SearchOverlay) SetResults(results []search.Result) {
	o.results = results
	o.cursor = 0
}

// SetSize updates the component dimensions
func (o *SearchOverlay) SetSize(width, height int) {
	o.width = width
	o.height = height
}

// Query returns the current query
func (o SearchOverlay) Query() string {
	return o.ti.Value()
}

// QueryChanged returns true if the query changed since last check
func (o *SearchOverlay) QueryChanged() bool {
	current := o.ti.Value()
	if current != o.prevQuery {
		o.prevQuery = current
		return true
	}
	return false
}

// Selected returns the selected result, or nil when there are none
func (o SearchOverlay) Selected() *search.Result {
	if len(o.results) == 0 || o.cursor >= len(o.results) {
		return nil
	}
	return &o.results[o.cursor]
}

// Init initializes the component
func (o SearchOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. chosen is true when the user confirmed a
// selection with enter.
func (o SearchOverlay) Update(msg tea.Msg) (SearchOverlay, tea.Cmd, bool) {
	if !o.visible {
		return o, nil, false
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, OverlayKeys.Escape):
			o.Hide()
			return o, nil, false

		case key.Matches(msg, OverlayKeys.Enter):
			if len(o.results) > 0 {
				return o, nil, true
			}
			return o, nil, false

		case key.Matches(msg, OverlayKeys.Down):
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return o, nil, false

		case key.Matches(msg, OverlayKeys.Up):
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, false
		}
	}

	o.ti, cmd = o.ti.Update(msg)
	return o, cmd, false
}

// View renders the overlay centered in its area
func (o SearchOverlay) View() string {
	if !o.visible {
		return ""
	}

	modalWidth := o.width * 2 / 3
	if modalWidth < 40 {
		modalWidth = 40
	}
	if modalWidth > 70 {
		modalWidth = 70
	}
	const maxResults = 8

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Jump to movie"))
	b.WriteString("\n\n")
	b.WriteString(o.ti.View())
	b.WriteString("\n\n")
	o.renderResults(&b, modalWidth, maxResults)

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(b.String())

	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, modal)
}

func (o SearchOverlay) renderResults(b *strings.Builder, modalWidth, maxResults int) {
	if len(o.results) == 0 {
		if o.ti.Value() != "" {
			b.WriteString(styles.DimStyle.Render("No matches found"))
		}
		return
	}

	displayCount := len(o.results)
	if displayCount > maxResults {
		displayCount = maxResults
	}

	for i := 0; i < displayCount; i++ {
		result := o.results[i]
		title := styles.Truncate(result.Movie.DisplayTitle(), modalWidth-6)
		b.WriteString(highlightMatches(title, result.MatchedIndexes, i == o.cursor))
		b.WriteString("\n")
	}

	if len(o.results) > maxResults {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", len(o.results)-maxResults)))
	}
}

// highlightMatches renders text with matched rune positions emphasized
func highlightMatches(text string, matchedIndexes []int, selected bool) string {
	if len(matchedIndexes) == 0 {
		if selected {
			return styles.SelectedItemStyle.Render(text)
		}
		return styles.NormalItemStyle.Render(text)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	base := styles.NormalItemStyle
	if selected {
		base = styles.SelectedItemStyle
	}

	var out strings.Builder
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		isMatch := matchSet[i]

		var batch strings.Builder
		for i < len(runes) && matchSet[i] == isMatch {
			batch.WriteRune(runes[i])
			i++
		}

		if isMatch {
			out.WriteString(styles.MatchHighlightStyle.Render(batch.String()))
		} else {
			out.WriteString(base.UnsetPadding().Render(batch.String()))
		}
	}

	return out.String()
}
