package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/tui/layout"
)

// emptyStateText is shown in place of the grid when there are no bookmarks.
const emptyStateText = "No bookmarks yet. Press a to add one."

// renderView creates the complete card grid view.
func (a App) renderView() string {
	if a.showHelp {
		return a.renderHelpOverlay()
	}

	sections := []string{a.renderHeader()}

	// The add form sits above the grid and takes height from it
	extraLines := 0
	if a.store.IsAdding() {
		form := a.renderAddForm()
		sections = append(sections, form)
		extraLines = lipgloss.Height(form)
	}

	sections = append(sections, a.renderGrid(extraLines), a.renderHelpBar())

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the title line with the bookmark count and theme.
func (a App) renderHeader() string {
	count := a.store.Len()
	noun := "bookmarks"
	if count == 1 {
		noun = "bookmark"
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.styles.Header.Render("marks"),
		"  ",
		a.styles.Count.Render(fmt.Sprintf("%d %s", count, noun)),
		"  ",
		a.styles.ThemeBadge.Render(a.theme.String()),
	)
	return line + "\n"
}

// renderAddForm renders the add form shown above the grid.
func (a App) renderAddForm() string {
	width := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)

	var content strings.Builder
	content.WriteString(a.styles.FormTitle.Render("Add Bookmark") + "\n\n")
	content.WriteString(a.styles.Label.Render("Name:") + "\n")
	content.WriteString(a.form.NameInput.View() + "\n\n")
	content.WriteString(a.styles.Label.Render("URL:") + "\n")
	content.WriteString(a.form.URLInput.View() + "\n\n")
	content.WriteString(a.renderHintsInline(a.formHints()))

	return a.styles.Form.Width(width - 2).Render(content.String())
}

// renderGrid renders the visible rows of bookmark cards.
func (a App) renderGrid(extraLines int) string {
	bookmarks := a.store.Bookmarks()
	if len(bookmarks) == 0 {
		return a.styles.Empty.Render(emptyStateText)
	}

	cfg := a.layoutConfig.Grid
	cols := a.columns()
	cardWidth := layout.CalculateCardWidth(a.width, cols, cfg)
	gridHeight := layout.CalculateGridHeight(a.height, extraLines, cfg)
	visibleRows := layout.CalculateVisibleRows(gridHeight, cfg)
	totalRows := layout.CalculateRowCount(len(bookmarks), cols)
	offset := layout.CalculateViewportOffset(a.nav.Cursor/cols, totalRows, visibleRows)

	editID, editing := a.store.EditTarget()
	gap := strings.Repeat(" ", cfg.ColumnGap)

	var rows []string
	for r := offset; r < totalRows && r < offset+visibleRows; r++ {
		var cards []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(bookmarks) {
				break
			}
			if c > 0 {
				cards = append(cards, gap)
			}

			b := bookmarks[i]
			if editing && b.ID == editID {
				cards = append(cards, a.renderEditCard(cardWidth))
			} else {
				cards = append(cards, a.renderCard(b, cardWidth, i == a.nav.Cursor))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return strings.Join(rows, "\n\n")
}

// renderCard renders one bookmark card: name, URL and, when selected, the
// card's actions.
func (a App) renderCard(b model.Bookmark, width int, selected bool) string {
	style := a.styles.Card
	if selected {
		style = a.styles.CardSelected
	}

	// border (2) + padding (2)
	inner := max(width-4, 1)

	name, _ := layout.TruncateText(b.Name, inner, a.layoutConfig.Text)
	nameLine := a.styles.Name.Render(name)
	if b.Name == "" {
		nameLine = a.styles.Empty.Render("(no name)")
	}
	url, _ := layout.TruncateMiddle(b.URL, inner, a.layoutConfig.Text)

	actions := ""
	if selected {
		actions = lipgloss.NewStyle().MaxWidth(inner).Render(a.renderHintsInline(a.cardHints()))
	}

	content := nameLine + "\n" + a.styles.URL.Render(url) + "\n" + actions
	return style.Width(width - 2).Render(content)
}

// renderEditCard renders the inline edit form in place of the edited card.
func (a App) renderEditCard(width int) string {
	inner := max(width-4, 1)

	hints := lipgloss.NewStyle().MaxWidth(inner).Render(a.renderHintsInline(a.formHints()[1:]))

	content := a.form.NameInput.View() + "\n" + a.form.URLInput.View() + "\n" + hints
	return a.styles.CardEditing.Width(width - 2).Render(content)
}

// renderHelpBar renders the message line and the contextual hints.
func (a App) renderHelpBar() string {
	lines := []string{""}

	// Message replaces the empty spacer line
	if a.messageText != "" {
		lines = append(lines, a.renderMessageLine())
	} else {
		lines = append(lines, "")
	}

	lines = append(lines, a.renderHints(a.getContextualHints()))
	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	switch a.messageType {
	case MessageError:
		return a.styles.MessageError.Render("✗ " + a.messageText)
	case MessageWarning:
		return a.styles.MessageWarning.Render("⚠ " + a.messageText)
	case MessageSuccess:
		return a.styles.MessageSuccess.Render("✓ " + a.messageText)
	default:
		return a.styles.MessageInfo.Render(a.messageText)
	}
}

// renderHelpOverlay renders the full-screen key reference.
func (a App) renderHelpOverlay() string {
	keyStyle := a.styles.HintKey.Width(a.layoutConfig.Modal.HelpKeyColumnWidth)

	section := func(title string, bindings ...key.Binding) string {
		var b strings.Builder
		b.WriteString(a.styles.Header.Render(title) + "\n")
		for _, kb := range bindings {
			h := kb.Help()
			b.WriteString(keyStyle.Render(h.Key) + a.styles.HintDesc.Render(h.Desc) + "\n")
		}
		return b.String()
	}

	k := a.keys
	left := section("nav", k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom) + "\n" +
		section("act", k.Open, k.YankURL, k.Export, k.ToggleTheme)
	right := section("edit", k.Add, k.Edit, k.Delete) + "\n" +
		section("form", k.NextField, k.PrevField, k.Confirm, k.Cancel) + "\n" +
		a.styles.HintDesc.Render("[?/esc] close  [q] quit")

	cols := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 2).Render(cols),
	)
}
