package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Header       lipgloss.Style
	Count        lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardEditing  lipgloss.Style
	Name         lipgloss.Style
	URL          lipgloss.Style
	Actions      lipgloss.Style
	Form         lipgloss.Style
	FormTitle    lipgloss.Style
	Label        lipgloss.Style
	Empty        lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "save", "move")
	ThemeBadge   lipgloss.Style

	// Status line, one style per MessageType
	MessageInfo    lipgloss.Style
	MessageSuccess lipgloss.Style
	MessageWarning lipgloss.Style
	MessageError   lipgloss.Style
}

// palette is the set of colors a theme is built from.
type palette struct {
	primary lipgloss.Color // main text
	subtle  lipgloss.Color // secondary text
	accent  lipgloss.Color // selection, titles
	border  lipgloss.Color // inactive borders
	onAccnt lipgloss.Color // text drawn on the accent color
	success lipgloss.Color
	warning lipgloss.Color
	danger  lipgloss.Color
}

// Industrial design: grayscale with single desaturated teal accent.
var (
	lightPalette = palette{
		primary: lipgloss.Color("#505050"),
		subtle:  lipgloss.Color("#888888"),
		accent:  lipgloss.Color("#4A7070"),
		border:  lipgloss.Color("#B0B0B0"),
		onAccnt: lipgloss.Color("#FFFFFF"),
		success: lipgloss.Color("#338833"),
		warning: lipgloss.Color("#CC8800"),
		danger:  lipgloss.Color("#CC3333"),
	}
	darkPalette = palette{
		primary: lipgloss.Color("#A0A0A0"),
		subtle:  lipgloss.Color("#606060"),
		accent:  lipgloss.Color("#5F8787"),
		border:  lipgloss.Color("#505050"),
		onAccnt: lipgloss.Color("#1A1A1A"),
		success: lipgloss.Color("#66CC66"),
		warning: lipgloss.Color("#FFAA00"),
		danger:  lipgloss.Color("#FF6666"),
	}
)

// NewStyles returns the style set for the light or dark theme.
// Colors are picked explicitly from the theme flag rather than from the
// terminal background, so toggling the theme takes effect immediately.
func NewStyles(dark bool) Styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1)

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Count: lipgloss.NewStyle().
			Foreground(p.subtle),

		Card: card,

		CardSelected: card.
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.accent),

		CardEditing: card.
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.primary),

		Name: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),

		URL: lipgloss.NewStyle().
			Foreground(p.subtle),

		Actions: lipgloss.NewStyle().
			Foreground(p.accent),

		Form: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.accent).
			Padding(0, 2),

		FormTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Label: lipgloss.NewStyle().
			Foreground(p.subtle),

		Empty: lipgloss.NewStyle().
			Foreground(p.subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(p.accent),

		HintDesc: lipgloss.NewStyle().
			Foreground(p.subtle),

		ThemeBadge: lipgloss.NewStyle().
			Foreground(p.onAccnt).
			Background(p.accent).
			Padding(0, 1),

		MessageInfo:    lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		MessageSuccess: lipgloss.NewStyle().Foreground(p.success).Bold(true),
		MessageWarning: lipgloss.NewStyle().Foreground(p.warning).Bold(true),
		MessageError:   lipgloss.NewStyle().Foreground(p.danger).Bold(true),
	}
}
