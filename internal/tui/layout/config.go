package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Grid  GridConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// GridConfig holds card grid configuration.
type GridConfig struct {
	// TwoColumnMinWidth is the terminal width at which the grid shows two columns.
	TwoColumnMinWidth int

	// ThreeColumnMinWidth is the terminal width at which the grid shows three columns.
	ThreeColumnMinWidth int

	// HorizontalPadding is subtracted from terminal width before splitting into columns.
	// Accounts for app padding: left (2) + right (2) = 4
	HorizontalPadding int

	// ColumnGap is the number of blank cells between two cards in a row.
	ColumnGap int

	// MinCardWidth is the minimum card width, borders included.
	MinCardWidth int

	// CardHeight is the rendered height of one card row, borders and gap included.
	CardHeight int

	// HeightReduction is subtracted from terminal height for the grid area.
	// Accounts for: app padding (1) + header (2) + help bar (3) = 6
	HeightReduction int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// HelpKeyColumnWidth: width of the key column in the help overlay.
	HelpKeyColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Display width of form inputs. Inputs have no character limit:
	// an edit must round-trip whatever name and URL the bookmark holds.
	StandardWidth int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Grid: GridConfig{
			TwoColumnMinWidth:   80,
			ThreeColumnMinWidth: 120,
			HorizontalPadding:   4,
			ColumnGap:           2,
			MinCardWidth:        24,
			CardHeight:          6, // border (2) + name + url + actions + gap
			HeightReduction:     6, // app padding (1) + header (2) + help bar (3)
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 50,
			MinWidth:            40,
			MaxWidth:            72,
			HelpKeyColumnWidth:  14,
		},
		Input: InputConfig{
			StandardWidth: 40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
