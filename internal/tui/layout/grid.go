package layout

// CalculateColumns returns how many card columns fit the terminal width:
// one on narrow terminals, two from TwoColumnMinWidth, three from
// ThreeColumnMinWidth.
func CalculateColumns(terminalWidth int, cfg GridConfig) int {
	switch {
	case terminalWidth >= cfg.ThreeColumnMinWidth:
		return 3
	case terminalWidth >= cfg.TwoColumnMinWidth:
		return 2
	default:
		return 1
	}
}

// CalculateCardWidth computes the width of each card, borders included.
// Returns at least MinCardWidth.
func CalculateCardWidth(terminalWidth, columns int, cfg GridConfig) int {
	if columns < 1 {
		columns = 1
	}
	available := terminalWidth - cfg.HorizontalPadding - cfg.ColumnGap*(columns-1)
	width := available / columns
	if width < cfg.MinCardWidth {
		return cfg.MinCardWidth
	}
	return width
}

// CalculateGridHeight computes the height left for card rows.
// extraLines is the height of anything rendered above the grid, such as
// the add form.
func CalculateGridHeight(terminalHeight, extraLines int, cfg GridConfig) int {
	height := terminalHeight - cfg.HeightReduction - extraLines
	if height < cfg.CardHeight {
		return cfg.CardHeight
	}
	return height
}

// CalculateVisibleRows computes how many card rows fit in gridHeight.
func CalculateVisibleRows(gridHeight int, cfg GridConfig) int {
	if cfg.CardHeight <= 0 {
		return 1
	}
	rows := gridHeight / cfg.CardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// CalculateRowCount returns the number of grid rows needed for count cards.
func CalculateRowCount(count, columns int) int {
	if count <= 0 || columns <= 0 {
		return 0
	}
	return (count + columns - 1) / columns
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected row visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
