package layout

import "testing"

func TestCalculateColumns(t *testing.T) {
	cfg := DefaultConfig().Grid

	tests := []struct {
		name          string
		terminalWidth int
		want          int
	}{
		{"narrow terminal", 60, 1},
		{"just below two columns", 79, 1},
		{"two columns", 80, 2},
		{"just below three columns", 119, 2},
		{"three columns", 120, 3},
		{"very wide stays at three", 300, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateColumns(tt.terminalWidth, cfg)
			if got != tt.want {
				t.Errorf("CalculateColumns(%d) = %d, want %d", tt.terminalWidth, got, tt.want)
			}
		})
	}
}

func TestCalculateCardWidth(t *testing.T) {
	cfg := DefaultConfig().Grid

	tests := []struct {
		name          string
		terminalWidth int
		columns       int
		want          int
	}{
		{"single column", 60, 1, 56},      // 60 - 4
		{"two columns", 80, 2, 37},        // (80 - 4 - 2) / 2
		{"three columns", 120, 3, 37},     // (120 - 4 - 4) / 3 = 37
		{"enforces min width", 20, 1, 24}, // 16, min 24
		{"zero columns treated as one", 60, 0, 56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCardWidth(tt.terminalWidth, tt.columns, cfg)
			if got != tt.want {
				t.Errorf("CalculateCardWidth(%d, %d) = %d, want %d",
					tt.terminalWidth, tt.columns, got, tt.want)
			}
		})
	}
}

func TestCalculateGridHeight(t *testing.T) {
	cfg := DefaultConfig().Grid

	tests := []struct {
		name           string
		terminalHeight int
		extraLines     int
		want           int
	}{
		{"normal terminal", 24, 0, 18},      // 24 - 6
		{"with add form", 24, 8, 10},        // 24 - 6 - 8
		{"small terminal clamps", 10, 8, 6}, // negative, min one card
		{"exactly one card", 12, 0, 6},      // 12 - 6
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateGridHeight(tt.terminalHeight, tt.extraLines, cfg)
			if got != tt.want {
				t.Errorf("CalculateGridHeight(%d, %d) = %d, want %d",
					tt.terminalHeight, tt.extraLines, got, tt.want)
			}
		})
	}
}

func TestCalculateVisibleRows(t *testing.T) {
	cfg := DefaultConfig().Grid

	tests := []struct {
		gridHeight int
		want       int
	}{
		{18, 3},
		{17, 2},
		{6, 1},
		{2, 1},
	}

	for _, tt := range tests {
		got := CalculateVisibleRows(tt.gridHeight, cfg)
		if got != tt.want {
			t.Errorf("CalculateVisibleRows(%d) = %d, want %d", tt.gridHeight, got, tt.want)
		}
	}
}

func TestCalculateRowCount(t *testing.T) {
	tests := []struct {
		count, columns, want int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{7, 2, 4},
		{5, 0, 0},
	}

	for _, tt := range tests {
		got := CalculateRowCount(tt.count, tt.columns)
		if got != tt.want {
			t.Errorf("CalculateRowCount(%d, %d) = %d, want %d", tt.count, tt.columns, got, tt.want)
		}
	}
}

func TestCalculateViewportOffset(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		total    int
		viewport int
		want     int
	}{
		{"all fit", 2, 3, 5, 0},
		{"at start", 0, 10, 4, 0},
		{"centered in middle", 5, 10, 4, 3},
		{"clamped at end", 9, 10, 4, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateViewportOffset(tt.selected, tt.total, tt.viewport)
			if got != tt.want {
				t.Errorf("CalculateViewportOffset(%d, %d, %d) = %d, want %d",
					tt.selected, tt.total, tt.viewport, got, tt.want)
			}
		})
	}
}
