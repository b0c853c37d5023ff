package layout

import "testing"

func TestCalculateModalWidth(t *testing.T) {
	cfg := DefaultConfig().Modal

	tests := []struct {
		name          string
		terminalWidth int
		widthPercent  int
		want          int
	}{
		{"percentage of large terminal", 120, 50, 60}, // 120*50/100 = 60
		{"clamped to max", 200, 50, 72},               // 100, max 72
		{"raised to min", 60, 50, 40},                 // 30, min 40
		{"limited by terminal", 42, 50, 38},           // min 40 > 42-4
		{"tiny terminal clamps to 1", 3, 50, 1},       // 3-4 = -1, clamp to 1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateModalWidth(tt.terminalWidth, tt.widthPercent, cfg)
			if got != tt.want {
				t.Errorf("CalculateModalWidth(%d, %d) = %d, want %d",
					tt.terminalWidth, tt.widthPercent, got, tt.want)
			}
		})
	}
}
