package progress

import (
	"fmt"
	"strings"
)

// Width is the number of cells in the bar.
const Width = 40

const (
	filled = "█"
	empty  = "░"
)

// Render returns the progress line for current elapsed seconds out of total.
// The ratio is clamped to [0, 1]; a total of zero or less renders as 0%.
// Integer arithmetic keeps the floor exact, so 29/100 shows 29% and not 28%.
func Render(current, total int) string {
	done := 0
	if total > 0 {
		done = min(max(current, 0), total)
	}

	var cells, percent int
	if total > 0 {
		cells = done * Width / total
		percent = done * 100 / total
	}

	bar := strings.Repeat(filled, cells) + strings.Repeat(empty, Width-cells)
	return fmt.Sprintf("%s %s / %s %d%%", bar, Format(current), Format(total), percent)
}
