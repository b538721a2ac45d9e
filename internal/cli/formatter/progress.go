package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders task progress (0-100) like [████░░░░]  45%.
// Complete tasks are green, started ones yellow and untouched ones dim.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 100)
	width = max(width, 2)

	filled := min(int(pct/100*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleYellow
	switch {
	case pct >= 100:
		style = StyleGreen
	case pct == 0:
		style = StyleDim
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct)
}
