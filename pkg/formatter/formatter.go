package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	cellFull    = '█'
	cellPartial = '▓'
	cellEmpty   = '░'
)

// Segments renders one cell per story fill.
// Example: [1, 0.4, 0] -> "█▓░"
func Segments(fills []float64) string {
	var sb strings.Builder
	for _, f := range fills {
		switch {
		case f >= 1:
			sb.WriteRune(cellFull)
		case f > 0:
			sb.WriteRune(cellPartial)
		default:
			sb.WriteRune(cellEmpty)
		}
	}
	return sb.String()
}

// Percent formats a 0..1 fraction as a whole percentage, clamped.
// Example: 0.426 -> "43%"
func Percent(v float64) string {
	v = math.Max(0, math.Min(1, v))
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

// Duration formats d in seconds with one decimal.
// Example: 5500ms -> "5.5s"
func Duration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
