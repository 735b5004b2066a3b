package scene

import (
	"fmt"
	"strings"
)

// Line returns a two-point path from (x1, y1) to (x2, y2).
func Line(x1, y1, x2, y2 float64, style Style) *Path {
	return &Path{Pts: [][2]float64{{x1, y1}, {x2, y2}}, Style: style}
}

// PathData serializes a point list as SVG path data. Coordinates are
// written with six decimal places, enough for engraving-grade curves at
// millimeter scale.
func PathData(pts [][2]float64, closed bool) string {
	var b strings.Builder
	for i, pt := range pts {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s %.6f,%.6f", cmd, pt[0], pt[1])
	}
	if closed && len(pts) > 0 {
		b.WriteString(" Z")
	}
	return b.String()
}
