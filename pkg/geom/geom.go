// Package geom provides the polar-coordinate math used to lay out dial
// geometry.
//
// All angles in this package are clock angles: degrees measured clockwise
// from the 12 o'clock position. This matches how watchmakers (and the rest
// of this module) describe positions on a dial, and differs from the usual
// mathematical convention (counterclockwise from 3 o'clock).
//
// All lengths are millimeters unless a function says otherwise.
package geom

import "math"

// Point is a 2D point in millimeters.
type Point struct {
	X, Y float64
}

// Polar converts a clock angle and radius to cartesian coordinates around
// a center point. The Y axis grows downward (SVG convention), so 12 o'clock
// is above the center.
func Polar(cx, cy, r, clockDeg float64) Point {
	a := clockDeg * math.Pi / 180
	return Point{
		X: cx + r*math.Sin(a),
		Y: cy - r*math.Cos(a),
	}
}

// NormalizeAngle reduces an angle to [0, 360).
func NormalizeAngle(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// ClockAngle computes the clock angle for step i of n around the dial,
// starting at startDeg. When clockwise is false the angle runs the other
// way, mirroring the layout about the 12-6 axis.
func ClockAngle(startDeg float64, i, n int, clockwise bool) float64 {
	step := 360.0 / float64(n)
	ang := NormalizeAngle(startDeg + float64(i)*step)
	if !clockwise {
		ang = NormalizeAngle(-ang)
	}
	return ang
}

// Align describes how a marker sits relative to its nominal radius.
type Align string

// Marker alignment modes.
const (
	AlignOuter  Align = "outer"  // outer edge of the marker touches the radius
	AlignCenter Align = "center" // marker is centered on the radius
	AlignInner  Align = "inner"  // inner edge of the marker touches the radius
)

// ValidAligns is the set of supported alignment modes.
var ValidAligns = map[Align]bool{
	AlignOuter:  true,
	AlignCenter: true,
	AlignInner:  true,
}

// AlignedRadius shifts a nominal radius so a marker of height h lands with
// the requested alignment. Unknown alignments behave like AlignCenter.
func AlignedRadius(r, h float64, align Align) float64 {
	switch align {
	case AlignOuter:
		return r - h/2
	case AlignInner:
		return r + h/2
	default:
		return r
	}
}

// CompensatedRadius converts a nominal diameter to a radius whose stroke
// outer edge sits exactly on the diameter. With compensation off the
// stroke straddles the nominal circle.
func CompensatedRadius(diameter, strokeWidth float64, compensate bool) float64 {
	if compensate {
		return (diameter - strokeWidth) / 2
	}
	return diameter / 2
}

// Orientation describes how numeral labels rotate around the dial.
type Orientation string

// Label orientation modes.
const (
	OrientUpright         Orientation = "upright"          // no rotation
	OrientTangent         Orientation = "tangent"          // baseline follows the circle
	OrientRadial          Orientation = "radial"           // text reads along the radius
	OrientTangentReadable Orientation = "tangent_readable" // tangent, flipped on the lower half
)

// ValidOrientations is the set of supported orientation modes.
var ValidOrientations = map[Orientation]bool{
	OrientUpright:         true,
	OrientTangent:         true,
	OrientRadial:          true,
	OrientTangentReadable: true,
}

// LabelRotation returns the rotation in degrees to apply to a label placed
// at the given clock angle. Tangent-readable flips labels on the lower half
// of the dial so they never render upside down.
func LabelRotation(mode Orientation, clockDeg float64) float64 {
	switch mode {
	case OrientTangent:
		return clockDeg
	case OrientRadial:
		return clockDeg + 90
	case OrientTangentReadable:
		r := NormalizeAngle(clockDeg)
		if r > 90 && r < 270 {
			r += 180
		}
		return r
	default:
		return 0
	}
}

// Dist returns the euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
