package pattern

import (
	"math"

	"github.com/brianjo/watchdialtools/pkg/geom"
	"github.com/brianjo/watchdialtools/pkg/scene"
)

// Hard floors matching the engraving limits of the generators: a rosette
// needs enough sample points to read as a curve, a sunburst with fewer
// than four rays is just a cross.
const (
	minLobes  = 2
	minPoints = 200
	minRays   = 4
)

// hatchCoverage is how far the crosshatch chord field extends beyond the
// dial circle before clipping, as a multiple of the diameter.
const hatchCoverage = 1.1

// concentric appends rings spaced rInner, rInner+spacing, ... up to rOuter.
func concentric(g *scene.Group, rOuter, rInner, spacing float64, style scene.Style) {
	for r := math.Max(0, rInner); r <= rOuter+1e-9; r += spacing {
		g.Add(&scene.Circle{R: r, Style: style})
	}
}

// sunburst appends rays radial segments from rInner to rOuter.
func sunburst(g *scene.Group, rOuter, rInner float64, rays int, style scene.Style) {
	rays = max(minRays, rays)
	style.LineCap = "round"

	step := 360.0 / float64(rays)
	for i := 0; i < rays; i++ {
		ang := float64(i) * step
		p1 := geom.Polar(0, 0, rInner, ang)
		p2 := geom.Polar(0, 0, rOuter, ang)
		g.Add(scene.Line(p1.X, p1.Y, p2.X, p2.Y, style))
	}
}

// crosshatch appends one or two sets of parallel chords covering the dial.
// Each set runs in direction angleDeg; the doubled set adds 90 degrees.
func crosshatch(g *scene.Group, rOuter, spacing, angleDeg float64, double bool, style scene.Style) {
	style.LineCap = "round"

	size := rOuter * 2 * hatchCoverage
	half := size / 2

	addSet := func(thetaDeg float64) {
		theta := thetaDeg * math.Pi / 180
		ux, uy := math.Cos(theta), math.Sin(theta)
		vx, vy := -uy, ux

		count := int(size/spacing) + 3
		for i := -count / 2; i <= count/2; i++ {
			off := float64(i) * spacing
			px, py := off*vx, off*vy
			g.Add(scene.Line(px-half*ux, py-half*uy, px+half*ux, py+half*uy, style))
		}
	}

	addSet(angleDeg)
	if double {
		addSet(angleDeg + 90)
	}
}

// guilloche appends a rosette: a closed polyline sampling
// r(t) = base + amplitude*cos(lobes*t) around the full circle, where base
// keeps the peaks exactly on rOuter.
func guilloche(g *scene.Group, rOuter float64, lobes int, amplitude float64, points int, style scene.Style) {
	lobes = max(minLobes, lobes)
	points = max(minPoints, points)
	base := math.Max(0, rOuter-amplitude)
	style.LineJoin = "round"

	pts := make([][2]float64, 0, points+1)
	for i := 0; i <= points; i++ {
		t := 2 * math.Pi * float64(i) / float64(points)
		r := base + amplitude*math.Cos(float64(lobes)*t)
		p := geom.Polar(0, 0, r, t*180/math.Pi)
		pts = append(pts, [2]float64{p.X, p.Y})
	}
	g.Add(&scene.Path{Pts: pts, Style: style})
}
