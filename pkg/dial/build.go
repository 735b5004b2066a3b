package dial

import (
	"math"

	"github.com/brianjo/watchdialtools/pkg/geom"
	"github.com/brianjo/watchdialtools/pkg/scene"
)

const (
	inkColor     = "#000"
	dateIndex    = 3 // the 3 o'clock position, where date windows live
	minuteCount  = 60
	minuteStepNr = 5 // every fifth tick is a five-minute tick
)

// Build generates the dial face scene centered on the origin.
// The options are validated first; invalid options return a nil group.
func Build(opts Options) (*scene.Group, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	name := opts.GroupName
	if name == "" {
		name = "watch-dial"
	}
	g := scene.NewGroup(name)

	strokeStyle := scene.Style{
		Fill:        "",
		Stroke:      inkColor,
		StrokeWidth: opts.OutlineStrokeMM,
	}

	dialR := geom.CompensatedRadius(opts.DiameterMM, opts.OutlineStrokeMM, opts.CompensateStroke)
	if opts.DrawOutline {
		g.Add(&scene.Circle{R: dialR, Style: strokeStyle})
	}

	if opts.DrawCenterHole {
		holeR := geom.CompensatedRadius(opts.CenterHoleMM, opts.OutlineStrokeMM, opts.CompensateStroke)
		g.Add(&scene.Circle{R: math.Max(0, holeR), Style: strokeStyle})
	}

	if opts.ShowHourMarkers {
		g.Add(buildMarkers(opts))
	}
	if opts.ShowMinuteTicks {
		g.Add(buildTicks(opts))
	}

	labels, err := opts.Labels()
	if err != nil {
		return nil, err
	}
	if len(labels) > 0 {
		g.Add(buildLabels(opts, labels))
	}

	return g, nil
}

// buildMarkers places MarkerCount rectangular hour markers at even angular
// spacing, each rotated to point at the center.
func buildMarkers(opts Options) *scene.Group {
	g := scene.NewGroup(opts.GroupName + "-markers")
	fill := scene.Style{Fill: inkColor}

	w := opts.HourMarkerWidthMM
	h := opts.HourMarkerHeightMM
	r := geom.AlignedRadius(opts.HourMarkerRadiusMM, h, opts.HourMarkerAlign)

	for i := 0; i < opts.MarkerCount; i++ {
		ang := geom.ClockAngle(opts.StartAngleDeg, i, opts.MarkerCount, opts.Clockwise)
		p := geom.Polar(0, 0, r, ang)
		g.Add(&scene.Rect{
			X: p.X - w/2, Y: p.Y - h/2,
			W: w, H: h,
			Rotate: &scene.Rotation{Deg: ang, CX: p.X, CY: p.Y},
			Style:  fill,
		})
	}
	return g
}

// buildTicks places 60 minute ticks. Every fifth tick is scaled by the
// five-minute factor and realigned so its outer edge stays put.
func buildTicks(opts Options) *scene.Group {
	g := scene.NewGroup(opts.GroupName + "-ticks")
	fill := scene.Style{Fill: inkColor}

	w := opts.MinuteTickWidthMM
	baseH := opts.MinuteTickHeightMM

	for i := 0; i < minuteCount; i++ {
		ang := geom.ClockAngle(opts.StartAngleDeg, i, minuteCount, opts.Clockwise)

		h := baseH
		if i%minuteStepNr == 0 {
			h *= opts.FiveMinuteScale
		}
		r := geom.AlignedRadius(opts.MinuteTickRadiusMM, h, opts.MinuteTickAlign)
		p := geom.Polar(0, 0, r, ang)

		g.Add(&scene.Rect{
			X: p.X - w/2, Y: p.Y - h/2,
			W: w, H: h,
			Rotate: &scene.Rotation{Deg: ang, CX: p.X, CY: p.Y},
			Style:  fill,
		})
	}
	return g
}

// buildLabels places numeral labels around the text radius. Twelve labels
// get the hour treatment (including the omit-3 date window helper); any
// other count is distributed evenly.
func buildLabels(opts Options, labels []string) *scene.Group {
	g := scene.NewGroup(opts.GroupName + "-labels")

	r := opts.TextRadiusMM + opts.TextRadialOffsetMM
	font := scene.Font{
		Family:   opts.FontFamily,
		SizeMM:   opts.FontSizeMM,
		Anchor:   "middle",
		Baseline: opts.TextBaseline,
	}

	n := len(labels)
	for i, label := range labels {
		if opts.OmitThree && n == 12 && i == dateIndex {
			continue
		}

		ang := geom.ClockAngle(opts.StartAngleDeg+opts.TextAngleOffsetDeg, i, n, opts.Clockwise)
		p := geom.Polar(0, 0, r, ang)

		t := &scene.Text{
			X: p.X, Y: p.Y,
			Content: label,
			Font:    font,
			Fill:    inkColor,
		}
		if rot := geom.LabelRotation(opts.Orientation, ang); rot != 0 {
			t.Rotate = &scene.Rotation{Deg: rot, CX: p.X, CY: p.Y}
		}
		g.Add(t)
	}
	return g
}
