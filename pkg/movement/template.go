package movement

import (
	"github.com/brianjo/watchdialtools/pkg/errors"
	"github.com/brianjo/watchdialtools/pkg/geom"
	"github.com/brianjo/watchdialtools/pkg/scene"
)

// Template guide colors. These are construction lines meant to sit under
// the artwork layers, so they stay light.
const (
	outlineColor = "#777"
	handColor    = "#999"
	feetColor    = "#aaa"
)

// Options configures template generation.
type Options struct {
	Movement          string  `toml:"movement" json:"movement"`
	DrawOutline       bool    `toml:"draw_outline" json:"draw_outline"`
	OutlineStrokeMM   float64 `toml:"outline_stroke_mm" json:"outline_stroke_mm"`
	CompensateOutline bool    `toml:"compensate_outline" json:"compensate_outline"`
	DrawCenterHole    bool    `toml:"draw_center_hole" json:"draw_center_hole"`
	DrawHandHoles     bool    `toml:"draw_hand_holes" json:"draw_hand_holes"`
	DrawDateWindow    bool    `toml:"draw_date_window" json:"draw_date_window"`
	DrawSubdial       bool    `toml:"draw_subdial" json:"draw_subdial"`
	DrawFeet          bool    `toml:"draw_feet" json:"draw_feet"`

	// ClearanceMM enlarges every hole and window by twice this amount to
	// compensate for cutting kerf. Positions are never affected.
	ClearanceMM float64 `toml:"clearance_mm" json:"clearance_mm"`

	GroupName string `toml:"group_name" json:"group_name"`
}

// DefaultOptions returns template options with every feature enabled.
func DefaultOptions() Options {
	return Options{
		Movement:          "nh35",
		DrawOutline:       true,
		OutlineStrokeMM:   0.12,
		CompensateOutline: true,
		DrawCenterHole:    true,
		DrawHandHoles:     true,
		DrawDateWindow:    true,
		DrawSubdial:       true,
		DrawFeet:          true,
		GroupName:         "dial-template",
	}
}

// Validate checks the options.
func (o *Options) Validate() error {
	if o.Movement == "" {
		return errors.New(errors.ErrCodePresetNotFound, "movement preset name is required")
	}
	if err := errors.ValidateStroke("outline stroke", o.OutlineStrokeMM); err != nil {
		return err
	}
	return errors.ValidateClearance(o.ClearanceMM)
}

// Build generates the template scene for a preset, centered on the origin.
func Build(p Preset, opts Options) (*scene.Group, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	name := opts.GroupName
	if name == "" {
		name = "dial-template"
	}
	g := scene.NewGroup(name)

	// Clearance widens cuts symmetrically about their centers.
	cut := func(d float64) float64 { return d + 2*opts.ClearanceMM }

	if opts.DrawOutline {
		r := geom.CompensatedRadius(p.DialDiameterMM, opts.OutlineStrokeMM, opts.CompensateOutline)
		g.Add(&scene.Circle{R: r, Style: scene.Style{
			Stroke:      outlineColor,
			StrokeWidth: opts.OutlineStrokeMM,
		}})
	}

	if opts.DrawCenterHole {
		g.Add(&scene.Circle{R: cut(p.CenterHoleMM) / 2, Style: scene.Style{
			Stroke:      outlineColor,
			StrokeWidth: 0.1,
		}})
	}

	if opts.DrawHandHoles {
		for _, d := range p.HandHolesMM {
			g.Add(&scene.Circle{R: cut(d) / 2, Style: scene.Style{
				Stroke:      handColor,
				StrokeWidth: 0.08,
			}})
		}
	}

	if opts.DrawDateWindow && p.DateWindow != nil {
		dw := p.DateWindow
		center := geom.Polar(0, 0, dw.RadiusMM, dw.AngleDeg)
		w, h := cut(dw.WidthMM), cut(dw.HeightMM)
		g.Add(&scene.Rect{
			X: center.X - w/2, Y: center.Y - h/2,
			W: w, H: h,
			Style: scene.Style{Stroke: outlineColor, StrokeWidth: 0.1},
		})
	}

	if opts.DrawSubdial && p.Subdial != nil {
		g.Add(&scene.Circle{
			CX: p.Subdial.OffsetXMM, CY: p.Subdial.OffsetYMM,
			R:     p.Subdial.RadiusMM,
			Style: scene.Style{Stroke: outlineColor, StrokeWidth: 0.1},
		})
	}

	if opts.DrawFeet {
		for _, foot := range p.FeetMM {
			g.Add(&scene.Circle{
				CX: foot.XMM, CY: foot.YMM,
				R:     cut(p.FootDiameterMM) / 2,
				Style: scene.Style{Stroke: feetColor, StrokeWidth: 0.08},
			})
		}
	}

	return g, nil
}
