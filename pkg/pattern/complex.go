package pattern

import (
	"fmt"
	"math/rand/v2"

	"github.com/brianjo/watchdialtools/pkg/scene"
)

// minLayerOpacity keeps deep layers from decaying into invisibility.
const minLayerOpacity = 0.02

// overrides carries per-layer parameter pins from a preset plan. Nil fields
// fall back to the user options (with jitter and decay applied).
type overrides struct {
	ringSpacing  *float64
	rays         *int
	lobes        *int
	amplitude    *float64
	points       *int
	hatchSpacing *float64
	hatchAngle   *float64
	hatchDouble  *bool
}

// planStep is one layer recipe in a preset plan.
type planStep struct {
	kind Kind
	pin  func(rng *rand.Rand, o *Options) overrides
}

// Build generates the pattern scene centered on the origin. Single-layer
// mode draws one texture; complex mode composes a preset layer stack with
// seeded per-layer variation.
func Build(opts Options) (*scene.Group, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	name := opts.GroupName
	if name == "" {
		name = "dial-pattern"
	}
	root := scene.NewGroup(name)

	rOuter := opts.OuterRadius()

	patternG := scene.NewGroup(name + "-pattern")
	patternG.Label = "pattern"
	if opts.ClipToCircle {
		patternG.ClipToCircle(0, 0, rOuter)
	}
	root.Add(patternG)

	if !opts.Complex {
		style := scene.Style{
			Stroke:        opts.StrokeColor,
			StrokeWidth:   opts.StrokeMM,
			StrokeOpacity: opts.StrokeOpacity,
		}
		drawLayer(patternG, &opts, opts.Kind, rOuter, style, overrides{})
	} else {
		buildStack(patternG, &opts, rOuter)
	}

	// Outline drawn last so it sits above the texture.
	if opts.DrawOutline {
		root.Add(&scene.Circle{R: rOuter, Style: scene.Style{
			Stroke:      "#000000",
			StrokeWidth: opts.OutlineStrokeMM,
		}})
	}
	return root, nil
}

// buildStack composes the preset layer plan. All randomness comes from one
// PCG stream seeded by opts.Seed, so a seed fully determines the stack.
func buildStack(parent *scene.Group, opts *Options, rOuter float64) {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))

	layers := opts.Layers
	plan := presetPlan(opts.Preset, &layers)

	for i := 0; i < layers; i++ {
		step := plan[i%len(plan)]
		ov := overrides{}
		if step.pin != nil {
			ov = step.pin(rng, opts)
		}

		applyLayerVariation(rng, opts, step.kind, &ov, i)

		strokeW := opts.StrokeMM * pow(opts.StrokeDecay, i)
		opacity := clamp(opts.StrokeOpacity*pow(opts.OpacityDecay, i), minLayerOpacity, 1)
		style := scene.Style{
			Stroke:        opts.StrokeColor,
			StrokeWidth:   strokeW,
			StrokeOpacity: opacity,
		}

		lg := scene.NewGroup(fmt.Sprintf("%s-layer-%d", parent.ID, i+1))
		lg.Label = fmt.Sprintf("layer-%d", i+1)
		if rot := jitter(rng, opts.RotateJitterDeg); rot != 0 {
			lg.Rotate = &scene.Rotation{Deg: rot}
		}
		parent.Add(lg)

		drawLayer(lg, opts, step.kind, rOuter, style, ov)
	}
}

// applyLayerVariation fills unpinned parameters with the per-layer jitter
// and decay schedule: rosette lobes jitter around the base count, amplitude
// decays geometrically, sample counts grow with depth so upper layers read
// as engraving-grade, and repeated crosshatch drifts in angle.
func applyLayerVariation(rng *rand.Rand, opts *Options, kind Kind, ov *overrides, layer int) {
	switch kind {
	case Guilloche:
		if ov.lobes == nil {
			j := opts.LobeJitter
			l := max(minLobes, opts.Lobes+intJitter(rng, j))
			ov.lobes = &l
		}
		if ov.amplitude == nil {
			a := opts.AmplitudeMM * pow(opts.AmpDecay, layer)
			ov.amplitude = &a
		}
		if ov.points == nil {
			p := max(800, int(float64(opts.Points)*(1+0.10*float64(layer))))
			ov.points = &p
		}
	case Crosshatch:
		if ov.hatchAngle == nil {
			a := opts.HatchAngleDeg + jitter(rng, 5)
			ov.hatchAngle = &a
		}
	}
}

// drawLayer dispatches one texture layer, resolving overrides against the
// user options.
func drawLayer(g *scene.Group, opts *Options, kind Kind, rOuter float64, style scene.Style, ov overrides) {
	rInner := opts.InnerRadiusMM

	switch kind {
	case Concentric:
		concentric(g, rOuter, rInner, fval(ov.ringSpacing, opts.RingSpacingMM), style)
	case Sunburst:
		sunburst(g, rOuter, rInner, ival(ov.rays, opts.Rays), style)
	case Crosshatch:
		crosshatch(g, rOuter,
			fval(ov.hatchSpacing, opts.HatchSpacingMM),
			fval(ov.hatchAngle, opts.HatchAngleDeg),
			bval(ov.hatchDouble, opts.HatchDouble),
			style)
	default:
		guilloche(g, rOuter,
			ival(ov.lobes, opts.Lobes),
			fval(ov.amplitude, opts.AmplitudeMM),
			ival(ov.points, opts.Points),
			style)
	}
}

// presetPlan returns the layer plan for a preset and raises the requested
// layer count to the plan length where the preset demands it.
func presetPlan(preset string, layers *int) []planStep {
	switch preset {
	case PresetBreguet:
		// Fine rings, a structural rosette, a faint dense sunburst, and a
		// fine rosette on top.
		plan := []planStep{
			{Concentric, func(_ *rand.Rand, _ *Options) overrides {
				return overrides{ringSpacing: fptr(0.45)}
			}},
			{Guilloche, func(rng *rand.Rand, o *Options) overrides {
				l := 12 + intJitter(rng, 2)
				return overrides{lobes: &l, amplitude: fptr(1.0), points: iptr(max(1600, o.Points))}
			}},
			{Sunburst, func(_ *rand.Rand, _ *Options) overrides {
				return overrides{rays: iptr(240)}
			}},
			{Guilloche, func(rng *rand.Rand, o *Options) overrides {
				l := 36 + intJitter(rng, 6)
				return overrides{lobes: &l, amplitude: fptr(0.28), points: iptr(max(2400, o.Points))}
			}},
		}
		if *layers < len(plan) {
			*layers = len(plan)
		}
		return plan
	case PresetModern:
		// Sunburst shimmer under crosshatch texture, then rosette structure
		// and a fine rosette.
		plan := []planStep{
			{Sunburst, func(_ *rand.Rand, _ *Options) overrides {
				return overrides{rays: iptr(300)}
			}},
			{Crosshatch, func(_ *rand.Rand, _ *Options) overrides {
				return overrides{hatchSpacing: fptr(0.6), hatchAngle: fptr(35.0), hatchDouble: bptr(true)}
			}},
			{Guilloche, func(rng *rand.Rand, o *Options) overrides {
				l := 18 + intJitter(rng, 3)
				return overrides{lobes: &l, amplitude: fptr(0.75), points: iptr(max(2000, o.Points))}
			}},
			{Guilloche, func(rng *rand.Rand, o *Options) overrides {
				l := 48 + intJitter(rng, 8)
				return overrides{lobes: &l, amplitude: fptr(0.22), points: iptr(max(3000, o.Points))}
			}},
		}
		if *layers < len(plan) {
			*layers = len(plan)
		}
		return plan
	default:
		// rosette_stack and pocketwatch: all rosettes, fully driven by the
		// jitter/decay schedule.
		return []planStep{{Guilloche, nil}}
	}
}

// jitter returns a uniform value in [-amount, amount].
func jitter(rng *rand.Rand, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	return (rng.Float64()*2 - 1) * amount
}

// intJitter returns a uniform integer in [-amount, amount].
func intJitter(rng *rand.Rand, amount int) int {
	if amount <= 0 {
		return 0
	}
	return rng.IntN(2*amount+1) - amount
}

func pow(base float64, exp int) float64 {
	v := 1.0
	for i := 0; i < exp; i++ {
		v *= base
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func bptr(v bool) *bool       { return &v }

func fval(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func ival(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func bval(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}
