// Package pattern generates decorative dial textures: guilloché rosettes,
// concentric rings, sunbursts and crosshatch, either as a single layer or
// as multi-layer stacks composed from named presets.
//
// Layer stacks use deterministic seeded variation: the same options always
// produce the same geometry, so a texture can be regenerated exactly from
// its parameters. This mirrors how engine-turned patterns are cut, where
// the machine settings fully determine the result.
package pattern

import (
	"github.com/brianjo/watchdialtools/pkg/errors"
	"github.com/brianjo/watchdialtools/pkg/geom"
)

// Kind identifies a texture family.
type Kind string

// Texture kinds.
const (
	Guilloche  Kind = "guilloche"
	Concentric Kind = "concentric"
	Sunburst   Kind = "sunburst"
	Crosshatch Kind = "crosshatch"
)

// ValidKinds is the set of supported texture kinds.
var ValidKinds = map[Kind]bool{
	Guilloche:  true,
	Concentric: true,
	Sunburst:   true,
	Crosshatch: true,
}

// Layer stack presets.
const (
	PresetRosetteStack = "rosette_stack"
	PresetBreguet      = "breguet"
	PresetModern       = "modern"
	PresetPocketwatch  = "pocketwatch"
)

// ValidPresets is the set of supported layer stack presets.
var ValidPresets = map[string]bool{
	PresetRosetteStack: true,
	PresetBreguet:      true,
	PresetModern:       true,
	PresetPocketwatch:  true,
}

// Options configures texture generation. All lengths are millimeters.
type Options struct {
	// Dial boundary
	DiameterMM       float64 `toml:"diameter_mm" json:"diameter_mm"`
	DrawOutline      bool    `toml:"draw_outline" json:"draw_outline"`
	OutlineStrokeMM  float64 `toml:"outline_stroke_mm" json:"outline_stroke_mm"`
	CompensateStroke bool    `toml:"compensate_stroke" json:"compensate_stroke"`
	ClipToCircle     bool    `toml:"clip_to_circle" json:"clip_to_circle"`
	InnerRadiusMM    float64 `toml:"inner_radius_mm" json:"inner_radius_mm"`

	// Single-layer texture
	Kind          Kind    `toml:"kind" json:"kind"`
	StrokeMM      float64 `toml:"stroke_mm" json:"stroke_mm"`
	StrokeColor   string  `toml:"stroke_color" json:"stroke_color"`
	StrokeOpacity float64 `toml:"stroke_opacity" json:"stroke_opacity"`

	// Concentric
	RingSpacingMM float64 `toml:"ring_spacing_mm" json:"ring_spacing_mm"`

	// Sunburst
	Rays int `toml:"rays" json:"rays"`

	// Guilloché
	Lobes       int     `toml:"lobes" json:"lobes"`
	AmplitudeMM float64 `toml:"amplitude_mm" json:"amplitude_mm"`
	Points      int     `toml:"points" json:"points"`

	// Crosshatch
	HatchSpacingMM float64 `toml:"hatch_spacing_mm" json:"hatch_spacing_mm"`
	HatchAngleDeg  float64 `toml:"hatch_angle_deg" json:"hatch_angle_deg"`
	HatchDouble    bool    `toml:"hatch_double" json:"hatch_double"`

	// Layer stacks
	Complex         bool    `toml:"complex" json:"complex"`
	Preset          string  `toml:"preset" json:"preset"`
	Layers          int     `toml:"layers" json:"layers"`
	Seed            uint64  `toml:"seed" json:"seed"`
	RotateJitterDeg float64 `toml:"rotate_jitter_deg" json:"rotate_jitter_deg"`
	OpacityDecay    float64 `toml:"opacity_decay" json:"opacity_decay"`
	StrokeDecay     float64 `toml:"stroke_decay" json:"stroke_decay"`
	LobeJitter      int     `toml:"lobe_jitter" json:"lobe_jitter"`
	AmpDecay        float64 `toml:"amp_decay" json:"amp_decay"`

	// Output
	GroupName string `toml:"group_name" json:"group_name"`
}

// DefaultOptions returns options for a subtle single-layer rosette on a
// 28.5mm dial.
func DefaultOptions() Options {
	return Options{
		DiameterMM:       28.5,
		DrawOutline:      true,
		OutlineStrokeMM:  0.12,
		CompensateStroke: true,
		ClipToCircle:     true,

		Kind:          Guilloche,
		StrokeMM:      0.10,
		StrokeColor:   "#000000",
		StrokeOpacity: 0.35,

		RingSpacingMM: 0.6,
		Rays:          120,

		Lobes:       12,
		AmplitudeMM: 1.2,
		Points:      1200,

		HatchSpacingMM: 0.7,
		HatchAngleDeg:  35.0,
		HatchDouble:    true,

		Preset:          PresetRosetteStack,
		Layers:          4,
		Seed:            1,
		RotateJitterDeg: 6.0,
		OpacityDecay:    0.75,
		StrokeDecay:     0.85,
		LobeJitter:      10,
		AmpDecay:        0.70,

		GroupName: "dial-pattern",
	}
}

// Validate checks the options for geometric sanity.
func (o *Options) Validate() error {
	if err := errors.ValidateDiameter("dial diameter", o.DiameterMM); err != nil {
		return err
	}
	if err := errors.ValidateStroke("outline stroke", o.OutlineStrokeMM); err != nil {
		return err
	}
	if err := errors.ValidateStroke("pattern stroke", o.StrokeMM); err != nil {
		return err
	}
	if err := errors.ValidateOpacity("stroke opacity", o.StrokeOpacity); err != nil {
		return err
	}
	if err := errors.ValidateColor("stroke color", o.StrokeColor); err != nil {
		return err
	}
	if !ValidKinds[o.Kind] {
		return errors.New(errors.ErrCodeInvalidPattern, "invalid pattern kind: %q (must be guilloche, concentric, sunburst, or crosshatch)", o.Kind)
	}
	if o.InnerRadiusMM < 0 {
		return errors.New(errors.ErrCodeInvalidDiameter, "inner radius cannot be negative, got %.3fmm", o.InnerRadiusMM)
	}
	switch o.Kind {
	case Concentric:
		if o.RingSpacingMM <= 0 {
			return errors.New(errors.ErrCodeInvalidDiameter, "ring spacing must be positive, got %.3fmm", o.RingSpacingMM)
		}
	case Crosshatch:
		if o.HatchSpacingMM <= 0 {
			return errors.New(errors.ErrCodeInvalidDiameter, "hatch spacing must be positive, got %.3fmm", o.HatchSpacingMM)
		}
	case Guilloche:
		if o.AmplitudeMM < 0 {
			return errors.New(errors.ErrCodeInvalidDiameter, "amplitude cannot be negative, got %.3fmm", o.AmplitudeMM)
		}
	}
	if o.Complex {
		if !ValidPresets[o.Preset] {
			return errors.New(errors.ErrCodeInvalidPattern, "invalid complex preset: %q (must be rosette_stack, breguet, modern, or pocketwatch)", o.Preset)
		}
		if err := errors.ValidateCount("layers", o.Layers, 1); err != nil {
			return err
		}
	}
	return nil
}

// OuterRadius returns the compensated dial radius the pattern fills.
func (o *Options) OuterRadius() float64 {
	return geom.CompensatedRadius(o.DiameterMM, o.OutlineStrokeMM, o.CompensateStroke)
}
