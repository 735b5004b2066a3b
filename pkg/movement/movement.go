// Package movement holds the movement preset registry and generates
// movement-template drawings: the holes, windows and feet positions a dial
// blank needs to fit a given mechanical movement.
//
// Built-in presets cover the movements commonly used for custom dials.
// Dimensions are nominal, taken from movement spec sheets; this is a
// drafting aid, not a manufacturing-validated datum set. Additional presets
// can be loaded from TOML files.
package movement

import (
	"sort"

	"github.com/brianjo/watchdialtools/pkg/errors"
)

// DateWindow describes a date aperture centered at RadiusMM from the dial
// center along the AngleDeg clock angle (90 = 3 o'clock).
type DateWindow struct {
	WidthMM  float64 `toml:"width_mm"`
	HeightMM float64 `toml:"height_mm"`
	RadiusMM float64 `toml:"radius_mm"`
	AngleDeg float64 `toml:"angle_deg"`
}

// Subdial describes a sub-seconds (or similar) register circle offset from
// the dial center.
type Subdial struct {
	OffsetXMM float64 `toml:"offset_x_mm"`
	OffsetYMM float64 `toml:"offset_y_mm"`
	RadiusMM  float64 `toml:"radius_mm"`
}

// Foot is a dial foot position relative to the dial center.
type Foot struct {
	XMM float64 `toml:"x_mm"`
	YMM float64 `toml:"y_mm"`
}

// Preset is the dial-relevant datum set for one movement.
type Preset struct {
	Name        string `toml:"name"`
	DisplayName string `toml:"display_name"`

	DialDiameterMM float64 `toml:"dial_diameter_mm"`
	CenterHoleMM   float64 `toml:"center_hole_mm"`

	// Hand pipe hole diameters, largest first (hour, minute, second).
	HandHolesMM []float64 `toml:"hand_holes_mm"`

	DateWindow *DateWindow `toml:"date_window"`
	Subdial    *Subdial    `toml:"subdial"`
	FeetMM     []Foot      `toml:"feet"`

	// FootDiameterMM is the nominal dial foot pin diameter.
	FootDiameterMM float64 `toml:"foot_diameter_mm"`
}

// Validate checks a preset for usable dimensions.
func (p *Preset) Validate() error {
	if p.Name == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "movement preset has no name")
	}
	if err := errors.ValidateDiameter("dial diameter", p.DialDiameterMM); err != nil {
		return err
	}
	if err := errors.ValidateDiameter("center hole", p.CenterHoleMM); err != nil {
		return err
	}
	for _, d := range p.HandHolesMM {
		if err := errors.ValidateDiameter("hand hole", d); err != nil {
			return err
		}
	}
	if p.DateWindow != nil {
		if err := errors.ValidateDiameter("date window width", p.DateWindow.WidthMM); err != nil {
			return err
		}
		if err := errors.ValidateDiameter("date window height", p.DateWindow.HeightMM); err != nil {
			return err
		}
	}
	if p.Subdial != nil {
		if err := errors.ValidateDiameter("subdial diameter", 2*p.Subdial.RadiusMM); err != nil {
			return err
		}
	}
	return nil
}

// Registry maps preset names to presets.
type Registry struct {
	presets map[string]Preset
}

// NewRegistry creates a registry pre-populated with the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{presets: make(map[string]Preset)}
	for _, p := range builtins {
		r.presets[p.Name] = p
	}
	return r
}

// Get looks up a preset by name.
func (r *Registry) Get(name string) (Preset, error) {
	p, ok := r.presets[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodePresetNotFound,
			"unknown movement preset: %q (available: %v)", name, r.Names())
	}
	return p, nil
}

// Add registers a preset, replacing any existing preset with the same name.
func (r *Registry) Add(p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.presets[p.Name] = p
	return nil
}

// Names returns the registered preset names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered presets sorted by name.
func (r *Registry) All() []Preset {
	out := make([]Preset, 0, len(r.presets))
	for _, name := range r.Names() {
		out = append(out, r.presets[name])
	}
	return out
}

// builtins are the nominal datum sets shipped with the toolkit.
var builtins = []Preset{
	{
		Name:           "nh35",
		DisplayName:    "Seiko NH35/NH36",
		DialDiameterMM: 28.5,
		CenterHoleMM:   2.05,
		HandHolesMM:    []float64{1.5, 0.9, 0.2},
		DateWindow:     &DateWindow{WidthMM: 2.9, HeightMM: 2.0, RadiusMM: 12.0, AngleDeg: 90},
		FeetMM:         []Foot{{9.672, -8.667}, {-9.466, 8.93}},
		FootDiameterMM: 1.0,
	},
	{
		Name:           "st36",
		DisplayName:    "Seagull ST36 (6497 clone)",
		DialDiameterMM: 36.6,
		CenterHoleMM:   2.0,
		HandHolesMM:    []float64{1.7, 1.0, 0.3},
		Subdial:        &Subdial{OffsetXMM: -10.25, OffsetYMM: 0, RadiusMM: 6.0},
		FootDiameterMM: 1.0,
	},
	{
		Name:           "eta2824",
		DisplayName:    "ETA 2824-2",
		DialDiameterMM: 28.5,
		CenterHoleMM:   2.1,
		HandHolesMM:    []float64{1.5, 0.9, 0.25},
		DateWindow:     &DateWindow{WidthMM: 2.9, HeightMM: 1.9, RadiusMM: 10.8, AngleDeg: 90},
		FeetMM:         []Foot{{9.41, -7.75}, {-9.41, 7.75}},
		FootDiameterMM: 1.0,
	},
	{
		Name:           "miyota8215",
		DisplayName:    "Miyota 8215",
		DialDiameterMM: 27.6,
		CenterHoleMM:   1.95,
		HandHolesMM:    []float64{1.45, 0.85, 0.2},
		DateWindow:     &DateWindow{WidthMM: 2.8, HeightMM: 1.9, RadiusMM: 11.4, AngleDeg: 90},
		FeetMM:         []Foot{{8.9, -9.2}, {-8.9, 9.2}},
		FootDiameterMM: 1.0,
	},
}
