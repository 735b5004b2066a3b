// Package dial generates the furniture of a watch dial face: outline,
// center hole, hour markers, minute ticks and numeral labels.
//
// Build is a pure function from [Options] to a scene tree centered on the
// origin. The generated geometry follows watchmaking conventions: angles
// are measured clockwise from 12 o'clock, the 12 marker sits at the top,
// and all lengths are millimeters.
package dial

import (
	"github.com/brianjo/watchdialtools/pkg/errors"
	"github.com/brianjo/watchdialtools/pkg/geom"
)

// Text modes for numeral labels.
const (
	TextArabic = "arabic"
	TextRoman  = "roman"
	TextCustom = "custom"
	TextNone   = "none"
)

// ValidTextModes is the set of supported label text modes.
var ValidTextModes = map[string]bool{
	TextArabic: true,
	TextRoman:  true,
	TextCustom: true,
	TextNone:   true,
}

// Roman numeral styles for the 4 o'clock position. Watch dials
// traditionally use IIII, clock dials IV.
const (
	RomanFourIV   = "IV"
	RomanFourIIII = "IIII"
)

// Options configures dial face generation. All lengths are millimeters.
// The zero value is not useful; start from DefaultOptions.
type Options struct {
	// Dial
	DiameterMM       float64 `toml:"diameter_mm" json:"diameter_mm"`
	DrawOutline      bool    `toml:"draw_outline" json:"draw_outline"`
	OutlineStrokeMM  float64 `toml:"outline_stroke_mm" json:"outline_stroke_mm"`
	CompensateStroke bool    `toml:"compensate_stroke" json:"compensate_stroke"`

	// Center hole
	DrawCenterHole bool    `toml:"draw_center_hole" json:"draw_center_hole"`
	CenterHoleMM   float64 `toml:"center_hole_mm" json:"center_hole_mm"`

	// Angle system
	StartAngleDeg float64 `toml:"start_angle_deg" json:"start_angle_deg"`
	Clockwise     bool    `toml:"clockwise" json:"clockwise"`

	// Labels
	TextMode           string           `toml:"text_mode" json:"text_mode"`
	LabelsCSV          string           `toml:"labels_csv" json:"labels_csv,omitempty"`
	RomanFour          string           `toml:"roman_four" json:"roman_four"`
	OmitThree          bool             `toml:"omit_three" json:"omit_three"`
	TextRadiusMM       float64          `toml:"text_radius_mm" json:"text_radius_mm"`
	TextRadialOffsetMM float64          `toml:"text_radial_offset_mm" json:"text_radial_offset_mm"`
	TextAngleOffsetDeg float64          `toml:"text_angle_offset_deg" json:"text_angle_offset_deg"`
	FontFamily         string           `toml:"font_family" json:"font_family"`
	FontSizeMM         float64          `toml:"font_size_mm" json:"font_size_mm"`
	TextBaseline       string           `toml:"text_baseline" json:"text_baseline"`
	Orientation        geom.Orientation `toml:"orientation" json:"orientation"`

	// Hour markers
	ShowHourMarkers    bool       `toml:"show_hour_markers" json:"show_hour_markers"`
	MarkerCount        int        `toml:"marker_count" json:"marker_count"`
	HourMarkerRadiusMM float64    `toml:"hour_marker_radius_mm" json:"hour_marker_radius_mm"`
	HourMarkerWidthMM  float64    `toml:"hour_marker_width_mm" json:"hour_marker_width_mm"`
	HourMarkerHeightMM float64    `toml:"hour_marker_height_mm" json:"hour_marker_height_mm"`
	HourMarkerAlign    geom.Align `toml:"hour_marker_align" json:"hour_marker_align"`

	// Minute ticks
	ShowMinuteTicks    bool       `toml:"show_minute_ticks" json:"show_minute_ticks"`
	MinuteTickRadiusMM float64    `toml:"minute_tick_radius_mm" json:"minute_tick_radius_mm"`
	MinuteTickWidthMM  float64    `toml:"minute_tick_width_mm" json:"minute_tick_width_mm"`
	MinuteTickHeightMM float64    `toml:"minute_tick_height_mm" json:"minute_tick_height_mm"`
	FiveMinuteScale    float64    `toml:"five_minute_scale" json:"five_minute_scale"`
	MinuteTickAlign    geom.Align `toml:"minute_tick_align" json:"minute_tick_align"`

	// Output
	GroupName string `toml:"group_name" json:"group_name"`
}

// DefaultOptions returns options for a 28.5mm dial, the standard dial size
// for the movements this toolkit targets.
func DefaultOptions() Options {
	return Options{
		DiameterMM:       28.5,
		DrawOutline:      true,
		OutlineStrokeMM:  0.12,
		CompensateStroke: true,

		DrawCenterHole: true,
		CenterHoleMM:   1.5,

		StartAngleDeg: 0,
		Clockwise:     true,

		TextMode:     TextArabic,
		RomanFour:    RomanFourIV,
		TextRadiusMM: 11.5,
		FontFamily:   "Times New Roman",
		FontSizeMM:   2.6,
		TextBaseline: "central",
		Orientation:  geom.OrientUpright,

		ShowHourMarkers:    true,
		MarkerCount:        12,
		HourMarkerRadiusMM: 12.8,
		HourMarkerWidthMM:  0.7,
		HourMarkerHeightMM: 1.8,
		HourMarkerAlign:    geom.AlignOuter,

		ShowMinuteTicks:    true,
		MinuteTickRadiusMM: 13.6,
		MinuteTickWidthMM:  0.25,
		MinuteTickHeightMM: 1.0,
		FiveMinuteScale:    1.7,
		MinuteTickAlign:    geom.AlignOuter,

		GroupName: "watch-dial",
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
	if o.DrawCenterHole {
		if err := errors.ValidateDiameter("center hole", o.CenterHoleMM); err != nil {
			return err
		}
	}
	if o.ShowHourMarkers {
		if err := errors.ValidateCount("marker count", o.MarkerCount, 1); err != nil {
			return err
		}
		if !geom.ValidAligns[o.HourMarkerAlign] {
			return errors.New(errors.ErrCodeInvalidAlign, "invalid hour marker alignment: %q (must be outer, center, or inner)", o.HourMarkerAlign)
		}
	}
	if o.ShowMinuteTicks {
		if o.FiveMinuteScale <= 0 {
			return errors.New(errors.ErrCodeInvalidCount, "five-minute scale must be positive, got %.2f", o.FiveMinuteScale)
		}
		if !geom.ValidAligns[o.MinuteTickAlign] {
			return errors.New(errors.ErrCodeInvalidAlign, "invalid minute tick alignment: %q (must be outer, center, or inner)", o.MinuteTickAlign)
		}
	}
	if !ValidTextModes[o.TextMode] {
		return errors.New(errors.ErrCodeInvalidPattern, "invalid text mode: %q (must be arabic, roman, custom, or none)", o.TextMode)
	}
	if o.TextMode == TextRoman && o.RomanFour != RomanFourIV && o.RomanFour != RomanFourIIII {
		return errors.New(errors.ErrCodeInvalidPattern, "invalid roman four style: %q (must be IV or IIII)", o.RomanFour)
	}
	if o.TextMode != TextNone && !geom.ValidOrientations[o.Orientation] {
		return errors.New(errors.ErrCodeInvalidOrientation, "invalid label orientation: %q", o.Orientation)
	}
	if o.TextMode != TextNone && o.FontSizeMM <= 0 {
		return errors.New(errors.ErrCodeInvalidDiameter, "font size must be positive, got %.2fmm", o.FontSizeMM)
	}
	return nil
}
