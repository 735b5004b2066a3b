// Package pipeline provides the build → render pipeline shared by the CLI
// commands.
//
// The pipeline has two stages:
//
//  1. Build: generate a scene tree from generator options (dial furniture,
//     pattern texture, or movement template)
//  2. Render: serialize the scene in the requested formats (SVG, PNG)
//
// A Runner wraps both stages with artifact caching so repeated runs with
// identical options serve the previous render.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Kind:    pipeline.KindDial,
//	    Dial:    dial.DefaultOptions(),
//	    Formats: []string{pipeline.FormatSVG},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/brianjo/watchdialtools/pkg/cache"
	"github.com/brianjo/watchdialtools/pkg/dial"
	"github.com/brianjo/watchdialtools/pkg/errors"
	"github.com/brianjo/watchdialtools/pkg/movement"
	"github.com/brianjo/watchdialtools/pkg/pattern"
	"github.com/brianjo/watchdialtools/pkg/render/raster"
	"github.com/brianjo/watchdialtools/pkg/scene"
)

// Generation kinds.
const (
	KindDial     = "dial"
	KindPattern  = "pattern"
	KindTemplate = "template"
)

// ValidKinds is the set of supported generation kinds.
var ValidKinds = map[string]bool{
	KindDial:     true,
	KindPattern:  true,
	KindTemplate: true,
}

// Output format constants.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// DefaultMarginMM is the canvas margin added around the dial diameter when
// no explicit canvas size is given.
const DefaultMarginMM = 2.0

// Options contains all configuration for one pipeline run. Exactly one of
// the per-kind option blocks is consulted, selected by Kind.
type Options struct {
	Kind string `json:"kind"`

	Dial     dial.Options     `json:"dial,omitempty"`
	Pattern  pattern.Options  `json:"pattern,omitempty"`
	Template movement.Options `json:"template,omitempty"`

	// Canvas. Zero values derive a square canvas from the dial diameter
	// plus MarginMM on each side.
	CanvasWMM float64 `json:"canvas_w_mm,omitempty"`
	CanvasHMM float64 `json:"canvas_h_mm,omitempty"`
	MarginMM  float64 `json:"margin_mm,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Title       string   `json:"title,omitempty"`
	Scale       float64  `json:"scale,omitempty"` // raster px/mm
	Background  string   `json:"background,omitempty"`
	Transparent bool     `json:"transparent,omitempty"`

	// Refresh bypasses the cache for this run.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized, excluded from cache keys)
	Logger    *log.Logger        `json:"-"`
	Movements *movement.Registry `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the generated shape tree.
	Scene *scene.Group

	// SceneSum is the content hash of the generation options.
	SceneSum string

	// CanvasWMM and CanvasHMM are the resolved canvas dimensions.
	CanvasWMM float64
	CanvasHMM float64

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks whether artifacts came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ShapeCount int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be svg or png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if !ValidKinds[o.Kind] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid generation kind: %q (must be dial, pattern, or template)", o.Kind)
	}
	switch o.Kind {
	case KindDial:
		if err := o.Dial.Validate(); err != nil {
			return err
		}
	case KindPattern:
		if err := o.Pattern.Validate(); err != nil {
			return err
		}
	case KindTemplate:
		if err := o.Template.Validate(); err != nil {
			return err
		}
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.MarginMM == 0 {
		o.MarginMM = DefaultMarginMM
	}
	if o.MarginMM < 0 {
		return errors.New(errors.ErrCodeInvalidDiameter, "margin cannot be negative, got %.2fmm", o.MarginMM)
	}
	if o.Scale == 0 {
		o.Scale = raster.DefaultScale
	}
	if o.Background == "" {
		o.Background = "#ffffff"
	}
	if err := errors.ValidateColor("background", o.Background); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Movements == nil {
		o.Movements = movement.NewRegistry()
	}

	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string, widthMM, heightMM float64) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		WidthMM:     widthMM,
		HeightMM:    heightMM,
		Scale:       o.Scale,
		Background:  o.Background,
		Transparent: o.Transparent,
	}
}

// diameterMM returns the dial diameter relevant to canvas sizing.
func (o *Options) diameterMM() (float64, error) {
	switch o.Kind {
	case KindDial:
		return o.Dial.DiameterMM, nil
	case KindPattern:
		return o.Pattern.DiameterMM, nil
	case KindTemplate:
		p, err := o.Movements.Get(o.Template.Movement)
		if err != nil {
			return 0, err
		}
		return p.DialDiameterMM, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid generation kind: %q", o.Kind)
}

// Canvas resolves the canvas dimensions, deriving a square canvas from the
// dial diameter when no explicit size is set.
func (o *Options) Canvas() (wMM, hMM float64, err error) {
	if o.CanvasWMM > 0 && o.CanvasHMM > 0 {
		return o.CanvasWMM, o.CanvasHMM, nil
	}
	d, err := o.diameterMM()
	if err != nil {
		return 0, 0, err
	}
	side := d + 2*o.MarginMM
	return side, side, nil
}
