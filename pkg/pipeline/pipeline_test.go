package pipeline

import (
	"bytes"
	"context"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/brianjo/watchdialtools/pkg/cache"
	"github.com/brianjo/watchdialtools/pkg/dial"
	"github.com/brianjo/watchdialtools/pkg/errors"
	"github.com/brianjo/watchdialtools/pkg/movement"
	"github.com/brianjo/watchdialtools/pkg/pattern"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func dialOptions() Options {
	return Options{
		Kind:   KindDial,
		Dial:   dial.DefaultOptions(),
		Logger: quietLogger(),
	}
}

func TestExecuteDial(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), dialOptions())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.CanvasWMM != 32.5 || result.CanvasHMM != 32.5 {
		t.Errorf("canvas = %vx%v, want 32.5x32.5 (28.5mm dial + 2mm margins)",
			result.CanvasWMM, result.CanvasHMM)
	}
	if result.Stats.ShapeCount == 0 {
		t.Error("shape count should be nonzero")
	}
	if result.CacheInfo.RenderHit {
		t.Error("null cache should never hit")
	}
	if result.SceneSum == "" {
		t.Error("scene sum missing")
	}

	svgData, ok := result.Artifacts[FormatSVG]
	if !ok {
		t.Fatal("no SVG artifact (svg is the default format)")
	}
	if !strings.Contains(string(svgData), `viewBox="-16.25 -16.25 32.5 32.5"`) {
		t.Error("SVG viewBox should center the derived canvas")
	}
}

func TestExecutePNG(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	defer runner.Close()

	opts := dialOptions()
	opts.Formats = []string{FormatSVG, FormatPNG}
	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Artifacts) != 2 {
		t.Fatalf("artifacts = %d, want 2", len(result.Artifacts))
	}
	if !bytes.HasPrefix(result.Artifacts[FormatPNG], []byte("\x89PNG")) {
		t.Error("png artifact is not a PNG")
	}
}

func TestExecuteTemplate(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	defer runner.Close()

	opts := Options{
		Kind:     KindTemplate,
		Template: movement.DefaultOptions(),
		Logger:   quietLogger(),
	}
	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.CanvasWMM != 32.5 {
		t.Errorf("canvas = %v, want 32.5 for the nh35 dial", result.CanvasWMM)
	}

	opts = Options{
		Kind:     KindTemplate,
		Template: movement.DefaultOptions(),
		Logger:   quietLogger(),
	}
	opts.Template.Movement = "rolex3135"
	if _, err := runner.Execute(context.Background(), opts); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("unknown movement: code = %v, want %v", errors.GetCode(err), errors.ErrCodePresetNotFound)
	}
}

func TestExecuteValidation(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	defer runner.Close()
	ctx := context.Background()

	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{"bad kind", Options{Kind: "sundial"}, errors.ErrCodeInvalidConfig},
		{"bad format", func() Options {
			o := dialOptions()
			o.Formats = []string{"pdf"}
			return o
		}(), errors.ErrCodeInvalidFormat},
		{"bad background", func() Options {
			o := dialOptions()
			o.Background = "white"
			return o
		}(), errors.ErrCodeInvalidColor},
		{"negative margin", func() Options {
			o := dialOptions()
			o.MarginMM = -1
			return o
		}(), errors.ErrCodeInvalidDiameter},
		{"invalid dial options", func() Options {
			o := dialOptions()
			o.Dial.DiameterMM = -1
			return o
		}(), errors.ErrCodeInvalidDiameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runner.Execute(ctx, tt.opts)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestExecuteCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(c, nil, quietLogger())
	defer runner.Close()
	ctx := context.Background()

	first, err := runner.Execute(ctx, dialOptions())
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should render fresh")
	}

	second, err := runner.Execute(ctx, dialOptions())
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run with identical options should hit the cache")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached artifact should match the original render")
	}

	// Refresh bypasses the cache.
	opts := dialOptions()
	opts.Refresh = true
	third, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if third.CacheInfo.RenderHit {
		t.Error("refresh run should not serve from cache")
	}

	// Changed options miss.
	opts = dialOptions()
	opts.Dial.DiameterMM = 31.0
	fourth, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("changed Execute: %v", err)
	}
	if fourth.CacheInfo.RenderHit {
		t.Error("changed options should not hit the cache")
	}
}

func TestCanvas(t *testing.T) {
	opts := dialOptions()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	w, h, err := opts.Canvas()
	if err != nil {
		t.Fatalf("Canvas: %v", err)
	}
	if math.Abs(w-32.5) > 1e-9 || math.Abs(h-32.5) > 1e-9 {
		t.Errorf("derived canvas = %vx%v, want 32.5x32.5", w, h)
	}

	opts.CanvasWMM, opts.CanvasHMM = 40, 50
	w, h, err = opts.Canvas()
	if err != nil {
		t.Fatalf("Canvas: %v", err)
	}
	if w != 40 || h != 50 {
		t.Errorf("explicit canvas = %vx%v, want 40x50", w, h)
	}
}

func TestOptionsSumIgnoresRuntimeFields(t *testing.T) {
	a := Options{Kind: KindPattern, Pattern: pattern.DefaultOptions()}
	b := Options{Kind: KindPattern, Pattern: pattern.DefaultOptions(), Logger: quietLogger(), Movements: movement.NewRegistry()}

	if optionsSum(a) != optionsSum(b) {
		t.Error("logger and registry should not affect the options sum")
	}

	b.Pattern.Seed = 99
	if optionsSum(a) == optionsSum(b) {
		t.Error("changed generator options should change the sum")
	}
}

func TestValidateFormat(t *testing.T) {
	if err := ValidateFormat(FormatSVG); err != nil {
		t.Errorf("svg should validate: %v", err)
	}
	if err := ValidateFormat(FormatPNG); err != nil {
		t.Errorf("png should validate: %v", err)
	}
	if err := ValidateFormat("pdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("pdf: code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}
