package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/brianjo/watchdialtools/pkg/cache"
	"github.com/brianjo/watchdialtools/pkg/dial"
	"github.com/brianjo/watchdialtools/pkg/errors"
	"github.com/brianjo/watchdialtools/pkg/movement"
	"github.com/brianjo/watchdialtools/pkg/pattern"
	"github.com/brianjo/watchdialtools/pkg/render/raster"
	"github.com/brianjo/watchdialtools/pkg/render/svg"
	"github.com/brianjo/watchdialtools/pkg/scene"
)

// Runner encapsulates pipeline execution with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	wMM, hMM, err := opts.Canvas()
	if err != nil {
		return nil, err
	}
	result.CanvasWMM, result.CanvasHMM = wMM, hMM

	// Stage 1: Build
	buildStart := time.Now()
	root, err := r.BuildScene(opts)
	if err != nil {
		return nil, err
	}
	result.Scene = root
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.ShapeCount = root.Count()
	result.SceneSum = optionsSum(opts)

	r.Logger.Info("built scene",
		"kind", opts.Kind,
		"shapes", result.Stats.ShapeCount,
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.renderWithCache(ctx, root, opts, result.SceneSum, wMM, hMM)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BuildScene generates the scene tree for the selected kind. Building is a
// pure function of the options, so it is never cached.
func (r *Runner) BuildScene(opts Options) (*scene.Group, error) {
	switch opts.Kind {
	case KindDial:
		return dial.Build(opts.Dial)
	case KindPattern:
		return pattern.Build(opts.Pattern)
	case KindTemplate:
		reg := opts.Movements
		if reg == nil {
			reg = movement.NewRegistry()
		}
		p, err := reg.Get(opts.Template.Movement)
		if err != nil {
			return nil, err
		}
		return movement.Build(p, opts.Template)
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid generation kind: %q", opts.Kind)
}

// renderWithCache renders all requested formats, serving from cache when
// every format is present and Refresh is not set.
func (r *Runner) renderWithCache(ctx context.Context, root *scene.Group, opts Options, sceneSum string, wMM, hMM float64) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte)
	sceneKey := r.Keyer.SceneKey(cache.SceneKeyOpts{Kind: opts.Kind, OptionsSum: sceneSum})

	if !opts.Refresh {
		allCached := true
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(sceneKey, opts.ArtifactKeyOpts(format, wMM, hMM))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := r.RenderFormats(root, opts, wMM, hMM)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(sceneKey, opts.ArtifactKeyOpts(format, wMM, hMM))
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}

	return rendered, false, nil
}

// RenderFormats renders the scene in every requested format.
func (r *Runner) RenderFormats(root *scene.Group, opts Options, wMM, hMM float64) (map[string][]byte, error) {
	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			svgOpts := []svg.Option{svg.WithCanvas(wMM, hMM)}
			if opts.Title != "" {
				svgOpts = append(svgOpts, svg.WithTitle(opts.Title))
			}
			if !opts.Transparent && opts.Background != "#ffffff" {
				svgOpts = append(svgOpts, svg.WithBackground(opts.Background))
			}
			out[format] = svg.Render(root, svgOpts...)
		case FormatPNG:
			rasterOpts := []raster.Option{
				raster.WithScale(opts.Scale),
				raster.WithBackground(opts.Background),
			}
			if opts.Transparent {
				rasterOpts = append(rasterOpts, raster.WithTransparent())
			}
			data, err := raster.Render(root, wMM, hMM, rasterOpts...)
			if err != nil {
				return nil, err
			}
			out[format] = data
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
		}
	}
	return out, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// optionsSum hashes the serializable options. Runtime fields carry json:"-"
// so loggers and registries never leak into cache keys.
func optionsSum(opts Options) string {
	data, _ := json.Marshal(opts)
	return cache.Hash(data)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
