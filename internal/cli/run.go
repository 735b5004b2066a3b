package cli

import (
	"github.com/spf13/cobra"

	"github.com/brianjo/watchdialtools/pkg/pipeline"
)

// renderFlags holds the flags shared by every generation command: output
// selection, canvas sizing, raster settings and cache control.
type renderFlags struct {
	output      string
	configPath  string
	formatsStr  string
	noCache     bool
	refresh     bool
	canvasMM    float64
	marginMM    float64
	scale       float64
	background  string
	transparent bool
	title       string
}

// addRenderFlags registers the shared flags on a generation command.
func addRenderFlags(cmd *cobra.Command, rf *renderFlags) {
	cmd.Flags().StringVarP(&rf.output, "output", "o", "", "output file (single format) or base path (multiple formats)")
	cmd.Flags().StringVarP(&rf.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&rf.formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")
	cmd.Flags().BoolVar(&rf.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&rf.refresh, "refresh", false, "bypass the cache for this run")
	cmd.Flags().Float64Var(&rf.canvasMM, "canvas", 0, "square canvas size in mm (default: diameter plus margin)")
	cmd.Flags().Float64Var(&rf.marginMM, "margin", pipeline.DefaultMarginMM, "canvas margin around the dial in mm")
	cmd.Flags().Float64Var(&rf.scale, "scale", 0, "PNG pixel density in px/mm (default 10)")
	cmd.Flags().StringVar(&rf.background, "background", "", "canvas background color (hex)")
	cmd.Flags().BoolVar(&rf.transparent, "transparent", false, "leave the PNG background transparent")
	cmd.Flags().StringVar(&rf.title, "title", "", "SVG document title")
}

// apply copies the shared flags into pipeline options.
func (rf *renderFlags) apply(opts *pipeline.Options) {
	opts.Formats = parseFormats(rf.formatsStr)
	opts.Refresh = rf.refresh
	opts.MarginMM = rf.marginMM
	opts.Scale = rf.scale
	opts.Background = rf.background
	opts.Transparent = rf.transparent
	opts.Title = rf.title
	if rf.canvasMM > 0 {
		opts.CanvasWMM = rf.canvasMM
		opts.CanvasHMM = rf.canvasMM
	}
}

// runPipeline executes the pipeline for a generation command and writes the
// artifacts next to the user.
func (c *CLI) runPipeline(cmd *cobra.Command, opts pipeline.Options, rf *renderFlags, defaultBase string) error {
	runner, err := c.newRunner(rf.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	p := newProgress(loggerFromContext(cmd.Context()))
	result, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}
	p.done("Generated " + opts.Kind)

	if err := writeArtifacts(result.Artifacts, opts.Formats, rf.output, defaultBase); err != nil {
		return err
	}
	printStats(result.Stats.ShapeCount, result.CacheInfo.RenderHit)
	return nil
}
