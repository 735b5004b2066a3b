package cli

import (
	"github.com/spf13/cobra"

	"github.com/brianjo/watchdialtools/pkg/pattern"
	"github.com/brianjo/watchdialtools/pkg/pipeline"
)

// patternCommand creates the pattern command for generating dial textures.
//
// Single-layer mode draws one texture family; --complex composes a named
// layer stack with seeded per-layer variation, so the same seed always
// reproduces the same texture.
func (c *CLI) patternCommand() *cobra.Command {
	var rf renderFlags
	fv := pattern.DefaultOptions()
	var kind string

	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Generate a guilloché, concentric, sunburst or crosshatch texture",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rf.configPath)
			if err != nil {
				return err
			}
			opts := cfg.Pattern
			fl := cmd.Flags()

			if fl.Changed("diameter") {
				opts.DiameterMM = fv.DiameterMM
			}
			if fl.Changed("outline") {
				opts.DrawOutline = fv.DrawOutline
			}
			if fl.Changed("outline-stroke") {
				opts.OutlineStrokeMM = fv.OutlineStrokeMM
			}
			if fl.Changed("clip") {
				opts.ClipToCircle = fv.ClipToCircle
			}
			if fl.Changed("inner-radius") {
				opts.InnerRadiusMM = fv.InnerRadiusMM
			}
			if fl.Changed("kind") {
				opts.Kind = pattern.Kind(kind)
			}
			if fl.Changed("stroke") {
				opts.StrokeMM = fv.StrokeMM
			}
			if fl.Changed("color") {
				opts.StrokeColor = fv.StrokeColor
			}
			if fl.Changed("opacity") {
				opts.StrokeOpacity = fv.StrokeOpacity
			}
			if fl.Changed("ring-spacing") {
				opts.RingSpacingMM = fv.RingSpacingMM
			}
			if fl.Changed("rays") {
				opts.Rays = fv.Rays
			}
			if fl.Changed("lobes") {
				opts.Lobes = fv.Lobes
			}
			if fl.Changed("amplitude") {
				opts.AmplitudeMM = fv.AmplitudeMM
			}
			if fl.Changed("points") {
				opts.Points = fv.Points
			}
			if fl.Changed("hatch-spacing") {
				opts.HatchSpacingMM = fv.HatchSpacingMM
			}
			if fl.Changed("hatch-angle") {
				opts.HatchAngleDeg = fv.HatchAngleDeg
			}
			if fl.Changed("hatch-single") {
				opts.HatchDouble = false
			}
			if fl.Changed("complex") {
				opts.Complex = fv.Complex
			}
			if fl.Changed("preset") {
				opts.Preset = fv.Preset
				opts.Complex = true
			}
			if fl.Changed("layers") {
				opts.Layers = fv.Layers
			}
			if fl.Changed("seed") {
				opts.Seed = fv.Seed
			}
			if fl.Changed("rotate-jitter") {
				opts.RotateJitterDeg = fv.RotateJitterDeg
			}
			if fl.Changed("opacity-decay") {
				opts.OpacityDecay = fv.OpacityDecay
			}
			if fl.Changed("stroke-decay") {
				opts.StrokeDecay = fv.StrokeDecay
			}
			if fl.Changed("lobe-jitter") {
				opts.LobeJitter = fv.LobeJitter
			}
			if fl.Changed("amp-decay") {
				opts.AmpDecay = fv.AmpDecay
			}

			popts := pipeline.Options{Kind: pipeline.KindPattern, Pattern: opts}
			rf.apply(&popts)
			return c.runPipeline(cmd, popts, &rf, "pattern")
		},
	}

	addRenderFlags(cmd, &rf)

	cmd.Flags().Float64Var(&fv.DiameterMM, "diameter", fv.DiameterMM, "dial diameter in mm")
	cmd.Flags().BoolVar(&fv.DrawOutline, "outline", fv.DrawOutline, "draw the dial outline over the texture")
	cmd.Flags().Float64Var(&fv.OutlineStrokeMM, "outline-stroke", fv.OutlineStrokeMM, "outline stroke width in mm")
	cmd.Flags().BoolVar(&fv.ClipToCircle, "clip", fv.ClipToCircle, "clip the texture to the dial circle")
	cmd.Flags().Float64Var(&fv.InnerRadiusMM, "inner-radius", fv.InnerRadiusMM, "inner radius to keep clear, mm")
	cmd.Flags().StringVarP(&kind, "kind", "k", string(fv.Kind), "texture kind: guilloche, concentric, sunburst, crosshatch")
	cmd.Flags().Float64Var(&fv.StrokeMM, "stroke", fv.StrokeMM, "texture stroke width in mm")
	cmd.Flags().StringVar(&fv.StrokeColor, "color", fv.StrokeColor, "texture stroke color (hex)")
	cmd.Flags().Float64Var(&fv.StrokeOpacity, "opacity", fv.StrokeOpacity, "texture stroke opacity")
	cmd.Flags().Float64Var(&fv.RingSpacingMM, "ring-spacing", fv.RingSpacingMM, "concentric ring spacing in mm")
	cmd.Flags().IntVar(&fv.Rays, "rays", fv.Rays, "sunburst ray count")
	cmd.Flags().IntVar(&fv.Lobes, "lobes", fv.Lobes, "rosette lobe count")
	cmd.Flags().Float64Var(&fv.AmplitudeMM, "amplitude", fv.AmplitudeMM, "rosette amplitude in mm")
	cmd.Flags().IntVar(&fv.Points, "points", fv.Points, "rosette sample points")
	cmd.Flags().Float64Var(&fv.HatchSpacingMM, "hatch-spacing", fv.HatchSpacingMM, "crosshatch line spacing in mm")
	cmd.Flags().Float64Var(&fv.HatchAngleDeg, "hatch-angle", fv.HatchAngleDeg, "crosshatch angle in degrees")
	cmd.Flags().Bool("hatch-single", false, "draw a single hatch direction instead of two")
	cmd.Flags().BoolVar(&fv.Complex, "complex", false, "compose a multi-layer stack")
	cmd.Flags().StringVarP(&fv.Preset, "preset", "p", fv.Preset, "layer stack preset: rosette_stack, breguet, modern, pocketwatch (implies --complex)")
	cmd.Flags().IntVar(&fv.Layers, "layers", fv.Layers, "layer count for complex stacks")
	cmd.Flags().Uint64Var(&fv.Seed, "seed", fv.Seed, "random seed for layer variation")
	cmd.Flags().Float64Var(&fv.RotateJitterDeg, "rotate-jitter", fv.RotateJitterDeg, "per-layer rotation jitter in degrees")
	cmd.Flags().Float64Var(&fv.OpacityDecay, "opacity-decay", fv.OpacityDecay, "per-layer opacity decay factor")
	cmd.Flags().Float64Var(&fv.StrokeDecay, "stroke-decay", fv.StrokeDecay, "per-layer stroke decay factor")
	cmd.Flags().IntVar(&fv.LobeJitter, "lobe-jitter", fv.LobeJitter, "per-layer lobe count jitter")
	cmd.Flags().Float64Var(&fv.AmpDecay, "amp-decay", fv.AmpDecay, "per-layer amplitude decay factor")

	return cmd
}
