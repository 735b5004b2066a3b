package cli

import (
	"github.com/spf13/cobra"

	"github.com/brianjo/watchdialtools/pkg/dial"
	"github.com/brianjo/watchdialtools/pkg/geom"
	"github.com/brianjo/watchdialtools/pkg/pipeline"
)

// dialCommand creates the dial command for generating dial faces.
//
// Defaults target a 28.5mm dial (the NH35 standard): twelve hour markers,
// a 60-tick minute track with emphasized five-minute ticks, and arabic
// numerals. A TOML config seeds the options; explicitly set flags win over
// the config.
func (c *CLI) dialCommand() *cobra.Command {
	var rf renderFlags
	fv := dial.DefaultOptions()
	var (
		centerHoleMM float64
		markerCount  int
		orientation  string
		markerAlign  string
		tickAlign    string
	)

	cmd := &cobra.Command{
		Use:   "dial",
		Short: "Generate a dial face with markers, ticks and numerals",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rf.configPath)
			if err != nil {
				return err
			}
			opts := cfg.Dial
			fl := cmd.Flags()

			if fl.Changed("diameter") {
				opts.DiameterMM = fv.DiameterMM
			}
			if fl.Changed("outline-stroke") {
				opts.OutlineStrokeMM = fv.OutlineStrokeMM
			}
			if fl.Changed("outline") {
				opts.DrawOutline = fv.DrawOutline
			}
			if fl.Changed("compensate") {
				opts.CompensateStroke = fv.CompensateStroke
			}
			if fl.Changed("center-hole") {
				opts.DrawCenterHole = centerHoleMM > 0
				if centerHoleMM > 0 {
					opts.CenterHoleMM = centerHoleMM
				}
			}
			if fl.Changed("start-angle") {
				opts.StartAngleDeg = fv.StartAngleDeg
			}
			if fl.Changed("counterclockwise") {
				opts.Clockwise = false
			}
			if fl.Changed("markers") {
				opts.ShowHourMarkers = markerCount > 0
				if markerCount > 0 {
					opts.MarkerCount = markerCount
				}
			}
			if fl.Changed("marker-radius") {
				opts.HourMarkerRadiusMM = fv.HourMarkerRadiusMM
			}
			if fl.Changed("marker-width") {
				opts.HourMarkerWidthMM = fv.HourMarkerWidthMM
			}
			if fl.Changed("marker-height") {
				opts.HourMarkerHeightMM = fv.HourMarkerHeightMM
			}
			if fl.Changed("marker-align") {
				opts.HourMarkerAlign = geom.Align(markerAlign)
			}
			if fl.Changed("ticks") {
				opts.ShowMinuteTicks = fv.ShowMinuteTicks
			}
			if fl.Changed("tick-radius") {
				opts.MinuteTickRadiusMM = fv.MinuteTickRadiusMM
			}
			if fl.Changed("tick-width") {
				opts.MinuteTickWidthMM = fv.MinuteTickWidthMM
			}
			if fl.Changed("tick-height") {
				opts.MinuteTickHeightMM = fv.MinuteTickHeightMM
			}
			if fl.Changed("tick-align") {
				opts.MinuteTickAlign = geom.Align(tickAlign)
			}
			if fl.Changed("five-minute-scale") {
				opts.FiveMinuteScale = fv.FiveMinuteScale
			}
			if fl.Changed("text") {
				opts.TextMode = fv.TextMode
			}
			if fl.Changed("labels") {
				opts.LabelsCSV = fv.LabelsCSV
				opts.TextMode = dial.TextCustom
			}
			if fl.Changed("roman-four") {
				opts.RomanFour = fv.RomanFour
			}
			if fl.Changed("omit-three") {
				opts.OmitThree = fv.OmitThree
			}
			if fl.Changed("text-radius") {
				opts.TextRadiusMM = fv.TextRadiusMM
			}
			if fl.Changed("font") {
				opts.FontFamily = fv.FontFamily
			}
			if fl.Changed("font-size") {
				opts.FontSizeMM = fv.FontSizeMM
			}
			if fl.Changed("orientation") {
				opts.Orientation = geom.Orientation(orientation)
			}

			popts := pipeline.Options{Kind: pipeline.KindDial, Dial: opts}
			rf.apply(&popts)
			return c.runPipeline(cmd, popts, &rf, "dial")
		},
	}

	addRenderFlags(cmd, &rf)

	cmd.Flags().Float64Var(&fv.DiameterMM, "diameter", fv.DiameterMM, "dial diameter in mm")
	cmd.Flags().Float64Var(&fv.OutlineStrokeMM, "outline-stroke", fv.OutlineStrokeMM, "outline stroke width in mm")
	cmd.Flags().BoolVar(&fv.DrawOutline, "outline", fv.DrawOutline, "draw the dial outline")
	cmd.Flags().BoolVar(&fv.CompensateStroke, "compensate", fv.CompensateStroke, "keep the outline inside the diameter by half the stroke")
	cmd.Flags().Float64Var(&centerHoleMM, "center-hole", fv.CenterHoleMM, "center hole diameter in mm (0 disables)")
	cmd.Flags().Float64Var(&fv.StartAngleDeg, "start-angle", fv.StartAngleDeg, "angle of the first marker, degrees clockwise from 12")
	cmd.Flags().Bool("counterclockwise", false, "place markers counterclockwise")
	cmd.Flags().IntVar(&markerCount, "markers", fv.MarkerCount, "hour marker count (0 disables)")
	cmd.Flags().Float64Var(&fv.HourMarkerRadiusMM, "marker-radius", fv.HourMarkerRadiusMM, "hour marker placement radius in mm")
	cmd.Flags().Float64Var(&fv.HourMarkerWidthMM, "marker-width", fv.HourMarkerWidthMM, "hour marker width in mm")
	cmd.Flags().Float64Var(&fv.HourMarkerHeightMM, "marker-height", fv.HourMarkerHeightMM, "hour marker height in mm")
	cmd.Flags().StringVar(&markerAlign, "marker-align", string(fv.HourMarkerAlign), "marker alignment: outer, center, inner")
	cmd.Flags().BoolVar(&fv.ShowMinuteTicks, "ticks", fv.ShowMinuteTicks, "draw the minute track")
	cmd.Flags().Float64Var(&fv.MinuteTickRadiusMM, "tick-radius", fv.MinuteTickRadiusMM, "minute tick placement radius in mm")
	cmd.Flags().Float64Var(&fv.MinuteTickWidthMM, "tick-width", fv.MinuteTickWidthMM, "minute tick width in mm")
	cmd.Flags().Float64Var(&fv.MinuteTickHeightMM, "tick-height", fv.MinuteTickHeightMM, "minute tick height in mm")
	cmd.Flags().StringVar(&tickAlign, "tick-align", string(fv.MinuteTickAlign), "tick alignment: outer, center, inner")
	cmd.Flags().Float64Var(&fv.FiveMinuteScale, "five-minute-scale", fv.FiveMinuteScale, "length multiplier for five-minute ticks")
	cmd.Flags().StringVar(&fv.TextMode, "text", fv.TextMode, "numeral mode: arabic, roman, custom, none")
	cmd.Flags().StringVar(&fv.LabelsCSV, "labels", "", "custom labels, comma-separated starting at 12 (implies --text custom)")
	cmd.Flags().StringVar(&fv.RomanFour, "roman-four", fv.RomanFour, "roman style for 4 o'clock: IV or IIII")
	cmd.Flags().BoolVar(&fv.OmitThree, "omit-three", fv.OmitThree, "omit the 3 o'clock numeral for a date window")
	cmd.Flags().Float64Var(&fv.TextRadiusMM, "text-radius", fv.TextRadiusMM, "numeral placement radius in mm")
	cmd.Flags().StringVar(&fv.FontFamily, "font", fv.FontFamily, "numeral font family (SVG output)")
	cmd.Flags().Float64Var(&fv.FontSizeMM, "font-size", fv.FontSizeMM, "numeral font size in mm")
	cmd.Flags().StringVar(&orientation, "orientation", string(fv.Orientation), "numeral orientation: upright, tangent, radial, tangent_readable")

	return cmd
}
