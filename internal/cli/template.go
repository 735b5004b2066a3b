package cli

import (
	"github.com/spf13/cobra"

	"github.com/brianjo/watchdialtools/pkg/movement"
	"github.com/brianjo/watchdialtools/pkg/pipeline"
)

// templateCommand creates the template command for movement templates.
//
// A template draws the construction geometry a dial blank needs for a given
// movement: hand holes, the date window, subdial circles and dial feet.
// --clearance widens every cut symmetrically to compensate for kerf without
// moving any position.
func (c *CLI) templateCommand() *cobra.Command {
	var rf renderFlags
	fv := movement.DefaultOptions()
	var movementsDir string

	cmd := &cobra.Command{
		Use:   "template [movement]",
		Short: "Generate a movement template with holes, windows and feet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rf.configPath)
			if err != nil {
				return err
			}
			opts := cfg.Template
			fl := cmd.Flags()

			if len(args) == 1 {
				opts.Movement = args[0]
			} else if fl.Changed("movement") {
				opts.Movement = fv.Movement
			}
			if fl.Changed("clearance") {
				opts.ClearanceMM = fv.ClearanceMM
			}
			if fl.Changed("outline") {
				opts.DrawOutline = fv.DrawOutline
			}
			if fl.Changed("outline-stroke") {
				opts.OutlineStrokeMM = fv.OutlineStrokeMM
			}
			if fl.Changed("center-hole") {
				opts.DrawCenterHole = fv.DrawCenterHole
			}
			if fl.Changed("hand-holes") {
				opts.DrawHandHoles = fv.DrawHandHoles
			}
			if fl.Changed("date-window") {
				opts.DrawDateWindow = fv.DrawDateWindow
			}
			if fl.Changed("subdial") {
				opts.DrawSubdial = fv.DrawSubdial
			}
			if fl.Changed("feet") {
				opts.DrawFeet = fv.DrawFeet
			}

			reg := movement.NewRegistry()
			if movementsDir != "" {
				n, err := reg.LoadDir(movementsDir)
				if err != nil {
					return err
				}
				if n > 0 {
					c.Logger.Debug("loaded movement presets", "dir", movementsDir, "count", n)
				} else {
					printWarning("No preset files found in %s", movementsDir)
				}
			}

			popts := pipeline.Options{
				Kind:      pipeline.KindTemplate,
				Template:  opts,
				Movements: reg,
			}
			rf.apply(&popts)
			return c.runPipeline(cmd, popts, &rf, "template-"+opts.Movement)
		},
	}

	addRenderFlags(cmd, &rf)

	cmd.Flags().StringVarP(&fv.Movement, "movement", "m", fv.Movement, "movement preset name")
	cmd.Flags().Float64Var(&fv.ClearanceMM, "clearance", fv.ClearanceMM, "cut clearance in mm, added to every hole and window")
	cmd.Flags().StringVar(&movementsDir, "movements-dir", "", "directory of extra movement preset TOML files")
	cmd.Flags().BoolVar(&fv.DrawOutline, "outline", fv.DrawOutline, "draw the dial outline")
	cmd.Flags().Float64Var(&fv.OutlineStrokeMM, "outline-stroke", fv.OutlineStrokeMM, "outline stroke width in mm")
	cmd.Flags().BoolVar(&fv.DrawCenterHole, "center-hole", fv.DrawCenterHole, "draw the center hole")
	cmd.Flags().BoolVar(&fv.DrawHandHoles, "hand-holes", fv.DrawHandHoles, "draw the hand pipe holes")
	cmd.Flags().BoolVar(&fv.DrawDateWindow, "date-window", fv.DrawDateWindow, "draw the date window")
	cmd.Flags().BoolVar(&fv.DrawSubdial, "subdial", fv.DrawSubdial, "draw the subdial circle")
	cmd.Flags().BoolVar(&fv.DrawFeet, "feet", fv.DrawFeet, "draw the dial feet positions")

	return cmd
}
