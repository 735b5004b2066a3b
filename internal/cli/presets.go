package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/brianjo/watchdialtools/pkg/movement"
	"github.com/brianjo/watchdialtools/pkg/pattern"
)

// presetsCommand creates the presets command for listing built-in presets.
func (c *CLI) presetsCommand() *cobra.Command {
	var (
		interactive  bool
		movementsDir string
	)

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List movement and pattern presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := movement.NewRegistry()
			if movementsDir != "" {
				if _, err := reg.LoadDir(movementsDir); err != nil {
					return err
				}
			}

			if interactive {
				return runMovementPicker(reg)
			}

			printMovementTable(reg)
			fmt.Println()
			printPatternPresets()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a movement interactively and print its datum sheet")
	cmd.Flags().StringVar(&movementsDir, "movements-dir", "", "directory of extra movement preset TOML files")

	return cmd
}

// printMovementTable renders the movement registry as a table.
func printMovementTable(reg *movement.Registry) {
	fmt.Println(StyleTitle.Render("Movements"))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleHighlight.Bold(true).Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		}).
		Headers("NAME", "MOVEMENT", "DIAL", "CENTER", "FEATURES")

	for _, p := range reg.All() {
		t.Row(p.Name, p.DisplayName,
			fmt.Sprintf("%.1fmm", p.DialDiameterMM),
			fmt.Sprintf("%.2fmm", p.CenterHoleMM),
			featureSummary(p))
	}
	fmt.Println(t.Render())
}

// featureSummary lists the optional features a movement preset carries.
func featureSummary(p movement.Preset) string {
	var parts []string
	if p.DateWindow != nil {
		parts = append(parts, "date")
	}
	if p.Subdial != nil {
		parts = append(parts, "subdial")
	}
	if len(p.FeetMM) > 0 {
		parts = append(parts, fmt.Sprintf("%d feet", len(p.FeetMM)))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// printPatternPresets lists the pattern layer stack presets.
func printPatternPresets() {
	fmt.Println(StyleTitle.Render("Pattern stacks"))
	descriptions := map[string]string{
		pattern.PresetRosetteStack: "layered rosettes with jittered lobes and decaying amplitude",
		pattern.PresetBreguet:      "fine rings, structural rosette, dense sunburst, fine rosette",
		pattern.PresetModern:       "sunburst shimmer under crosshatch, rosette structure on top",
		pattern.PresetPocketwatch:  "broad rosettes in the old engine-turned style",
	}
	for _, name := range []string{
		pattern.PresetRosetteStack,
		pattern.PresetBreguet,
		pattern.PresetModern,
		pattern.PresetPocketwatch,
	} {
		fmt.Println("  " + StyleHighlight.Render(name) + "  " + StyleDim.Render(descriptions[name]))
	}
}

// printMovementDetail prints the full datum sheet for one movement.
func printMovementDetail(p movement.Preset) {
	fmt.Println(StyleTitle.Render(p.DisplayName) + " " + StyleDim.Render("("+p.Name+")"))
	printDetail("dial diameter  %.2fmm", p.DialDiameterMM)
	printDetail("center hole    %.2fmm", p.CenterHoleMM)
	if len(p.HandHolesMM) > 0 {
		sizes := make([]string, len(p.HandHolesMM))
		for i, d := range p.HandHolesMM {
			sizes[i] = fmt.Sprintf("%.2fmm", d)
		}
		printDetail("hand holes     %s", strings.Join(sizes, " / "))
	}
	if dw := p.DateWindow; dw != nil {
		printDetail("date window    %.1fx%.1fmm at r=%.1fmm, %.0f°", dw.WidthMM, dw.HeightMM, dw.RadiusMM, dw.AngleDeg)
	}
	if sd := p.Subdial; sd != nil {
		printDetail("subdial        r=%.1fmm at (%.2f, %.2f)", sd.RadiusMM, sd.OffsetXMM, sd.OffsetYMM)
	}
	for _, f := range p.FeetMM {
		printDetail("foot           (%.3f, %.3f) ø%.1fmm", f.XMM, f.YMM, p.FootDiameterMM)
	}
	fmt.Println()
	fmt.Println(StyleDim.Render("generate:") + " " + StyleHighlight.Render(appName+" template "+p.Name))
}
