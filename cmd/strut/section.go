package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	section "Strut/internal/calc/section"
)

var (
	sectionShape    string
	sectionWidth    float64
	sectionHeight   float64
	sectionDiameter float64
	sectionOuter    float64
	sectionInner    float64
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Compute area, inertia and radius of gyration of a section",
	Long: `Compute the gross properties a buckling check needs for common
cross-sections: area, second moments about both principal axes
and the least radius of gyration.

Supported shapes: rect, circle, pipe.

Examples:
  # 100x200 mm rectangle
  strut section --shape rect --width 0.1 --height 0.2

  # 50 mm round bar
  strut section --shape circle --diameter 0.05

  # 60x50 mm tube
  strut section --shape pipe --outer 0.06 --inner 0.05`,
	Run: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionShape, "shape", "s", "", "Section shape: rect, circle or pipe [required]")
	sectionCmd.Flags().Float64VarP(&sectionWidth, "width", "b", 0, "Rectangle width (m)")
	sectionCmd.Flags().Float64Var(&sectionHeight, "height", 0, "Rectangle height (m)")
	sectionCmd.Flags().Float64VarP(&sectionDiameter, "diameter", "d", 0, "Round bar diameter (m)")
	sectionCmd.Flags().Float64Var(&sectionOuter, "outer", 0, "Tube outer diameter (m)")
	sectionCmd.Flags().Float64Var(&sectionInner, "inner", 0, "Tube inner diameter (m)")

	sectionCmd.MarkFlagRequired("shape")
}

func runSection(cmd *cobra.Command, args []string) {
	res, err := section.Calculate(section.Input{
		Shape:          sectionShape,
		WidthM:         sectionWidth,
		HeightM:        sectionHeight,
		DiameterM:      sectionDiameter,
		OuterDiameterM: sectionOuter,
		InnerDiameterM: sectionInner,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.6g m²\n", res.AreaM2)
	fmt.Fprintf(w, "  Least moment of inertia (Imin):\t%.6g m⁴\n", res.InertiaMinM4)
	fmt.Fprintf(w, "  Largest moment of inertia (Imax):\t%.6g m⁴\n", res.InertiaMaxM4)
	fmt.Fprintf(w, "  Least radius of gyration (k):\t%.6g m\n", res.GyrationMinM)
	w.Flush()
	fmt.Println()
	fmt.Println("  " + res.Notes)
	fmt.Println()
}
