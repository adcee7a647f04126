package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	recommend "Strut/internal/calc/premium/recommend"
)

var (
	areaLoad     float64
	areaStress   float64
	areaMaterial string
)

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Size a section for pure compression",
	Long: `Compute the cross-section area required to carry an axial load at
an allowable stress, and recommend round and square sections of
that area.

The sizing ignores buckling; run 'strut check' on the suggested
section afterwards.

Examples:
  # Required area for 100 kN at the steel yield strength
  strut area --load 100e3

  # Explicit allowable stress
  strut area --load 100e3 --stress 125e6`,
	Run: runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)

	areaCmd.Flags().Float64VarP(&areaLoad, "load", "p", 0, "Axial load (N) [required]")
	areaCmd.Flags().Float64Var(&areaStress, "stress", 0, "Allowable stress (Pa), default the material yield strength")
	areaCmd.Flags().StringVarP(&areaMaterial, "material", "m", "", "Material grade preset (default steel)")

	areaCmd.MarkFlagRequired("load")
}

func runArea(cmd *cobra.Command, args []string) {
	res, err := recommend.Section(recommend.SectionRecommendInput{
		Material: areaMaterial,
		SallowPa: areaStress,
		LoadN:    areaLoad,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COMPRESSION SIZING")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Required area (A = P/S):\t%.6g m²\n", res.RequiredAreaM2)
	fmt.Fprintf(w, "  Round bar diameter:\t%.4g m\n", res.RoundDiameterM)
	fmt.Fprintf(w, "  Square bar side:\t%.4g m\n", res.SquareSideM)
	w.Flush()
	fmt.Println()
	fmt.Println("  " + res.Notes)
	fmt.Println()
}
