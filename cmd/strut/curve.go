package main

import (
	"fmt"

	"github.com/spf13/cobra"

	column "Strut/internal/calc/column"
	curve "Strut/internal/calc/curve"
	"Strut/internal/diagram"
)

var (
	curveMaterial  string
	curveE         float64
	curveSy        float64
	curveEndFactor float64
	curveLength    float64
	curveArea      float64
	curveInertia   float64
	curveLoad      float64
	curveOutput    string
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Render the buckling design chart",
	Long: `Render the column design chart for a material and end condition:
the Johnson parabola up to the transition slenderness and the
Euler hyperbola beyond it.

When the full column geometry and load are given, the checked
column is drawn on the chart as a point.

The output format follows the file extension (.png, .svg, .pdf).

Examples:
  # Chart for generic steel, pinned-pinned
  strut curve --output steel.png

  # Chart with the checked column marked
  strut curve -l 2 -a 0.002 -i 8e-6 -p 100e3 -o column.png`,
	Run: runCurve,
}

func init() {
	rootCmd.AddCommand(curveCmd)

	curveCmd.Flags().StringVarP(&curveMaterial, "material", "m", "", "Material grade preset (default steel)")
	curveCmd.Flags().Float64Var(&curveE, "e", 0, "Modulus of elasticity E (Pa)")
	curveCmd.Flags().Float64Var(&curveSy, "sy", 0, "Yield strength Sy (Pa)")
	curveCmd.Flags().Float64VarP(&curveEndFactor, "end-factor", "c", 0, "End-condition constant C (default pinned-pinned)")
	curveCmd.Flags().Float64VarP(&curveLength, "length", "l", 0, "Column length (m), for the design point")
	curveCmd.Flags().Float64VarP(&curveArea, "area", "a", 0, "Cross-section area (m2), for the design point")
	curveCmd.Flags().Float64VarP(&curveInertia, "inertia", "i", 0, "Least moment of inertia (m4), for the design point")
	curveCmd.Flags().Float64VarP(&curveLoad, "load", "p", 0, "Axial load (N), for the design point")
	curveCmd.Flags().StringVarP(&curveOutput, "output", "o", "buckling_curve.png", "Output image file")
}

func runCurve(cmd *cobra.Command, args []string) {
	data, err := curve.Build(column.Input{
		LengthM:   curveLength,
		EndFactor: curveEndFactor,
		AreaM2:    curveArea,
		InertiaM4: curveInertia,
		E_Pa:      curveE,
		SyPa:      curveSy,
		LoadN:     curveLoad,
		Material:  curveMaterial,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := diagram.ExportCurve(data, curveOutput); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Design chart written to %s\n", curveOutput)
}
