package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	column "Strut/internal/calc/column"
)

var (
	// Check inputs
	checkLength    float64
	checkEndFactor float64
	checkArea      float64
	checkInertia   float64
	checkE         float64
	checkSy        float64
	checkLoad      float64
	checkMaterial  string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an axially loaded column against buckling",
	Long: `Check a column of given geometry and material against buckling
under a centric axial load.

The slenderness ratio L/k decides which formula governs:
  - above the transition slenderness the Euler hyperbola applies
  - below it the Johnson parabola applies

The safety factor is the ratio of the critical load to the
applied load.

Examples:
  # 2 m pinned-pinned steel column, 20 cm2 section
  strut check --length 2 --area 0.002 --inertia 8e-6 --load 100e3

  # Fixed-fixed aluminium column with explicit properties
  strut check -l 3 -a 0.004 -i 2e-6 -p 50e3 -c 4 --e 68.9e9 --sy 276e6`,
	Run: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Geometry flags
	checkCmd.Flags().Float64VarP(&checkLength, "length", "l", 0, "Column length (m) [required]")
	checkCmd.Flags().Float64VarP(&checkArea, "area", "a", 0, "Cross-section area (m2) [required]")
	checkCmd.Flags().Float64VarP(&checkInertia, "inertia", "i", 0, "Least moment of inertia (m4) [required]")
	checkCmd.Flags().Float64VarP(&checkEndFactor, "end-factor", "c", 0, "End-condition constant C (default pinned-pinned)")

	// Material flags
	checkCmd.Flags().StringVarP(&checkMaterial, "material", "m", "", "Material grade preset (default steel)")
	checkCmd.Flags().Float64Var(&checkE, "e", 0, "Modulus of elasticity E (Pa)")
	checkCmd.Flags().Float64Var(&checkSy, "sy", 0, "Yield strength Sy (Pa)")

	// Load flag
	checkCmd.Flags().Float64VarP(&checkLoad, "load", "p", 0, "Axial load (N) [required]")

	// Mark required flags
	checkCmd.MarkFlagRequired("length")
	checkCmd.MarkFlagRequired("area")
	checkCmd.MarkFlagRequired("inertia")
	checkCmd.MarkFlagRequired("load")
}

func runCheck(cmd *cobra.Command, args []string) {
	res, err := column.Calculate(column.Input{
		LengthM:   checkLength,
		EndFactor: checkEndFactor,
		AreaM2:    checkArea,
		InertiaM4: checkInertia,
		E_Pa:      checkE,
		SyPa:      checkSy,
		LoadN:     checkLoad,
		Material:  checkMaterial,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     AXIALLY LOADED COLUMN - BUCKLING CHECK")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length (L):\t%.3f m\n", checkLength)
	fmt.Fprintf(w, "  Area (A):\t%.6g m²\n", checkArea)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.6g m⁴\n", checkInertia)
	fmt.Fprintf(w, "  Axial load (P):\t%.4g N\n", checkLoad)
	w.Flush()
	fmt.Println()

	// Slenderness
	fmt.Println("SLENDERNESS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Radius of gyration (k):\t%.6g m\n", res.GyrationM)
	fmt.Fprintf(w, "  Slenderness ratio (L/k):\t%.2f\n", res.Slenderness)
	fmt.Fprintf(w, "  Transition slenderness (L/k)₁:\t%.2f\n", res.TransitionSlnd)
	w.Flush()
	fmt.Println()

	// Results
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Governing formula:\t%s\n", res.Regime)
	fmt.Fprintf(w, "  Unit critical load (Pcr/A):\t%.4g Pa\n", res.UnitCriticalPa)
	fmt.Fprintf(w, "  Critical load (Pcr):\t%.4g N\n", res.CriticalLoadN)
	fmt.Fprintf(w, "  Safety factor (Pcr/P):\t%.3f", res.SafetyFactor)
	if res.OK {
		fmt.Fprintf(w, " ✓")
	} else {
		fmt.Fprintf(w, " ⚠ (unsafe)")
	}
	fmt.Fprintln(w)
	w.Flush()
	fmt.Println()
	fmt.Println("  " + res.Notes)
	fmt.Println()
}
