package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	loads "Strut/internal/calc/loads"
)

var (
	loadsMethod string
	loadsDead   float64
	loadsLive   float64
	loadsWind   float64
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Combine service loads into a design axial load",
	Long: `Combine permanent and variable axial loads into the design load
the column check takes as its applied load.

Methods: ASD (unfactored), LRFD, EC.

Examples:
  strut loads --dead 10e3 --live 15e3 --method LRFD`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64Var(&loadsDead, "dead", 0, "Permanent axial load (N) [required]")
	loadsCmd.Flags().Float64Var(&loadsLive, "live", 0, "Variable axial load (N)")
	loadsCmd.Flags().Float64Var(&loadsWind, "wind", 0, "Wind axial load (N)")
	loadsCmd.Flags().StringVar(&loadsMethod, "method", "", "Combination method: ASD, LRFD or EC (default ASD)")

	loadsCmd.MarkFlagRequired("dead")
}

func runLoads(cmd *cobra.Command, args []string) {
	res, err := loads.Calculate(loads.Input{
		Method: loads.Method(loadsMethod),
		DeadN:  loadsDead,
		LiveN:  loadsLive,
		WindN:  loadsWind,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Combination:\t%s\n", res.ComboName)
	fmt.Fprintf(w, "  Design axial load:\t%.4g N\n", res.DesignLoadN)
	w.Flush()
	fmt.Println()
}
