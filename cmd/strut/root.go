package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"Strut/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "strut",
	Short: "Column Buckling & Compression Member Design Tool",
	Long: `strut - Axially Loaded Column Designer

A CLI tool for checking and sizing axially loaded compression
members against elastic (Euler) and inelastic (Johnson) buckling.

This tool helps mechanical engineers perform:
  - Buckling safety checks with Euler / Johnson dispatch
  - Section property calculation (rectangle, round bar, tube)
  - Pure-compression sizing and section recommendation
  - Service load combination
  - Buckling design chart rendering (PNG/SVG/PDF)

All calculations use SI units: metres, newtons, pascals.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   strut v%-49s║\n", version.Version)
		fmt.Println("  ║   Axially Loaded Column Designer                          ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for checking and sizing axially loaded compression")
		fmt.Println("  members against elastic and inelastic buckling.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Buckling safety check with Euler / Johnson dispatch")
		fmt.Println("    • Section properties for rectangles, round bars and tubes")
		fmt.Println("    • Pure-compression sizing and section recommendation")
		fmt.Println("    • Buckling design chart export")
		fmt.Println()
		fmt.Println("  Use 'strut --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
