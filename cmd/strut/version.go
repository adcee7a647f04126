package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"Strut/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strut",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("strut v%s\n", version.Version)
		fmt.Println("Axially Loaded Column Designer")
		fmt.Printf("build: %s, commit: %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
