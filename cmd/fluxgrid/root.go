// Root command for the fluxgrid CLI.
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Report colors, shared by the flux, match and runs commands.
var (
	successColor = color.New(color.FgGreen, color.Bold)
	failColor    = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

var rootCmd = &cobra.Command{
	Use:   "fluxgrid",
	Short: "fluxgrid integrates flux through N-dimensional border enclosures",
	Long: `fluxgrid works with binary border arrays: it decides whether a border
encloses an interior, integrates intensity distributions over that
interior, and tunes distribution parameters until a target enclosure
reproduces a reference flux.`,
}

func init() {
	rootCmd.AddCommand(fluxCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)
}
