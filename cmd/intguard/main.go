package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"intguard/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "intguard",
	Short: "Checked integer arithmetic toolkit",
	Long:  `intguard evaluates integer operations with explicit overflow, range, domain, and shift-misuse checking`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(vectorsCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
