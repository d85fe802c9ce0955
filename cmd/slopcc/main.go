package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"slopcc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "slopcc",
	Short: "A small C compiler front end",
	Long:  `slopcc tokenizes C translation units and reports diagnostics`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().String("config", "", "path to slopcc.toml (default: ./slopcc.toml if present)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics per file (0 = config default)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
