package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "treelang",
	Short: "Treelang - indentation-structured text parser",
	Long: `Treelang parses indentation-structured text into trees of statements and directives.
Lines nest by indentation depth, a top-level colon makes a line a directive, and
line content is scanned into words, numbers, and delimiter groups.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
