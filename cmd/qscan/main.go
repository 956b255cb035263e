package main

import (
	"fmt"
	"os"

	"github.com/ludo-technologies/qscan/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version = version.Version
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qscan",
		Short: "qscan - JavaScript/TypeScript quality meter",
		Long: `qscan measures code quality of JavaScript and TypeScript projects by
orchestrating external measurement tools (lizard, scc, cloc, jscpd,
ts-prune) with builtin fallbacks, and merges their results into a
single report.`,
		Version: Version,
	}

	// Add subcommands
	rootCmd.AddCommand(measureCmd())
	rootCmd.AddCommand(toolsCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("qscan version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
