package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "umx",
	Short: "UMX - Deterministic project doc-pack pipeline",
	Long: `UMX turns a structured requirements record into a routed,
multi-document artifact package for software project planning:
requirement docs, architecture notes, and an Epic -> Feature/Story ->
Spec + Milestone execution plan.

The pipeline decides what to produce and where; the content prose is
filled in by your AI assistant or template renderer afterwards.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
