package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/session-patterns/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	projectsDir string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "session-patterns",
	Short: "Classify recorded assistant sessions by problem-solving approach",
	Long: `A CLI tool to classify recorded assistant/tool conversation sessions by
the problem-solving strategy they exhibit and aggregate the results into
corpus-level statistics.

Seven heuristic detectors scan each session transcript for behavioral
signals (delegation, iteration, exploration, implementation, error
recovery, planning balance, validation); a classifier combines them into
approach labels and an aggregator produces corpus statistics.

Quick Start:
  session-patterns stats                 # Print corpus summary
  session-patterns sessions              # List classified sessions
  session-patterns analyze --format csv  # Export the full report`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&projectsDir, "projects", "", "Projects root to scan for sessions (default ~/.amplifier/projects)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadRecords runs the full pipeline: discover, load, analyze
func loadRecords() ([]*internal.SessionRecord, error) {
	dir := projectsDir
	if dir == "" {
		var err error
		dir, err = internal.DefaultProjectsDir()
		if err != nil {
			return nil, err
		}
	}

	loader := internal.NewLoader(dir)
	raws, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	return internal.AnalyzeSessions(raws), nil
}
