package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/session-patterns/internal"
	"github.com/iksnae/session-patterns/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze sessions and export the report",
	Long: `Analyze every session under the projects root and export the full
report (per-session records plus corpus statistics) to a file.

Supported formats: json, csv, yaml, md, sqlite.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords()
		if err != nil {
			return err
		}
		report := internal.BuildReport(records)

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		if format == "sqlite" {
			path := filepath.Join(outputDir, "session_analysis.db")
			if err := export.ExportSQLite(report, path); err != nil {
				return err
			}
			fmt.Printf("Exported %d session(s) to %s\n", len(records), path)
			return nil
		}

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		path := filepath.Join(outputDir, "session_analysis."+exporter.Extension())
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := exporter.Export(report, f); err != nil {
			return &internal.ExportError{Format: format, Path: path, Err: err}
		}

		fmt.Printf("Exported %d session(s) to %s\n", len(records), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&format, "format", "f", "json", "Export format (json, csv, yaml, md, sqlite)")
	analyzeCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Output directory")
}
