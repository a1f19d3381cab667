package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iksnae/session-patterns/internal"
)

// MarkdownExporter exports reports as a human-readable Markdown summary
type MarkdownExporter struct{}

// Export writes the corpus summary followed by a per-session table
func (e *MarkdownExporter) Export(report *internal.Report, w io.Writer) error {
	summary := report.Summary

	_, _ = fmt.Fprintf(w, "# Session Analysis\n\n")
	_, _ = fmt.Fprintf(w, "**Generated:** %s  \n", report.GeneratedAt)
	_, _ = fmt.Fprintf(w, "**Total sessions:** %d  \n", summary.TotalSessions)
	_, _ = fmt.Fprintf(w, "**Average turns:** %.2f  \n", summary.AverageTurns)
	_, _ = fmt.Fprintf(w, "**Average duration:** %.2f min\n\n", summary.AverageDurationMinutes)

	_, _ = fmt.Fprintf(w, "## Approach Frequencies\n\n")
	_, _ = fmt.Fprintf(w, "| Approach | Sessions | %% |\n")
	_, _ = fmt.Fprintf(w, "|---|---|---|\n")
	for _, approach := range sortedKeys(summary.ApproachFrequencies) {
		count := summary.ApproachFrequencies[approach]
		_, _ = fmt.Fprintf(w, "| %s | %d | %.1f |\n", approach, count, summary.Percentage(count))
	}

	_, _ = fmt.Fprintf(w, "\n## Sessions by Date\n\n")
	_, _ = fmt.Fprintf(w, "| Date | Sessions |\n")
	_, _ = fmt.Fprintf(w, "|---|---|\n")
	for _, date := range summary.Dates() {
		_, _ = fmt.Fprintf(w, "| %s | %d |\n", date, summary.SessionsByDate[date])
	}

	_, _ = fmt.Fprintf(w, "\n## Sessions\n\n")
	_, _ = fmt.Fprintf(w, "| Session | Name | Primary Approach | Turns | Duration (min) |\n")
	_, _ = fmt.Fprintf(w, "|---|---|---|---|---|\n")
	for _, s := range report.Sessions {
		name := strings.ReplaceAll(s.Name, "|", "\\|")
		_, _ = fmt.Fprintf(w, "| %s | %s | %s | %d | %.2f |\n",
			s.SessionID, name, s.PrimaryApproach, s.TurnCount, s.DurationMinutes)
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}

// sortedKeys returns map keys in ascending order for stable output
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
