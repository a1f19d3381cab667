package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/session-patterns/internal"
	"github.com/spf13/cobra"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	pctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print corpus-level summary statistics",
	Long: `Analyze every session under the projects root and print the corpus
summary: approach frequencies, pattern adoption, averages, and the
per-day session time series.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords()
		if err != nil {
			return err
		}
		summary := internal.Aggregate(records)

		fmt.Println(sectionStyle.Render("Summary Statistics"))
		fmt.Println()
		fmt.Printf("%s %s\n", labelStyle.Render("Total sessions:"), valueStyle.Render(fmt.Sprintf("%d", summary.TotalSessions)))
		fmt.Printf("%s %s\n", labelStyle.Render("Average turns:"), valueStyle.Render(fmt.Sprintf("%.2f", summary.AverageTurns)))
		fmt.Printf("%s %s\n", labelStyle.Render("Average duration:"), valueStyle.Render(fmt.Sprintf("%.1f min", summary.AverageDurationMinutes)))

		if summary.TotalSessions == 0 {
			fmt.Println()
			fmt.Println(labelStyle.Render("No valid sessions found."))
			return nil
		}

		fmt.Println()
		fmt.Println(sectionStyle.Render("Approach Frequencies"))
		fmt.Println()
		printCounts(summary, summary.ApproachFrequencies)

		fmt.Println()
		fmt.Println(sectionStyle.Render("Pattern Adoption"))
		fmt.Println()
		p := summary.PatternStatistics
		printCounts(summary, map[string]int{
			"Iterative":      p.IterativeSessions,
			"Exploratory":    p.ExploratorySessions,
			"Implementation": p.ImplementationSessions,
			"Delegated":      p.DelegatedSessions,
			"Validated":      p.ValidatedSessions,
			"Error recovery": p.ErrorRecoverySessions,
		})

		fmt.Println()
		fmt.Println(sectionStyle.Render("Sessions by Date"))
		fmt.Println()
		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
		for _, date := range summary.Dates() {
			_, _ = fmt.Fprintf(w, "%s\t%s\t\n", labelStyle.Render(date), valueStyle.Render(fmt.Sprintf("%d", summary.SessionsByDate[date])))
		}
		_ = w.Flush()

		return nil
	},
}

// printCounts prints labeled counts with percentages, highest first
func printCounts(summary internal.CorpusSummary, counts map[string]int) {
	type entry struct {
		label string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, entry{label, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].label < entries[j].label
	})

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t\n",
			labelStyle.Render(e.label),
			valueStyle.Render(fmt.Sprintf("%d", e.count)),
			pctStyle.Render(fmt.Sprintf("%.1f%%", summary.Percentage(e.count))))
	}
	_ = w.Flush()
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
