package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	approachStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135"))
)

// sessionsCmd represents the sessions command
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List classified sessions",
	Long:  `Analyze every session under the projects root and list each one with its primary approach.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords()
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println(headerStyle.Render("No sessions found"))
			return nil
		}

		header := headerStyle.Render(fmt.Sprintf("Found %d session(s)", len(records)))
		fmt.Println(header)
		fmt.Println()

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

		_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Name")+"\t"+titleStyle.Render("Primary Approach")+"\t"+titleStyle.Render("Turns")+"\t"+titleStyle.Render("Duration")+"\t"+titleStyle.Render("Created")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("-", 110))

		for _, record := range records {
			name := record.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}

			shortID := record.SessionID
			if len(shortID) > 8 {
				shortID = shortID[:8]
			}

			duration := "-"
			if record.DurationMinutes > 0 {
				duration = fmt.Sprintf("%.1f min", record.DurationMinutes)
			}

			created := "-"
			if record.Created != "" {
				created = record.Created
				if len(created) > 10 {
					created = created[:10]
				}
			}

			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
				idStyle.Render(shortID),
				name,
				approachStyle.Render(record.PrimaryApproach),
				countStyle.Render(strconv.Itoa(record.TurnCount)),
				dateStyle.Render(duration),
				dateStyle.Render(created))
		}

		_ = w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}
