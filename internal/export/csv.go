package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iksnae/session-patterns/internal"
)

// CSVExporter exports session records in spreadsheet-friendly CSV format
type CSVExporter struct{}

// csvHeader is the fixed column layout consumed by the dashboard tooling
var csvHeader = []string{
	"Session ID",
	"Parent Session",
	"Created",
	"Name",
	"Project",
	"Bundle",
	"Model",
	"Turn Count",
	"Message Count",
	"Duration (min)",
	"Primary Approach",
	"All Approaches",
	"Is Iterative",
	"Iteration Count",
	"Is Exploratory",
	"Exploration Count",
	"Has Delegation",
	"Delegation Count",
	"File Operations",
	"Errors",
	"Recovery Rate",
	"Validation Count",
	"Planning Ratio",
	"Success Indicators",
}

// Export writes one row per session record
func (e *CSVExporter) Export(report *internal.Report, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, s := range report.Sessions {
		p := s.Patterns
		row := []string{
			s.SessionID,
			s.ParentSessionID,
			s.Created,
			s.Name,
			s.Project,
			s.Bundle,
			s.Model,
			strconv.Itoa(s.TurnCount),
			strconv.Itoa(s.MessageCount),
			formatFloat(s.DurationMinutes),
			s.PrimaryApproach,
			strings.Join(s.Approaches, ", "),
			strconv.FormatBool(p.Iteration.IsIterative),
			strconv.Itoa(p.Iteration.IterationCount),
			strconv.FormatBool(p.Exploration.IsExploratory),
			strconv.Itoa(p.Exploration.ExplorationToolCount),
			strconv.FormatBool(p.Delegation.HasDelegation),
			strconv.Itoa(p.Delegation.DelegationCount),
			strconv.Itoa(p.Implementation.TotalFileOps),
			strconv.Itoa(p.ErrorRecovery.ErrorsEncountered),
			formatFloat(p.ErrorRecovery.RecoveryRate),
			strconv.Itoa(p.Validation.TotalValidation),
			fmt.Sprintf("%.2f", p.PlanningExecution.PlanningRatio),
			strings.Join(s.SuccessIndicators, ", "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Extension returns the file extension for this format
func (e *CSVExporter) Extension() string {
	return "csv"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
