package export

import (
	"database/sql"
	"strings"

	"github.com/iksnae/session-patterns/internal"
	_ "modernc.org/sqlite"
)

// SQLite schema for the exported report. The database is a write-once
// report target, recreated on every run, not a cache.
const sqliteSchema = `
DROP TABLE IF EXISTS session_records;
DROP TABLE IF EXISTS approach_frequencies;
DROP TABLE IF EXISTS sessions_by_date;

CREATE TABLE session_records (
	session_id TEXT PRIMARY KEY,
	parent_session_id TEXT,
	created TEXT,
	name TEXT,
	project TEXT,
	bundle TEXT,
	model TEXT,
	turn_count INTEGER,
	message_count INTEGER,
	duration_minutes REAL,
	primary_approach TEXT,
	approaches TEXT,
	is_iterative INTEGER,
	iteration_count INTEGER,
	is_exploratory INTEGER,
	exploration_tool_count INTEGER,
	has_delegation INTEGER,
	delegation_count INTEGER,
	total_file_ops INTEGER,
	errors_encountered INTEGER,
	recovery_rate REAL,
	total_validation INTEGER,
	planning_ratio REAL,
	success_indicators TEXT
);

CREATE TABLE approach_frequencies (
	approach TEXT PRIMARY KEY,
	session_count INTEGER,
	primary_count INTEGER
);

CREATE TABLE sessions_by_date (
	date TEXT PRIMARY KEY,
	session_count INTEGER
);
`

// ExportSQLite writes the report into a queryable SQLite database at path
func ExportSQLite(report *internal.Report, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &internal.ExportError{Format: "sqlite", Path: path, Err: err}
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return &internal.ExportError{Format: "sqlite", Path: path, Err: err}
	}

	tx, err := db.Begin()
	if err != nil {
		return &internal.ExportError{Format: "sqlite", Path: path, Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	insertRecord := `INSERT INTO session_records VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, s := range report.Sessions {
		p := s.Patterns
		_, err := tx.Exec(insertRecord,
			s.SessionID,
			s.ParentSessionID,
			s.Created,
			s.Name,
			s.Project,
			s.Bundle,
			s.Model,
			s.TurnCount,
			s.MessageCount,
			s.DurationMinutes,
			s.PrimaryApproach,
			strings.Join(s.Approaches, ", "),
			boolToInt(p.Iteration.IsIterative),
			p.Iteration.IterationCount,
			boolToInt(p.Exploration.IsExploratory),
			p.Exploration.ExplorationToolCount,
			boolToInt(p.Delegation.HasDelegation),
			p.Delegation.DelegationCount,
			p.Implementation.TotalFileOps,
			p.ErrorRecovery.ErrorsEncountered,
			p.ErrorRecovery.RecoveryRate,
			p.Validation.TotalValidation,
			p.PlanningExecution.PlanningRatio,
			strings.Join(s.SuccessIndicators, ", "),
		)
		if err != nil {
			return &internal.ExportError{Format: "sqlite", Path: path, Err: err}
		}
	}

	summary := report.Summary
	for approach, count := range summary.ApproachFrequencies {
		_, err := tx.Exec(
			"INSERT INTO approach_frequencies VALUES (?, ?, ?)",
			approach, count, summary.PrimaryApproaches[approach],
		)
		if err != nil {
			return &internal.ExportError{Format: "sqlite", Path: path, Err: err}
		}
	}

	for _, date := range summary.Dates() {
		_, err := tx.Exec(
			"INSERT INTO sessions_by_date VALUES (?, ?)",
			date, summary.SessionsByDate[date],
		)
		if err != nil {
			return &internal.ExportError{Format: "sqlite", Path: path, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &internal.ExportError{Format: "sqlite", Path: path, Err: err}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
