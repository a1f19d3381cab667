package internal

import (
	"math"
	"strings"
	"time"
)

// Success indicator labels (informational only, never affect classification)
const (
	IndicatorFilesModified = "Files Modified"
	IndicatorGoodRecovery  = "Good Error Recovery"
	IndicatorValidated     = "Validated"
	IndicatorSubstantial   = "Substantial Work"
)

const maxDescriptionLen = 200

// timestampLayouts cover the ISO-8601 shapes seen in transcripts, after
// any "+00:00" offset has been stripped
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseTimestamp parses an ISO-8601 timestamp with the literal "+00:00"
// suffix removed before parsing
func parseTimestamp(ts string) (time.Time, bool) {
	ts = strings.ReplaceAll(ts, "+00:00", "")
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SessionDuration returns the span between the first and last message
// timestamps in minutes, rounded to two decimals. Missing or unparseable
// timestamps yield 0 rather than an error.
func SessionDuration(messages []Message) float64 {
	if len(messages) < 2 {
		return 0
	}

	firstTS := messages[0].Timestamp
	lastTS := messages[len(messages)-1].Timestamp
	if firstTS == "" || lastTS == "" {
		return 0
	}

	first, ok := parseTimestamp(firstTS)
	if !ok {
		return 0
	}
	last, ok := parseTimestamp(lastTS)
	if !ok {
		return 0
	}

	return round2(last.Sub(first).Minutes())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarize runs the detectors and classifier over one raw session and
// assembles the final session record. It returns nil when metadata or the
// transcript is absent: the session is filtered out, not failed.
func Summarize(raw *RawSession) *SessionRecord {
	if raw == nil || raw.Meta == nil || len(raw.Messages) == 0 {
		return nil
	}

	patterns := DetectPatterns(raw.Messages)
	approaches := Classify(patterns)
	duration := SessionDuration(raw.Messages)

	var indicators []string
	if patterns.Implementation.TotalFileOps > 0 {
		indicators = append(indicators, IndicatorFilesModified)
	}
	if patterns.ErrorRecovery.RecoveryRate > 0.5 {
		indicators = append(indicators, IndicatorGoodRecovery)
	}
	if patterns.Validation.HasValidation {
		indicators = append(indicators, IndicatorValidated)
	}
	if raw.Meta.TurnCount > 5 {
		indicators = append(indicators, IndicatorSubstantial)
	}

	name := raw.Meta.Name
	if name == "" {
		name = "Untitled"
	}

	description := raw.Meta.Description
	if len(description) > maxDescriptionLen {
		description = description[:maxDescriptionLen]
	}

	return &SessionRecord{
		SessionID:         raw.Meta.SessionID,
		ParentSessionID:   parentSessionID(raw.DirName),
		Created:           raw.Meta.Created,
		Name:              name,
		Description:       description,
		Bundle:            raw.Meta.Bundle,
		Model:             raw.Meta.Model,
		TurnCount:         raw.Meta.TurnCount,
		MessageCount:      len(raw.Messages),
		DurationMinutes:   duration,
		Approaches:        approaches,
		PrimaryApproach:   approaches[0],
		Patterns:          patterns,
		SuccessIndicators: indicators,
		Project:           raw.Project,
	}
}

// parentSessionID derives the parent session from the directory name:
// the substring before the first "-", or "" when there is no separator
func parentSessionID(dirName string) string {
	if i := strings.Index(dirName, "-"); i >= 0 {
		return dirName[:i]
	}
	return ""
}

// AnalyzeSessions summarizes every raw session, dropping the invalid ones
func AnalyzeSessions(raws []*RawSession) []*SessionRecord {
	records := make([]*SessionRecord, 0, len(raws))
	for _, raw := range raws {
		if record := Summarize(raw); record != nil {
			records = append(records, record)
		}
	}
	return records
}

// BuildReport assembles the exportable report from analyzed records
func BuildReport(records []*SessionRecord) *Report {
	return &Report{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Summary:     Aggregate(records),
		Sessions:    records,
	}
}
