package internal

import "sort"

// PatternStatistics counts sessions per detector gate, independent of the
// classifier's priority ordering: a session counts toward every gate it
// tripped, even when the label list suppressed one.
type PatternStatistics struct {
	IterativeSessions      int `json:"iterative_sessions" yaml:"iterative_sessions"`
	ExploratorySessions    int `json:"exploratory_sessions" yaml:"exploratory_sessions"`
	ImplementationSessions int `json:"implementation_sessions" yaml:"implementation_sessions"`
	DelegatedSessions      int `json:"delegated_sessions" yaml:"delegated_sessions"`
	ValidatedSessions      int `json:"validated_sessions" yaml:"validated_sessions"`
	ErrorRecoverySessions  int `json:"error_recovery_sessions" yaml:"error_recovery_sessions"`
}

// CorpusSummary holds the aggregate statistics over all session records
type CorpusSummary struct {
	TotalSessions          int               `json:"total_sessions" yaml:"total_sessions"`
	ApproachFrequencies    map[string]int    `json:"approach_frequencies" yaml:"approach_frequencies"`
	PrimaryApproaches      map[string]int    `json:"primary_approaches" yaml:"primary_approaches"`
	AverageTurns           float64           `json:"average_turns" yaml:"average_turns"`
	AverageDurationMinutes float64           `json:"average_duration_minutes" yaml:"average_duration_minutes"`
	PatternStatistics      PatternStatistics `json:"pattern_statistics" yaml:"pattern_statistics"`
	SessionsByDate         map[string]int    `json:"sessions_by_date" yaml:"sessions_by_date"`
}

// Aggregate reduces the full set of session records into corpus-level
// statistics. The reduction is order-independent: every count is a plain
// sum and date ordering is recovered via Dates().
func Aggregate(records []*SessionRecord) CorpusSummary {
	summary := CorpusSummary{
		TotalSessions:       len(records),
		ApproachFrequencies: make(map[string]int),
		PrimaryApproaches:   make(map[string]int),
		SessionsByDate:      make(map[string]int),
	}

	totalTurns := 0
	totalDuration := 0.0

	for _, record := range records {
		// A session contributes to every approach bucket it was labeled with
		for _, approach := range record.Approaches {
			summary.ApproachFrequencies[approach]++
		}
		summary.PrimaryApproaches[record.PrimaryApproach]++

		totalTurns += record.TurnCount
		totalDuration += record.DurationMinutes

		p := record.Patterns
		if p.Iteration.IsIterative {
			summary.PatternStatistics.IterativeSessions++
		}
		if p.Exploration.IsExploratory {
			summary.PatternStatistics.ExploratorySessions++
		}
		if p.Implementation.IsImplementation {
			summary.PatternStatistics.ImplementationSessions++
		}
		if p.Delegation.HasDelegation {
			summary.PatternStatistics.DelegatedSessions++
		}
		if p.Validation.HasValidation {
			summary.PatternStatistics.ValidatedSessions++
		}
		if p.ErrorRecovery.HasErrorRecovery {
			summary.PatternStatistics.ErrorRecoverySessions++
		}

		summary.SessionsByDate[dateKey(record.Created)]++
	}

	if len(records) > 0 {
		summary.AverageTurns = round2(float64(totalTurns) / float64(len(records)))
		summary.AverageDurationMinutes = round2(totalDuration / float64(len(records)))
	}

	return summary
}

// dateKey buckets a session by the date portion of its created timestamp
func dateKey(created string) string {
	if created == "" {
		return "unknown"
	}
	if len(created) > 10 {
		return created[:10]
	}
	return created
}

// Dates returns the time-series bucket keys in ascending order
func (s CorpusSummary) Dates() []string {
	dates := make([]string, 0, len(s.SessionsByDate))
	for date := range s.SessionsByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Percentage returns count as a share of the corpus, guarded for an
// empty corpus
func (s CorpusSummary) Percentage(count int) float64 {
	if s.TotalSessions == 0 {
		return 0
	}
	return float64(count) / float64(s.TotalSessions) * 100
}
