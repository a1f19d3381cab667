package internal

import (
	"reflect"
	"testing"
)

func recordWith(id, created string, messages []Message) *SessionRecord {
	raw := CreateTestRawSession(id, messages)
	raw.Meta.Created = created
	return Summarize(raw)
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil)

	if summary.TotalSessions != 0 {
		t.Errorf("TotalSessions = %d, want 0", summary.TotalSessions)
	}
	if summary.AverageTurns != 0 {
		t.Errorf("AverageTurns = %v, want 0", summary.AverageTurns)
	}
	if summary.AverageDurationMinutes != 0 {
		t.Errorf("AverageDurationMinutes = %v, want 0", summary.AverageDurationMinutes)
	}
	if summary.Percentage(0) != 0 {
		t.Errorf("Percentage(0) = %v, want 0 for empty corpus", summary.Percentage(0))
	}
	if len(summary.ApproachFrequencies) != 0 {
		t.Errorf("ApproachFrequencies = %v, want empty", summary.ApproachFrequencies)
	}
}

func TestAggregate_Counts(t *testing.T) {
	iterative := []Message{
		CreateTestMessage(RoleUser, "fix it", "2025-06-01T10:00:00+00:00"),
		CreateTestMessage(RoleUser, "improve it", "2025-06-01T10:30:00+00:00"),
	}
	simple := []Message{
		CreateTestMessage(RoleUser, "hello", "2025-06-01T12:00:00+00:00"),
		CreateTestMessage(RoleAssistant, "hi", "2025-06-01T12:10:00+00:00"),
	}
	exploratory := []Message{
		CreateToolCallMessage("grep", "glob"),
		CreateToolCallMessage("read_file", "bash"),
		CreateTestMessage(RoleUser, "thanks", ""),
	}

	records := []*SessionRecord{
		recordWith("a", "2025-06-01T09:00:00+00:00", iterative),
		recordWith("b", "2025-06-01T15:00:00+00:00", simple),
		recordWith("c", "2025-06-02T09:00:00+00:00", exploratory),
		recordWith("d", "", simple),
	}

	summary := Aggregate(records)

	if summary.TotalSessions != 4 {
		t.Fatalf("TotalSessions = %d, want 4", summary.TotalSessions)
	}

	// Per-label frequency is bounded by the session count
	for label, count := range summary.ApproachFrequencies {
		if count > summary.TotalSessions {
			t.Errorf("ApproachFrequencies[%q] = %d exceeds total %d", label, count, summary.TotalSessions)
		}
	}

	// Primary distribution partitions the corpus exactly
	primaryTotal := 0
	for _, count := range summary.PrimaryApproaches {
		primaryTotal += count
	}
	if primaryTotal != summary.TotalSessions {
		t.Errorf("primary approach counts sum to %d, want %d", primaryTotal, summary.TotalSessions)
	}

	if summary.ApproachFrequencies[ApproachIterative] != 1 {
		t.Errorf("ApproachFrequencies[iterative] = %d, want 1", summary.ApproachFrequencies[ApproachIterative])
	}
	if summary.ApproachFrequencies[ApproachSimple] != 2 {
		t.Errorf("ApproachFrequencies[simple] = %d, want 2", summary.ApproachFrequencies[ApproachSimple])
	}
	if summary.PatternStatistics.IterativeSessions != 1 {
		t.Errorf("IterativeSessions = %d, want 1", summary.PatternStatistics.IterativeSessions)
	}
	if summary.PatternStatistics.ExploratorySessions != 1 {
		t.Errorf("ExploratorySessions = %d, want 1", summary.PatternStatistics.ExploratorySessions)
	}

	// Two sessions on 2025-06-01, one on 2025-06-02, one without created
	wantDates := map[string]int{
		"2025-06-01": 2,
		"2025-06-02": 1,
		"unknown":    1,
	}
	if !reflect.DeepEqual(summary.SessionsByDate, wantDates) {
		t.Errorf("SessionsByDate = %v, want %v", summary.SessionsByDate, wantDates)
	}
	if got := summary.Dates(); !reflect.DeepEqual(got, []string{"2025-06-01", "2025-06-02", "unknown"}) {
		t.Errorf("Dates() = %v, want sorted ascending", got)
	}
}

func TestAggregate_Averages(t *testing.T) {
	short := []Message{
		CreateTestMessage(RoleUser, "hi", "2025-06-01T10:00:00+00:00"),
		CreateTestMessage(RoleAssistant, "hello", "2025-06-01T10:10:00+00:00"),
	}
	long := []Message{
		CreateTestMessage(RoleUser, "hi", "2025-06-01T10:00:00+00:00"),
		CreateTestMessage(RoleAssistant, "hello", "2025-06-01T10:30:00+00:00"),
	}

	a := recordWith("a", "2025-06-01T10:00:00+00:00", short)
	b := recordWith("b", "2025-06-01T10:00:00+00:00", long)
	a.TurnCount = 4
	b.TurnCount = 7

	summary := Aggregate([]*SessionRecord{a, b})

	if summary.AverageTurns != 5.5 {
		t.Errorf("AverageTurns = %v, want 5.5", summary.AverageTurns)
	}
	if summary.AverageDurationMinutes != 20 {
		t.Errorf("AverageDurationMinutes = %v, want 20", summary.AverageDurationMinutes)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	records := []*SessionRecord{
		recordWith("a", "2025-06-01T10:00:00+00:00", []Message{CreateTestMessage(RoleUser, "fix", "")}),
		recordWith("b", "2025-06-02T10:00:00+00:00", []Message{CreateTestMessage(RoleUser, "hi", "")}),
		recordWith("c", "", []Message{CreateTestMessage(RoleUser, "hello", "")}),
	}
	reversed := []*SessionRecord{records[2], records[1], records[0]}

	first := Aggregate(records)
	second := Aggregate(reversed)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Aggregate is order-dependent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestCorpusSummary_Percentage(t *testing.T) {
	summary := CorpusSummary{TotalSessions: 8}
	if got := summary.Percentage(2); got != 25 {
		t.Errorf("Percentage(2) = %v, want 25", got)
	}
}
