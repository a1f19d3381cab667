package internal

import (
	"reflect"
	"strings"
	"testing"
)

func TestSessionDuration(t *testing.T) {
	tests := []struct {
		name     string
		messages []Message
		want     float64
	}{
		{
			name:     "no messages",
			messages: nil,
			want:     0,
		},
		{
			name: "single message",
			messages: []Message{
				CreateTestMessage(RoleUser, "hi", "2025-06-01T10:00:00+00:00"),
			},
			want: 0,
		},
		{
			name: "ten minute span with utc offset",
			messages: []Message{
				CreateTestMessage(RoleUser, "hi", "2025-06-01T10:00:00+00:00"),
				CreateTestMessage(RoleAssistant, "hello", "2025-06-01T10:10:00+00:00"),
			},
			want: 10,
		},
		{
			name: "fractional minutes rounded to two decimals",
			messages: []Message{
				CreateTestMessage(RoleUser, "hi", "2025-06-01T10:00:00+00:00"),
				CreateTestMessage(RoleAssistant, "hello", "2025-06-01T10:00:20+00:00"),
			},
			want: 0.33,
		},
		{
			name: "missing first timestamp",
			messages: []Message{
				CreateTestMessage(RoleUser, "hi", ""),
				CreateTestMessage(RoleAssistant, "hello", "2025-06-01T10:10:00+00:00"),
			},
			want: 0,
		},
		{
			name: "unparseable timestamp absorbed",
			messages: []Message{
				CreateTestMessage(RoleUser, "hi", "not-a-timestamp"),
				CreateTestMessage(RoleAssistant, "hello", "2025-06-01T10:10:00+00:00"),
			},
			want: 0,
		},
		{
			name: "only middle messages between endpoints matter",
			messages: []Message{
				CreateTestMessage(RoleUser, "hi", "2025-06-01T10:00:00+00:00"),
				CreateTestMessage(RoleAssistant, "working", ""),
				CreateTestMessage(RoleAssistant, "done", "2025-06-01T11:00:00+00:00"),
			},
			want: 60,
		},
		{
			name: "fractional seconds parse",
			messages: []Message{
				CreateTestMessage(RoleUser, "hi", "2025-06-01T10:00:00.500000+00:00"),
				CreateTestMessage(RoleAssistant, "hello", "2025-06-01T10:01:00.500000+00:00"),
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SessionDuration(tt.messages); got != tt.want {
				t.Errorf("SessionDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize_SkipRules(t *testing.T) {
	messages := []Message{
		CreateTestMessage(RoleUser, "hi", ""),
	}

	tests := []struct {
		name string
		raw  *RawSession
	}{
		{name: "nil session", raw: nil},
		{name: "nil metadata", raw: &RawSession{Messages: messages}},
		{name: "empty transcript", raw: &RawSession{Meta: &Metadata{SessionID: "s1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.raw); got != nil {
				t.Errorf("Summarize() = %+v, want nil", got)
			}
		})
	}
}

func TestSummarize_Record(t *testing.T) {
	raw := &RawSession{
		Meta: &Metadata{
			SessionID:   "sess-42",
			Created:     "2025-06-01T09:00:00+00:00",
			Name:        "Refactor run",
			Description: strings.Repeat("x", 250),
			Bundle:      "default",
			Model:       "some-model",
			TurnCount:   8,
		},
		Messages: []Message{
			CreateTestMessage(RoleUser, "fix the loader", "2025-06-01T09:00:00+00:00"),
			CreateTestMessage(RoleUser, "now improve the tests", "2025-06-01T09:05:00+00:00"),
			CreateToolCallMessage("write_file"),
			CreateTestMessage(RoleAssistant, "done", "2025-06-01T09:30:00+00:00"),
		},
		DirName: "parent42-child7",
		Project: "demo",
	}

	record := Summarize(raw)
	if record == nil {
		t.Fatal("Summarize() returned nil for a valid session")
	}

	if record.SessionID != "sess-42" {
		t.Errorf("SessionID = %q, want sess-42", record.SessionID)
	}
	if record.ParentSessionID != "parent42" {
		t.Errorf("ParentSessionID = %q, want parent42", record.ParentSessionID)
	}
	if len(record.Description) != 200 {
		t.Errorf("Description length = %d, want 200", len(record.Description))
	}
	if record.MessageCount != 4 {
		t.Errorf("MessageCount = %d, want 4", record.MessageCount)
	}
	if record.DurationMinutes != 30 {
		t.Errorf("DurationMinutes = %v, want 30", record.DurationMinutes)
	}
	if len(record.Approaches) < 1 {
		t.Fatal("Approaches is empty")
	}
	if record.PrimaryApproach != record.Approaches[0] {
		t.Errorf("PrimaryApproach = %q, want %q", record.PrimaryApproach, record.Approaches[0])
	}
	if record.PrimaryApproach != ApproachIterative {
		t.Errorf("PrimaryApproach = %q, want %q", record.PrimaryApproach, ApproachIterative)
	}
	// Iterative session: implementation label suppressed despite the write
	for _, approach := range record.Approaches {
		if approach == ApproachImplementation {
			t.Errorf("Approaches contains %q despite iteration gate", ApproachImplementation)
		}
	}

	wantIndicators := []string{IndicatorFilesModified, IndicatorSubstantial}
	if !reflect.DeepEqual(record.SuccessIndicators, wantIndicators) {
		t.Errorf("SuccessIndicators = %v, want %v", record.SuccessIndicators, wantIndicators)
	}
}

func TestSummarize_Defaults(t *testing.T) {
	raw := &RawSession{
		Meta: &Metadata{SessionID: "s1"},
		Messages: []Message{
			CreateTestMessage(RoleUser, "hello", ""),
		},
		DirName: "nodash",
	}

	record := Summarize(raw)
	if record == nil {
		t.Fatal("Summarize() returned nil")
	}
	if record.Name != "Untitled" {
		t.Errorf("Name = %q, want Untitled", record.Name)
	}
	if record.ParentSessionID != "" {
		t.Errorf("ParentSessionID = %q, want empty", record.ParentSessionID)
	}
	if record.PrimaryApproach != ApproachSimple {
		t.Errorf("PrimaryApproach = %q, want %q", record.PrimaryApproach, ApproachSimple)
	}
	if len(record.SuccessIndicators) != 0 {
		t.Errorf("SuccessIndicators = %v, want empty", record.SuccessIndicators)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	raw := CreateTestRawSession("repeat", []Message{
		CreateTestMessage(RoleUser, "use zen agent to fix this", "2025-06-01T10:00:00+00:00"),
		CreateToolCallMessage("grep", "read_file"),
		CreateTestMessage(RoleAssistant, "done", "2025-06-01T10:30:00+00:00"),
	})

	first := Summarize(raw)
	second := Summarize(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Summarize is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyzeSessions_FiltersInvalid(t *testing.T) {
	raws := []*RawSession{
		CreateTestRawSession("valid", []Message{CreateTestMessage(RoleUser, "hi", "")}),
		{Meta: &Metadata{SessionID: "no-messages"}},
		{Messages: []Message{CreateTestMessage(RoleUser, "orphan", "")}},
	}

	records := AnalyzeSessions(raws)
	if len(records) != 1 {
		t.Fatalf("AnalyzeSessions() returned %d records, want 1", len(records))
	}
	if records[0].SessionID != "valid" {
		t.Errorf("SessionID = %q, want valid", records[0].SessionID)
	}
}
