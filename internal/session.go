package internal

// Metadata holds the parsed metadata.json record for one session
type Metadata struct {
	SessionID   string `json:"session_id"`
	Created     string `json:"created,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Bundle      string `json:"bundle,omitempty"`
	Model       string `json:"model,omitempty"`
	TurnCount   int    `json:"turn_count,omitempty"`
}

// RawSession pairs a session's metadata with its ordered transcript,
// plus the directory-derived fields the summarizer needs
type RawSession struct {
	Meta     *Metadata
	Messages []Message
	DirName  string // session directory base name
	Project  string // path segment between /projects/ and /sessions/
}

// Patterns bundles the seven detector signal records for one session
type Patterns struct {
	Delegation        DelegationSignal     `json:"delegation" yaml:"delegation"`
	Iteration         IterationSignal      `json:"iteration" yaml:"iteration"`
	Exploration       ExplorationSignal    `json:"exploration" yaml:"exploration"`
	Implementation    ImplementationSignal `json:"implementation" yaml:"implementation"`
	ErrorRecovery     ErrorRecoverySignal  `json:"error_recovery" yaml:"error_recovery"`
	PlanningExecution PlanningSignal       `json:"planning_execution" yaml:"planning_execution"`
	Validation        ValidationSignal     `json:"validation" yaml:"validation"`
}

// SessionRecord is the durable analysis output for one valid session.
// Approaches is never empty and PrimaryApproach is always Approaches[0].
type SessionRecord struct {
	SessionID         string   `json:"session_id" yaml:"session_id"`
	ParentSessionID   string   `json:"parent_session_id" yaml:"parent_session_id"`
	Created           string   `json:"created" yaml:"created"`
	Name              string   `json:"name" yaml:"name"`
	Description       string   `json:"description" yaml:"description"`
	Bundle            string   `json:"bundle" yaml:"bundle"`
	Model             string   `json:"model" yaml:"model"`
	TurnCount         int      `json:"turn_count" yaml:"turn_count"`
	MessageCount      int      `json:"message_count" yaml:"message_count"`
	DurationMinutes   float64  `json:"duration_minutes" yaml:"duration_minutes"`
	Approaches        []string `json:"approaches" yaml:"approaches"`
	PrimaryApproach   string   `json:"primary_approach" yaml:"primary_approach"`
	Patterns          Patterns `json:"patterns" yaml:"patterns"`
	SuccessIndicators []string `json:"success_indicators" yaml:"success_indicators"`
	Project           string   `json:"project" yaml:"project"`
}

// Report is the full analysis output: every session record plus the
// corpus-level summary statistics
type Report struct {
	GeneratedAt string           `json:"generated_at" yaml:"generated_at"`
	Summary     CorpusSummary    `json:"summary_statistics" yaml:"summary_statistics"`
	Sessions    []*SessionRecord `json:"sessions" yaml:"sessions"`
}
