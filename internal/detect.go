package internal

import (
	"regexp"
	"sort"
	"strings"
)

// Each detector below is a pure scan over one session's ordered message
// sequence. Detectors share no state and may run in any order; the keyword
// lists and substring semantics are fixed, since downstream statistics
// depend on their exact behavior.

// agentNameRe extracts the token following "use" in a delegation request
var agentNameRe = regexp.MustCompile(`(?i)use\s+(\S+)`)

// refinementKeywords mark a user message as a refinement request
var refinementKeywords = []string{
	"refine",
	"improve",
	"fix",
	"update",
	"revise",
	"modify",
	"adjust",
	"correct",
}

// explorationTools are the tool names counted as investigation activity
var explorationTools = []string{"read_file", "glob", "grep", "bash", "web_search"}

// DelegationSignal reports agent-delegation activity in a session
type DelegationSignal struct {
	DelegationCount int      `json:"delegation_count" yaml:"delegation_count"`
	AgentsUsed      []string `json:"agents_used" yaml:"agents_used"`
	HasDelegation   bool     `json:"has_delegation" yaml:"has_delegation"`
}

// DetectDelegation scans for agent delegation: user messages asking to
// "use <agent>" and assistant calls to agent or delegate tools.
func DetectDelegation(messages []Message) DelegationSignal {
	count := 0
	seen := make(map[string]bool)

	for _, msg := range messages {
		// Delegation requests only count in plain-text user messages
		if msg.Role == RoleUser && msg.Content.IsText() {
			lower := strings.ToLower(msg.Content.Text())
			if strings.Contains(lower, "use ") && strings.Contains(lower, "agent") {
				count++
				if m := agentNameRe.FindStringSubmatch(msg.Content.Text()); m != nil {
					seen[m[1]] = true
				}
			}
		}

		if msg.Role == RoleAssistant {
			for _, call := range msg.ToolCalls {
				if strings.Contains(call.Tool, "agent") || strings.Contains(call.Tool, "delegate") {
					count++
				}
			}
		}
	}

	agents := make([]string, 0, len(seen))
	for name := range seen {
		agents = append(agents, name)
	}
	sort.Strings(agents)

	return DelegationSignal{
		DelegationCount: count,
		AgentsUsed:      agents,
		HasDelegation:   count > 0,
	}
}

// IterationSignal reports iterative-refinement activity in a session
type IterationSignal struct {
	IterationCount int  `json:"iteration_count" yaml:"iteration_count"`
	IsIterative    bool `json:"is_iterative" yaml:"is_iterative"`
}

// DetectIteration counts user messages containing refinement keywords
func DetectIteration(messages []Message) IterationSignal {
	iterations := 0

	for _, msg := range messages {
		if msg.Role != RoleUser {
			continue
		}
		content := strings.ToLower(msg.Content.String())
		for _, keyword := range refinementKeywords {
			if strings.Contains(content, keyword) {
				iterations++
				break
			}
		}
	}

	return IterationSignal{
		IterationCount: iterations,
		IsIterative:    iterations >= 2,
	}
}

// ExplorationSignal reports exploratory-investigation activity in a session
type ExplorationSignal struct {
	ExplorationToolCount int            `json:"exploration_tool_count" yaml:"exploration_tool_count"`
	ParallelSearches     int            `json:"parallel_searches" yaml:"parallel_searches"`
	IsExploratory        bool           `json:"is_exploratory" yaml:"is_exploratory"`
	ToolsUsed            map[string]int `json:"tools_used" yaml:"tools_used"`
}

// DetectExploration tallies exploration-tool calls per tool and counts
// assistant turns that issue more than one tool call as parallel searches.
func DetectExploration(messages []Message) ExplorationSignal {
	toolsUsed := make(map[string]int)
	parallel := 0

	for _, msg := range messages {
		if msg.Role != RoleAssistant {
			continue
		}
		if len(msg.ToolCalls) > 1 {
			parallel++
		}
		for _, call := range msg.ToolCalls {
			for _, tool := range explorationTools {
				if call.Tool == tool {
					toolsUsed[tool]++
					break
				}
			}
		}
	}

	total := 0
	for _, n := range toolsUsed {
		total += n
	}

	return ExplorationSignal{
		ExplorationToolCount: total,
		ParallelSearches:     parallel,
		IsExploratory:        total >= 5 || parallel >= 2,
		ToolsUsed:            toolsUsed,
	}
}

// ImplementationSignal reports direct file-modification activity in a session
type ImplementationSignal struct {
	WriteOperations  int  `json:"write_operations" yaml:"write_operations"`
	EditOperations   int  `json:"edit_operations" yaml:"edit_operations"`
	TotalFileOps     int  `json:"total_file_ops" yaml:"total_file_ops"`
	IsImplementation bool `json:"is_implementation" yaml:"is_implementation"`
}

// DetectImplementation tallies write_file and edit_file tool calls
func DetectImplementation(messages []Message) ImplementationSignal {
	writes := 0
	edits := 0

	for _, msg := range messages {
		if msg.Role != RoleAssistant {
			continue
		}
		for _, call := range msg.ToolCalls {
			switch call.Tool {
			case "write_file":
				writes++
			case "edit_file":
				edits++
			}
		}
	}

	total := writes + edits

	return ImplementationSignal{
		WriteOperations:  writes,
		EditOperations:   edits,
		TotalFileOps:     total,
		IsImplementation: total >= 3,
	}
}

// ErrorRecoverySignal reports tool errors and follow-up recovery attempts
type ErrorRecoverySignal struct {
	ErrorsEncountered int     `json:"errors_encountered" yaml:"errors_encountered"`
	RecoveryAttempts  int     `json:"recovery_attempts" yaml:"recovery_attempts"`
	HasErrorRecovery  bool    `json:"has_error_recovery" yaml:"has_error_recovery"`
	RecoveryRate      float64 `json:"recovery_rate" yaml:"recovery_rate"`
}

// DetectErrorRecovery scans tool messages for error output and checks
// whether the immediately following message is an assistant response.
func DetectErrorRecovery(messages []Message) ErrorRecoverySignal {
	errors := 0
	recoveries := 0

	for i, msg := range messages {
		if msg.Role != RoleTool {
			continue
		}
		content := strings.ToLower(msg.Content.String())
		if strings.Contains(content, "error") || strings.Contains(content, "failed") {
			errors++
			if i+1 < len(messages) && messages[i+1].Role == RoleAssistant {
				recoveries++
			}
		}
	}

	rate := 0.0
	if errors > 0 {
		rate = float64(recoveries) / float64(errors)
	}

	return ErrorRecoverySignal{
		ErrorsEncountered: errors,
		RecoveryAttempts:  recoveries,
		HasErrorRecovery:  errors > 0 && recoveries > 0,
		RecoveryRate:      rate,
	}
}

// PlanningSignal reports the balance between thinking and tool-call blocks
type PlanningSignal struct {
	PlanningMessages  int     `json:"planning_messages" yaml:"planning_messages"`
	ExecutionMessages int     `json:"execution_messages" yaml:"execution_messages"`
	PlanningRatio     float64 `json:"planning_ratio" yaml:"planning_ratio"`
	Approach          string  `json:"approach" yaml:"approach"`
}

// DetectPlanningExecution counts thinking vs tool_call blocks in assistant
// messages with structured content and classifies the balance.
func DetectPlanningExecution(messages []Message) PlanningSignal {
	planning := 0
	execution := 0

	for _, msg := range messages {
		if msg.Role != RoleAssistant || !msg.Content.IsBlocks() {
			continue
		}
		for _, block := range msg.Content.Blocks() {
			switch block.Type {
			case BlockThinking:
				planning++
			case BlockToolCall:
				execution++
			}
		}
	}

	total := planning + execution
	ratio := 0.0
	if total > 0 {
		ratio = float64(planning) / float64(total)
	}

	approach := "balanced"
	if ratio > 0.6 {
		approach = "planning-heavy"
	} else if ratio < 0.3 {
		approach = "execution-heavy"
	}

	return PlanningSignal{
		PlanningMessages:  planning,
		ExecutionMessages: execution,
		PlanningRatio:     ratio,
		Approach:          approach,
	}
}

// ValidationSignal reports test, check, and review activity in a session
type ValidationSignal struct {
	TestRuns        int  `json:"test_runs" yaml:"test_runs"`
	CodeChecks      int  `json:"code_checks" yaml:"code_checks"`
	Reviews         int  `json:"reviews" yaml:"reviews"`
	TotalValidation int  `json:"total_validation" yaml:"total_validation"`
	HasValidation   bool `json:"has_validation" yaml:"has_validation"`
}

// DetectValidation scans assistant tool calls for testing, checking, and
// review activity by tool name and stringified arguments.
func DetectValidation(messages []Message) ValidationSignal {
	tests := 0
	checks := 0
	reviews := 0

	for _, msg := range messages {
		if msg.Role != RoleAssistant {
			continue
		}
		for _, call := range msg.ToolCalls {
			tool := strings.ToLower(call.Tool)
			args := strings.ToLower(call.ArgsString())

			if strings.Contains(args, "test") || strings.Contains(tool, "test") {
				tests++
			}
			if call.Tool == "python_check" {
				checks++
			}
			if strings.Contains(args, "review") || strings.Contains(tool, "review") {
				reviews++
			}
		}
	}

	total := tests + checks + reviews

	return ValidationSignal{
		TestRuns:        tests,
		CodeChecks:      checks,
		Reviews:         reviews,
		TotalValidation: total,
		HasValidation:   total > 0,
	}
}

// DetectPatterns runs all seven detectors over a transcript
func DetectPatterns(messages []Message) Patterns {
	return Patterns{
		Delegation:        DetectDelegation(messages),
		Iteration:         DetectIteration(messages),
		Exploration:       DetectExploration(messages),
		Implementation:    DetectImplementation(messages),
		ErrorRecovery:     DetectErrorRecovery(messages),
		PlanningExecution: DetectPlanningExecution(messages),
		Validation:        DetectValidation(messages),
	}
}
