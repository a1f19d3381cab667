package internal

// Approach labels assigned by Classify, in priority order
const (
	ApproachIterative      = "Iterative Refinement"
	ApproachExploratory    = "Exploratory Investigation"
	ApproachImplementation = "Direct Implementation"
	ApproachDelegated      = "Multi-Agent Orchestration"
	ApproachErrorRecovery  = "Error Recovery & Resilience"
	ApproachValidation     = "Validation-Driven"
	ApproachSimple         = "Simple/Conversational"
)

// Classify combines the seven detector signals into an ordered approach
// list. The priority order is fixed: it defines array position, and
// position 0 is the session's primary approach. An iterative session is
// never also labeled as direct implementation.
func Classify(p Patterns) []string {
	var approaches []string

	if p.Iteration.IsIterative {
		approaches = append(approaches, ApproachIterative)
	}

	if p.Exploration.IsExploratory {
		approaches = append(approaches, ApproachExploratory)
	}

	if p.Implementation.IsImplementation && !p.Iteration.IsIterative {
		approaches = append(approaches, ApproachImplementation)
	}

	if p.Delegation.HasDelegation {
		approaches = append(approaches, ApproachDelegated)
	}

	if p.ErrorRecovery.HasErrorRecovery {
		approaches = append(approaches, ApproachErrorRecovery)
	}

	if p.Validation.HasValidation {
		approaches = append(approaches, ApproachValidation)
	}

	if len(approaches) == 0 {
		approaches = append(approaches, ApproachSimple)
	}

	return approaches
}
