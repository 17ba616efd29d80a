package core

import "time"

// Outcomes recorded for saga steps
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics records trade saga observations
type Metrics interface {
	// ObserveStep records the duration and outcome of one saga step
	ObserveStep(step, outcome string, duration time.Duration)
	// IncCompensation counts a budget release after a failed step
	IncCompensation(step string)
	// IncReconciliation counts a liability item recorded for reason
	IncReconciliation(reason string)
	// IncTrade counts a finished trade or sell by kind and error code
	IncTrade(kind, code string)
}
