package metrics

import "time"

// Noop discards all observations
type Noop struct{}

// NewNoop returns metrics that record nothing
func NewNoop() Noop { return Noop{} }

func (Noop) ObserveStep(string, string, time.Duration) {}

func (Noop) IncCompensation(string) {}

func (Noop) IncReconciliation(string) {}

func (Noop) IncTrade(string, string) {}

func (Noop) ObserveHTTP(string, string, int, time.Duration) {}
