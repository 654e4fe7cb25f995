package qsearch

// SearchState is the amplification controller's terminal-state machine.
// A run is RUNNING until it converges on the goal threshold, exhausts
// its iteration cap, or is cancelled from outside. The three terminal
// states are always distinguishable in the final report.
type SearchState int32

const (
	StateRunning SearchState = iota
	StateConverged
	StateExhausted
	StateStopped
)

func (s SearchState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends a run.
func (s SearchState) Terminal() bool {
	return s != StateRunning
}
