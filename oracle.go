package qsearch

// Oracle maps a candidate snapshot to a fitness score. Implementations
// must be pure: deterministic for a given snapshot and problem instance,
// and never mutating qubit state. Scores live in [0, 1], with the goal
// threshold (typically 1.0) marking a solved instance.
type Oracle interface {
	Score(s Snapshot) (float64, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(Snapshot) (float64, error)

func (f OracleFunc) Score(s Snapshot) (float64, error) {
	return f(s)
}

// WorstScore is the fitness assigned to a candidate the oracle could not
// evaluate. It sits below every valid score so a malformed snapshot can
// never displace the best-seen record.
const WorstScore = -1.0
