package qsearch

/*
Deutsch-Jozsa style discrimination: given a black-box predicate promised
to be either constant or balanced, decide which, by searching for a
witness input whose output differs from a reference evaluation.

The population explores the input space; the oracle rewards any decoded
input that disagrees with the predicate's value at zero. If the search
converges, a witness exists and the predicate is balanced. If the
iteration cap is exhausted without a witness, the run is consistent with
a constant predicate. Unlike the quantum algorithm this is probabilistic:
a constant verdict is only as strong as the number of inputs sampled.
*/

// Predicate is the black box under test. It must be deterministic.
type Predicate func(x uint64) bool

// Verdict is the discrimination outcome.
type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictConstant
	VerdictBalanced
)

func (v Verdict) String() string {
	switch v {
	case VerdictConstant:
		return "constant"
	case VerdictBalanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// ConstantBalancedOracle scores candidates as potential witnesses that
// the predicate is balanced. It evaluates the predicate once at input
// zero during construction and never mutates anything afterwards, so
// scoring stays pure.
type ConstantBalancedOracle struct {
	f         Predicate
	reference bool
}

func NewConstantBalancedOracle(f Predicate) *ConstantBalancedOracle {
	return &ConstantBalancedOracle{
		f:         f,
		reference: f(0),
	}
}

// Score returns 1.0 when the decoded input witnesses a balanced
// predicate, 0 otherwise. Snapshots wider than 64 bits are undecodable
// and fail soft via the controller.
func (o *ConstantBalancedOracle) Score(s Snapshot) (float64, error) {
	x, err := s.Uint64()
	if err != nil {
		return WorstScore, err
	}
	if o.f(x) != o.reference {
		return 1.0, nil
	}
	return 0, nil
}

// VerdictFor maps a terminal search state to a discrimination verdict.
func VerdictFor(state SearchState) Verdict {
	switch state {
	case StateConverged:
		return VerdictBalanced
	case StateExhausted:
		return VerdictConstant
	default:
		return VerdictUnknown
	}
}
