package qsearch

import "strings"

/*
Snapshot is a point-in-time read of every bit in a register, in order.

A snapshot is assembled from independent lock-free reads of each qubit,
one after the other. It is deliberately NOT a transactional read: qubits
keep evolving while the snapshot is taken, so the result may mix values
from slightly different instants. That smear is the classical analogue
of measurement noise in the model and must not be "fixed" with a global
lock, which would reintroduce the shared clock the design avoids.
*/
type Snapshot []byte

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

// Equal reports whether two snapshots hold the same bits.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, b := range s {
		if b == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

// Uint64 decodes the snapshot as a big-endian unsigned integer. Snapshots
// wider than 64 bits cannot be decoded this way.
func (s Snapshot) Uint64() (uint64, error) {
	if len(s) == 0 {
		return 0, evaluationError("empty snapshot")
	}
	if len(s) > 64 {
		return 0, evaluationError("snapshot width %d exceeds 64 bits", len(s))
	}
	var x uint64
	for _, b := range s {
		x <<= 1
		if b != 0 {
			x |= 1
		}
	}
	return x, nil
}

// Move is one step of a decoded maze path.
type Move int

const (
	MoveRight Move = iota
	MoveDown
	MoveLeft
	MoveUp
)

func (m Move) String() string {
	switch m {
	case MoveRight:
		return "right"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveUp:
		return "up"
	default:
		return "unknown"
	}
}

// Moves decodes the snapshot as a path: two bits per move, most
// significant bit first. The snapshot width must be even.
func (s Snapshot) Moves() ([]Move, error) {
	if len(s) == 0 {
		return nil, evaluationError("empty snapshot")
	}
	if len(s)%2 != 0 {
		return nil, evaluationError("snapshot width %d is not a multiple of 2", len(s))
	}
	moves := make([]Move, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		moves = append(moves, Move(s[i]<<1|s[i+1]))
	}
	return moves, nil
}

// ScoredCandidate pairs a snapshot with the fitness the oracle assigned
// to it during one iteration. Scored candidates are ephemeral; only the
// best-seen record outlives an iteration.
type ScoredCandidate struct {
	Index    int
	Snapshot Snapshot
	Score    float64
}
