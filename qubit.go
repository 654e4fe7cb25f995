package qsearch

import (
	"context"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"
)

/*
PseudoQubit is a single binary cell that evolves on its own goroutine for
the lifetime of a run. It waits a randomized interval drawn from its own
random source, then flips its value with the configured probability. No
qubit ever waits on, or synchronizes with, another qubit: the uncoordinated
timing between cells is the mechanism under study, not an accident.

The current value is the only datum shared between the evolution goroutine
and readers, and it is held in an atomic so reads never block the writer.
*/
type PseudoQubit struct {
	value    atomic.Uint32
	flipProb atomic.Uint64 // math.Float64bits, mutable by reinforcement
	baseProb float64
	wait     WaitStrategy
	rng      *rand.Rand
}

// NewPseudoQubit creates a qubit with a randomly seeded initial value.
// The random source is owned by the qubit's evolution goroutine; callers
// must not share it across qubits.
func NewPseudoQubit(wait WaitStrategy, flipProbability float64, rng *rand.Rand) *PseudoQubit {
	pq := &PseudoQubit{
		baseProb: flipProbability,
		wait:     wait,
		rng:      rng,
	}
	pq.flipProb.Store(math.Float64bits(flipProbability))
	if rng.Float64() < 0.5 {
		pq.value.Store(1)
	}
	return pq
}

// Read returns the current value. It never blocks the evolution loop and
// is always well-defined: the value is seeded at creation.
func (pq *PseudoQubit) Read() byte {
	return byte(pq.value.Load())
}

// Set forces the value, used when a register is reseeded from a winning
// snapshot. An in-flight flip may overwrite the forced bit immediately
// afterwards; that race is accepted and self-corrects on the next
// iteration's sample.
func (pq *PseudoQubit) Set(v byte) {
	if v != 0 {
		pq.value.Store(1)
	} else {
		pq.value.Store(0)
	}
}

// FlipProbability returns the probability applied at the next wait cycle.
func (pq *PseudoQubit) FlipProbability() float64 {
	return math.Float64frombits(pq.flipProb.Load())
}

// SetFlipProbability replaces the flip probability without pausing the
// evolution goroutine. Values outside [0, 1] are clamped.
func (pq *PseudoQubit) SetFlipProbability(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	pq.flipProb.Store(math.Float64bits(p))
}

// ScaleFlipProbability multiplies the current flip probability, the
// reinforcement hook that makes a promising register more persistent.
func (pq *PseudoQubit) ScaleFlipProbability(factor float64) {
	pq.SetFlipProbability(pq.FlipProbability() * factor)
}

// ResetFlipProbability restores the probability the qubit was built with.
func (pq *PseudoQubit) ResetFlipProbability() {
	pq.flipProb.Store(math.Float64bits(pq.baseProb))
}

// evolve is the qubit's lifetime loop. The first interval doubles as the
// start-up desync delay, so freshly started qubits do not flip in phase.
// Cancellation is observed within one wait interval.
func (pq *PseudoQubit) evolve(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(pq.wait.NextInterval(pq.rng)):
		}

		p := pq.FlipProbability()
		if p >= 1 || pq.rng.Float64() < p {
			pq.toggle()
		}
	}
}

func (pq *PseudoQubit) toggle() {
	for {
		old := pq.value.Load()
		if pq.value.CompareAndSwap(old, 1-old) {
			return
		}
	}
}
