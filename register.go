package qsearch

import (
	"context"
	"math/rand/v2"
	"sync"
)

// PseudoQubitRegister is an ordered, fixed-width collection of pseudo-qubits
// representing one candidate bitstring. The register owns the lifecycle of
// its qubits: Start launches one evolution goroutine per qubit and Stop
// waits for all of them to exit.
type PseudoQubitRegister struct {
	qubits []*PseudoQubit
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPseudoQubitRegister builds a register of width n. Each qubit receives
// its own random source derived from seeds drawn off the supplied one, so
// a seeded run is reproducible while qubits stay mutually uncorrelated.
func NewPseudoQubitRegister(n int, wait WaitStrategy, flipProbability float64, rng *rand.Rand) *PseudoQubitRegister {
	qubits := make([]*PseudoQubit, n)
	for i := range qubits {
		qubitRng := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
		qubits[i] = NewPseudoQubit(wait, flipProbability, qubitRng)
	}
	return &PseudoQubitRegister{qubits: qubits}
}

// Width returns the fixed bit-width of the register.
func (r *PseudoQubitRegister) Width() int {
	return len(r.qubits)
}

// Start launches the evolution loop of every qubit in the register. The
// loops run until Stop is called or the parent context is cancelled.
func (r *PseudoQubitRegister) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	for _, pq := range r.qubits {
		r.wg.Add(1)
		go func(pq *PseudoQubit) {
			defer r.wg.Done()
			pq.evolve(ctx)
		}(pq)
	}
}

// Stop cancels every qubit's evolution loop and blocks until all of them
// have exited. Each loop observes cancellation within one wait interval,
// so no goroutines outlive the register.
func (r *PseudoQubitRegister) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	r.wg.Wait()
	r.cancel = nil
}

// Snapshot reads every qubit in order. The reads are individually
// lock-free but collectively non-atomic; see Snapshot for why that is a
// design property rather than a bug.
func (r *PseudoQubitRegister) Snapshot() Snapshot {
	s := make(Snapshot, len(r.qubits))
	for i, pq := range r.qubits {
		s[i] = pq.Read()
	}
	return s
}

// SetBits copies the given snapshot into the register, bit by bit. Bits
// beyond the shorter of the two widths are left untouched. The qubits
// keep evolving while the copy happens.
func (r *PseudoQubitRegister) SetBits(s Snapshot) {
	n := len(s)
	if n > len(r.qubits) {
		n = len(r.qubits)
	}
	for i := 0; i < n; i++ {
		r.qubits[i].Set(s[i])
	}
}

// ScaleFlipProbability applies a reinforcement factor to every qubit.
func (r *PseudoQubitRegister) ScaleFlipProbability(factor float64) {
	for _, pq := range r.qubits {
		pq.ScaleFlipProbability(factor)
	}
}

// SetFlipProbability sets an absolute flip probability on every qubit.
func (r *PseudoQubitRegister) SetFlipProbability(p float64) {
	for _, pq := range r.qubits {
		pq.SetFlipProbability(p)
	}
}

// ResetFlipProbability clears any reinforcement bias on the register.
func (r *PseudoQubitRegister) ResetFlipProbability() {
	for _, pq := range r.qubits {
		pq.ResetFlipProbability()
	}
}
