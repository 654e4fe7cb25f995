package qsearch

import (
	"context"
	"math/rand/v2"

	"github.com/theapemachine/errnie"
)

/*
CandidatePopulation is a set of k registers evolving concurrently and
independently. It owns the registers' lifecycle: Start launches k×n
evolution goroutines, Stop tears all of them down and blocks until the
last one has exited.

The population is also where amplification touches the qubits: winners
get their flip probability damped so their bits persist, losers are
overwritten with mutated copies of a winning snapshot. Both operations
run while the qubits keep evolving; the resulting races are benign and
wash out at the next sample.
*/
type CandidatePopulation struct {
	registers []*PseudoQubitRegister
	cfg       *Config
	rng       *rand.Rand
	running   bool
}

// NewCandidatePopulation validates the config and builds k registers of
// width n. No goroutine starts until Start is called.
func NewCandidatePopulation(cfg *Config) (*CandidatePopulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := cfg.newRand()
	wait := cfg.waitStrategy()
	registers := make([]*PseudoQubitRegister, cfg.PopulationSize)
	for i := range registers {
		registers[i] = NewPseudoQubitRegister(cfg.BitWidth, wait, cfg.FlipProbability, rng)
	}

	return &CandidatePopulation{
		registers: registers,
		cfg:       cfg,
		rng:       rng,
	}, nil
}

// Len returns the population size k.
func (p *CandidatePopulation) Len() int {
	return len(p.registers)
}

// Width returns the register bit-width n.
func (p *CandidatePopulation) Width() int {
	return p.cfg.BitWidth
}

// Start launches every register's evolution loops.
func (p *CandidatePopulation) Start(ctx context.Context) {
	if p.running {
		return
	}
	for _, r := range p.registers {
		r.Start(ctx)
	}
	p.running = true
	errnie.Debug("population started: %d registers of width %d", len(p.registers), p.cfg.BitWidth)
}

// Stop halts every register and waits for full shutdown. After Stop
// returns, no evolution goroutine is left running.
func (p *CandidatePopulation) Stop() {
	if !p.running {
		return
	}
	for _, r := range p.registers {
		r.Stop()
	}
	p.running = false
	errnie.Debug("population stopped")
}

// SampleAll snapshots every register, as close to simultaneously as the
// model allows. Exact simultaneity is neither guaranteed nor required;
// sampling has no side effects and is safe to repeat.
func (p *CandidatePopulation) SampleAll() []Snapshot {
	snapshots := make([]Snapshot, len(p.registers))
	for i, r := range p.registers {
		snapshots[i] = r.Snapshot()
	}
	return snapshots
}

// Reinforce biases the given registers toward persistence by scaling
// their flip probability down. The bias is applied on top of whatever
// the register currently carries; ResetBias clears it.
func (p *CandidatePopulation) Reinforce(indices []int, factor float64) {
	for _, i := range indices {
		if i < 0 || i >= len(p.registers) {
			continue
		}
		p.registers[i].ScaleFlipProbability(factor)
	}
}

// ResetBias restores the configured flip probability on every register,
// so reinforcement stays temporary and re-earned each iteration.
func (p *CandidatePopulation) ResetBias() {
	for _, r := range p.registers {
		r.ResetFlipProbability()
	}
}

// Reseed overwrites the register at index with a copy of the given
// snapshot, re-randomizing mutateBits positions. This is the replication
// half of amplification: losers become slight variations of winners.
func (p *CandidatePopulation) Reseed(index int, from Snapshot, mutateBits int) {
	if index < 0 || index >= len(p.registers) {
		return
	}
	seeded := from.Clone()
	for b := 0; b < mutateBits && len(seeded) > 0; b++ {
		pos := p.rng.IntN(len(seeded))
		seeded[pos] = byte(p.rng.IntN(2))
	}
	p.registers[index].SetBits(seeded)
}
