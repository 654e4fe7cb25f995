package qsearch

import (
	"math/rand/v2"
	"time"
)

// Config holds every knob of a run. Zero values are not usable; start
// from NewConfig and override. Validate is called before any evolution
// goroutine starts, so an invalid config can never leak concurrent state.
type Config struct {
	// PopulationSize is the number of candidate registers (k).
	PopulationSize int `yaml:"population_size"`

	// BitWidth is the width of each register (n). For maze runs this is
	// twice the move budget; for constant/balanced runs it is the input
	// width and must not exceed 64.
	BitWidth int `yaml:"bit_width"`

	// MaxIterations caps the amplification loop.
	MaxIterations int `yaml:"max_iterations"`

	// MinWait and MaxWait bound each qubit's randomized inter-flip
	// interval.
	MinWait time.Duration `yaml:"min_wait"`
	MaxWait time.Duration `yaml:"max_wait"`

	// WaitDistribution selects the interval distribution: "uniform"
	// (default) or "exponential".
	WaitDistribution string `yaml:"wait_distribution"`

	// FlipProbability is the chance a qubit flips at the end of a wait
	// cycle. The default 1.0 toggles unconditionally, matching the
	// oscillator model.
	FlipProbability float64 `yaml:"flip_probability"`

	// ReinforceFraction is the top share of candidates whose registers
	// get their flip probability damped each iteration.
	ReinforceFraction float64 `yaml:"reinforce_fraction"`

	// ReinforceFactor is the multiplier applied to a winner's flip
	// probability. Lower means more persistent winners.
	ReinforceFactor float64 `yaml:"reinforce_factor"`

	// ReseedFraction is the bottom share of candidates overwritten each
	// iteration with a mutated copy of the iteration's best snapshot.
	ReseedFraction float64 `yaml:"reseed_fraction"`

	// MutationBits is how many bits are re-randomized when a loser is
	// reseeded, maintaining diversity around winners.
	MutationBits int `yaml:"mutation_bits"`

	// GoalThreshold is the best-seen score at which the run converges.
	GoalThreshold float64 `yaml:"goal_threshold"`

	// StagnationWindow is the number of iterations without improvement
	// before the adaptive bias widens mutation. Zero disables it.
	StagnationWindow int `yaml:"stagnation_window"`

	// Seed makes a run reproducible. Zero seeds from the clock.
	Seed uint64 `yaml:"seed"`
}

// NewConfig returns the defaults used by the reference experiments.
func NewConfig() *Config {
	return &Config{
		PopulationSize:    1000,
		BitWidth:          32,
		MaxIterations:     200,
		MinWait:           time.Millisecond,
		MaxWait:           5 * time.Millisecond,
		WaitDistribution:  "uniform",
		FlipProbability:   1.0,
		ReinforceFraction: 0.05,
		ReinforceFactor:   0.25,
		ReseedFraction:    0.25,
		MutationBits:      2,
		GoalThreshold:     1.0,
		StagnationWindow:  25,
	}
}

// Validate fails fast on any parameter that would make the run
// ill-defined. Every returned error is a *ConfigurationError.
func (c *Config) Validate() error {
	if c.PopulationSize < 1 {
		return configError("population_size", "must be >= 1, got %d", c.PopulationSize)
	}
	if c.BitWidth < 1 {
		return configError("bit_width", "must be >= 1, got %d", c.BitWidth)
	}
	if c.MaxIterations < 1 {
		return configError("max_iterations", "must be >= 1, got %d", c.MaxIterations)
	}
	if c.MinWait <= 0 {
		return configError("min_wait", "must be > 0, got %v", c.MinWait)
	}
	if c.MaxWait < c.MinWait {
		return configError("max_wait", "must be >= min_wait, got %v < %v", c.MaxWait, c.MinWait)
	}
	if c.WaitDistribution != "" && c.WaitDistribution != "uniform" && c.WaitDistribution != "exponential" {
		return configError("wait_distribution", "must be uniform or exponential, got %q", c.WaitDistribution)
	}
	if c.FlipProbability < 0 || c.FlipProbability > 1 {
		return configError("flip_probability", "must be in [0, 1], got %v", c.FlipProbability)
	}
	if c.ReinforceFraction < 0 || c.ReinforceFraction > 1 {
		return configError("reinforce_fraction", "must be in [0, 1], got %v", c.ReinforceFraction)
	}
	if c.ReinforceFactor < 0 || c.ReinforceFactor > 1 {
		return configError("reinforce_factor", "must be in [0, 1], got %v", c.ReinforceFactor)
	}
	if c.ReseedFraction < 0 || c.ReseedFraction > 1 {
		return configError("reseed_fraction", "must be in [0, 1], got %v", c.ReseedFraction)
	}
	if c.MutationBits < 0 || c.MutationBits > c.BitWidth {
		return configError("mutation_bits", "must be in [0, bit_width], got %d", c.MutationBits)
	}
	if c.StagnationWindow < 0 {
		return configError("stagnation_window", "must be >= 0, got %d", c.StagnationWindow)
	}
	return nil
}

// waitStrategy builds the interval distribution the qubits evolve under.
func (c *Config) waitStrategy() WaitStrategy {
	if c.WaitDistribution == "exponential" {
		return &ExponentialWait{
			Mean: (c.MinWait + c.MaxWait) / 2,
			Min:  c.MinWait,
			Max:  c.MaxWait,
		}
	}
	return &UniformWait{Min: c.MinWait, Max: c.MaxWait}
}

// newRand builds the run's root random source. Every qubit derives its
// own source from this one, so a fixed Seed reproduces the full
// construction while evolution timing stays wall-clock dependent.
func (c *Config) newRand() *rand.Rand {
	if c.Seed != 0 {
		return rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
