package qsearch

import (
	"math/rand/v2"
	"time"
)

// WaitStrategy defines how long a qubit sleeps between flip attempts.
// Each qubit draws its own intervals from its own random source, so no
// two qubits ever share a clock.
type WaitStrategy interface {
	NextInterval(rng *rand.Rand) time.Duration
}

// UniformWait draws intervals uniformly from [Min, Max].
type UniformWait struct {
	Min time.Duration
	Max time.Duration
}

func (uw *UniformWait) NextInterval(rng *rand.Rand) time.Duration {
	if uw.Max <= uw.Min {
		return uw.Min
	}
	return uw.Min + time.Duration(rng.Int64N(int64(uw.Max-uw.Min)))
}

// ExponentialWait draws intervals from an exponential distribution with
// the given mean, clamped to [Min, Max] so a qubit can neither spin nor
// stall indefinitely.
type ExponentialWait struct {
	Mean time.Duration
	Min  time.Duration
	Max  time.Duration
}

func (ew *ExponentialWait) NextInterval(rng *rand.Rand) time.Duration {
	d := time.Duration(rng.ExpFloat64() * float64(ew.Mean))
	if d < ew.Min {
		d = ew.Min
	}
	if ew.Max > 0 && d > ew.Max {
		d = ew.Max
	}
	return d
}
