package qsearch

import "github.com/theapemachine/errnie"

// AdaptiveBias watches the best-seen score and reacts to plateaus. When
// the score has not improved for a full window of iterations, it widens
// the population's mutation for one iteration, trading persistence for
// exploration. A cooldown keeps it from firing every iteration once a
// run is genuinely stuck.
type AdaptiveBias struct {
	window       int
	extraBits    int
	sinceImprove int
	cooldown     int
	lastBest     float64
}

// NewAdaptiveBias creates a bias with the given stagnation window. A
// window of zero disables adaptation entirely.
func NewAdaptiveBias(window int) *AdaptiveBias {
	return &AdaptiveBias{
		window:    window,
		extraBits: 2,
		lastBest:  WorstScore,
	}
}

// Observe feeds one iteration's best score into the detector and returns
// how many extra mutation bits the next reseed round should use.
func (ab *AdaptiveBias) Observe(best float64) int {
	if ab == nil || ab.window <= 0 {
		return 0
	}

	if best > ab.lastBest {
		ab.lastBest = best
		ab.sinceImprove = 0
		return 0
	}

	ab.sinceImprove++
	if ab.cooldown > 0 {
		ab.cooldown--
		return 0
	}
	if ab.sinceImprove >= ab.window {
		ab.cooldown = ab.window / 2
		errnie.Debug("stagnation after %d flat iterations, widening mutation by %d bits",
			ab.sinceImprove, ab.extraBits)
		return ab.extraBits
	}
	return 0
}
