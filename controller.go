package qsearch

import (
	"context"
	"sort"
	"time"

	"github.com/theapemachine/errnie"
)

/*
AmplificationController drives the search loop: sample the population,
score every candidate through the oracle, record the best, then bias
future evolution toward the high-scoring region of the search space.

The iteration body runs on a single coordinating goroutine; two
iterations never overlap. All run state (iteration counter, best-seen
record, terminal state) is owned by that goroutine and only read by
others after Run returns.
*/
type AmplificationController struct {
	population *CandidatePopulation
	oracle     Oracle
	cfg        *Config
	metrics    *Metrics
	progress   *ProgressGroup
	adaptive   *AdaptiveBias

	state      SearchState
	iterations int
	best       Snapshot
	bestScore  float64
	haveBest   bool
}

// Result is the controller's final report for one run.
type Result struct {
	State        SearchState
	Best         Snapshot
	BestScore    float64
	Iterations   int
	OracleErrors int64
}

func NewAmplificationController(population *CandidatePopulation, oracle Oracle, cfg *Config, opts ...ControllerOption) *AmplificationController {
	c := &AmplificationController{
		population: population,
		oracle:     oracle,
		cfg:        cfg,
		metrics:    NewMetrics(),
		bestScore:  WorstScore,
	}
	c.adaptive = NewAdaptiveBias(cfg.StagnationWindow)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Metrics exposes the run's counters for external reporting.
func (c *AmplificationController) Metrics() *Metrics {
	return c.metrics
}

// State returns the controller's current state. Only meaningful to read
// after Run returns.
func (c *AmplificationController) State() SearchState {
	return c.state
}

/*
Run executes the search to termination and returns the final result.

Termination is one of three terminal states: CONVERGED when the best
score meets the goal threshold, EXHAUSTED when the iteration cap is hit,
STOPPED when the context is cancelled. Cancellation is graceful: the
controller waits for every evolution goroutine to exit before reporting,
so no qubit outlives the run.
*/
func (c *AmplificationController) Run(ctx context.Context) Result {
	errnie.Info("amplification run starting: k=%d n=%d cap=%d",
		c.population.Len(), c.population.Width(), c.cfg.MaxIterations)

	c.state = StateRunning
	c.population.Start(ctx)

	for c.state == StateRunning {
		select {
		case <-ctx.Done():
			c.state = StateStopped
		default:
			c.iterate()
		}
	}

	// Full shutdown before reporting: no goroutine leaks across runs.
	c.population.Stop()

	if c.progress != nil {
		c.progress.Send(c.snapshotProgress())
	}

	errnie.Info("amplification run finished: state=%s best=%.3f iterations=%d",
		c.state, c.bestScore, c.iterations)

	return Result{
		State:        c.state,
		Best:         c.best,
		BestScore:    c.bestScore,
		Iterations:   c.iterations,
		OracleErrors: c.metrics.OracleErrorCount(),
	}
}

// iterate is one pass of the amplification loop: sample, score, record,
// check convergence, reinforce and reseed, advance the counter.
func (c *AmplificationController) iterate() {
	snapshots := c.population.SampleAll()

	ranked := make([]ScoredCandidate, len(snapshots))
	var oracleErrors int64
	for i, s := range snapshots {
		score, err := c.oracle.Score(s)
		if err != nil {
			// Fail soft: a snapshot the oracle cannot decode scores
			// worst-case and the run continues.
			score = WorstScore
			oracleErrors++
			errnie.Warn("candidate %d scored worst-case: %v", i, err)
		}
		ranked[i] = ScoredCandidate{Index: i, Snapshot: s, Score: score}
	}

	// Stable sort keeps the earlier candidate ahead on equal scores,
	// which combined with the strict improvement test below preserves
	// the earliest-found best.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	top := ranked[0]
	if !c.haveBest || top.Score > c.bestScore {
		c.best = top.Snapshot.Clone()
		c.bestScore = top.Score
		c.haveBest = true
	}

	c.metrics.recordIteration(len(ranked), oracleErrors, c.bestScore)

	if c.bestScore >= c.cfg.GoalThreshold {
		c.state = StateConverged
		return
	}

	c.amplify(ranked, top)

	c.iterations++
	if c.iterations >= c.cfg.MaxIterations {
		c.state = StateExhausted
		return
	}

	if c.progress != nil {
		c.progress.Send(c.snapshotProgress())
	}
}

// amplify applies the reinforcement policy: damp the winners' flip
// probability so their bits persist, and overwrite the losers with
// mutated copies of the iteration's best snapshot to keep the
// population dense around the promising region without collapsing
// diversity.
func (c *AmplificationController) amplify(ranked []ScoredCandidate, top ScoredCandidate) {
	k := len(ranked)

	reinforceCount := int(float64(k) * c.cfg.ReinforceFraction)
	if reinforceCount < 1 {
		reinforceCount = 1
	}
	if reinforceCount > k {
		reinforceCount = k
	}

	reseedCount := int(float64(k) * c.cfg.ReseedFraction)
	if reseedCount > k-reinforceCount {
		reseedCount = k - reinforceCount
	}

	// Bias is re-earned every iteration; clear last round's first.
	c.population.ResetBias()

	winners := make([]int, reinforceCount)
	for i := 0; i < reinforceCount; i++ {
		winners[i] = ranked[i].Index
	}
	c.population.Reinforce(winners, c.cfg.ReinforceFactor)

	mutateBits := c.cfg.MutationBits + c.adaptive.Observe(c.bestScore)
	if mutateBits > c.cfg.BitWidth {
		mutateBits = c.cfg.BitWidth
	}
	for _, loser := range ranked[k-reseedCount:] {
		c.population.Reseed(loser.Index, top.Snapshot, mutateBits)
	}

	c.metrics.recordAmplification(reinforceCount, reseedCount)
}

func (c *AmplificationController) snapshotProgress() Progress {
	return Progress{
		Iteration: c.iterations,
		BestScore: c.bestScore,
		BestSoFar: c.best,
		State:     c.state,
		At:        time.Now(),
	}
}
