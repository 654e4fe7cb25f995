package qsearch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

// Report is the driver's boundary contract: everything the reporting
// collaborator needs to describe one finished run.
type Report struct {
	RunID        string
	State        SearchState
	Best         Snapshot
	BestScore    float64
	Iterations   int
	OracleErrors int64
	Elapsed      time.Duration
}

// ExperimentDriver wires a population, an oracle and a controller into
// one runnable experiment. It is deliberately thin: all interesting
// behavior lives in the controller and below.
type ExperimentDriver struct {
	cfg      *Config
	oracle   Oracle
	progress *ProgressGroup
}

// NewExperimentDriver validates the configuration up front; no goroutine
// has started if it returns an error.
func NewExperimentDriver(cfg *Config, oracle Oracle) (*ExperimentDriver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ExperimentDriver{cfg: cfg, oracle: oracle}, nil
}

// Progress returns the driver's broadcast group, creating it on first
// use, so callers can subscribe before Run.
func (d *ExperimentDriver) Progress() *ProgressGroup {
	if d.progress == nil {
		d.progress = NewProgressGroup(64)
	}
	return d.progress
}

// Run builds the population, executes the controller to termination and
// returns the report. The population is fully shut down before the
// report is produced, so successive runs never leak goroutines into
// each other.
func (d *ExperimentDriver) Run(ctx context.Context) (*Report, error) {
	population, err := NewCandidatePopulation(d.cfg)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	errnie.Info("experiment %s starting", runID)

	opts := []ControllerOption{}
	if d.progress != nil {
		opts = append(opts, WithProgressGroup(d.progress))
	}
	controller := NewAmplificationController(population, d.oracle, d.cfg, opts...)

	started := time.Now()
	result := controller.Run(ctx)

	return &Report{
		RunID:        runID,
		State:        result.State,
		Best:         result.Best,
		BestScore:    result.BestScore,
		Iterations:   result.Iterations,
		OracleErrors: result.OracleErrors,
		Elapsed:      time.Since(started),
	}, nil
}

// RunMaze is the convenience entry for the maze experiment.
func RunMaze(ctx context.Context, cfg *Config, maze Maze) (*Report, error) {
	driver, err := NewExperimentDriver(cfg, NewMazeOracle(maze))
	if err != nil {
		return nil, err
	}
	return driver.Run(ctx)
}

// RunDeutschJozsa discriminates a predicate as constant or balanced.
// The bit width must fit an input word (64 bits at most).
func RunDeutschJozsa(ctx context.Context, cfg *Config, f Predicate) (Verdict, *Report, error) {
	if cfg.BitWidth > 64 {
		return VerdictUnknown, nil, configError("bit_width", "must be <= 64 for predicate inputs, got %d", cfg.BitWidth)
	}
	driver, err := NewExperimentDriver(cfg, NewConstantBalancedOracle(f))
	if err != nil {
		return VerdictUnknown, nil, err
	}
	report, err := driver.Run(ctx)
	if err != nil {
		return VerdictUnknown, nil, err
	}
	return VerdictFor(report.State), report, nil
}
