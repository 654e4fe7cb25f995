package qsearch

import (
	"sync"
	"time"
)

// Metrics tracks the health of one search run. The controller is the
// only writer; external observers read via ExportMetrics or the typed
// getters.
type Metrics struct {
	mu sync.RWMutex

	Iterations   int
	Evaluations  int64
	OracleErrors int64
	Reinforced   int64
	Reseeded     int64
	BestScore    float64
	StartedAt    time.Time
	LastSample   time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		BestScore: WorstScore,
		StartedAt: time.Now(),
	}
}

func (m *Metrics) recordIteration(evaluations int, oracleErrors int64, best float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Iterations++
	m.Evaluations += int64(evaluations)
	m.OracleErrors += oracleErrors
	if best > m.BestScore {
		m.BestScore = best
	}
	m.LastSample = time.Now()
}

func (m *Metrics) recordAmplification(reinforced, reseeded int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Reinforced += int64(reinforced)
	m.Reseeded += int64(reseeded)
}

// OracleErrorCount returns how many evaluations failed soft so far.
func (m *Metrics) OracleErrorCount() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.OracleErrors
}

// ExportMetrics returns a flat view for the reporting collaborator.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"iterations":    m.Iterations,
		"evaluations":   m.Evaluations,
		"oracle_errors": m.OracleErrors,
		"reinforced":    m.Reinforced,
		"reseeded":      m.Reseeded,
		"best_score":    m.BestScore,
		"elapsed_ms":    time.Since(m.StartedAt).Milliseconds(),
	}
}
