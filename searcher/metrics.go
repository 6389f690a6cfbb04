package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics describes one call to NextAttack.
type SearchMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Goroutines int
	Candidates int64
	Episodes   int64
}

type MetricsCollector interface {
	Start(goroutines int)
	AddCandidate()
	AddEpisode()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime  time.Time
	goroutines int
	candidates atomic.Int64
	episodes   atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.candidates.Store(0)
	m.episodes.Store(0)
}

func (m *metricsCollector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *metricsCollector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Goroutines: m.goroutines,
		Candidates: m.candidates.Load(),
		Episodes:   m.episodes.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(goroutines int)    {}
func (m *noMetricsCollector) AddCandidate()           {}
func (m *noMetricsCollector) AddEpisode()             {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
