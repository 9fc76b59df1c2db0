package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes the work done by one search call.
type SearchMetric struct {
	Algorithm string
	Depth     int
	Duration  time.Duration
	Nodes     int // game-tree nodes evaluated or A* cells expanded
	Prunes    int // alpha-beta cutoffs
}

type MoveMetric struct {
	Step  int
	Agent int
	SearchMetric
}

type GameMetric struct {
	Outcome   string
	Score     float64
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Turns     int
}

type Collector interface {
	Start(algorithm string, depth int)
	AddNode()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	algorithm string
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	prunes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters, so one collector can be reused across searches.
func (m *collector) Start(algorithm string, depth int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depth = depth
	m.nodes.Store(0)
	m.prunes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Prunes:    int(m.prunes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddPrune()                         {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
