package metrics

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type RoundMetric struct {
	ID        uuid.UUID
	Round     int
	StartTime time.Time
	Duration  time.Duration
	Nodes     int
	Reachable int
	Dangling  int
	Resolved  int
	Frontier  int
	DeadEnds  int
	Examples  int
	Augmented int
}

type DiagnosticMetric struct {
	Round          int
	Samples        int
	WinningMean    float64
	NonWinningMean float64
	Holdout        int
	MSE            float32
	RMSE           float32
}

// Collector accumulates the metrics of one training round.
type Collector interface {
	Start(round int)
	SetGraph(nodes, reachable, dangling int)
	SetSearch(resolved, frontier, deadEnds int)
	AddExamples(n int)
	AddAugmented(n int)
	Complete() RoundMetric
}

type collector struct {
	id        uuid.UUID
	round     int
	startTime time.Time
	nodes     int
	reachable int
	dangling  int
	resolved  int
	frontier  int
	deadEnds  int
	examples  atomic.Int32
	augmented atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(round int) {
	m.id = uuid.New()
	m.round = round
	m.startTime = time.Now()
	m.nodes, m.reachable, m.dangling = 0, 0, 0
	m.resolved, m.frontier, m.deadEnds = 0, 0, 0
	m.examples.Store(0)
	m.augmented.Store(0)
}

func (m *collector) SetGraph(nodes, reachable, dangling int) {
	m.nodes = nodes
	m.reachable = reachable
	m.dangling = dangling
}

func (m *collector) SetSearch(resolved, frontier, deadEnds int) {
	m.resolved = resolved
	m.frontier = frontier
	m.deadEnds = deadEnds
}

func (m *collector) AddExamples(n int) {
	m.examples.Add(int32(n))
}

func (m *collector) AddAugmented(n int) {
	m.augmented.Add(int32(n))
}

func (m *collector) Complete() RoundMetric {
	return RoundMetric{
		ID:        m.id,
		Round:     m.round,
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Reachable: m.reachable,
		Dangling:  m.dangling,
		Resolved:  m.resolved,
		Frontier:  m.frontier,
		DeadEnds:  m.deadEnds,
		Examples:  int(m.examples.Load()),
		Augmented: int(m.augmented.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(round int)                            {}
func (m *dummyCollector) SetGraph(nodes, reachable, dangling int)    {}
func (m *dummyCollector) SetSearch(resolved, frontier, deadEnds int) {}
func (m *dummyCollector) AddExamples(n int)                          {}
func (m *dummyCollector) AddAugmented(n int)                         {}
func (m *dummyCollector) Complete() RoundMetric                      { return RoundMetric{} }
