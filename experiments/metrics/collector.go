package metrics

import (
	"mills/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Searcher     string
	Goroutines   int
	Depth        int // Deepest completed iteration
	Duration     time.Duration
	Nodes        int // Positions visited, or episodes for MCTS
	TableHits    int
	FullPlayouts int
	Candidates   int // Equally best successors found
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Color
	Winner         game.Color // Empty when the turn limit was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(searcher string, goroutines int)
	SetDepth(depth int)
	AddNode()
	AddTableHit()
	AddFullPlayout()
	Complete(candidates int) SearchMetric
}

type collector struct {
	searcher     string
	goroutines   int
	startTime    time.Time
	depth        atomic.Int32
	nodes        atomic.Int64
	tableHits    atomic.Int64
	fullPlayouts atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(searcher string, goroutines int) {
	m.startTime = time.Now()
	m.searcher = searcher
	m.goroutines = goroutines
	m.depth.Store(0)
	m.nodes.Store(0)
	m.tableHits.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTableHit() {
	m.tableHits.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) Complete(candidates int) SearchMetric {
	return SearchMetric{
		Searcher:     m.searcher,
		Goroutines:   m.goroutines,
		Depth:        int(m.depth.Load()),
		Duration:     time.Since(m.startTime),
		Nodes:        int(m.nodes.Load()),
		TableHits:    int(m.tableHits.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Candidates:   candidates,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(searcher string, goroutines int) {}
func (m *dummyCollector) SetDepth(depth int)                    {}
func (m *dummyCollector) AddNode()                              {}
func (m *dummyCollector) AddTableHit()                          {}
func (m *dummyCollector) AddFullPlayout()                       {}
func (m *dummyCollector) Complete(candidates int) SearchMetric  { return SearchMetric{} }
