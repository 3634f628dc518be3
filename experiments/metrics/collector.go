package metrics

import (
	"time"

	"blokus/game"

	"github.com/google/uuid"
)

// SearchMetric describes a single call to the move search.
type SearchMetric struct {
	Duration  time.Duration
	FirstPly  int // first-ply candidates expanded
	SecondPly int // second-ply boards evaluated
	Score     int
	Passed    bool
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Piece  game.PieceID // empty on a pass
	SearchMetric
}

type GameMetric struct {
	ID         uuid.UUID
	Winners    []game.Player
	Scores     map[game.Player]int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start()
	AddFirstPly()
	AddSecondPly()
	SetScore(score int)
	Complete(passed bool) SearchMetric
}

// collector is owned by a single searcher and is not safe for concurrent use.
type collector struct {
	startTime time.Time
	firstPly  int
	secondPly int
	score     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.firstPly = 0
	m.secondPly = 0
	m.score = 0
}

func (m *collector) AddFirstPly() {
	m.firstPly++
}

func (m *collector) AddSecondPly() {
	m.secondPly++
}

func (m *collector) SetScore(score int) {
	m.score = score
}

func (m *collector) Complete(passed bool) SearchMetric {
	return SearchMetric{
		Duration:  time.Since(m.startTime),
		FirstPly:  m.firstPly,
		SecondPly: m.secondPly,
		Score:     m.score,
		Passed:    passed,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                            {}
func (m *dummyCollector) AddFirstPly()                      {}
func (m *dummyCollector) AddSecondPly()                     {}
func (m *dummyCollector) SetScore(score int)                {}
func (m *dummyCollector) Complete(passed bool) SearchMetric { return SearchMetric{Passed: passed} }
