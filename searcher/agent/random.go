package agent

import (
	"time"

	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	owner     game.Player
	generator searcher.Generator
	rng       *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal
// placement of one of owner's pieces.
func NewRandomAgent(owner game.Player, generator searcher.Generator, rng *rand.Rand) Agent {
	if generator == nil {
		generator = searcher.Exhaustive
	}
	return &randomAgent{owner: owner, generator: generator, rng: rng}
}

func (a *randomAgent) FindMove(board *game.Board, pieces []game.Piece) (game.Candidate, bool, metrics.SearchMetric) {
	start := time.Now()
	candidates := a.generator.ComputeCandidates(board, game.PlayerPieces(pieces, a.owner))
	metric := metrics.SearchMetric{FirstPly: len(candidates)}
	if len(candidates) == 0 {
		metric.Passed = true
		metric.Duration = time.Since(start)
		return game.Candidate{}, false, metric
	}
	chosen := candidates[a.rng.Intn(len(candidates))]
	metric.Duration = time.Since(start)
	return chosen, true, metric
}
