package agent

import (
	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/searcher"
)

type evaluationAgent struct {
	master *searcher.Master
}

// NewEvaluationAgent returns an agent playing the two-ply search's choice.
func NewEvaluationAgent(master *searcher.Master) Agent {
	return evaluationAgent{master: master}
}

func (a evaluationAgent) FindMove(board *game.Board, pieces []game.Piece) (game.Candidate, bool, metrics.SearchMetric) {
	return a.master.Search(board, pieces)
}
