package agent

import (
	"blokus/experiments/metrics"
	"blokus/game"
)

type Agent interface {
	// FindMove returns the placement to play, or false to pass, along with
	// performance metrics (if collected) from the search
	FindMove(board *game.Board, pieces []game.Piece) (game.Candidate, bool, metrics.SearchMetric)
}
