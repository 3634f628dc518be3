package searcher

import "blokus/game"

// Generator proposes legal placements of pieces on board. A nil and an empty
// result both mean there is no legal move.
type Generator interface {
	ComputeCandidates(board *game.Board, pieces []game.Piece) []game.Candidate
}

type GeneratorFunc func(board *game.Board, pieces []game.Piece) []game.Candidate

func (f GeneratorFunc) ComputeCandidates(board *game.Board, pieces []game.Piece) []game.Candidate {
	return f(board, pieces)
}
