package searcher

import "blokus/game"

type placementKey struct {
	piece       game.PieceID
	orientation game.Orientation
	origin      game.Coordinate
}

type exhaustive struct{}

// Exhaustive lists every legal placement of every piece. Each placement must
// cover one of its owner's anchors, so origins are derived by lining up each
// cell of each unique orientation with each anchor. Output is ordered by
// piece, then orientation, then anchor, then shape cell.
var Exhaustive Generator = exhaustive{}

func (exhaustive) ComputeCandidates(board *game.Board, pieces []game.Piece) []game.Candidate {
	var candidates []game.Candidate
	players := make(map[game.Player]*playerView, game.NumPlayers)
	seen := make(map[placementKey]struct{})

	for _, piece := range pieces {
		if !piece.Owner.Valid() || piece.Size() == 0 {
			continue
		}
		view, ok := players[piece.Owner]
		if !ok {
			view = newPlayerView(board, piece.Owner)
			players[piece.Owner] = view
		}
		if len(view.anchors) == 0 {
			continue
		}

		for _, u := range game.GenerateUniqueOrientations(piece) {
			shape := piece.TransformedShape(u.Orientation)
			for _, anchor := range view.anchors {
				for _, cell := range shape {
					key := placementKey{piece: piece.ID, orientation: u.Orientation, origin: anchor.Sub(cell)}
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
					if view.legal(board, piece, key.orientation, key.origin) {
						candidates = append(candidates, game.Candidate{
							Piece:       piece,
							Orientation: key.orientation,
							Origin:      key.origin,
						})
					}
				}
			}
		}
	}
	return candidates
}

// playerView caches what legality checks need to know about one player.
type playerView struct {
	anchors []game.Coordinate
	cells   game.CoordinateSet
	moved   bool
}

func newPlayerView(board *game.Board, player game.Player) *playerView {
	return &playerView{
		anchors: board.Anchors(player),
		cells:   game.NewCoordinateSet(board.PlayerCells(player)...),
		moved:   board.HasPlacedFirstPiece(player),
	}
}

// legal agrees with board.CanPlacePiece.
func (v *playerView) legal(board *game.Board, piece game.Piece, o game.Orientation, origin game.Coordinate) bool {
	coords := board.ComputeFinalCoordinates(piece, o, origin)
	if board.CheckBasicPlacementRules(coords) != nil {
		return false
	}
	if !v.moved {
		return board.CheckFirstPlacement(piece, coords) == nil
	}
	return board.CheckSubsequentPlacementAgainst(coords, v.cells) == nil
}

// Capped keeps at most n of g's candidates, in g's order. n <= 0 disables the cap.
func Capped(g Generator, n int) Generator {
	if n <= 0 {
		return g
	}
	return GeneratorFunc(func(board *game.Board, pieces []game.Piece) []game.Candidate {
		candidates := g.ComputeCandidates(board, pieces)
		if len(candidates) > n {
			candidates = candidates[:n]
		}
		return candidates
	})
}
