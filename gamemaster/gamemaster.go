package gamemaster

import (
	"errors"

	"blokus/game"
)

var (
	ErrGameOver     = errors.New("game is over - no moves allowed")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrUnknownPiece = errors.New("piece is not available")
)

// Update is published after every accepted move or pass.
type Update struct {
	Player game.Player
	Move   *game.Candidate // nil for a pass
	Board  *game.Board     // copy of the board after the move
	Hash   uint64
}

// UpdateGetter returns the next unread update, or false when there is none
// yet or the game is over and every update has been read.
type UpdateGetter func() (Update, bool)
