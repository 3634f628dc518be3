package communication

import (
	"errors"
	"fmt"

	"blokus/game"
)

var (
	ErrGridSize      = fmt.Errorf("cells must be a %dx%d grid", game.Width, game.Height)
	ErrUnknownPlayer = errors.New("owner must be one of the four players")
)

// Cell is one board cell on the wire; a null owner marks an empty cell.
type Cell struct {
	Owner *game.Player `json:"owner"`
}

// Request asks for a move for Owner. Cells is indexed [x][y].
type Request struct {
	Cells  [][]Cell     `json:"cells"`
	Pieces []game.Piece `json:"pieces"`
	Owner  game.Player  `json:"owner"`
}

// Response is the chosen placement. The endpoint answers null instead when
// the player passes.
type Response struct {
	Piece    game.Piece      `json:"piece"`
	Origin   game.Coordinate `json:"origin"`
	Rotation game.Rotation   `json:"rotation"`
	Flipped  bool            `json:"flipped"`
}

func NewRequest(board *game.Board, pieces []game.Piece, owner game.Player) Request {
	cells := make([][]Cell, game.Width)
	for x := range cells {
		cells[x] = make([]Cell, game.Height)
		for y := range cells[x] {
			if p := board.Owner(game.Coordinate{X: x, Y: y}); p != game.NoPlayer {
				cells[x][y].Owner = &p
			}
		}
	}
	return Request{Cells: cells, Pieces: pieces, Owner: owner}
}

// Board checks the request and rebuilds the board it describes.
func (r Request) Board() (*game.Board, error) {
	if !r.Owner.Valid() {
		return nil, ErrUnknownPlayer
	}
	if len(r.Cells) != game.Width {
		return nil, fmt.Errorf("%w: got %d columns", ErrGridSize, len(r.Cells))
	}
	board := game.NewBoard()
	for x, column := range r.Cells {
		if len(column) != game.Height {
			return nil, fmt.Errorf("%w: column %d has %d cells", ErrGridSize, x, len(column))
		}
		for y, cell := range column {
			if cell.Owner != nil {
				board.SetOwner(game.Coordinate{X: x, Y: y}, *cell.Owner)
			}
		}
	}
	return board, nil
}

func NewResponse(c game.Candidate) *Response {
	return &Response{
		Piece:    c.Piece,
		Origin:   c.Origin,
		Rotation: c.Orientation.Rotation,
		Flipped:  c.Orientation.Flipped,
	}
}

func (r *Response) Candidate() (game.Candidate, error) {
	if !r.Rotation.Valid() {
		return game.Candidate{}, fmt.Errorf("invalid rotation %d", int(r.Rotation))
	}
	return game.Candidate{
		Piece:       r.Piece,
		Orientation: game.Orientation{Rotation: r.Rotation, Flipped: r.Flipped},
		Origin:      r.Origin,
	}, nil
}
