package game

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
)

// PieceID identifies a piece within a game. Hosts send it either as a JSON
// string or as a number.
type PieceID string

func (id *PieceID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PieceID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("piece id must be a string or number: %w", err)
	}
	*id = PieceID(n.String())
	return nil
}

// Piece is a polyomino owned by one player. BaseShape is not normalized and
// must not be modified once the piece is handed to a board or a searcher.
type Piece struct {
	ID        PieceID      `json:"id"`
	Owner     Player       `json:"owner"`
	BaseShape []Coordinate `json:"baseShape"`
}

// Size is the number of cells the piece covers.
func (p Piece) Size() int {
	return len(p.BaseShape)
}

func (p Piece) TransformedShape(o Orientation) []Coordinate {
	return TransformedShape(p.BaseShape, o)
}

// Candidate is a proposed placement of a piece. It is only produced during
// search and never stored.
type Candidate struct {
	Piece       Piece       `json:"piece"`
	Orientation Orientation `json:"orientation"`
	Origin      Coordinate  `json:"origin"`
}

func (c Candidate) String() string {
	return fmt.Sprintf("piece %s (%s) %s at %s", c.Piece.ID, c.Piece.Owner, c.Orientation, c.Origin)
}

// PlayerPieces returns the pieces owned by player, preserving order.
func PlayerPieces(pieces []Piece, player Player) []Piece {
	return lo.Filter(pieces, func(p Piece, _ int) bool {
		return p.Owner == player
	})
}

// Without returns pieces minus every piece whose ID is id.
func Without(pieces []Piece, id PieceID) []Piece {
	return lo.Reject(pieces, func(p Piece, _ int) bool {
		return p.ID == id
	})
}
