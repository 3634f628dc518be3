package game

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	Width  = 20
	Height = 20
)

// Board holds the owner of every cell, indexed [x][y]. It is a plain value:
// assigning a Board copies the whole grid, which is how search branches
// stay independent of each other.
type Board struct {
	cells [Width][Height]Player
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Copy returns an independent copy of b.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// StartingCorner returns the cell a player's first piece must cover.
func StartingCorner(player Player) Coordinate {
	switch player {
	case Red:
		return Coordinate{X: 0, Y: 0}
	case Blue:
		return Coordinate{X: Width - 1, Y: 0}
	case Green:
		return Coordinate{X: Width - 1, Y: Height - 1}
	case Yellow:
		return Coordinate{X: 0, Y: Height - 1}
	}
	panic(fmt.Sprintf("no starting corner for %s", player))
}

func (b *Board) IsValidCoordinate(c Coordinate) bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

// Owner returns the owner of c, or NoPlayer for empty or off-board cells.
func (b *Board) Owner(c Coordinate) Player {
	if !b.IsValidCoordinate(c) {
		return NoPlayer
	}
	return b.cells[c.X][c.Y]
}

// SetOwner writes a single cell. It exists for decoding boards received from
// a host and for test fixtures; game play goes through PlacePiece.
func (b *Board) SetOwner(c Coordinate, p Player) {
	if b.IsValidCoordinate(c) {
		b.cells[c.X][c.Y] = p
	}
}

// ComputeFinalCoordinates returns the cells piece would cover in orientation
// o with its shape origin at origin. No bounds check is made.
func (b *Board) ComputeFinalCoordinates(piece Piece, o Orientation, origin Coordinate) []Coordinate {
	shape := piece.TransformedShape(o)
	for i, c := range shape {
		shape[i] = c.Add(origin)
	}
	return shape
}

// CanPlacePiece reports whether the placement would pass ValidatePlacement.
// The specific failure is discarded and the board is not modified.
func (b *Board) CanPlacePiece(piece Piece, o Orientation, origin Coordinate) bool {
	return b.ValidatePlacement(piece, b.ComputeFinalCoordinates(piece, o, origin)) == nil
}

// ValidatePlacement checks the basic rules and then either the first-move
// rule or the subsequent-move rules, depending on whether the owner has
// already covered their starting corner.
func (b *Board) ValidatePlacement(piece Piece, finalCoords []Coordinate) error {
	if err := b.CheckBasicPlacementRules(finalCoords); err != nil {
		return err
	}
	if !b.HasPlacedFirstPiece(piece.Owner) {
		return b.CheckFirstPlacement(piece, finalCoords)
	}
	return b.CheckSubsequentPlacement(piece, finalCoords)
}

// CheckBasicPlacementRules fails when any coordinate is off the board or
// already owned.
func (b *Board) CheckBasicPlacementRules(finalCoords []Coordinate) error {
	for _, c := range finalCoords {
		if !b.IsValidCoordinate(c) {
			return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
		}
		if owner := b.cells[c.X][c.Y]; owner != NoPlayer {
			return fmt.Errorf("%w: %s owned by %s", ErrCellOccupied, c, owner)
		}
	}
	return nil
}

// HasPlacedFirstPiece reports whether player owns their starting corner.
// The corner cell is the only signal: a player who never covers it is
// treated as not having moved.
func (b *Board) HasPlacedFirstPiece(player Player) bool {
	return b.Owner(StartingCorner(player)) == player
}

func (b *Board) CheckFirstPlacement(piece Piece, finalCoords []Coordinate) error {
	corner := StartingCorner(piece.Owner)
	if !NewCoordinateSet(finalCoords...).Has(corner) {
		return fmt.Errorf("%w: %s", ErrFirstMoveMustIncludeCorner, corner)
	}
	return nil
}

// CheckSubsequentPlacement requires a corner touch with an existing own cell
// and vetoes the whole piece if any of its cells shares an edge with one.
func (b *Board) CheckSubsequentPlacement(piece Piece, finalCoords []Coordinate) error {
	return b.CheckSubsequentPlacementAgainst(finalCoords, NewCoordinateSet(b.PlayerCells(piece.Owner)...))
}

// CheckSubsequentPlacementAgainst is CheckSubsequentPlacement with the
// owner's cells already collected, for callers checking many placements of
// the same player against one board.
func (b *Board) CheckSubsequentPlacementAgainst(finalCoords []Coordinate, playerCells CoordinateSet) error {
	cornerTouch := false
	edgeContact := false
	for _, c := range finalCoords {
		if b.CheckCornerTouch(c, playerCells) {
			cornerTouch = true
		}
		if b.CheckEdgeContact(c, playerCells) {
			edgeContact = true
		}
	}
	if !cornerTouch {
		return ErrMustTouchOwnPieceByCorner
	}
	if edgeContact {
		return ErrCannotShareEdgeWithOwnPiece
	}
	return nil
}

func (b *Board) CheckCornerTouch(cell Coordinate, playerCells CoordinateSet) bool {
	for _, n := range cell.DiagonalNeighbors() {
		if playerCells.Has(n) {
			return true
		}
	}
	return false
}

func (b *Board) CheckEdgeContact(cell Coordinate, playerCells CoordinateSet) bool {
	for _, n := range cell.EdgeNeighbors() {
		if playerCells.Has(n) {
			return true
		}
	}
	return false
}

// PlayerCells scans the board and returns every cell owned by player.
func (b *Board) PlayerCells(player Player) []Coordinate {
	var cells []Coordinate
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if b.cells[x][y] == player {
				cells = append(cells, Coordinate{X: x, Y: y})
			}
		}
	}
	return cells
}

// OccupiedCount returns how many cells player owns.
func (b *Board) OccupiedCount(player Player) int {
	count := 0
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if b.cells[x][y] == player {
				count++
			}
		}
	}
	return count
}

// PlacePiece writes the piece owner into every cell the placement covers.
// It does not validate; off-board cells are skipped silently.
func (b *Board) PlacePiece(piece Piece, o Orientation, origin Coordinate) {
	for _, c := range b.ComputeFinalCoordinates(piece, o, origin) {
		if b.IsValidCoordinate(c) {
			b.cells[c.X][c.Y] = piece.Owner
		}
	}
}

func (b *Board) Place(c Candidate) {
	b.PlacePiece(c.Piece, c.Orientation, c.Origin)
}

// Hash fingerprints the cell grid.
func (b *Board) Hash() uint64 {
	var buf [Width * Height]byte
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			buf[x*Height+y] = byte(b.cells[x][y])
		}
	}
	return xxhash.Sum64(buf[:])
}

// String renders the board one row per line, y growing downwards, using the
// first letter of each owner and '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			owner := b.cells[x][y]
			if owner == NoPlayer {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(owner.String()[0] - 'a' + 'A')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
