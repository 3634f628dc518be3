package game

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Coordinate is a cell position on the board, or a point of a piece shape
// relative to the piece's origin. Coordinates compare by value and can be
// used directly as map keys.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// DiagonalNeighbors returns the four cells touching c only by a corner.
func (c Coordinate) DiagonalNeighbors() [4]Coordinate {
	return [4]Coordinate{
		{X: c.X - 1, Y: c.Y - 1},
		{X: c.X + 1, Y: c.Y - 1},
		{X: c.X - 1, Y: c.Y + 1},
		{X: c.X + 1, Y: c.Y + 1},
	}
}

// EdgeNeighbors returns the four cells sharing a side with c.
func (c Coordinate) EdgeNeighbors() [4]Coordinate {
	return [4]Coordinate{
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
	}
}

// CompareCoordinates orders by x, then y.
func CompareCoordinates(a, b Coordinate) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}

// CoordinateSet is an unordered set of coordinates.
type CoordinateSet map[Coordinate]struct{}

func NewCoordinateSet(coords ...Coordinate) CoordinateSet {
	set := make(CoordinateSet, len(coords))
	for _, c := range coords {
		set[c] = struct{}{}
	}
	return set
}

func (s CoordinateSet) Add(c Coordinate) {
	s[c] = struct{}{}
}

func (s CoordinateSet) Has(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the members ordered by x, then y.
func (s CoordinateSet) Sorted() []Coordinate {
	coords := make([]Coordinate, 0, len(s))
	for c := range s {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, CompareCoordinates)
	return coords
}

// Key returns a canonical string for the set: members sorted by x then y,
// written as "x,y" and joined with ";". Equal sets give equal keys.
func (s CoordinateSet) Key() string {
	var sb strings.Builder
	for i, c := range s.Sorted() {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(c.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(c.Y))
	}
	return sb.String()
}
