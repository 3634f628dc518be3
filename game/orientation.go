package game

import "fmt"

// Rotation is a clockwise quarter-turn count expressed in degrees.
type Rotation int

const (
	RotationNone Rotation = 0
	Rotation90   Rotation = 90
	Rotation180  Rotation = 180
	Rotation270  Rotation = 270
)

// Rotations lists every rotation in enumeration order.
var Rotations = [4]Rotation{RotationNone, Rotation90, Rotation180, Rotation270}

func (r Rotation) Valid() bool {
	switch r {
	case RotationNone, Rotation90, Rotation180, Rotation270:
		return true
	}
	return false
}

func (r Rotation) String() string {
	return fmt.Sprintf("%d°", int(r))
}

// Orientation is a rotation followed by an optional mirror flip. It is a
// plain value: pieces never carry one, candidates do.
type Orientation struct {
	Rotation Rotation `json:"rotation"`
	Flipped  bool     `json:"flipped"`
}

// Apply maps a base-shape point through the orientation. The rotation is
// always applied first and the flip second; swapping them yields a
// different shape for the same label.
func (o Orientation) Apply(c Coordinate) Coordinate {
	x, y := c.X, c.Y
	switch o.Rotation {
	case Rotation90:
		x, y = y, -x
	case Rotation180:
		x, y = -x, -y
	case Rotation270:
		x, y = -y, x
	}
	if o.Flipped {
		x = -x
	}
	return Coordinate{X: x, Y: y}
}

func (o Orientation) String() string {
	if o.Flipped {
		return o.Rotation.String() + " flipped"
	}
	return o.Rotation.String()
}

// TransformedShape maps every point of shape through o.
func TransformedShape(shape []Coordinate, o Orientation) []Coordinate {
	out := make([]Coordinate, len(shape))
	for i, c := range shape {
		out[i] = o.Apply(c)
	}
	return out
}
