package game

import "errors"

// Placement validation failures. Board methods wrap them with the offending
// coordinate; match them with errors.Is.
var (
	ErrOutOfBounds                 = errors.New("out of bounds")
	ErrCellOccupied                = errors.New("cell occupied")
	ErrFirstMoveMustIncludeCorner  = errors.New("first move must include starting corner")
	ErrMustTouchOwnPieceByCorner   = errors.New("must touch own piece by corner")
	ErrCannotShareEdgeWithOwnPiece = errors.New("cannot share edge with own piece")
)
