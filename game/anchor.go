package game

// Anchors returns the empty cells where a new piece of player could touch an
// existing own cell by a corner without sharing an edge with one, sorted by
// x then y. Before the first move the only anchor is the starting corner,
// provided it is still empty.
func (b *Board) Anchors(player Player) []Coordinate {
	if !b.HasPlacedFirstPiece(player) {
		corner := StartingCorner(player)
		if b.Owner(corner) != NoPlayer {
			return nil
		}
		return []Coordinate{corner}
	}

	own := NewCoordinateSet(b.PlayerCells(player)...)
	anchors := make(CoordinateSet)
	for c := range own {
		for _, n := range c.DiagonalNeighbors() {
			if !b.IsValidCoordinate(n) || b.cells[n.X][n.Y] != NoPlayer {
				continue
			}
			if b.CheckEdgeContact(n, own) {
				continue
			}
			anchors.Add(n)
		}
	}
	return anchors.Sorted()
}
