package game

// UniqueOrientation is one geometrically distinct way to lay a piece down.
// Shape is normalized so its bounding box starts at (0,0).
type UniqueOrientation struct {
	Orientation Orientation
	Shape       CoordinateSet
}

// NormalizeShapeCoordinates shifts coords so that the smallest x and the
// smallest y are both zero, dropping duplicate points.
func NormalizeShapeCoordinates(coords []Coordinate) CoordinateSet {
	if len(coords) == 0 {
		return CoordinateSet{}
	}
	minX, minY := coords[0].X, coords[0].Y
	for _, c := range coords[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}
	shift := Coordinate{X: -minX, Y: -minY}
	set := make(CoordinateSet, len(coords))
	for _, c := range coords {
		set.Add(c.Add(shift))
	}
	return set
}

// GenerateUniqueOrientations walks all eight rotation/flip combinations,
// rotations outermost, and keeps the first combination producing each
// distinct normalized shape.
func GenerateUniqueOrientations(piece Piece) []UniqueOrientation {
	seen := make(map[string]struct{}, 8)
	var results []UniqueOrientation
	for _, r := range Rotations {
		for _, flipped := range [2]bool{false, true} {
			o := Orientation{Rotation: r, Flipped: flipped}
			normalized := NormalizeShapeCoordinates(piece.TransformedShape(o))
			key := normalized.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			results = append(results, UniqueOrientation{Orientation: o, Shape: normalized})
		}
	}
	return results
}
