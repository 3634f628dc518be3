package game

// EvaluateOccupancy counts the cells player owns.
func EvaluateOccupancy(b *Board, player Player) int {
	return b.OccupiedCount(player)
}

// EvaluateFrontier ranks by occupancy first and, among equal occupancy, by
// the number of open anchors left for future moves.
func EvaluateFrontier(b *Board, player Player) int {
	return b.OccupiedCount(player)*Width*Height + len(b.Anchors(player))
}
