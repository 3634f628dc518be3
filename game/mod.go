package game

// Evaluate scores a board from player's point of view. Higher is better; the
// search only commits to a move whose score is positive.
type Evaluate func(board *Board, player Player) int
