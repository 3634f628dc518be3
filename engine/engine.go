package engine

import (
	"blokus/experiments/metrics"
	"blokus/game"
)

type Engine interface {
	// Run plays a game till every player passes in a row or a max number of
	// turns is reached
	Run() (winners []game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
