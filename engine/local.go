package engine

import (
	"time"

	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/gamemaster"
	"blokus/meta"
	"blokus/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LocalEngine drives four in-process agents through a refereed game.
type LocalEngine struct {
	ID     uuid.UUID
	Game   *gamemaster.Game
	Agents map[game.Player]agent.Agent
}

// NewLocalEngine seats agents in turn order: red, blue, green, yellow.
func NewLocalEngine(agents []agent.Agent) *LocalEngine {
	if len(agents) != game.NumPlayers {
		panic("need exactly one agent per player")
	}
	seats := make(map[game.Player]agent.Agent, game.NumPlayers)
	for i, p := range game.Players {
		seats[p] = agents[i]
	}
	return &LocalEngine{
		ID:     uuid.New(),
		Game:   gamemaster.NewGame(),
		Agents: seats,
	}
}

// Run executes the entire game loop until the game is over.
func (e *LocalEngine) Run() ([]game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	logger := log.With().Str("game", e.ID.String()).Logger()
	_, getUpdate := e.Game.Init()

	startTime := time.Now()
	var moveMetrics []metrics.MoveMetric

	logger.Info().Msg("game started")
	turn := 1
	for !e.Game.IsOver() && turn <= meta.MaxTurns {
		player := e.Game.Current()
		move, ok, searchMetric := e.Agents[player].FindMove(e.Game.Board(), e.Game.AllPieces())

		moveMetric := metrics.MoveMetric{Step: turn, Player: player, SearchMetric: searchMetric}
		if ok {
			if err := e.Game.Play(move); err != nil {
				logger.Warn().Err(err).Str("player", player.String()).Msg("agent returned an illegal move, forcing pass")
				ok = false
			} else {
				moveMetric.Piece = move.Piece.ID
			}
		}
		if !ok {
			moveMetric.Passed = true
			if err := e.Game.Pass(); err != nil {
				panic(err) // only fails once the game is over
			}
		}
		moveMetrics = append(moveMetrics, moveMetric)

		for u, more := getUpdate(); more; u, more = getUpdate() {
			logger.Debug().Str("player", u.Player.String()).Bool("passed", u.Move == nil).Uint64("hash", u.Hash).Msg("update")
		}
		turn++
	}

	if !e.Game.IsOver() {
		logger.Warn().Int("turns", meta.MaxTurns).Msg("stopped before the game was over")
	}

	winners := e.Game.Winners()
	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		ID:         e.ID,
		Winners:    winners,
		Scores:     e.Game.Scores(),
		StartTime:  startTime,
		EndTime:    endTime,
		Duration:   endTime.Sub(startTime),
		TotalMoves: e.Game.Moves(),
	}
	logger.Info().Interface("scores", gameMetric.Scores).Interface("winners", winners).Msg("game over")
	return winners, gameMetric, moveMetrics
}
