package engine

import (
	"context"
	"time"

	"blokus/communication"
	"blokus/communication/client"
	"blokus/experiments/metrics"
	"blokus/game"

	"github.com/rs/zerolog/log"
)

// RemoteAgent asks a host over HTTP for its moves. Host failures are
// logged and played as passes.
type RemoteAgent struct {
	owner   game.Player
	client  *client.Client
	timeout time.Duration
}

func NewRemoteAgent(owner game.Player, c *client.Client, timeout time.Duration) *RemoteAgent {
	return &RemoteAgent{owner: owner, client: c, timeout: timeout}
}

func (a *RemoteAgent) FindMove(board *game.Board, pieces []game.Piece) (game.Candidate, bool, metrics.SearchMetric) {
	ctx := context.Background()
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := a.client.FindMove(ctx, communication.NewRequest(board, pieces, a.owner))
	metric := metrics.SearchMetric{Duration: time.Since(start), Passed: true}
	if err != nil {
		log.Error().Err(err).Str("player", a.owner.String()).Msg("remote agent failed, passing")
		return game.Candidate{}, false, metric
	}
	if resp == nil {
		return game.Candidate{}, false, metric
	}
	candidate, err := resp.Candidate()
	if err != nil {
		log.Error().Err(err).Str("player", a.owner.String()).Msg("remote agent sent a bad move, passing")
		return game.Candidate{}, false, metric
	}
	metric.Passed = false
	return candidate, true, metric
}
