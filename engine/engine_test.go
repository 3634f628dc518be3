package engine

import (
	"net/http/httptest"
	"testing"
	"time"

	"blokus/communication/client"
	"blokus/communication/server"
	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/searcher"
	"blokus/searcher/agent"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// mockAgent always proposes the same move.
type mockAgent struct {
	move  game.Candidate
	ok    bool
	calls int
}

func (a *mockAgent) FindMove(*game.Board, []game.Piece) (game.Candidate, bool, metrics.SearchMetric) {
	a.calls++
	return a.move, a.ok, metrics.SearchMetric{}
}

func randomAgents(seed uint64) []agent.Agent {
	agents := make([]agent.Agent, 0, game.NumPlayers)
	for i, p := range game.Players {
		agents = append(agents, agent.NewRandomAgent(p, nil, rand.New(rand.NewSource(seed+uint64(i)))))
	}
	return agents
}

func TestLocalEngine(t *testing.T) {
	t.Run("random agents play a full game", func(t *testing.T) {
		e := NewLocalEngine(randomAgents(1))

		winners, gameMetric, moveMetrics := e.Run()

		require.True(t, e.Game.IsOver())
		require.NotEmpty(t, winners)
		require.Equal(t, e.ID, gameMetric.ID)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, 1, moveMetrics[0].Step)
		require.Equal(t, game.Red, moveMetrics[0].Player)
		require.False(t, moveMetrics[0].Passed, "red can always open")
		for _, p := range winners {
			for _, other := range game.Players {
				require.GreaterOrEqual(t, gameMetric.Scores[p], gameMetric.Scores[other])
			}
		}
		// the last full round is all passes
		for _, m := range moveMetrics[len(moveMetrics)-game.NumPlayers:] {
			require.True(t, m.Passed)
		}
	})

	t.Run("illegal moves are turned into passes", func(t *testing.T) {
		bogus := &mockAgent{
			move: game.Candidate{Piece: game.StandardPieces(game.Red)[0], Origin: game.Coordinate{X: 9, Y: 9}},
			ok:   true,
		}
		passer := &mockAgent{}
		e := NewLocalEngine([]agent.Agent{bogus, passer, passer, passer})

		winners, gameMetric, moveMetrics := e.Run()

		require.Len(t, moveMetrics, game.NumPlayers)
		require.Equal(t, 1, bogus.calls)
		require.True(t, moveMetrics[0].Passed)
		require.Empty(t, moveMetrics[0].Piece)
		require.Equal(t, game.Players[:], winners, "everybody ties at zero")
		require.Zero(t, gameMetric.Scores[game.Red])
	})

	t.Run("panics without four agents", func(t *testing.T) {
		require.Panics(t, func() { NewLocalEngine(randomAgents(1)[:2]) })
	})
}

func TestRemoteAgent(t *testing.T) {
	srv := httptest.NewServer(server.NewServer(20, 3).Routes())
	defer srv.Close()
	c := client.NewClient(srv.URL, client.WithDelay(time.Millisecond))

	t.Run("plays the host's move", func(t *testing.T) {
		board := game.NewBoard()
		a := NewRemoteAgent(game.Green, c, time.Minute)

		got, ok, metric := a.FindMove(board, game.StandardPieces(game.Green)[:4])

		require.True(t, ok)
		require.False(t, metric.Passed)
		require.True(t, board.CanPlacePiece(got.Piece, got.Orientation, got.Origin))
	})

	t.Run("passes when the host passes", func(t *testing.T) {
		_, ok, metric := NewRemoteAgent(game.Green, c, 0).FindMove(game.NewBoard(), nil)

		require.False(t, ok)
		require.True(t, metric.Passed)
	})

	t.Run("passes when the host is unreachable", func(t *testing.T) {
		down := client.NewClient("http://127.0.0.1:1", client.WithAttempts(1))

		_, ok, _ := NewRemoteAgent(game.Red, down, time.Second).FindMove(game.NewBoard(), game.StandardPieces(game.Red))

		require.False(t, ok)
	})

	t.Run("drives a local game with a master seat", func(t *testing.T) {
		agents := randomAgents(9)
		agents[1] = NewRemoteAgent(game.Blue, c, time.Minute)
		agents[2] = agent.NewEvaluationAgent(searcher.NewMaster(game.Green, searcher.WithSeed(4), searcher.WithGenerator(searcher.Capped(searcher.Exhaustive, 20))))

		_, gameMetric, _ := NewLocalEngine(agents).Run()

		require.Positive(t, gameMetric.Scores[game.Blue])
		require.Positive(t, gameMetric.Scores[game.Green])
	})
}
