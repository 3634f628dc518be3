package experiments

import (
	"fmt"
	"runtime"
	"time"

	"blokus/communication/client"
	"blokus/config"
	"blokus/engine"
	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/searcher"
	"blokus/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"lukechampine.com/frand"
)

const (
	masterID = 0
	randomID = 1
	remoteID = 2

	remoteTimeout = 30 * time.Second
)

// Summary aggregates the searching seat's results over an experiment.
type Summary struct {
	Dir        string
	Games      int
	Wins       int // games the searching seat won or tied for first
	MeanScore  float64
	StdDev     float64
	MeanRandom float64
}

// RunMasterVsRandom plays cfg.Games games of one searching seat against three
// random agents, rotating the searching seat through the four colors. The
// searching seat is the local Master unless cfg.ServerURL names a host, in
// which case that host plays it. Records go under cfg.OutputDir.
func RunMasterVsRandom(cfg config.Config) (Summary, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = frand.Uint64n(1 << 62)
	}
	searching := metrics.AgentConfig{ID: masterID, Kind: "master", Evaluate: "occupancy", MaxCandidates: cfg.MaxCandidates}
	if cfg.ServerURL != "" {
		searching = metrics.AgentConfig{ID: remoteID, Kind: "remote", Evaluate: cfg.ServerURL}
	}
	baseline := metrics.AgentConfig{ID: randomID, Kind: "random"}

	var c *client.Client
	if cfg.ServerURL != "" {
		c = client.NewClient(cfg.ServerURL)
	}
	newSeat := func(owner game.Player, gameSeed uint64) agent.Agent {
		if c != nil {
			return engine.NewRemoteAgent(owner, c, remoteTimeout)
		}
		return agent.NewEvaluationAgent(searcher.NewMaster(owner,
			searcher.WithGenerator(searcher.Capped(searcher.Exhaustive, cfg.MaxCandidates)),
			searcher.WithSeed(gameSeed),
			searcher.WithMetrics(),
		))
	}

	log.Info().Int("games", cfg.Games).Uint64("seed", seed).Str("opponent", searching.Kind).Msg("starting master_vs_random experiment...")

	gameRecords := make([]metrics.GameRecord, cfg.Games)
	moveRecords := make([][]metrics.MoveRecord, cfg.Games)
	searchingSeat := make([]game.Player, cfg.Games)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			gameSeed := seed + uint64(i)*uint64(game.NumPlayers+1)
			seat := game.Players[i%game.NumPlayers]
			agents := make([]agent.Agent, 0, game.NumPlayers)
			seats := make([]int, 0, game.NumPlayers)
			for j, p := range game.Players {
				if p == seat {
					agents = append(agents, newSeat(p, gameSeed))
					seats = append(seats, searching.ID)
					continue
				}
				rng := rand.New(rand.NewSource(gameSeed + uint64(j) + 1))
				agents = append(agents, agent.NewRandomAgent(p, nil, rng))
				seats = append(seats, baseline.ID)
			}

			e := engine.NewLocalEngine(agents)
			winners, gameMetric, moveMetrics := e.Run()

			searchingSeat[i] = seat
			gameRecords[i] = metrics.GameRecord{Seats: seats, GameMetric: gameMetric}
			moveRecords[i] = make([]metrics.MoveRecord, 0, len(moveMetrics))
			for _, mm := range moveMetrics {
				moveRecords[i] = append(moveRecords[i], metrics.MoveRecord{Game: gameMetric.ID.String(), MoveMetric: mm})
			}
			log.Info().Int("game", i+1).Str("seat", seat.String()).Interface("winners", winners).Msg("completed game")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := summarize(gameRecords, searchingSeat)
	log.Info().
		Int("games", summary.Games).
		Int("wins", summary.Wins).
		Float64("mean_score", summary.MeanScore).
		Float64("stddev", summary.StdDev).
		Float64("mean_random", summary.MeanRandom).
		Msg("completed master_vs_random experiment")

	writer, err := metrics.NewWriter(cfg.OutputDir, "master_vs_random")
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs([]metrics.AgentConfig{searching, baseline}); err != nil {
		return summary, err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, err
	}
	log.Info().Msg("stored game records")

	var flat []metrics.MoveRecord
	for _, records := range moveRecords {
		flat = append(flat, records...)
	}
	if err := writer.WriteMoveRecords(flat); err != nil {
		return summary, err
	}
	log.Info().Str("dir", summary.Dir).Msg("stored move records")

	return summary, nil
}

func summarize(records []metrics.GameRecord, searchingSeat []game.Player) Summary {
	summary := Summary{Games: len(records)}
	var searching, random []float64
	for i, record := range records {
		seat := searchingSeat[i]
		for _, p := range game.Players {
			score := float64(record.Scores[p])
			if p == seat {
				searching = append(searching, score)
			} else {
				random = append(random, score)
			}
		}
		for _, w := range record.Winners {
			if w == seat {
				summary.Wins++
			}
		}
	}
	summary.MeanScore, summary.StdDev = stat.MeanStdDev(searching, nil)
	summary.MeanRandom = stat.Mean(random, nil)
	return summary
}
