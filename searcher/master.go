package searcher

import (
	"math"
	"slices"

	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/utils"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Option func(m *Master)

// Master picks a move for one player with a greedy two-ply lookahead: every
// first-ply candidate is scored by the best board reachable with one more
// move of the same player. Opponents are assumed to pass.
//
// A Master owns its random source and is not safe for concurrent use.
type Master struct {
	owner     game.Player
	generator Generator
	evaluate  game.Evaluate
	rng       *rand.Rand
	metrics   metrics.Collector
}

func WithGenerator(generator Generator) Option {
	return func(m *Master) {
		if generator != nil {
			m.generator = generator
		}
	}
}

// WithRand sets the source used to shuffle candidates of equal size.
func WithRand(rng *rand.Rand) Option {
	return func(m *Master) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *Master) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Master) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Master) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMaster(owner game.Player, options ...Option) *Master {
	if !owner.Valid() {
		panic("master must play for one of the four players")
	}
	m := &Master{ // Default values
		owner:     owner,
		generator: Exhaustive,
		evaluate:  game.EvaluateOccupancy,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		seed := frand.Uint64n(math.MaxUint64)
		log.Debug().Str("player", owner.String()).Uint64("seed", seed).Msg("seeded master")
		m.rng = rand.New(rand.NewSource(seed))
	}
	return m
}

func (m *Master) Owner() game.Player {
	return m.owner
}

// Candidate returns the chosen placement, or false when the player should pass.
func (m *Master) Candidate(board *game.Board, pieces []game.Piece) (game.Candidate, bool) {
	candidate, ok, _ := m.Search(board, pieces)
	return candidate, ok
}

// Search is Candidate with search metrics. board is read but never modified;
// every branch is simulated on its own copy.
func (m *Master) Search(board *game.Board, pieces []game.Piece) (game.Candidate, bool, metrics.SearchMetric) {
	m.metrics.Start()
	candidate, score, ok := m.search(board, pieces)
	m.metrics.SetScore(score)
	return candidate, ok, m.metrics.Complete(!ok)
}

func (m *Master) search(board *game.Board, pieces []game.Piece) (game.Candidate, int, bool) {
	myPieces := game.PlayerPieces(pieces, m.owner)
	if len(myPieces) == 0 {
		log.Info().Str("player", m.owner.String()).Msg("no pieces left, passing")
		return game.Candidate{}, 0, false
	}

	firstMoves := m.generator.ComputeCandidates(board, myPieces)
	if len(firstMoves) == 0 {
		log.Info().Str("player", m.owner.String()).Msg("cannot place any piece, passing")
		return game.Candidate{}, 0, false
	}
	firstMoves = m.order(firstMoves)

	var best game.Candidate
	bestScore := 0
	found := false
	for _, first := range firstMoves {
		m.metrics.AddFirstPly()
		afterFirst := board.Copy()
		afterFirst.Place(first)

		score := m.bestFollowUp(afterFirst, game.Without(myPieces, first.Piece.ID))
		// Strict comparison keeps the earliest candidate on ties
		if score > bestScore {
			best, bestScore, found = first, score, true
		}
	}

	if !found {
		log.Info().Str("player", m.owner.String()).Msg("cannot find beneficial move, passing")
		return game.Candidate{}, 0, false
	}
	log.Debug().Str("player", m.owner.String()).Stringer("move", best).Int("score", bestScore).Msg("found move")
	return best, bestScore, true
}

// bestFollowUp scores afterFirst by the best evaluation reachable with one
// more placement from remaining, or by afterFirst itself when there is none.
func (m *Master) bestFollowUp(afterFirst *game.Board, remaining []game.Piece) int {
	secondMoves := m.generator.ComputeCandidates(afterFirst, remaining)
	if len(secondMoves) == 0 {
		return m.evaluate(afterFirst, m.owner)
	}

	best := math.MinInt
	for _, second := range secondMoves {
		m.metrics.AddSecondPly()
		afterSecond := afterFirst.Copy()
		afterSecond.Place(second)
		best = max(best, m.evaluate(afterSecond, m.owner))
	}
	return best
}

// order groups candidates by piece size, shuffles each group and returns the
// groups largest first. Groups are shuffled in that same order so a seeded
// source always yields the same sequence.
func (m *Master) order(candidates []game.Candidate) []game.Candidate {
	groups := lo.GroupBy(candidates, func(c game.Candidate) int {
		return c.Piece.Size()
	})
	sizes := lo.Keys(groups)
	slices.SortFunc(sizes, func(a, b int) int { return b - a })

	ordered := make([]game.Candidate, 0, len(candidates))
	for _, size := range sizes {
		group := groups[size]
		utils.Shuffle(m.rng, group)
		ordered = append(ordered, group...)
	}
	return ordered
}
