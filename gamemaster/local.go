package gamemaster

import (
	"fmt"

	"blokus/game"
	"blokus/utils"

	"github.com/samber/lo"
)

// Game referees a single four-player game: it owns the board and every
// player's remaining pieces, enforces turn order and placement rules, and
// ends the game once every player passes in a row.
type Game struct {
	board    *game.Board
	pieces   map[game.Player][]game.Piece
	current  game.Player
	passes   int
	moves    int
	gameOver bool
	updateCh chan Update
}

// NewGame starts a game in which every player holds the standard piece set.
func NewGame() *Game {
	pieces := make(map[game.Player][]game.Piece, game.NumPlayers)
	for _, p := range game.Players {
		pieces[p] = game.StandardPieces(p)
	}
	return NewGameWithPieces(pieces)
}

// NewGameWithPieces starts a game with custom piece sets. Red moves first.
func NewGameWithPieces(pieces map[game.Player][]game.Piece) *Game {
	total := 0
	owned := make(map[game.Player][]game.Piece, game.NumPlayers)
	for _, p := range game.Players {
		owned[p] = game.PlayerPieces(pieces[p], p)
		total += len(owned[p])
	}
	return &Game{
		board:   game.NewBoard(),
		pieces:  owned,
		current: game.Red,
		// Every turn places a piece or passes, and passes never run longer
		// than one round, so this bounds the number of updates.
		updateCh: make(chan Update, game.NumPlayers*(total+1)),
	}
}

// Init returns a copy of the starting board and a non-blocking reader of
// the update feed.
func (g *Game) Init() (*game.Board, UpdateGetter) {
	return g.board.Copy(), func() (Update, bool) {
		select {
		case u, ok := <-g.updateCh:
			if !ok { // Game over
				return Update{}, false
			}
			return u, true
		default:
			return Update{}, false
		}
	}
}

func (g *Game) Current() game.Player {
	return g.current
}

// Board returns a copy of the current board.
func (g *Game) Board() *game.Board {
	return g.board.Copy()
}

// Pieces returns the pieces player has not placed yet.
func (g *Game) Pieces(player game.Player) []game.Piece {
	return append([]game.Piece(nil), g.pieces[player]...)
}

// AllPieces returns every unplaced piece, in turn order of the owners.
func (g *Game) AllPieces() []game.Piece {
	return lo.FlatMap(game.Players[:], func(p game.Player, _ int) []game.Piece {
		return g.pieces[p]
	})
}

func (g *Game) IsOver() bool {
	return g.gameOver
}

func (g *Game) Moves() int {
	return g.moves
}

// Play places a piece for the current player. The piece is looked up by ID
// among the player's remaining pieces; the caller's copy of its shape is
// ignored.
func (g *Game) Play(move game.Candidate) error {
	if g.gameOver {
		return ErrGameOver
	}
	if move.Piece.Owner != g.current {
		return fmt.Errorf("%w: %s to play, got a %s piece", ErrNotYourTurn, g.current, move.Piece.Owner)
	}

	remaining := g.pieces[g.current]
	ids := lo.Map(remaining, func(p game.Piece, _ int) game.PieceID { return p.ID })
	idx := utils.FindIndex(ids, move.Piece.ID)
	if idx < 0 {
		return fmt.Errorf("%w: %s for %s", ErrUnknownPiece, move.Piece.ID, g.current)
	}
	piece := remaining[idx]

	coords := g.board.ComputeFinalCoordinates(piece, move.Orientation, move.Origin)
	if err := g.board.ValidatePlacement(piece, coords); err != nil {
		return fmt.Errorf("illegal move %s: %w", move, err)
	}

	g.board.PlacePiece(piece, move.Orientation, move.Origin)
	g.pieces[g.current] = game.Without(remaining, piece.ID)
	g.passes = 0
	g.moves++

	played := game.Candidate{Piece: piece, Orientation: move.Orientation, Origin: move.Origin}
	g.advance(&played)
	return nil
}

// Pass skips the current player's turn. The game ends when every player has
// passed in a row.
func (g *Game) Pass() error {
	if g.gameOver {
		return ErrGameOver
	}
	g.passes++
	g.moves++
	g.advance(nil)
	return nil
}

func (g *Game) advance(move *game.Candidate) {
	player := g.current
	g.current = g.current.Next()
	if g.passes >= game.NumPlayers || len(g.AllPieces()) == 0 {
		g.gameOver = true
	}

	g.updateCh <- Update{
		Player: player,
		Move:   move,
		Board:  g.board.Copy(),
		Hash:   g.board.Hash(),
	}
	if g.gameOver {
		close(g.updateCh)
	}
}

// Scores returns the number of cells each player covers.
func (g *Game) Scores() map[game.Player]int {
	return lo.SliceToMap(game.Players[:], func(p game.Player) (game.Player, int) {
		return p, g.board.OccupiedCount(p)
	})
}

// Winners returns every player tied for the highest score, in turn order.
func (g *Game) Winners() []game.Player {
	scores := g.Scores()
	best := lo.Max(lo.Values(scores))
	return lo.Filter(game.Players[:], func(p game.Player, _ int) bool {
		return scores[p] == best
	})
}
