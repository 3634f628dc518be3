package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func single(owner Player, at Coordinate) Piece {
	return Piece{ID: "1", Owner: owner, BaseShape: []Coordinate{at}}
}

func TestBoardDimensions(t *testing.T) {
	require.Equal(t, 20, Width)
	require.Equal(t, 20, Height)
}

func TestIsValidCoordinate(t *testing.T) {
	board := NewBoard()
	for x := -1; x <= Width; x++ {
		for y := -1; y <= Height; y++ {
			want := x >= 0 && y >= 0 && x < Width && y < Height
			require.Equal(t, want, board.IsValidCoordinate(Coordinate{X: x, Y: y}), "(%d,%d)", x, y)
		}
	}
}

func TestComputeFinalCoordinates(t *testing.T) {
	t.Run("translates the base shape by the origin", func(t *testing.T) {
		board := NewBoard()
		shapes := [][]Coordinate{
			{{0, 0}, {1, 0}},
			{{0, 0}, {0, 1}, {2, 2}},
			{{2, 2}, {3, 3}},
		}
		for _, shape := range shapes {
			for ox := 0; ox < 3; ox++ {
				for oy := 0; oy < 3; oy++ {
					piece := Piece{ID: "test", Owner: Blue, BaseShape: shape}
					got := board.ComputeFinalCoordinates(piece, Orientation{}, Coordinate{X: ox, Y: oy})

					want := make([]Coordinate, len(shape))
					for i, s := range shape {
						want[i] = Coordinate{X: s.X + ox, Y: s.Y + oy}
					}
					require.Equal(t, want, got)
				}
			}
		}
	})

	t.Run("applies the orientation before translating", func(t *testing.T) {
		board := NewBoard()
		piece := Piece{ID: "I2", Owner: Red, BaseShape: []Coordinate{{0, 0}, {1, 0}}}

		got := board.ComputeFinalCoordinates(piece, Orientation{Rotation: Rotation90}, Coordinate{X: 5, Y: 5})

		require.Equal(t, []Coordinate{{5, 5}, {5, 4}}, got)
	})

	t.Run("does not bounds check", func(t *testing.T) {
		board := NewBoard()

		got := board.ComputeFinalCoordinates(single(Red, Coordinate{}), Orientation{}, Coordinate{X: -4, Y: 40})

		require.Equal(t, []Coordinate{{-4, 40}}, got)
	})
}

func TestCheckBasicPlacementRules(t *testing.T) {
	t.Run("out of bounds", func(t *testing.T) {
		err := NewBoard().CheckBasicPlacementRules([]Coordinate{{-1, 0}})

		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("occupied cell", func(t *testing.T) {
		board := NewBoard()
		board.SetOwner(Coordinate{0, 0}, Red)

		err := board.CheckBasicPlacementRules([]Coordinate{{0, 0}})

		require.ErrorIs(t, err, ErrCellOccupied)
	})

	t.Run("occupied by another player still counts", func(t *testing.T) {
		board := NewBoard()
		board.SetOwner(Coordinate{4, 4}, Yellow)

		require.ErrorIs(t, board.CheckBasicPlacementRules([]Coordinate{{4, 4}}), ErrCellOccupied)
	})

	t.Run("valid and empty", func(t *testing.T) {
		board := NewBoard()
		board.SetOwner(Coordinate{0, 0}, Red)

		require.NoError(t, board.CheckBasicPlacementRules([]Coordinate{{1, 0}}))
		for _, coords := range [][]Coordinate{
			{{2, 2}, {3, 2}},
			{{19, 19}},
			{{10, 10}, {11, 11}, {12, 12}},
			{{0, 19}, {19, 0}},
		} {
			require.NoError(t, board.CheckBasicPlacementRules(coords))
		}
	})

	t.Run("does not mutate the board", func(t *testing.T) {
		board := NewBoard()
		before := board.Hash()

		_ = board.CheckBasicPlacementRules([]Coordinate{{3, 3}, {3, 4}})

		require.Equal(t, before, board.Hash())
	})
}

func TestCheckFirstPlacement(t *testing.T) {
	t.Run("missing the corner fails", func(t *testing.T) {
		board := NewBoard()
		coords := []Coordinate{{1, 1}}

		err := board.CheckFirstPlacement(Piece{ID: "1", Owner: Red, BaseShape: coords}, coords)

		require.ErrorIs(t, err, ErrFirstMoveMustIncludeCorner)
	})

	t.Run("covering the corner succeeds", func(t *testing.T) {
		board := NewBoard()

		err := board.CheckFirstPlacement(single(Red, Coordinate{1, 1}), []Coordinate{{0, 0}})

		require.NoError(t, err)
	})

	t.Run("every player must use their own corner", func(t *testing.T) {
		for _, player := range Players {
			corner := StartingCorner(player)
			for dx := 0; dx < 2; dx++ {
				for dy := 0; dy < 2; dy++ {
					coords := []Coordinate{{X: corner.X + dx, Y: corner.Y + dy}}
					err := NewBoard().CheckFirstPlacement(single(player, coords[0]), coords)
					if dx == 0 && dy == 0 {
						require.NoError(t, err, player.String())
					} else {
						require.ErrorIs(t, err, ErrFirstMoveMustIncludeCorner, player.String())
					}
				}
			}
		}
	})
}

func TestCheckSubsequentPlacement(t *testing.T) {
	t.Run("corner-only contact succeeds", func(t *testing.T) {
		board := NewBoard()
		board.SetOwner(Coordinate{0, 0}, Red)

		err := board.CheckSubsequentPlacement(single(Red, Coordinate{}), []Coordinate{{1, 1}})

		require.NoError(t, err)
	})

	t.Run("no contact fails", func(t *testing.T) {
		board := NewBoard()
		board.SetOwner(Coordinate{5, 5}, Red)
		for x := 0; x < 3; x++ {
			for y := 0; y < 3; y++ {
				err := board.CheckSubsequentPlacement(single(Red, Coordinate{}), []Coordinate{{x, y}})
				require.ErrorIs(t, err, ErrMustTouchOwnPieceByCorner)
			}
		}
	})

	t.Run("edge contact is vetoed", func(t *testing.T) {
		board := NewBoard()
		board.SetOwner(Coordinate{0, 0}, Red)

		for _, c := range []Coordinate{{1, 0}, {0, 1}} {
			err := board.CheckSubsequentPlacement(single(Red, Coordinate{}), []Coordinate{c})
			require.Error(t, err)
		}
	})

	t.Run("edge contact is vetoed even when another cell touches by corner", func(t *testing.T) {
		board := NewBoard()
		board.SetOwner(Coordinate{0, 0}, Red)
		board.SetOwner(Coordinate{3, 0}, Red)
		// (1,0) shares an edge with (0,0); (2,1) touches (3,0) by its corner.
		coords := []Coordinate{{1, 0}, {1, 1}, {2, 1}}

		err := board.CheckSubsequentPlacement(Piece{ID: "V", Owner: Red}, coords)

		require.ErrorIs(t, err, ErrCannotShareEdgeWithOwnPiece)
	})

	t.Run("other players' cells are ignored", func(t *testing.T) {
		board := NewBoard()
		board.SetOwner(Coordinate{0, 0}, Red)
		board.SetOwner(Coordinate{2, 1}, Blue)

		err := board.CheckSubsequentPlacement(Piece{ID: "I2", Owner: Red}, []Coordinate{{1, 1}, {1, 2}})

		require.NoError(t, err)
	})
}

func TestCheckSubsequentPlacementAgainst(t *testing.T) {
	board := NewBoard()
	board.SetOwner(Coordinate{0, 0}, Red)
	board.SetOwner(Coordinate{5, 5}, Red)
	own := NewCoordinateSet(board.PlayerCells(Red)...)

	for _, coords := range [][]Coordinate{{{1, 1}}, {{1, 0}, {1, 1}}, {{4, 4}, {4, 3}}, {{9, 9}}} {
		want := board.CheckSubsequentPlacement(Piece{Owner: Red}, coords)
		require.Equal(t, want, board.CheckSubsequentPlacementAgainst(coords, own))
	}
}

func TestValidatePlacement(t *testing.T) {
	t.Run("unmoved player gets the first placement rule", func(t *testing.T) {
		board := NewBoard()
		coords := []Coordinate{{1, 1}}

		err := board.ValidatePlacement(single(Red, Coordinate{1, 1}), coords)

		require.ErrorIs(t, err, ErrFirstMoveMustIncludeCorner)
	})

	t.Run("moved player gets the subsequent placement rules", func(t *testing.T) {
		board := NewBoard()
		board.SetOwner(Coordinate{0, 0}, Red)

		require.NoError(t, board.ValidatePlacement(single(Red, Coordinate{1, 1}), []Coordinate{{1, 1}}))
		require.ErrorIs(t, board.ValidatePlacement(single(Red, Coordinate{1, 0}), []Coordinate{{1, 0}}), ErrMustTouchOwnPieceByCorner)
		require.ErrorIs(t, board.ValidatePlacement(Piece{ID: "I2", Owner: Red}, []Coordinate{{1, 0}, {1, 1}}), ErrCannotShareEdgeWithOwnPiece)
	})

	t.Run("basic rules run first", func(t *testing.T) {
		board := NewBoard()

		err := board.ValidatePlacement(single(Red, Coordinate{}), []Coordinate{{0, 0}, {-1, 0}})

		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("a player whose corner was taken by someone else never moves", func(t *testing.T) {
		board := NewBoard()
		board.SetOwner(Coordinate{0, 0}, Blue)

		require.False(t, board.HasPlacedFirstPiece(Red))
		require.ErrorIs(t, board.ValidatePlacement(single(Red, Coordinate{}), []Coordinate{{0, 0}}), ErrCellOccupied)
		require.ErrorIs(t, board.ValidatePlacement(single(Red, Coordinate{}), []Coordinate{{1, 1}}), ErrFirstMoveMustIncludeCorner)
	})
}

func TestCanPlacePiece(t *testing.T) {
	t.Run("single cell on the corner", func(t *testing.T) {
		board := NewBoard()

		require.True(t, board.CanPlacePiece(single(Red, Coordinate{}), Orientation{}, Coordinate{}))
	})

	t.Run("reports failure without mutating", func(t *testing.T) {
		board := NewBoard()
		before := *board

		require.False(t, board.CanPlacePiece(single(Red, Coordinate{}), Orientation{}, Coordinate{X: 5, Y: 5}))
		require.Equal(t, before, *board)
	})

	t.Run("orientation moves the cells", func(t *testing.T) {
		board := NewBoard()
		piece := Piece{ID: "I2", Owner: Red, BaseShape: []Coordinate{{0, 0}, {1, 0}}}

		// rotated 90° the domino covers (0,0) and (0,-1)
		require.False(t, board.CanPlacePiece(piece, Orientation{Rotation: Rotation90}, Coordinate{}))
		require.True(t, board.CanPlacePiece(piece, Orientation{Rotation: Rotation90}, Coordinate{X: 0, Y: 1}))
	})
}

func TestCornerAndEdgeChecks(t *testing.T) {
	board := NewBoard()
	for px := 0; px < 3; px++ {
		for py := 0; py < 3; py++ {
			playerCells := NewCoordinateSet(Coordinate{px, py})
			for cx := 0; cx < 3; cx++ {
				for cy := 0; cy < 3; cy++ {
					dx, dy := abs(px-cx), abs(py-cy)
					cell := Coordinate{cx, cy}
					require.Equal(t, dx == 1 && dy == 1, board.CheckCornerTouch(cell, playerCells))
					require.Equal(t, dx+dy == 1, board.CheckEdgeContact(cell, playerCells))
				}
			}
		}
	}
}

func TestPlayerCells(t *testing.T) {
	board := NewBoard()
	board.SetOwner(Coordinate{19, 19}, Red)
	board.SetOwner(Coordinate{0, 0}, Red)
	board.SetOwner(Coordinate{1, 1}, Blue)

	require.Equal(t, []Coordinate{{0, 0}, {19, 19}}, board.PlayerCells(Red))
	require.Equal(t, 2, board.OccupiedCount(Red))
	require.Empty(t, board.PlayerCells(Green))
}

func TestStartingCorner(t *testing.T) {
	t.Run("fixed corners", func(t *testing.T) {
		require.Equal(t, Coordinate{0, 0}, StartingCorner(Red))
		require.Equal(t, Coordinate{Width - 1, 0}, StartingCorner(Blue))
		require.Equal(t, Coordinate{Width - 1, Height - 1}, StartingCorner(Green))
		require.Equal(t, Coordinate{0, Height - 1}, StartingCorner(Yellow))
	})

	t.Run("stable and distinct", func(t *testing.T) {
		seen := map[Coordinate]Player{}
		for _, p := range Players {
			first := StartingCorner(p)
			for i := 0; i < 10; i++ {
				require.Equal(t, first, StartingCorner(p))
			}
			_, dup := seen[first]
			require.False(t, dup)
			seen[first] = p
		}
	})

	t.Run("panics for no player", func(t *testing.T) {
		require.Panics(t, func() { StartingCorner(NoPlayer) })
	})
}

func TestPlacePiece(t *testing.T) {
	t.Run("writes every transformed cell", func(t *testing.T) {
		board := NewBoard()
		piece := Piece{ID: "L", Owner: Green, BaseShape: lShape}

		board.PlacePiece(piece, Orientation{Rotation: Rotation180}, Coordinate{X: 10, Y: 10})

		require.ElementsMatch(t, []Coordinate{{10, 10}, {10, 9}, {10, 8}, {9, 8}}, board.PlayerCells(Green))
	})

	t.Run("silently skips cells off the board", func(t *testing.T) {
		board := NewBoard()
		piece := Piece{ID: "I2", Owner: Red, BaseShape: []Coordinate{{0, 0}, {1, 0}}}

		require.NotPanics(t, func() {
			board.PlacePiece(piece, Orientation{}, Coordinate{X: 100, Y: 100})
			board.PlacePiece(piece, Orientation{}, Coordinate{X: -1, Y: 0})
		})
		require.Equal(t, []Coordinate{{0, 0}}, board.PlayerCells(Red))
	})

	t.Run("copies are independent", func(t *testing.T) {
		board := NewBoard()
		clone := board.Copy()

		clone.Place(Candidate{Piece: single(Red, Coordinate{}), Origin: Coordinate{}})

		require.Equal(t, NoPlayer, board.Owner(Coordinate{}))
		require.Equal(t, Red, clone.Owner(Coordinate{}))
		require.NotEqual(t, board.Hash(), clone.Hash())
	})
}

func TestAnchors(t *testing.T) {
	t.Run("starting corner before the first move", func(t *testing.T) {
		require.Equal(t, []Coordinate{{Width - 1, Height - 1}}, NewBoard().Anchors(Green))
	})

	t.Run("no anchor when the corner is taken by someone else", func(t *testing.T) {
		board := NewBoard()
		board.SetOwner(Coordinate{0, 0}, Blue)

		require.Empty(t, board.Anchors(Red))
	})

	t.Run("diagonal cells free of own edges", func(t *testing.T) {
		board := NewBoard()
		board.PlacePiece(Piece{ID: "I2", Owner: Red, BaseShape: []Coordinate{{0, 0}, {1, 0}}}, Orientation{}, Coordinate{})

		require.Equal(t, []Coordinate{{2, 1}}, board.Anchors(Red))
	})
}
