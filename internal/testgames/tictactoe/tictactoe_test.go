package tictactoe

import (
	"testing"

	"github.com/matryer/is"
)

func TestEmptyBoardHasNineMoves(t *testing.T) {
	is := is.New(t)
	g := New()
	count := 0
	for range g.PossibleMoves() {
		count++
	}
	is.Equal(count, 9)
}

func TestFingerprintChangesAfterMove(t *testing.T) {
	is := is.New(t)
	g := New()
	before := g.Fingerprint()
	is.NoErr(g.MakeMove(Move{Row: 1, Col: 1}))
	is.True(g.Fingerprint() != before)
}

func TestFingerprintIndependentOfInstance(t *testing.T) {
	is := is.New(t)
	a, b := New(), New()
	is.NoErr(a.MakeMove(Move{Row: 0, Col: 0}))
	is.NoErr(b.MakeMove(Move{Row: 0, Col: 0}))
	is.Equal(a.Fingerprint(), b.Fingerprint())
}

func TestMakeMoveRejectsOccupiedCell(t *testing.T) {
	is := is.New(t)
	g := New()
	is.NoErr(g.MakeMove(Move{Row: 0, Col: 0}))
	is.True(g.MakeMove(Move{Row: 0, Col: 0}) != nil)
}

func TestIsWinningMoveDetectsCompletedRow(t *testing.T) {
	is := is.New(t)
	g := New()
	is.NoErr(g.MakeMove(Move{Row: 0, Col: 0})) // X
	is.NoErr(g.MakeMove(Move{Row: 1, Col: 0})) // O
	is.NoErr(g.MakeMove(Move{Row: 0, Col: 1})) // X
	is.NoErr(g.MakeMove(Move{Row: 1, Col: 1})) // O
	is.True(g.IsWinningMove(Move{Row: 0, Col: 2}))
	is.True(!g.IsWinningMove(Move{Row: 2, Col: 2}))
}

func TestIsDrawWhenBoardIsFull(t *testing.T) {
	is := is.New(t)
	g := New()
	moves := []Move{
		{0, 0}, {0, 1}, {0, 2},
		{1, 1}, {1, 0}, {1, 2},
		{2, 1}, {2, 0}, {2, 2},
	}
	for _, m := range moves {
		is.NoErr(g.MakeMove(m))
	}
	is.True(g.IsDraw())
}
