// Package tictactoe is a 3x3 Game[Move] fixture that exercises a
// client-supplied incremental Zobrist fingerprint, demonstrating the
// pluggable-hash path a game with its own cheap fingerprint can use.
package tictactoe

import (
	"fmt"
	"iter"

	"github.com/gamesolver/gamesolver/game"
	"github.com/gamesolver/gamesolver/zobrist"
)

const (
	empty = 0
	x     = 1
	o     = 2
)

const dim = 3

// zobristTable is shared by every State: Zobrist tables are pure
// random constants, generating a fresh one per game instance would
// only waste entropy and break fingerprint comparisons across states
// built independently (e.g. in tests).
var zobristTable = zobrist.New(dim*dim, 3)

// Move places the mover's mark at (Row, Col).
type Move struct {
	Row, Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// State is a tic-tac-toe board. cells holds empty/x/o per square;
// hash is an incrementally maintained Zobrist key.
type State struct {
	cells     [dim * dim]int
	moveCount int
	hash      uint64
}

// New returns an empty board.
func New() *State {
	return &State{}
}

func (s *State) MaxMoves() int { return dim * dim }

func (s *State) MoveCount() int { return s.moveCount }

func (s *State) PlayerToMove() game.Player { return game.ToMove(s.moveCount) }

// PossibleMoves yields every empty cell, and nothing once either mark
// holds a line: the game is over there, and the side to move has lost.
func (s *State) PossibleMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		if hasLine(s.cells, x) || hasLine(s.cells, o) {
			return
		}
		for i, c := range s.cells {
			if c == empty {
				if !yield(Move{Row: i / dim, Col: i % dim}) {
					return
				}
			}
		}
	}
}

func (s *State) mark() int {
	if s.PlayerToMove() == game.PlayerOne {
		return x
	}
	return o
}

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func hasLine(cells [dim * dim]int, mark int) bool {
	for _, line := range lines {
		if cells[line[0]] == mark && cells[line[1]] == mark && cells[line[2]] == mark {
			return true
		}
	}
	return false
}

// IsWinningMove reports whether placing the mover's mark at m
// completes a row, column, or diagonal.
func (s *State) IsWinningMove(m Move) bool {
	trial := s.cells
	trial[m.Row*dim+m.Col] = s.mark()
	return hasLine(trial, s.mark())
}

// IsDraw reports whether the board is full with neither mark holding
// a line. A full board with a line present is not a draw — it is the
// position just after a move that both completed a line and filled
// the last cell, which the previous ply's IsWinningMove should have
// already caught. Checking here too matters only when a caller (e.g.
// MoveScores) calls the driver on a state directly rather than
// relying on that shortcut.
func (s *State) IsDraw() bool {
	for _, c := range s.cells {
		if c == empty {
			return false
		}
	}
	return !hasLine(s.cells, x) && !hasLine(s.cells, o)
}

func (s *State) MakeMove(m Move) error {
	idx := m.Row*dim + m.Col
	if m.Row < 0 || m.Row >= dim || m.Col < 0 || m.Col >= dim {
		return fmt.Errorf("tictactoe: (%d,%d) out of range", m.Row, m.Col)
	}
	if s.cells[idx] != empty {
		return fmt.Errorf("tictactoe: cell (%d,%d) already occupied", m.Row, m.Col)
	}
	mark := s.mark()
	s.hash ^= zobristTable.CellValue(idx, mark)
	s.hash ^= zobristTable.SideToMove()
	s.cells[idx] = mark
	s.moveCount++
	return nil
}

func (s *State) Clone() game.Game[Move] {
	cp := *s
	return &cp
}

// Fingerprint returns the incrementally maintained Zobrist key; unlike
// nim's Fingerprint, this is O(1) rather than O(board size), which is
// the point of carrying an incremental hash at all.
func (s *State) Fingerprint() uint64 {
	return s.hash
}
