// Package chomp is a Game[Move] fixture for Chomp, a misère game (the
// player forced to eat the poisoned square loses) used to exercise the
// last-player-to-move-loses reformulation documented on game.Game.
//
// Chomp has no natural "last player to move wins" terminal the engine
// can discover by exhausting moves: the real losing event is eating
// the poisoned cell, one ply *after* the position the engine would
// otherwise call terminal. The standard fix (see e.g. Zeilberger's
// strategy-stealing writeups) is to fold the loss condition one ply
// earlier: a move is "winning" here if it leaves the opponent facing
// only the poisoned square, since the opponent's only legal reply is
// then to eat it and lose. That is exactly what IsWinningMove checks
// below, and it is also why the "only poison left" position itself is
// never independently searched — the move that produces it is always
// already flagged as a win for whoever played it (see game.Game's
// second invariant).
package chomp

import (
	"fmt"
	"iter"

	"github.com/gamesolver/gamesolver/game"
)

// Move eats cell (Row, Col) and every remaining cell to its right in
// the same row and in every row below it.
type Move struct {
	Row, Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// State is a Chomp board, represented as a Young-diagram profile:
// rowLen[r] is the number of remaining cells in row r, non-increasing
// as r grows. Cell (0, 0) is the poison.
type State struct {
	rowLen    []int
	cols      int
	moveCount int
}

// New returns a full rows x cols board.
func New(rows, cols int) *State {
	rowLen := make([]int, rows)
	for i := range rowLen {
		rowLen[i] = cols
	}
	return &State{rowLen: rowLen, cols: cols}
}

func (s *State) MaxMoves() int { return len(s.rowLen) * s.cols }

func (s *State) MoveCount() int { return s.moveCount }

func (s *State) PlayerToMove() game.Player { return game.ToMove(s.moveCount) }

// PossibleMoves excludes the poisoned cell itself unless it is the
// only cell left: eating it ends the game in an immediate loss for
// whoever does so, so a rational player never plays it while any
// other cell remains. Dropping it from enumeration in that case can
// never change a position's value (it was never going to be the
// mover's best choice), and it keeps every non-degenerate recursive
// call landing on a state reachable only through a flagged
// IsWinningMove, which is what game.Game's second invariant requires.
func (s *State) PossibleMoves() iter.Seq[Move] {
	solePoisonLeft := onlyPoisonLeft(s.rowLen)
	return func(yield func(Move) bool) {
		for r, n := range s.rowLen {
			for c := 0; c < n; c++ {
				if r == 0 && c == 0 && !solePoisonLeft {
					continue
				}
				if !yield(Move{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// onlyPoisonLeft reports whether a profile has nothing remaining but
// the poisoned cell (0, 0).
func onlyPoisonLeft(rowLen []int) bool {
	if len(rowLen) == 0 || rowLen[0] != 1 {
		return false
	}
	for i := 1; i < len(rowLen); i++ {
		if rowLen[i] != 0 {
			return false
		}
	}
	return true
}

func (s *State) applied(m Move) []int {
	cp := make([]int, len(s.rowLen))
	copy(cp, s.rowLen)
	for r := m.Row; r < len(cp); r++ {
		if cp[r] > m.Col {
			cp[r] = m.Col
		}
	}
	return cp
}

// IsWinningMove reports whether m leaves the opponent facing only the
// poisoned cell — see the package doc for why this, and not "m empties
// the board", is this game's normal-play-equivalent win condition.
func (s *State) IsWinningMove(m Move) bool {
	return onlyPoisonLeft(s.applied(m))
}

func (s *State) IsDraw() bool {
	return false
}

func (s *State) MakeMove(m Move) error {
	if m.Row < 0 || m.Row >= len(s.rowLen) || m.Col < 0 || m.Col >= s.rowLen[m.Row] {
		return fmt.Errorf("chomp: (%d,%d) is not a remaining cell", m.Row, m.Col)
	}
	s.rowLen = s.applied(m)
	s.moveCount++
	return nil
}

func (s *State) Clone() game.Game[Move] {
	cp := make([]int, len(s.rowLen))
	copy(cp, s.rowLen)
	return &State{rowLen: cp, cols: s.cols, moveCount: s.moveCount}
}

// Fingerprint hashes the row-length profile, which is a complete
// description of a Chomp position, together with the move count, since
// the same profile reached after a different number of plies scores
// differently.
func (s *State) Fingerprint() uint64 {
	var h uint64 = 1469598103934665603
	for _, n := range s.rowLen {
		h ^= uint64(n + 1)
		h *= 1099511628211
	}
	h ^= uint64(s.moveCount + 1)
	h *= 1099511628211
	return h
}
