// Package negamax implements the recursive search core: negamax with
// an alpha-beta window, principal-variation (null-window) re-search,
// and transposition-table probing/storing. There is no heuristic
// evaluation function here; every leaf is a true terminal (a win, a
// loss, or a draw), since every game this solver handles is played out to
// completion rather than cut off at a depth limit.
package negamax

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/gamesolver/gamesolver/game"
	"github.com/gamesolver/gamesolver/score"
	"github.com/gamesolver/gamesolver/tt"
)

// Engine runs negamax searches against a shared transposition table.
// A single Engine is not safe for concurrent Search calls (it owns a
// node counter); the parallel enumerator in package solve gives each
// worker its own Engine over a shared tt.Table instead.
type Engine[M any] struct {
	table  tt.Table
	hasher tt.Hasher[M]
	nodes  atomic.Uint64
}

// New builds an Engine over the given transposition table and hashing
// strategy.
func New[M any](table tt.Table, hasher tt.Hasher[M]) *Engine[M] {
	return &Engine[M]{table: table, hasher: hasher}
}

// Nodes returns the number of positions this Engine has searched
// (internal nodes plus terminal checks), for instrumentation.
func (e *Engine[M]) Nodes() uint64 {
	return e.nodes.Load()
}

// Search returns the negamax value of g when it lies strictly inside
// the window (alpha, beta). Otherwise it is fail-soft: the result is
// only a bound, at most alpha when the true value is at most alpha and
// at least beta when it is at least beta, and may lie outside the
// window (a terminal win, a transposition-table bound, or a child's
// cutoff value is returned as found). g is never mutated by Search;
// each child is explored on a clone.
func (e *Engine[M]) Search(g game.Game[M], alpha, beta score.Score) score.Score {
	e.nodes.Add(1)

	// Step 1: terminal short-circuits. A side to move with no legal
	// moves at all (and not already a draw) has lost under normal play
	// — the case is_winning_move exists to detect one ply earlier so
	// the engine need not expand into it, but any position can still
	// reach here directly (MoveScores calls the driver on an
	// already-applied child, which may itself be such a position).
	if g.IsDraw() {
		return score.Draw
	}
	moveCount := g.MoveCount()
	sawMove := false
	for m := range g.PossibleMoves() {
		sawMove = true
		if g.IsWinningMove(m) {
			return score.Win(g.MaxMoves(), moveCount)
		}
	}
	if !sawMove {
		return score.Loss(g.MaxMoves(), moveCount)
	}

	// Step 2: TT probe.
	key := e.hasher.Hash(g)
	if entry, ok := e.table.Probe(key); ok {
		switch entry.Flag {
		case tt.LowerBound:
			if entry.Value > alpha {
				alpha = entry.Value
			}
		case tt.UpperBound:
			if entry.Value < beta {
				beta = entry.Value
			}
		}
		if alpha >= beta {
			return entry.Value
		}
	}

	// Step 3: window bounding. No child can score higher than this,
	// since any move scoring that high would have been caught above as
	// an immediate win.
	if maxPossible := score.Max(g.MaxMoves()) - score.Score(moveCount) - 1; beta > maxPossible {
		beta = maxPossible
	}
	if alpha >= beta {
		return beta
	}

	// Step 4: child expansion, full window on the first child and a
	// null-window probe (re-searched in-window on fail-high) for the
	// rest — Principal Variation Search.
	first := true
	for m := range g.PossibleMoves() {
		child := g.Clone()
		if err := child.MakeMove(m); err != nil {
			panic(&game.ContractViolationError{Op: "MakeMove", Err: err})
		}

		var v score.Score
		if first {
			v = -e.Search(child, -beta, -alpha)
			first = false
		} else {
			v = -e.Search(child, -alpha-1, -alpha)
			if alpha < v && v < beta {
				v = -e.Search(child, -beta, -v)
			}
		}

		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			e.table.Store(key, tt.Entry{Flag: tt.LowerBound, Value: alpha})
			log.Trace().Uint64("key", key).Int("value", int(alpha)).Msg("negamax beta cutoff")
			return alpha
		}
	}

	e.table.Store(key, tt.Entry{Flag: tt.UpperBound, Value: alpha})
	return alpha
}
