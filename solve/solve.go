// Package solve provides the solver's three public entry points,
// Solve, MoveScores, and ParallelMoveScores, built on top of the
// negamax engine and an iterative-deepening driver that narrows a
// probe window to the position's exact value.
package solve

import (
	"errors"
	"runtime"

	"github.com/gamesolver/gamesolver/game"
	"github.com/gamesolver/gamesolver/move"
	"github.com/gamesolver/gamesolver/negamax"
	"github.com/gamesolver/gamesolver/score"
	"github.com/gamesolver/gamesolver/tt"
)

// Config holds the solver's feature toggles.
type Config struct {
	// FastHash replaces the default transposition-table hash with the
	// xxHash-family finishing pass (tt.XXHasher).
	FastHash bool
	// Parallelism enables ParallelMoveScores's worker pool and
	// concurrent transposition cache. Requires FastHash.
	Parallelism bool
	// Workers caps the number of goroutines ParallelMoveScores uses.
	// A non-positive value defaults to runtime.NumCPU().
	Workers int
	// CacheMemFraction is the fraction of total system memory the
	// concurrent transposition cache may use. A non-positive or
	// out-of-range value falls back to tt's own default.
	CacheMemFraction float64
}

// ErrParallelismRequiresFastHash is returned by a Config that enables
// Parallelism without FastHash: the concurrent cache shards by key and
// needs FastHash's better bit distribution to avoid hot shards.
var ErrParallelismRequiresFastHash = errors.New("gamesolver: parallelism requires fast_hash")

// ErrParallelismNotEnabled is returned by ParallelMoveScores when
// called on a Config that never set Parallelism, regardless of
// whether FastHash is set.
var ErrParallelismNotEnabled = errors.New("gamesolver: parallelism not enabled")

func (c Config) validate() error {
	if c.Parallelism && !c.FastHash {
		return ErrParallelismRequiresFastHash
	}
	return nil
}

func (c Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Solve computes the exact negamax value of g: positive means the
// side to move has a forced win, zero a draw with perfect play,
// negative a forced loss.
func Solve[M any](g game.Game[M], cfg Config) (score.Score, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	table := tt.NewMapTable()
	hasher := tt.DefaultHasher[M](cfg.FastHash)
	eng := negamax.New[M](table, hasher)
	return solveExact(eng, g), nil
}

// MoveScores enumerates every legal root move of g serially, returning
// each move's score from the perspective of the player who would make
// it.
func MoveScores[M any](g game.Game[M], cfg Config) ([]move.MoveScore[M], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	table := tt.NewMapTable()
	hasher := tt.DefaultHasher[M](cfg.FastHash)
	eng := negamax.New[M](table, hasher)

	var results []move.MoveScore[M]
	for m := range g.PossibleMoves() {
		child := g.Clone()
		if err := child.MakeMove(m); err != nil {
			panic(&game.ContractViolationError{Op: "MakeMove", Err: err})
		}
		childScore := solveExact(eng, child)
		results = append(results, move.MoveScore[M]{Move: m, Score: -childScore})
	}
	return results, nil
}
