// Package move holds the output shape of the move-score enumerator and
// a few convenience helpers over it. The move itself is entirely
// client-owned and opaque to this library; all this package adds is
// pairing it with a score and a couple of selection/sorting helpers.
package move

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/gamesolver/gamesolver/score"
)

// MoveScore pairs a root move with its score from the perspective of
// the player who would make it (positive means the move is good for
// the mover).
type MoveScore[M any] struct {
	Move  M
	Score score.Score
}

func (ms MoveScore[M]) String() string {
	return fmt.Sprintf("<move: %+v score: %d>", ms.Move, ms.Score)
}

// SortDescending sorts moves by score, best first. The solver itself
// gives no ordering guarantee; this is purely a caller convenience for
// presenting results.
func SortDescending[M any](moves []MoveScore[M]) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
}

// Best returns every move tied for the highest score — a root position
// can easily have more than one equally good reply, e.g. every heap in
// a Nim position that equalizes the XOR. Returns an empty slice for an
// empty input.
func Best[M any](moves []MoveScore[M]) []MoveScore[M] {
	if len(moves) == 0 {
		return nil
	}
	top := lo.MaxBy(moves, func(a, b MoveScore[M]) bool { return a.Score > b.Score })
	return lo.Filter(moves, func(ms MoveScore[M], _ int) bool { return ms.Score == top.Score })
}
