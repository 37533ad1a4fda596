package solve

import (
	"github.com/gamesolver/gamesolver/game"
	"github.com/gamesolver/gamesolver/negamax"
	"github.com/gamesolver/gamesolver/score"
)

// solveExact drives eng to the exact value of g by repeatedly
// narrowing a probe window with null-window searches until it
// collapses to a single value. There is no heuristic evaluation or
// depth limit here — every leaf negamax reaches is a true terminal —
// so the window narrows against an exact search rather than widening
// over successive ply limits the way a depth-limited engine would.
func solveExact[M any](eng *negamax.Engine[M], g game.Game[M]) score.Score {
	maxS := score.Max(g.MaxMoves())
	lo, hi := -maxS, maxS
	for lo < hi {
		mid := lo + (hi-lo)/2
		var midLower, midUpper score.Score
		// At mid == lo a probe at (mid-1, mid) could return lo itself and
		// leave the bracket unchanged, so that case probes (lo, lo+1).
		if mid >= 0 || mid == lo {
			midLower, midUpper = mid, mid+1
		} else {
			midLower, midUpper = mid-1, mid
		}
		r := eng.Search(g, midLower, midUpper)
		if r <= midLower {
			hi = r
		} else {
			lo = r
		}
	}
	return lo
}
