package solve

import (
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/gamesolver/gamesolver/game"
	"github.com/gamesolver/gamesolver/move"
	"github.com/gamesolver/gamesolver/negamax"
	"github.com/gamesolver/gamesolver/tt"
)

// ParallelMoveScores is the parallel variant of MoveScores: root moves
// are sharded across a fixed pool of workers, each running its own
// sequential negamax search over a shared concurrent transposition
// cache. No ordering is guaranteed among the returned pairs, and the
// order of TT writes (and so the exact pruning decisions made) may
// differ between runs, but the set of (move, score) pairs is always
// the same as the serial enumerator's.
func ParallelMoveScores[M any](g game.Game[M], cfg Config) ([]move.MoveScore[M], Stats, error) {
	if err := cfg.validate(); err != nil {
		return nil, Stats{}, err
	}
	if !cfg.Parallelism {
		return nil, Stats{}, ErrParallelismNotEnabled
	}

	table, err := tt.NewConcurrentTable(cfg.CacheMemFraction)
	if err != nil {
		return nil, Stats{}, err
	}
	defer table.Close()
	hasher := tt.DefaultHasher[M](true)

	var roots []M
	for m := range g.PossibleMoves() {
		roots = append(roots, m)
	}
	// Shuffling the root-move order before sharding spreads expensive
	// and cheap subtrees across workers instead of letting the game's
	// own move-ordering hint cluster the hard positions onto one of
	// them.
	frand.Shuffle(len(roots), func(i, j int) { roots[i], roots[j] = roots[j], roots[i] })

	workers := cfg.workerCount()
	if workers > len(roots) && len(roots) > 0 {
		workers = len(roots)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]move.MoveScore[M], len(roots))
	nodeCounts := make([]uint64, workers)

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			eng := negamax.New[M](table, hasher)
			for i := w; i < len(roots); i += workers {
				child := g.Clone()
				if err := child.MakeMove(roots[i]); err != nil {
					panic(&game.ContractViolationError{Op: "MakeMove", Err: err})
				}
				childScore := solveExact(eng, child)
				results[i] = move.MoveScore[M]{Move: roots[i], Score: -childScore}
			}
			nodeCounts[w] = eng.Nodes()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, Stats{}, err
	}

	return results, computeStats(nodeCounts), nil
}
