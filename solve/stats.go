package solve

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes per-worker node counts from a ParallelMoveScores
// call, useful for spotting a badly unbalanced shard (one worker doing
// far more work than the others suggests the root moves should be
// shuffled or re-ordered).
type Stats struct {
	TotalNodes  uint64
	MeanNodes   float64
	StddevNodes float64
}

func computeStats(nodeCounts []uint64) Stats {
	if len(nodeCounts) == 0 {
		return Stats{}
	}
	xs := make([]float64, len(nodeCounts))
	var total uint64
	for i, n := range nodeCounts {
		xs[i] = float64(n)
		total += n
	}
	mean, variance := stat.MeanVariance(xs, nil)
	return Stats{
		TotalNodes:  total,
		MeanNodes:   mean,
		StddevNodes: math.Sqrt(variance),
	}
}
