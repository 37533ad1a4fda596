package solve

import (
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamesolver/gamesolver/internal/testgames/nim"
	"github.com/gamesolver/gamesolver/move"
)

// The multiset of (move, score) pairs from MoveScores must equal that
// from ParallelMoveScores: sharding root moves across workers must not
// change what the search concludes about any of them.
func TestParallelMoveScoresMatchesSerial(t *testing.T) {
	g := nim.New(3, 5, 7)

	serial, err := MoveScores[nim.Move](g, Config{})
	require.NoError(t, err)

	parallel, stats, err := ParallelMoveScores[nim.Move](g, Config{
		FastHash:    true,
		Parallelism: true,
		Workers:     4,
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, serial, parallel)
	assert.Greater(t, stats.TotalNodes, uint64(0))
}

func TestParallelMoveScoresRequiresParallelismEvenWithFastHash(t *testing.T) {
	g := nim.New(1, 1)

	_, _, err := ParallelMoveScores[nim.Move](g, Config{FastHash: true})
	assert.ErrorIs(t, err, ErrParallelismNotEnabled)
}

func TestParallelMoveScoresDefaultsWorkerCountToCPUs(t *testing.T) {
	cfg := Config{FastHash: true, Parallelism: true}
	assert.Equal(t, runtime.NumCPU(), cfg.workerCount())
}

func TestParallelMoveScoresAgreeOnBestMoveSet(t *testing.T) {
	g := nim.New(3, 5, 7)

	parallel, _, err := ParallelMoveScores[nim.Move](g, Config{
		FastHash:    true,
		Parallelism: true,
		Workers:     2,
	})
	require.NoError(t, err)

	best := move.Best(parallel)
	var heaps []int
	for _, b := range best {
		heaps = append(heaps, b.Move.Heap)
	}
	sort.Ints(heaps)
	assert.Equal(t, []int{0, 1, 2}, heaps)
}
