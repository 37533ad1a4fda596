package tt

import (
	"github.com/dgraph-io/ristretto/v2"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

// defaultMemFraction is used when a caller passes a non-positive
// fraction to NewConcurrentTable.
const defaultMemFraction = 0.25

// entryCost is the approximate number of bytes ristretto should charge
// per stored Entry, including its own bookkeeping overhead. Entry
// itself is two small fields (a byte and an int); the constant is
// deliberately generous so the resulting entry count is a
// conservative, not optimistic, estimate of what fits in budget.
const entryCost = 48

// minCacheBytes is the floor used when the system memory probe
// reports nothing usable (e.g. a sandboxed environment that hides
// /proc/meminfo), so the cache is always at least minimally useful
// rather than zero-sized.
const minCacheBytes = 64 << 20

// ConcurrentTable is the transposition table backend for parallel
// search: a size-bounded cache shared by every worker, safe for
// concurrent Probe/Store from all of them. Eviction is delegated
// entirely to ristretto's approximate-LFU admission policy: whatever
// it discards only costs the search a cache miss, never a wrong
// answer, so there is no reason to invent a bespoke policy here.
type ConcurrentTable struct {
	cache *ristretto.Cache[uint64, Entry]
}

// NewConcurrentTable builds a concurrent transposition table sized to
// memFraction of total system memory. A non-positive or out-of-range
// memFraction falls back to defaultMemFraction.
func NewConcurrentTable(memFraction float64) (*ConcurrentTable, error) {
	if memFraction <= 0 || memFraction > 1 {
		memFraction = defaultMemFraction
	}
	total := memory.TotalMemory()
	budget := uint64(float64(total) * memFraction)
	if budget < minCacheBytes {
		budget = minCacheBytes
	}
	maxEntries := int64(budget / entryCost)

	cache, err := ristretto.NewCache(&ristretto.Config[uint64, Entry]{
		NumCounters: maxEntries * 10,
		MaxCost:     int64(budget),
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	log.Debug().
		Uint64("total-system-memory", total).
		Float64("mem-fraction", memFraction).
		Uint64("budget-bytes", budget).
		Int64("max-entries", maxEntries).
		Msg("sized concurrent transposition table")
	return &ConcurrentTable{cache: cache}, nil
}

func (t *ConcurrentTable) Probe(key uint64) (Entry, bool) {
	return t.cache.Get(key)
}

func (t *ConcurrentTable) Store(key uint64, e Entry) {
	t.cache.Set(key, e, entryCost)
}

func (t *ConcurrentTable) Clear() {
	t.cache.Clear()
}

// Close releases the cache's background goroutines. Callers that build
// a ConcurrentTable directly (rather than through solve.Config) should
// defer Close once the search using it is done.
func (t *ConcurrentTable) Close() {
	t.cache.Close()
}

// Wait blocks until all pending asynchronous writes have been applied.
// Tests use this to observe a deterministic cache state after a burst
// of concurrent Store calls.
func (t *ConcurrentTable) Wait() {
	t.cache.Wait()
}
