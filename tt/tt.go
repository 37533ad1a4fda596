// Package tt implements a transposition table: a mapping from a
// position fingerprint to a cached bound on that position's negamax
// value, with a serial map-backed backend and a concurrent,
// memory-budgeted backend for parallel search.
package tt

import "github.com/gamesolver/gamesolver/score"

// Flag records which side of the search window an Entry's value
// bounds. There is deliberately no "exact" flag: an exact result is
// just the case where a later probe's lower and upper bounds happen to
// coincide.
type Flag uint8

const (
	// LowerBound means the stored value was established by a beta
	// cutoff: the position is at least this good for the side to move.
	LowerBound Flag = iota
	// UpperBound means the stored value was established by a fully
	// expanded node with no cutoff: the position is at most this good.
	UpperBound
)

// Entry is a cached bound on a position's negamax value.
type Entry struct {
	Flag  Flag
	Value score.Score
}

// Table is the probe/store contract the negamax engine consumes. It
// is a pure optimization: an engine must produce the same answer
// whether Table is fresh, pre-warmed, or has entries evicted mid-run,
// only more slowly.
type Table interface {
	// Probe returns the entry stored for key, if any.
	Probe(key uint64) (Entry, bool)
	// Store installs or overwrites the entry for key.
	Store(key uint64, e Entry)
	// Clear removes every entry.
	Clear()
}
