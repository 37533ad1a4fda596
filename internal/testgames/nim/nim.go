// Package nim is a minimal Game[Move] implementation used to exercise
// the solver against a game whose exact value is independently known:
// the side to move wins iff the XOR of the heap sizes is nonzero.
package nim

import (
	"fmt"
	"iter"

	"github.com/gamesolver/gamesolver/game"
)

// Move takes count objects from heap Heap.
type Move struct {
	Heap  int
	Count int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Heap, m.Count)
}

// State is a Nim position: a slice of heap sizes, the side to move
// determined by how many plies have been played.
type State struct {
	heaps     []int
	moveCount int
	maxMoves  int
}

// New returns the starting Nim position with the given heap sizes.
func New(heaps ...int) *State {
	cp := make([]int, len(heaps))
	copy(cp, heaps)
	total := 0
	for _, h := range cp {
		total += h
	}
	return &State{heaps: cp, maxMoves: total}
}

// MaxMoves is the object count of the starting position: every ply
// removes at least one object, so no play-out is longer. It stays the
// same for every position derived from that start.
func (s *State) MaxMoves() int { return s.maxMoves }

func (s *State) MoveCount() int { return s.moveCount }

func (s *State) PlayerToMove() game.Player { return game.ToMove(s.moveCount) }

func (s *State) PossibleMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for i, h := range s.heaps {
			for take := 1; take <= h; take++ {
				if !yield(Move{Heap: i, Count: take}) {
					return
				}
			}
		}
	}
}

// IsWinningMove reports whether m empties the last remaining object(s)
// in play, i.e. every heap other than Heap is already empty and m
// takes the rest of Heap.
func (s *State) IsWinningMove(m Move) bool {
	if m.Count != s.heaps[m.Heap] {
		return false
	}
	for i, h := range s.heaps {
		if i != m.Heap && h != 0 {
			return false
		}
	}
	return true
}

func (s *State) IsDraw() bool {
	return false
}

func (s *State) MakeMove(m Move) error {
	if m.Heap < 0 || m.Heap >= len(s.heaps) {
		return fmt.Errorf("nim: heap %d out of range", m.Heap)
	}
	if m.Count < 1 || m.Count > s.heaps[m.Heap] {
		return fmt.Errorf("nim: cannot take %d from heap %d (has %d)", m.Count, m.Heap, s.heaps[m.Heap])
	}
	s.heaps[m.Heap] -= m.Count
	s.moveCount++
	return nil
}

func (s *State) Clone() game.Game[Move] {
	cp := make([]int, len(s.heaps))
	copy(cp, s.heaps)
	return &State{heaps: cp, moveCount: s.moveCount, maxMoves: s.maxMoves}
}

// Fingerprint XORs each heap's size shifted by its index, then the move
// count (the same heaps reached after a different number of plies
// score differently), which is enough entropy for the small heap
// counts these fixtures use; real clients with larger state spaces
// should prefer an incremental Zobrist hash (see the tictactoe fixture
// and the zobrist package).
func (s *State) Fingerprint() uint64 {
	var h uint64 = 1469598103934665603 // FNV-1a offset basis
	for i, v := range s.heaps {
		h ^= uint64(v+1) << (uint(i%8) * 8)
		h *= 1099511628211 // FNV-1a prime
	}
	h ^= uint64(s.moveCount + 1)
	h *= 1099511628211
	return h
}
