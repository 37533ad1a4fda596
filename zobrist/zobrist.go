// Package zobrist provides a generic incremental board hash: an
// XOR-of-random-tables scheme over board contents and side to move,
// for any fixed-size board of small-alphabet cells — the shape
// tic-tac-toe, Chomp, and similar grid games share.
package zobrist

import "lukechampine.com/frand"

const bignum = 1<<63 - 2

// Table is a Zobrist hash over a board of numCells cells, each holding
// one of numStates values (e.g. empty/X/O), plus a side-to-move bit.
// Hash computes the key for a whole board; callers with a cheap
// incremental update path (track the key across MakeMove instead of
// recomputing it) can XOR in CellValue and SideToMove instead.
type Table struct {
	cellTable  [][]uint64 // [cell][state]
	sideToMove uint64
}

// New builds a Table for a board of numCells cells, each holding one
// of numStates values.
func New(numCells, numStates int) *Table {
	t := &Table{cellTable: make([][]uint64, numCells)}
	for i := range t.cellTable {
		t.cellTable[i] = make([]uint64, numStates)
		for j := range t.cellTable[i] {
			t.cellTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	t.sideToMove = frand.Uint64n(bignum) + 1
	return t
}

// Hash returns the Zobrist key for a board where cells[i] is the state
// occupying cell i, given whether the second player is to move.
func (t *Table) Hash(cells []int, secondPlayerToMove bool) uint64 {
	var key uint64
	for i, state := range cells {
		key ^= t.cellTable[i][state]
	}
	if secondPlayerToMove {
		key ^= t.sideToMove
	}
	return key
}

// CellValue returns the table entry for placing state at cell, for
// callers maintaining an incremental hash by XORing this in and out as
// cells change and XORing SideToMove on every ply.
func (t *Table) CellValue(cell, state int) uint64 {
	return t.cellTable[cell][state]
}

// SideToMove returns the table entry toggled every ply.
func (t *Table) SideToMove() uint64 {
	return t.sideToMove
}
