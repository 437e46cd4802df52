package search

import (
	"strconv"

	"stormyseas/geometry"
)

// Move is a single unit translation of one piece, the atomic unit the
// breadth-first search reasons about. Distance is always 1 until the
// compactor merges a run of mergeable moves into a multi-cell step.
type Move struct {
	PieceID   string
	Direction geometry.Direction
	Distance  int
}

// CanMergeWith reports whether m and other are the same piece moving the
// same direction, and so may be fused into one step by the compactor.
func (m Move) CanMergeWith(other Move) bool {
	return m.PieceID == other.PieceID && m.Direction == other.Direction
}

// Merge returns m extended by other's distance. Panics if the moves are not
// mergeable, since that would silently hide a compactor bug.
func (m Move) Merge(other Move) Move {
	if !m.CanMergeWith(other) {
		panic("search: cannot merge moves for different piece/direction")
	}
	m.Distance += other.Distance
	return m
}

// String renders the move's notation token: <id><direction-letter><distance>.
func (m Move) String() string {
	return m.PieceID + string(m.Direction.Letter()) + strconv.Itoa(m.Distance)
}
