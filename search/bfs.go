// Package search implements the breadth-first state-space search: the FIFO
// frontier, the visited map with parent/move back-pointers, solution
// reconstruction, and step compaction. An optional parallel successor
// generation extension lives in parallel.go.
package search

import (
	"errors"

	"stormyseas/board"
	"stormyseas/piece"
)

// ErrNoSolution is returned by Solve when the frontier drains without ever
// reaching a solved state.
var ErrNoSolution = errors.New("search: puzzle has no solution")

// ProgressFunc is invoked periodically during a solve with the current BFS
// depth, the number of states visited so far, and the current frontier
// length. It is a plain observer callback, not a logging call, so the
// search itself stays side-effect-free; callers (the CLI, the visualizer)
// decide what to do with the snapshot.
type ProgressFunc func(depth, statesVisited, frontierLen int)

// backPointer records how a state was first reached: the parent state and
// the move that produced it. The initial state's entry has root set and a
// zero-value move.
type backPointer struct {
	parent board.State
	move   Move
	root   bool
}

// Puzzle wraps an initial state for repeated or configured solves, matching
// the programmatic surface: NewPuzzle(initial).Solve().
type Puzzle struct {
	initial  board.State
	Progress ProgressFunc
}

// NewPuzzle constructs a Puzzle from its initial state.
func NewPuzzle(initial board.State) *Puzzle {
	return &Puzzle{initial: initial}
}

// Solve runs the sequential reference breadth-first search.
func (p *Puzzle) Solve() (Solution, error) {
	return Solve(p.initial, p.Progress)
}

type frontierItem struct {
	state board.State
	depth int
}

// Solve performs a plain breadth-first search from s0, expanding one state
// per loop iteration with no suspension points: a FIFO frontier, a visited
// map keyed by canonical state, and a most-recently-moved-first piece
// reorder that only affects the representation of the resulting solution
// (via compaction), never its length.
func Solve(s0 board.State, progress ProgressFunc) (Solution, error) {
	visited := map[string]backPointer{
		s0.Key(): {root: true},
	}
	queue := []frontierItem{{state: s0, depth: 0}}

	depth := 0
	remainingAtDepth := 1

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.state.IsSolved() {
			return reconstruct(visited, item.state), nil
		}

		lastMoveID := ""
		if bp := visited[item.state.Key()]; !bp.root {
			lastMoveID = bp.move.PieceID
		}

		for _, p := range reorderPieces(item.state, lastMoveID) {
			for _, d := range p.AllowedDirections() {
				successor := item.state.Move(p, d)
				if !successor.IsValid() {
					continue
				}
				key := successor.Key()
				if _, seen := visited[key]; seen {
					continue
				}

				visited[key] = backPointer{
					parent: item.state,
					move:   Move{PieceID: p.ID, Direction: d, Distance: 1},
				}

				if successor.IsSolved() {
					return reconstruct(visited, successor), nil
				}

				queue = append(queue, frontierItem{state: successor, depth: item.depth + 1})
			}
		}

		remainingAtDepth--
		if remainingAtDepth == 0 {
			if progress != nil {
				progress(depth, len(visited), len(queue))
			}
			remainingAtDepth = len(queue)
			depth++
		}
	}

	if progress != nil {
		progress(depth, len(visited), len(queue))
	}
	return Solution{}, ErrNoSolution
}

// reorderPieces places the piece identified by lastMoveID first in the
// enumeration order, if present; this is purely a compaction optimization
// (it increases the chance of generating adjacent mergeable moves) and does
// not affect correctness or BFS ordering.
func reorderPieces(s board.State, lastMoveID string) []piece.Piece {
	pieces := s.Pieces()
	if lastMoveID == "" {
		return pieces
	}

	idx := -1
	for i, p := range pieces {
		if p.ID == lastMoveID {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return pieces
	}

	reordered := make([]piece.Piece, 0, len(pieces))
	reordered = append(reordered, pieces[idx])
	reordered = append(reordered, pieces[:idx]...)
	reordered = append(reordered, pieces[idx+1:]...)
	return reordered
}

// reconstruct walks the visited map's parent pointers from the solved state
// back to the root, collects the moves, reverses them, and compacts
// consecutive mergeable unit moves into steps.
func reconstruct(visited map[string]backPointer, solved board.State) Solution {
	var moves []Move

	cur := solved
	for {
		bp := visited[cur.Key()]
		if bp.root {
			break
		}
		moves = append(moves, bp.move)
		cur = bp.parent
	}

	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return Solution{Steps: compact(moves)}
}
