// Package board implements the canonical, immutable board State: its
// validity and solved predicates, canonical rendering for hashing, and the
// push-propagation move engine that produces successor states.
package board

import (
	"strings"

	"stormyseas/geometry"
	"stormyseas/piece"
)

const (
	emptyChar     = '-'
	boardRenderNL = "\n"
)

// Config carries the puzzle-specific constants that parameterize an
// otherwise puzzle-agnostic engine: board dimensions and the red boat's
// goal cells. It holds no I/O of its own; config.Load/config.Reference
// produce it from the outside.
type Config struct {
	Height int
	Width  int

	// PortFront is the red boat's required front-cell position when solved.
	PortFront geometry.Position
	// PortBack is the red boat's required trailing-cell position when solved.
	PortBack geometry.Position
}

// State is an immutable collection of pieces. Successor states are always
// new values; nothing in this package mutates a State after construction.
type State struct {
	cfg    Config
	pieces []piece.Piece
}

// New constructs a State from its config and pieces. The pieces slice is
// copied so later mutation by the caller cannot violate immutability.
func New(cfg Config, pieces []piece.Piece) State {
	dup := make([]piece.Piece, len(pieces))
	copy(dup, pieces)
	return State{cfg: cfg, pieces: dup}
}

// Config returns the board configuration this state was built against.
func (s State) Config() Config {
	return s.cfg
}

// Pieces returns the state's pieces in their stable enumeration order.
func (s State) Pieces() []piece.Piece {
	dup := make([]piece.Piece, len(s.pieces))
	copy(dup, s.pieces)
	return dup
}

// FindPiece returns the piece with the given id, if present.
func (s State) FindPiece(id string) (piece.Piece, bool) {
	for _, p := range s.pieces {
		if p.ID == id {
			return p, true
		}
	}
	return piece.Piece{}, false
}

func (s State) indexOf(id string) int {
	for i, p := range s.pieces {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Move applies direction to p and returns the resulting successor state,
// propagating any forced pushes through interlocked pieces of the other
// kind. See the push-propagation design note: vertical moves never need
// propagation (waves don't move vertically, and a boat pushing a boat
// vertically is equivalent to moving them one at a time, which BFS already
// enumerates), so only horizontal moves run the work-queue below.
func (s State) Move(p piece.Piece, direction geometry.Direction) State {
	if !direction.IsHorizontal() {
		return s.translate(p, direction)
	}
	return s.push(p, direction)
}

// Undo returns the state that results from moving p the opposite direction,
// the inverse of Move for reversibility checks.
func (s State) Undo(p piece.Piece, direction geometry.Direction) State {
	return s.Move(p, direction.Opposite())
}

func (s State) translate(p piece.Piece, direction geometry.Direction) State {
	pieces := make([]piece.Piece, len(s.pieces))
	copy(pieces, s.pieces)
	idx := s.indexOf(p.ID)
	pieces[idx] = pieces[idx].Move(direction)
	return State{cfg: s.cfg, pieces: pieces}
}

// push implements the FIFO work-queue described in the move-engine design:
// seed the queue with the requested piece, and whenever a moved piece now
// collides with a not-yet-queued piece of the other kind, enqueue that piece
// too. Every piece moves at most once, so the queue always drains.
func (s State) push(p piece.Piece, direction geometry.Direction) State {
	pieces := make([]piece.Piece, len(s.pieces))
	copy(pieces, s.pieces)

	queue := []string{p.ID}
	queued := map[string]bool{p.ID: true}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		idx := s.indexOf(id)
		moved := pieces[idx].Move(direction)
		pieces[idx] = moved

		for _, other := range pieces {
			if other.ID == id || queued[other.ID] {
				continue
			}
			if moved.CollidesWith(other) {
				queued[other.ID] = true
				queue = append(queue, other.ID)
			}
		}
	}

	return State{cfg: s.cfg, pieces: pieces}
}

// IsValid reports whether no two cells collide and every cell is in bounds.
// Boat contiguity need not be rechecked here: Move translates every cell of
// a piece by the same delta, which preserves shape by construction.
func (s State) IsValid() bool {
	seen := make(map[geometry.Position]bool)
	for _, p := range s.pieces {
		for _, c := range p.Cells {
			if !c.InBounds(s.cfg.Height, s.cfg.Width) {
				return false
			}
			if seen[c] {
				return false
			}
			seen[c] = true
		}
	}
	return true
}

// IsSolved reports whether the red boat occupies exactly the port cells,
// front first. This is the strict front-at-front interpretation resolved
// in the design notes: front must equal PortFront exactly, not merely lie
// somewhere within the port's cells.
func (s State) IsSolved() bool {
	red, ok := s.FindPiece(piece.RedBoatID)
	if !ok {
		return false
	}
	if len(red.Cells) != 2 {
		return false
	}
	return red.Cells[0] == s.cfg.PortFront && red.Cells[1] == s.cfg.PortBack
}

// grid renders the board as a byte matrix, shared by Render and Key so both
// forms of canonicalization agree by construction.
func (s State) grid() [][]byte {
	rows := make([][]byte, s.cfg.Height)
	for r := range rows {
		row := make([]byte, s.cfg.Width)
		for c := range row {
			row[c] = emptyChar
		}
		rows[r] = row
	}
	for _, p := range s.pieces {
		for _, cell := range p.Cells {
			rows[cell.Row][cell.Column] = p.Character(cell)
		}
	}
	return rows
}

// Render produces the canonical HxW character grid described in the data
// model: boat id letters (lowercase at the front cell), '#' for wave cells,
// '-' elsewhere, rows joined by newlines.
func (s State) Render() string {
	rows := s.grid()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, boardRenderNL)
}

// Key returns a compact, allocation-light canonical form suitable as a map
// key: the same bytes as Render but without newline separators, so
// equal-rendering states always produce an equal Key and vice versa.
func (s State) Key() string {
	rows := s.grid()
	buf := make([]byte, 0, s.cfg.Height*s.cfg.Width)
	for _, row := range rows {
		buf = append(buf, row...)
	}
	return string(buf)
}
