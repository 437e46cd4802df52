// Package piece models the two kinds of objects that occupy board cells:
// boats, which translate in all four cardinal directions, and waves, the
// row-wide blocks that only slide left and right. Both are represented as a
// single tagged Piece value rather than an inheritance hierarchy so the move
// engine can translate either kind through one code path.
package piece

import (
	"fmt"
	"strings"

	"stormyseas/geometry"
)

// Kind tags a Piece as a Boat or a Wave.
type Kind int

const (
	Boat Kind = iota
	Wave
)

func (k Kind) String() string {
	if k == Boat {
		return "Boat"
	}
	return "Wave"
}

// RedBoatID is the identifier of the distinguished boat whose arrival at the
// port solves the puzzle.
const RedBoatID = "X"

const waveBlockChar = '#'

// ErrUnsupportedDirection is the invariant-violation panic raised by Move
// when asked to translate a piece along a direction it does not support.
// Callers that only ever generate moves via AllowedDirections never trigger
// this; it exists to catch programmer error, not operational failure.
type ErrUnsupportedDirection struct {
	Kind      Kind
	ID        string
	Direction geometry.Direction
}

func (e ErrUnsupportedDirection) Error() string {
	return fmt.Sprintf("piece: %s %q does not support direction %s", e.Kind, e.ID, e.Direction)
}

// Piece is an ordered tuple of board cells sharing an identifier. For a Boat,
// Cells[0] is the front. For a Wave, Cells is the set of block cells in one
// row; order is insignificant but kept stable for deterministic rendering.
type Piece struct {
	Kind  Kind
	ID    string
	Cells []geometry.Position
}

// NewBoat constructs a Boat piece. front is placed first in the cell order;
// rest follows in the order the parser encountered them.
func NewBoat(id string, front geometry.Position, rest []geometry.Position) Piece {
	cells := make([]geometry.Position, 0, len(rest)+1)
	cells = append(cells, front)
	cells = append(cells, rest...)
	return Piece{Kind: Boat, ID: strings.ToUpper(id), Cells: cells}
}

// NewWave constructs a Wave piece from its block cells.
func NewWave(id string, cells []geometry.Position) Piece {
	dup := make([]geometry.Position, len(cells))
	copy(dup, cells)
	return Piece{Kind: Wave, ID: id, Cells: dup}
}

// Front returns the Boat's front cell. Result is undefined for a Wave.
func (p Piece) Front() geometry.Position {
	return p.Cells[0]
}

// AllowedDirections returns the directions this piece may be asked to move
// in, independent of board state. Boats move in all four; waves only slide
// horizontally.
func (p Piece) AllowedDirections() []geometry.Direction {
	if p.Kind == Wave {
		return []geometry.Direction{geometry.Left, geometry.Right}
	}
	return []geometry.Direction{geometry.Up, geometry.Down, geometry.Left, geometry.Right}
}

func (p Piece) supports(d geometry.Direction) bool {
	for _, allowed := range p.AllowedDirections() {
		if allowed == d {
			return true
		}
	}
	return false
}

// Move returns a new piece with every cell shifted by d's unit delta,
// preserving cell order (so a Boat's front stays Cells[0]). It panics with
// ErrUnsupportedDirection if d is not one this piece's kind allows: that
// can only happen if a caller bypasses AllowedDirections, an invariant
// violation rather than an operational failure (see the error taxonomy).
func (p Piece) Move(d geometry.Direction) Piece {
	if !p.supports(d) {
		panic(ErrUnsupportedDirection{Kind: p.Kind, ID: p.ID, Direction: d})
	}

	delta := d.UnitDelta()
	cells := make([]geometry.Position, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = c.Add(delta)
	}
	return Piece{Kind: p.Kind, ID: p.ID, Cells: cells}
}

// CollidesWith reports whether p and other occupy a shared cell. Only
// pieces of different kinds are checked: waves never collide with waves
// (disjoint rows) and no solvable board ever seats two boats adjacent
// enough to collide horizontally (see the design notes for the argument);
// IsValid still re-validates every successor, so a future board that broke
// this assumption would simply be rejected rather than silently corrupted.
func (p Piece) CollidesWith(other Piece) bool {
	if p.Kind == other.Kind {
		return false
	}
	for _, a := range p.Cells {
		for _, b := range other.Cells {
			if a == b {
				return true
			}
		}
	}
	return false
}

// Character returns the rendering glyph for pos, which must be one of p's
// cells. Boats render as their (uppercase) id, lowercased at the front cell;
// waves always render as the block glyph.
func (p Piece) Character(pos geometry.Position) byte {
	if p.Kind == Wave {
		return waveBlockChar
	}
	if pos == p.Front() {
		return strings.ToLower(p.ID)[0]
	}
	return p.ID[0]
}

func (p Piece) String() string {
	cells := make([]string, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = c.String()
	}
	return "{" + p.ID + ": " + strings.Join(cells, ", ") + "}"
}
