// Package boardview renders a board.State as a live SVG grid: one <rect> per
// cell, colored by occupant (boat, wave, or empty) and labeled with its
// rendering glyph. A puzzle board has no value function to project, so this
// uses a flat grid of rects rather than an isometric surface, while keeping
// the Cell/Convert/ViewComponent shape used elsewhere in this package tree.
package boardview

import (
	"fmt"
	"html/template"
	"strings"

	channerics "github.com/niceyeti/channerics/channels"

	"stormyseas/board"
	"stormyseas/piece"
	"stormyseas/viz/fastview"
)

// Cell is one board square, reduced to exactly what the view needs:
// coordinates for its element id and the glyph/fill to render. Cell fields
// should be immediately usable as view parameters.
type Cell struct {
	Row, Column int
	Glyph       string
	Fill        string
}

const (
	emptyFill = "#eef3f7"
	waveFill  = "#5b7fa6"
	boatFill  = "#e0a458"
	redFill   = "#c23b3b"
)

// Convert flattens a board.State into the grid of Cells the view template
// and onUpdate both consume.
func Convert(s board.State) [][]Cell {
	cfg := s.Config()
	grid := make([][]Cell, cfg.Height)
	for r := range grid {
		row := make([]Cell, cfg.Width)
		for c := range row {
			row[c] = Cell{Row: r, Column: c, Glyph: "", Fill: emptyFill}
		}
		grid[r] = row
	}

	for _, p := range s.Pieces() {
		for _, pos := range p.Cells {
			grid[pos.Row][pos.Column] = Cell{
				Row:    pos.Row,
				Column: pos.Column,
				Glyph:  string(p.Character(pos)),
				Fill:   getFill(p),
			}
		}
	}
	return grid
}

// getFill chooses the cell's fill color: the red boat gets its own color so
// the goal piece is always easy to find, other boats share a color, and
// waves get a third.
func getFill(p piece.Piece) string {
	if p.Kind == piece.Wave {
		return waveFill
	}
	if p.ID == piece.RedBoatID {
		return redFill
	}
	return boatFill
}

// BoardGrid is the live SVG grid view component.
type BoardGrid struct {
	id      string
	height  int
	width   int
	updates <-chan []fastview.EleUpdate
}

// NewBoardGrid builds a BoardGrid view fed by a stream of board snapshots.
// height/width size the initial SVG; boards never change shape mid-solve.
func NewBoardGrid(
	done <-chan struct{},
	height, width int,
	cells <-chan [][]Cell,
) *BoardGrid {
	bg := &BoardGrid{id: "board", height: height, width: width}
	bg.updates = channerics.Convert(done, cells, bg.onUpdate)
	return bg
}

func (bg *BoardGrid) Updates() <-chan []fastview.EleUpdate {
	return bg.updates
}

func cellID(row, col int) string {
	return fmt.Sprintf("cell-%d-%d", row, col)
}

func (bg *BoardGrid) onUpdate(cells [][]Cell) (ops []fastview.EleUpdate) {
	for _, row := range cells {
		for _, cell := range row {
			ops = append(ops, fastview.EleUpdate{
				EleId: cellID(cell.Row, cell.Column),
				Ops: []fastview.Op{
					{Key: "fill", Value: cell.Fill},
				},
			})
			ops = append(ops, fastview.EleUpdate{
				EleId: cellID(cell.Row, cell.Column) + "-label",
				Ops: []fastview.Op{
					{Key: "textContent", Value: cell.Glyph},
				},
			})
		}
	}
	return
}

const cellDim = 48

// Parse renders the initial grid of <rect>/<text> pairs, one per board cell,
// each tagged with the element ids onUpdate later targets.
func (bg *BoardGrid) Parse(t *template.Template) (name string, err error) {
	name = bg.id
	var b strings.Builder
	fmt.Fprintf(&b, `{{ define "%s" }}`, name)
	fmt.Fprintf(&b, `<svg id="%s" xmlns="http://www.w3.org/2000/svg" width="%dpx" height="%dpx">`,
		bg.id, bg.width*cellDim, bg.height*cellDim)
	for r := 0; r < bg.height; r++ {
		for c := 0; c < bg.width; c++ {
			fmt.Fprintf(&b,
				`<rect id="%s" x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="#ffffff"/>`,
				cellID(r, c), c*cellDim, r*cellDim, cellDim, cellDim, emptyFill)
			fmt.Fprintf(&b,
				`<text id="%s-label" x="%d" y="%d" text-anchor="middle" dominant-baseline="middle"></text>`,
				cellID(r, c), c*cellDim+cellDim/2, r*cellDim+cellDim/2)
		}
	}
	b.WriteString(`</svg>{{ end }}`)

	_, err = t.Parse(b.String())
	return
}
