package boardview

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"stormyseas/board"
	"stormyseas/geometry"
	"stormyseas/piece"
)

func TestConvert(t *testing.T) {
	Convey("Given a board with a red boat and a wave", t, func() {
		cfg := board.Config{
			Height:    2,
			Width:     2,
			PortFront: geometry.Position{Row: 1, Column: 0},
			PortBack:  geometry.Position{Row: 0, Column: 0},
		}
		red := piece.NewBoat(piece.RedBoatID, geometry.Position{Row: 0, Column: 0}, []geometry.Position{{Row: 0, Column: 1}})
		wave := piece.NewWave("2", []geometry.Position{{Row: 1, Column: 0}})
		s := board.New(cfg, []piece.Piece{red, wave})

		Convey("Convert produces an HxW grid with the red boat and wave colored distinctly from empty cells", func() {
			cells := Convert(s)
			So(len(cells), ShouldEqual, 2)
			So(len(cells[0]), ShouldEqual, 2)

			So(cells[0][0].Fill, ShouldEqual, redFill)
			So(cells[0][0].Glyph, ShouldEqual, "x")
			So(cells[1][0].Fill, ShouldEqual, waveFill)
			So(cells[1][1].Fill, ShouldEqual, emptyFill)
		})
	})
}
