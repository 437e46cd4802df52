package piece

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"stormyseas/geometry"
)

func TestBoatMove(t *testing.T) {
	Convey("Given a two-cell red boat with front at (6,5)", t, func() {
		b := NewBoat(RedBoatID, geometry.Position{Row: 6, Column: 5}, []geometry.Position{{Row: 5, Column: 5}})

		Convey("AllowedDirections includes all four cardinals", func() {
			So(b.AllowedDirections(), ShouldResemble, []geometry.Direction{
				geometry.Up, geometry.Down, geometry.Left, geometry.Right,
			})
		})

		Convey("Move preserves front-first ordering", func() {
			moved := b.Move(geometry.Down)
			So(moved.Front(), ShouldResemble, geometry.Position{Row: 7, Column: 5})
			So(moved.Cells[1], ShouldResemble, geometry.Position{Row: 6, Column: 5})
		})

		Convey("Character lowercases only the front cell", func() {
			So(b.Character(geometry.Position{Row: 6, Column: 5}), ShouldEqual, byte('x'))
			So(b.Character(geometry.Position{Row: 5, Column: 5}), ShouldEqual, byte('X'))
		})
	})
}

func TestWaveMove(t *testing.T) {
	Convey("Given a wave occupying row 4", t, func() {
		w := NewWave("5", []geometry.Position{{Row: 4, Column: 0}, {Row: 4, Column: 1}})

		Convey("AllowedDirections is only LEFT and RIGHT", func() {
			So(w.AllowedDirections(), ShouldResemble, []geometry.Direction{geometry.Left, geometry.Right})
		})

		Convey("Moving vertically panics as an invariant violation", func() {
			So(func() { w.Move(geometry.Up) }, ShouldPanic)
		})

		Convey("Character always renders the block glyph", func() {
			So(w.Character(geometry.Position{Row: 4, Column: 0}), ShouldEqual, byte('#'))
		})
	})
}

func TestCollidesWith(t *testing.T) {
	Convey("Given an overlapping boat and wave", t, func() {
		boat := NewBoat("A", geometry.Position{Row: 2, Column: 3}, nil)
		wave := NewWave("3", []geometry.Position{{Row: 2, Column: 3}})
		otherWave := NewWave("3", []geometry.Position{{Row: 2, Column: 3}})

		Convey("different kinds sharing a cell collide", func() {
			So(boat.CollidesWith(wave), ShouldBeTrue)
		})

		Convey("same kind never collides, even sharing a cell", func() {
			So(wave.CollidesWith(otherWave), ShouldBeFalse)
		})

		Convey("disjoint pieces do not collide", func() {
			other := NewBoat("B", geometry.Position{Row: 5, Column: 5}, nil)
			So(boat.CollidesWith(other), ShouldBeFalse)
		})
	})
}
