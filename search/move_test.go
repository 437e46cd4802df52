package search

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"stormyseas/geometry"
)

func TestMoveMerge(t *testing.T) {
	Convey("Given two adjacent unit moves of the same piece and direction", t, func() {
		a := Move{PieceID: "4", Direction: geometry.Left, Distance: 1}
		b := Move{PieceID: "4", Direction: geometry.Left, Distance: 1}

		Convey("they can merge", func() {
			So(a.CanMergeWith(b), ShouldBeTrue)
			merged := a.Merge(b)
			So(merged.Distance, ShouldEqual, 2)
		})
	})

	Convey("Given moves of different pieces", t, func() {
		a := Move{PieceID: "4", Direction: geometry.Left, Distance: 1}
		b := Move{PieceID: "5", Direction: geometry.Left, Distance: 1}

		Convey("they cannot merge", func() {
			So(a.CanMergeWith(b), ShouldBeFalse)
		})
	})

	Convey("Given a move", t, func() {
		m := Move{PieceID: "X", Direction: geometry.Down, Distance: 5}

		Convey("String renders its notation token", func() {
			So(m.String(), ShouldEqual, "XD5")
		})
	})
}

func TestCompact(t *testing.T) {
	Convey("Given the first four steps of reference card 3 as unit moves", t, func() {
		moves := []Move{
			{PieceID: "4", Direction: geometry.Left, Distance: 1},
			{PieceID: "4", Direction: geometry.Left, Distance: 1},
			{PieceID: "5", Direction: geometry.Left, Distance: 1},
			{PieceID: "5", Direction: geometry.Left, Distance: 1},
			{PieceID: "X", Direction: geometry.Up, Distance: 1},
			{PieceID: "X", Direction: geometry.Up, Distance: 1},
			{PieceID: "X", Direction: geometry.Up, Distance: 1},
			{PieceID: "X", Direction: geometry.Right, Distance: 1},
			{PieceID: "X", Direction: geometry.Right, Distance: 1},
		}

		Convey("compact merges each run into one step", func() {
			steps := compact(moves)
			So(steps, ShouldResemble, []Move{
				{PieceID: "4", Direction: geometry.Left, Distance: 2},
				{PieceID: "5", Direction: geometry.Left, Distance: 2},
				{PieceID: "X", Direction: geometry.Up, Distance: 3},
				{PieceID: "X", Direction: geometry.Right, Distance: 2},
			})
		})
	})

	Convey("Given an empty move list", t, func() {
		So(compact(nil), ShouldBeNil)
	})
}

func TestSolution(t *testing.T) {
	Convey("Given reference card 3's expected steps", t, func() {
		sol := Solution{Steps: []Move{
			{PieceID: "4", Direction: geometry.Left, Distance: 2},
			{PieceID: "5", Direction: geometry.Left, Distance: 2},
			{PieceID: "X", Direction: geometry.Up, Distance: 3},
			{PieceID: "X", Direction: geometry.Right, Distance: 2},
			{PieceID: "6", Direction: geometry.Left, Distance: 2},
			{PieceID: "7", Direction: geometry.Left, Distance: 1},
			{PieceID: "8", Direction: geometry.Right, Distance: 2},
			{PieceID: "X", Direction: geometry.Down, Distance: 5},
		}}

		Convey("ToNotation matches the reference card exactly", func() {
			So(sol.ToNotation(), ShouldEqual, "4L2, 5L2, XU3, XR2, 6L2, 7L1, 8R2, XD5")
		})

		Convey("MoveCount sums distances", func() {
			So(sol.MoveCount(), ShouldEqual, 19)
		})

		Convey("StepCount counts steps", func() {
			So(sol.StepCount(), ShouldEqual, 8)
		})
	})
}
