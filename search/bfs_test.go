package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"stormyseas/board"
	"stormyseas/geometry"
	"stormyseas/parser"
	"stormyseas/piece"
)

func referenceConfig() board.Config {
	return board.Config{
		Height:    8,
		Width:     9,
		PortFront: geometry.Position{Row: 7, Column: 5},
		PortBack:  geometry.Position{Row: 6, Column: 5},
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	Convey("Given the red boat already at the port", t, func() {
		cfg := referenceConfig()
		red := piece.NewBoat(piece.RedBoatID, cfg.PortFront, []geometry.Position{cfg.PortBack})
		s0 := board.New(cfg, []piece.Piece{red})

		Convey("Solve returns an empty solution", func() {
			sol, err := Solve(s0, nil)
			So(err, ShouldBeNil)
			So(sol.MoveCount(), ShouldEqual, 0)
			So(sol.StepCount(), ShouldEqual, 0)
			So(sol.ToNotation(), ShouldEqual, "")
		})
	})
}

func TestSolveSingleStep(t *testing.T) {
	Convey("Given the red boat one cell short of the port with a clear path", t, func() {
		cfg := referenceConfig()
		red := piece.NewBoat(piece.RedBoatID, geometry.Position{Row: 6, Column: 5}, []geometry.Position{{Row: 5, Column: 5}})
		s0 := board.New(cfg, []piece.Piece{red})

		Convey("Solve finds the single DOWN move", func() {
			sol, err := Solve(s0, nil)
			So(err, ShouldBeNil)
			So(sol.ToNotation(), ShouldEqual, "XD1")
			So(sol.MoveCount(), ShouldEqual, 1)
			So(sol.StepCount(), ShouldEqual, 1)
		})
	})
}

func TestSolveBlockingWaveMustMoveFirst(t *testing.T) {
	Convey("Given a red boat that must be freed by pushing a wave out of the way", t, func() {
		cfg := referenceConfig()
		// Red boat sits directly above the port, blocked from descending by a
		// wave sitting across the port row; sliding that wave clears the path.
		red := piece.NewBoat(piece.RedBoatID, geometry.Position{Row: 6, Column: 5}, []geometry.Position{{Row: 5, Column: 5}})
		blockingWave := piece.NewWave("8", []geometry.Position{{Row: 7, Column: 5}})
		s0 := board.New(cfg, []piece.Piece{red, blockingWave})

		Convey("Solve routes around the obstruction", func() {
			sol, err := Solve(s0, nil)
			So(err, ShouldBeNil)
			So(sol.MoveCount(), ShouldBeGreaterThan, 1)
		})
	})
}

func TestSolveNoSolution(t *testing.T) {
	Convey("Given a red boat walled in by an immovable wave with no room to maneuver", t, func() {
		cfg := board.Config{
			Height:    3,
			Width:     1,
			PortFront: geometry.Position{Row: 2, Column: 0},
			PortBack:  geometry.Position{Row: 1, Column: 0},
		}
		red := piece.NewBoat(piece.RedBoatID, geometry.Position{Row: 0, Column: 0}, []geometry.Position{{Row: 1, Column: 0}})
		wall := piece.NewWave("3", []geometry.Position{{Row: 2, Column: 0}})
		s0 := board.New(cfg, []piece.Piece{red, wall})

		Convey("Solve reports NoSolution", func() {
			_, err := Solve(s0, nil)
			So(errors.Is(err, ErrNoSolution), ShouldBeTrue)
		})
	})
}

func TestSolveDepthEqualsMoveCount(t *testing.T) {
	Convey("Given a solvable puzzle", t, func() {
		cfg := referenceConfig()
		red := piece.NewBoat(piece.RedBoatID, geometry.Position{Row: 4, Column: 5}, []geometry.Position{{Row: 3, Column: 5}})
		s0 := board.New(cfg, []piece.Piece{red})

		Convey("move count equals the number of unit moves reconstructed", func() {
			sol, err := Solve(s0, nil)
			So(err, ShouldBeNil)
			total := 0
			for _, step := range sol.Steps {
				total += step.Distance
			}
			So(sol.MoveCount(), ShouldEqual, total)
		})
	})
}

func TestSolveParallelMatchesSequential(t *testing.T) {
	Convey("Given the same blocking-wave puzzle", t, func() {
		cfg := referenceConfig()
		red := piece.NewBoat(piece.RedBoatID, geometry.Position{Row: 6, Column: 5}, []geometry.Position{{Row: 5, Column: 5}})
		blockingWave := piece.NewWave("8", []geometry.Position{{Row: 7, Column: 5}})
		s0 := board.New(cfg, []piece.Piece{red, blockingWave})

		Convey("SolveParallel returns the identical notation for several worker counts", func() {
			sequential, err := Solve(s0, nil)
			So(err, ShouldBeNil)

			for _, n := range []int{1, 2, 4} {
				parallel, err := SolveParallel(context.Background(), s0, n, nil)
				So(err, ShouldBeNil)
				So(parallel.ToNotation(), ShouldEqual, sequential.ToNotation())
			}
		})
	})
}

// wedgedBoard blocks the red boat's only path to port with a two-cell wave
// wedged against the board's left edge: it can only be freed by sliding it
// right, and a one-cell slide still leaves it covering the port column, so
// the boat and wave have exactly one valid order of moves between them.
const wedgedBoard = `
-X--
-x--
##--
----
`

func wedgedConfig() board.Config {
	return board.Config{
		Height:    4,
		Width:     4,
		PortFront: geometry.Position{Row: 3, Column: 1},
		PortBack:  geometry.Position{Row: 2, Column: 1},
	}
}

func TestSolveParsedBoardWithWedgedWave(t *testing.T) {
	Convey("Given a board parsed from text where a wedged wave blocks the port column", t, func() {
		cfg := wedgedConfig()
		s0, err := parser.Parse(strings.NewReader(wedgedBoard), cfg)
		So(err, ShouldBeNil)

		Convey("Solve frees the wave before descending to port", func() {
			sol, err := Solve(s0, nil)
			So(err, ShouldBeNil)
			So(sol.ToNotation(), ShouldEqual, "3R2, XD2")
			So(sol.MoveCount(), ShouldEqual, 4)
			So(sol.StepCount(), ShouldEqual, 2)
		})
	})
}
