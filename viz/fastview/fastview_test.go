package fastview_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"stormyseas/board"
	"stormyseas/geometry"
	"stormyseas/piece"
	"stormyseas/viz/boardview"
	"stormyseas/viz/fastview"
)

// This test lives outside package fastview (and so outside the fastview
// package's own import graph) because it builds a view with boardview,
// which itself depends on fastview.
func TestViewBuilderBuildsBoardGrid(t *testing.T) {
	Convey("Given a ViewBuilder wired to convert board states into a board grid view", t, func() {
		cfg := board.Config{Height: 1, Width: 1}
		boards := make(chan board.State)

		views, err := fastview.NewViewBuilder[board.State, [][]boardview.Cell]().
			WithModel(boards, boardview.Convert).
			WithView(func(done <-chan struct{}, cells <-chan [][]boardview.Cell) fastview.ViewComponent {
				return boardview.NewBoardGrid(done, cfg.Height, cfg.Width, cells)
			}).
			Build()

		Convey("Build succeeds with exactly one view", func() {
			So(err, ShouldBeNil)
			So(len(views), ShouldEqual, 1)

			Convey("Publishing a board produces ele-updates for its one cell", func() {
				wave := piece.NewWave("1", []geometry.Position{{Row: 0, Column: 0}})

				go func() {
					boards <- board.New(cfg, []piece.Piece{wave})
				}()

				update := <-views[0].Updates()
				So(update, ShouldContain, fastview.EleUpdate{
					EleId: "cell-0-0",
					Ops:   []fastview.Op{{Key: "fill", Value: "#5b7fa6"}},
				})
				So(update, ShouldContain, fastview.EleUpdate{
					EleId: "cell-0-0-label",
					Ops:   []fastview.Op{{Key: "textContent", Value: "#"}},
				})
			})
		})
	})
}
