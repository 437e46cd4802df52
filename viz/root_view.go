package viz

import (
	"context"
	"html/template"
	"time"

	channerics "github.com/niceyeti/channerics/channels"

	"stormyseas/board"
	"stormyseas/viz/boardview"
	"stormyseas/viz/fastview"
)

// rootView is the main page's index.html: the container for the board grid
// and the counters view, and the wiring that fans their ele-update channels
// into one stream for the websocket client.
type rootView struct {
	views   []fastview.ViewComponent
	updates <-chan []fastview.EleUpdate
}

// newRootView builds the board grid and counters views via a ViewBuilder per
// view-model (the grid converts board.State to a cell grid, the counters
// view consumes boardview.Progress unconverted) and wires their updates
// together. WithModel and WithView are always called below before Build, so
// ErrNoModel/ErrNoViews can only signal a programmer error in this
// constructor, not an operational failure.
func newRootView(
	ctx context.Context,
	initial board.State,
	boards <-chan board.State,
	progress <-chan boardview.Progress,
) *rootView {
	cfg := initial.Config()

	gridViews, err := fastview.NewViewBuilder[board.State, [][]boardview.Cell]().
		WithContext(ctx).
		WithModel(boards, boardview.Convert).
		WithView(func(done <-chan struct{}, cells <-chan [][]boardview.Cell) fastview.ViewComponent {
			return boardview.NewBoardGrid(done, cfg.Height, cfg.Width, cells)
		}).
		Build()
	if err != nil {
		panic(err)
	}

	counterViews, err := fastview.NewViewBuilder[boardview.Progress, boardview.Progress]().
		WithContext(ctx).
		WithModel(progress, identity[boardview.Progress]).
		WithView(func(done <-chan struct{}, snaps <-chan boardview.Progress) fastview.ViewComponent {
			return boardview.NewCounters(done, snaps)
		}).
		Build()
	if err != nil {
		panic(err)
	}

	views := append(gridViews, counterViews...)
	return &rootView{
		views:   views,
		updates: fanIn(ctx.Done(), views),
	}
}

func identity[T any](v T) T { return v }

func (rv *rootView) Updates() <-chan []fastview.EleUpdate {
	return rv.updates
}

// Parse builds the page template: the websocket client bootstrap script
// plus each view's markup, with each view's template nested inside.
func (rv *rootView) Parse(parent *template.Template) (name string, err error) {
	rt := parent.Funcs(template.FuncMap{
		"add":  func(i, j int) int { return i + j },
		"sub":  func(i, j int) int { return i - j },
		"mult": func(i, j int) int { return i * j },
		"div":  func(i, j int) int { return i / j },
	})

	var bodySpec string
	for _, vc := range rv.views {
		tname, parseErr := vc.Parse(rt)
		if parseErr != nil {
			return "", parseErr
		}
		bodySpec += `{{ template "` + tname + `" . }}`
	}

	name = "mainpage"
	indexTemplate := `
	{{ define "` + name + `" }}
	<!DOCTYPE html>
	<html>
		<head>
			<title>stormy seas</title>
			<link rel="icon" href="data:,">
			<script>
				const ws = new WebSocket("ws://" + window.location.host + "/ws");
				ws.onopen = function () { console.log("search progress socket opened"); };
				ws.onerror = function (event) { console.log("websocket error: ", event); };
				ws.onmessage = function (event) {
					const items = JSON.parse(event.data);
					for (const update of items) {
						const ele = document.getElementById(update.EleId);
						if (!ele) { continue; }
						for (const op of update.Ops) {
							if (op.Key === "textContent") {
								ele.textContent = op.Value;
							} else {
								ele.setAttribute(op.Key, op.Value);
							}
						}
					}
				};
			</script>
		</head>
		<body>
		` + bodySpec + `
		</body>
	</html>
	{{ end }}
	`

	_, err = rt.Parse(indexTemplate)
	return
}

// fanIn merges every view's ele-update channel into one and rate-limits its
// output so redundant updates to the same element within a short window
// collapse into the latest value.
func fanIn(done <-chan struct{}, views []fastview.ViewComponent) <-chan []fastview.EleUpdate {
	inputs := make([]<-chan []fastview.EleUpdate, len(views))
	for i, v := range views {
		inputs[i] = v.Updates()
	}
	return batchify(done, channerics.Merge(done, inputs...), 20*time.Millisecond)
}

func batchify(
	done <-chan struct{},
	source <-chan []fastview.EleUpdate,
	rate time.Duration,
) <-chan []fastview.EleUpdate {
	output := make(chan []fastview.EleUpdate)

	go func() {
		defer close(output)

		data := map[string]fastview.EleUpdate{}
		last := time.Now()
		for updates := range channerics.OrDone(done, source) {
			for _, u := range updates {
				data[u.EleId] = u
			}

			if time.Since(last) > rate && len(updates) > 0 {
				batch := make([]fastview.EleUpdate, 0, len(data))
				for _, v := range data {
					batch = append(batch, v)
				}
				select {
				case output <- batch:
					data = map[string]fastview.EleUpdate{}
					last = time.Now()
				case <-done:
					return
				}
			}
		}

		// Flush whatever accumulated since the last send: the source closes
		// once when every view's updates channel is done, including right
		// after a final state lands inside the rate window above.
		if len(data) > 0 {
			batch := make([]fastview.EleUpdate, 0, len(data))
			for _, v := range data {
				batch = append(batch, v)
			}
			select {
			case output <- batch:
			case <-done:
			}
		}
	}()

	return output
}
