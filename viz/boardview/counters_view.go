package boardview

import (
	"fmt"
	"html/template"

	channerics "github.com/niceyeti/channerics/channels"

	"stormyseas/viz/atomicfloat"
	"stormyseas/viz/fastview"
)

// Progress is a point-in-time search progress snapshot, the live-update
// payload pushed by search.ProgressFunc.
type Progress struct {
	Depth         int
	StatesVisited int
	FrontierLen   int
}

// Counters is a text view of the search's live (depth, statesVisited,
// frontierLen) counters. The counters are held as atomic gauges rather than
// plain ints since the update goroutine started by NewCounters and any
// future reader could run concurrently.
type Counters struct {
	id       string
	depth    *atomicfloat.Gauge
	visited  *atomicfloat.Gauge
	frontier *atomicfloat.Gauge
	updates  chan []fastview.EleUpdate
}

// NewCounters builds a Counters view fed by a stream of progress snapshots.
func NewCounters(done <-chan struct{}, snapshots <-chan Progress) *Counters {
	c := &Counters{
		id:       "counters",
		depth:    atomicfloat.New(0),
		visited:  atomicfloat.New(0),
		frontier: atomicfloat.New(0),
	}
	c.updates = make(chan []fastview.EleUpdate)

	go func() {
		defer close(c.updates)
		for s := range channerics.OrDone(done, snapshots) {
			c.depth.Set(float64(s.Depth))
			c.visited.Set(float64(s.StatesVisited))
			c.frontier.Set(float64(s.FrontierLen))

			ops := []fastview.EleUpdate{
				{EleId: c.id + "-depth", Ops: []fastview.Op{{Key: "textContent", Value: fmt.Sprintf("%d", int(c.depth.Read()))}}},
				{EleId: c.id + "-visited", Ops: []fastview.Op{{Key: "textContent", Value: fmt.Sprintf("%d", int(c.visited.Read()))}}},
				{EleId: c.id + "-frontier", Ops: []fastview.Op{{Key: "textContent", Value: fmt.Sprintf("%d", int(c.frontier.Read()))}}},
			}

			select {
			case c.updates <- ops:
			case <-done:
				return
			}
		}
	}()

	return c
}

func (c *Counters) Updates() <-chan []fastview.EleUpdate {
	return c.updates
}

func (c *Counters) Parse(t *template.Template) (name string, err error) {
	name = c.id
	_, err = t.Parse(`{{ define "` + name + `" }}
	<div style="font-family: monospace; padding: 8px;">
		depth: <span id="` + c.id + `-depth">0</span>
		states visited: <span id="` + c.id + `-visited">0</span>
		frontier: <span id="` + c.id + `-frontier">0</span>
	</div>
	{{ end }}`)
	return
}
