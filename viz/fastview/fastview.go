// Package fastview implements a small builder pattern for pushing live
// server-side state to a browser: given an input data stream, apply a
// transformation to a view-model, and multiplex that view-model to one or
// more view components, each of which emits targeted DOM element updates
// over its own channel. The builder, client, and websocket plumbing are
// domain-agnostic; the view components that plug into it (in viz/boardview)
// are specific to the puzzle board.
package fastview

import "html/template"

// EleUpdate is an element identifier and the set of operations to apply to
// its attributes/content.
type EleUpdate struct {
	// EleId is the id by which to find the element.
	EleId string
	// Ops are attribute/content mutations. Ops keys are attribute names or
	// the reserved key "textContent".
	Ops []Op
}

// Op is a single attribute-or-content mutation: "set Key to Value". The
// reserved key "textContent" sets the element's text content instead of an
// attribute.
type Op struct {
	Key   string
	Value string
}

// ViewComponent implements a server-side view: Parse renders its initial
// markup into a parent template (so components can nest), and Updates
// yields the ele-update batches that keep it live.
type ViewComponent interface {
	Updates() <-chan []EleUpdate
	Parse(*template.Template) (string, error)
}
