// Package viz is the optional live-progress visualizer: a websocket-pushed
// view of a running search, built on a reactive view-builder server stack
// (fastview, root_view, boardview). The core search/board packages have no
// import of this package; the CLI wires them together only when -serve is
// requested.
package viz

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"stormyseas/board"
	"stormyseas/viz/boardview"
	"stormyseas/viz/fastview"
)

// Server serves the live board/progress view and streams updates to it,
// routing through a gorilla/mux.Router and fastview's generic websocket
// client.
type Server struct {
	addr    string
	router  *mux.Router
	root    *rootView
	initial [][]boardview.Cell
}

// ProgressSnapshot is the live-update payload the CLI derives from
// search.ProgressFunc and forwards into the visualizer.
type ProgressSnapshot = boardview.Progress

// NewServer builds the visualizer's views and HTTP routes. boards should
// receive the initial board once and, if the caller wants a final-state
// redraw, the solved board when the search completes; progress should
// receive one ProgressSnapshot per search.ProgressFunc tick. Both channels
// are read until ctx is canceled.
func NewServer(
	ctx context.Context,
	addr string,
	initial board.State,
	boards <-chan board.State,
	progress <-chan ProgressSnapshot,
) (*Server, error) {
	root := newRootView(ctx, initial, boards, progress)

	t := template.New("index")
	if _, err := root.Parse(t); err != nil {
		return nil, fmt.Errorf("viz: parsing index template: %w", err)
	}

	router := mux.NewRouter()
	srv := &Server{
		addr:    addr,
		router:  router,
		root:    root,
		initial: boardview.Convert(initial),
	}

	indexTemplate := t
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		if err := indexTemplate.ExecuteTemplate(w, "mainpage", srv.initial); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	router.HandleFunc("/ws", srv.serveWebsocket)

	return srv, nil
}

// Serve blocks, serving the visualizer over HTTP until it fails.
func (s *Server) Serve() error {
	httpSrv := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 0, // the websocket handler owns its own deadlines
	}
	if err := httpSrv.ListenAndServe(); err != nil {
		return fmt.Errorf("viz: serve: %w", err)
	}
	return nil
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	cli, err := fastview.NewClient(s.root.Updates(), w, r)
	if err != nil {
		log.Println("viz: websocket upgrade failed:", err)
		return
	}
	if err := cli.Sync(); err != nil && err != websocket.ErrCloseSent {
		log.Println("viz: client session ended:", err)
	}
}
