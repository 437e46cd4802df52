// Stormyseas solves the Stormy Seas sliding-block puzzle: given a board of
// boats and waves, it finds the shortest sequence of moves that brings the
// red boat to its port, and prints that sequence in solution notation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"stormyseas/board"
	"stormyseas/config"
	"stormyseas/parser"
	"stormyseas/search"
	"stormyseas/viz"
)

var (
	input      *string
	configPath *string
	debug      *bool
	nworkers   *int
	serve      *bool
	addr       *string
)

// TODO: per 12-factor rules these could come from env vars too; flags are
// enough for a single-shot solver CLI.
func init() {
	input = flag.String("input", "", "path to the puzzle input file (reads stdin if empty)")
	configPath = flag.String("config", "", "path to a board config YAML file (uses the reference puzzle constants if empty)")
	debug = flag.Bool("debug", false, "log progress ticks while searching")
	nworkers = flag.Int("nworkers", runtime.NumCPU(), "number of workers for parallel successor generation")
	serve = flag.Bool("serve", false, "serve a live visualizer of search progress")
	addr = flag.String("addr", ":8080", "address for the visualizer, if -serve is set")
	flag.Parse()
}

func loadConfig() (board.Config, error) {
	if *configPath == "" {
		return config.Reference(), nil
	}
	return config.Load(*configPath)
}

func openInput() (*os.File, error) {
	if *input == "" {
		return os.Stdin, nil
	}
	return os.Open(*input)
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	f, err := openInput()
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	if f != os.Stdin {
		defer f.Close()
	}

	initial, err := parser.Parse(f, cfg)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	progress := loggingProgress(*debug)

	if *serve {
		return runWithVisualizer(appCtx, initial)
	}

	sol, err := search.SolveParallel(appCtx, initial, *nworkers, progress)
	if err != nil {
		return err
	}
	printSolution(sol)
	return nil
}

// runWithVisualizer runs the search in the background while serving the
// visualizer in the foreground, canceling a shared context on shutdown
// rather than threading a done-chan through every layer by hand.
func runWithVisualizer(ctx context.Context, initial board.State) error {
	boards := make(chan board.State, 2)
	snapshots := make(chan viz.ProgressSnapshot, 64)

	boards <- initial

	srv, err := viz.NewServer(ctx, *addr, initial, boards, snapshots)
	if err != nil {
		return fmt.Errorf("starting visualizer: %w", err)
	}

	go func() {
		progress := func(depth, statesVisited, frontierLen int) {
			select {
			case snapshots <- viz.ProgressSnapshot{Depth: depth, StatesVisited: statesVisited, FrontierLen: frontierLen}:
			case <-ctx.Done():
			}
		}

		sol, err := search.SolveParallel(ctx, initial, *nworkers, progress)
		if err != nil {
			log.Println("search:", err)
			return
		}
		printSolution(sol)
	}()

	log.Printf("serving visualizer on %s", *addr)
	return srv.Serve()
}

// loggingProgress returns a search.ProgressFunc that logs each tick when
// debug is set, and a no-op otherwise; this is the CLI's own observer, kept
// separate from the side-effect-free search per the progress-hook design
// note.
func loggingProgress(debug bool) search.ProgressFunc {
	if !debug {
		return nil
	}
	return func(depth, statesVisited, frontierLen int) {
		log.Printf("depth=%d visited=%d frontier=%d", depth, statesVisited, frontierLen)
	}
}

func printSolution(sol search.Solution) {
	fmt.Println(sol.ToNotation())
	fmt.Printf("moves=%d steps=%d\n", sol.MoveCount(), sol.StepCount())
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
