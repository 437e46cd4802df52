package search

import (
	"context"
	"sort"

	channerics "github.com/niceyeti/channerics/channels"

	"stormyseas/board"
	"stormyseas/geometry"
	"stormyseas/piece"
)

// SolveParallel is the optional parallel successor-generation extension
// explicitly permitted alongside the sequential reference search: for each
// dequeued state, the (piece, direction) candidates are partitioned across
// nworkers goroutines that compute the pure Move/IsValid pair concurrently,
// fanned back in with channerics.Merge exactly as reinforcement.Train fans
// in its episode-generating workers. Only that pure computation is
// parallel; the visited map and frontier are still owned and mutated by one
// goroutine, in the same piece/direction order Solve would use, so
// SolveParallel always returns the same Solution as Solve for the same
// input.
func SolveParallel(ctx context.Context, s0 board.State, nworkers int, progress ProgressFunc) (Solution, error) {
	if nworkers < 1 {
		nworkers = 1
	}

	visited := map[string]backPointer{
		s0.Key(): {root: true},
	}
	queue := []frontierItem{{state: s0, depth: 0}}

	depth := 0
	remainingAtDepth := 1

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return Solution{}, ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		if item.state.IsSolved() {
			return reconstruct(visited, item.state), nil
		}

		lastMoveID := ""
		if bp := visited[item.state.Key()]; !bp.root {
			lastMoveID = bp.move.PieceID
		}

		jobs := buildJobs(reorderPieces(item.state, lastMoveID))
		for _, result := range computeCandidates(ctx, item.state, jobs, nworkers) {
			if !result.valid {
				continue
			}
			key := result.successor.Key()
			if _, seen := visited[key]; seen {
				continue
			}

			visited[key] = backPointer{
				parent: item.state,
				move:   Move{PieceID: result.pieceID, Direction: result.direction, Distance: 1},
			}

			if result.successor.IsSolved() {
				return reconstruct(visited, result.successor), nil
			}

			queue = append(queue, frontierItem{state: result.successor, depth: item.depth + 1})
		}

		remainingAtDepth--
		if remainingAtDepth == 0 {
			if progress != nil {
				progress(depth, len(visited), len(queue))
			}
			remainingAtDepth = len(queue)
			depth++
		}
	}

	if progress != nil {
		progress(depth, len(visited), len(queue))
	}
	return Solution{}, ErrNoSolution
}

// job is one (piece, direction) candidate to evaluate, tagged with its
// position in the deterministic enumeration order so results can be
// resequenced after being computed out of order.
type job struct {
	idx       int
	pieceID   string
	piece     piece.Piece
	direction geometry.Direction
}

func buildJobs(pieces []piece.Piece) []job {
	var jobs []job
	idx := 0
	for _, p := range pieces {
		for _, d := range p.AllowedDirections() {
			jobs = append(jobs, job{idx: idx, pieceID: p.ID, piece: p, direction: d})
			idx++
		}
	}
	return jobs
}

type candidateResult struct {
	idx       int
	pieceID   string
	direction geometry.Direction
	successor board.State
	valid     bool
}

// computeCandidates evaluates every job against state, spread across
// nworkers goroutines, and returns the results back in enumeration order.
func computeCandidates(ctx context.Context, state board.State, jobs []job, nworkers int) []candidateResult {
	if len(jobs) == 0 {
		return nil
	}
	if nworkers > len(jobs) {
		nworkers = len(jobs)
	}

	chunks := splitJobs(jobs, nworkers)
	workerChans := make([]<-chan candidateResult, 0, len(chunks))
	for _, chunk := range chunks {
		out := make(chan candidateResult)
		workerChans = append(workerChans, out)

		go func(chunk []job, out chan<- candidateResult) {
			defer close(out)
			for _, j := range chunk {
				successor := state.Move(j.piece, j.direction)
				result := candidateResult{
					idx:       j.idx,
					pieceID:   j.pieceID,
					direction: j.direction,
					successor: successor,
					valid:     successor.IsValid(),
				}
				select {
				case out <- result:
				case <-ctx.Done():
					return
				}
			}
		}(chunk, out)
	}

	results := make([]candidateResult, 0, len(jobs))
	for r := range channerics.Merge(ctx.Done(), workerChans...) {
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].idx < results[j].idx })
	return results
}

// splitJobs distributes jobs round-robin across n non-empty chunks.
func splitJobs(jobs []job, n int) [][]job {
	chunks := make([][]job, n)
	for i, j := range jobs {
		chunks[i%n] = append(chunks[i%n], j)
	}

	nonEmpty := make([][]job, 0, n)
	for _, c := range chunks {
		if len(c) > 0 {
			nonEmpty = append(nonEmpty, c)
		}
	}
	return nonEmpty
}
