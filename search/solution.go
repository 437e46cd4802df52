package search

import "strings"

// Solution is the ordered sequence of steps that takes the initial state to
// a solved state.
type Solution struct {
	Steps []Move
}

// MoveCount is the sum of distances over all steps; equals the BFS depth at
// which the solved state was reached.
func (s Solution) MoveCount() int {
	total := 0
	for _, step := range s.Steps {
		total += step.Distance
	}
	return total
}

// StepCount is the number of steps after merge-compaction.
func (s Solution) StepCount() int {
	return len(s.Steps)
}

// ToNotation formats the solution per the Solution Notation grammar: a
// comma-space-separated list of "<id><direction><distance>" tokens.
func (s Solution) ToNotation() string {
	tokens := make([]string, len(s.Steps))
	for i, step := range s.Steps {
		tokens[i] = step.String()
	}
	return strings.Join(tokens, ", ")
}

// compact merges consecutive unit moves of the same piece and direction
// into single steps, scanning from the initial end of the reconstructed
// move list. It does not alter move count, only how it is grouped.
func compact(moves []Move) []Move {
	if len(moves) == 0 {
		return nil
	}

	steps := make([]Move, 0, len(moves))
	current := moves[0]
	for _, m := range moves[1:] {
		if current.CanMergeWith(m) {
			current = current.Merge(m)
			continue
		}
		steps = append(steps, current)
		current = m
	}
	steps = append(steps, current)
	return steps
}
