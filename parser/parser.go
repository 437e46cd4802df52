// Package parser converts the external plain-text board format into an
// initial board.State. It is an external collaborator to the search engine:
// the engine never imports it, and nothing here is reachable from a panic
// path inside board or piece.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"stormyseas/board"
	"stormyseas/geometry"
	"stormyseas/piece"
)

// MalformedInputError reports a violation of the input grammar: wrong line
// or column counts, an unrecognized character, a boat missing its front
// marker, or a boat with more than one front marker. A failure to read the
// input is returned as a wrapped error instead; the engine itself never
// raises either.
type MalformedInputError struct {
	Line int // 0-based row, -1 if not line-specific
	Msg  string
}

func (e *MalformedInputError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("parser: malformed input: %s", e.Msg)
	}
	return fmt.Sprintf("parser: malformed input at line %d: %s", e.Line+1, e.Msg)
}

type boatAccumulator struct {
	front *geometry.Position
	rest  []geometry.Position
}

// Parse reads cfg.Height non-empty lines of cfg.Width characters (after
// stripping leading/trailing blank lines) from r and returns the initial
// State they describe.
func Parse(r io.Reader, cfg board.Config) (board.State, error) {
	lines, err := readNonBlankLines(r)
	if err != nil {
		return board.State{}, err
	}
	if len(lines) != cfg.Height {
		return board.State{}, &MalformedInputError{
			Line: -1,
			Msg:  fmt.Sprintf("expected %d rows, got %d", cfg.Height, len(lines)),
		}
	}

	boats := map[string]*boatAccumulator{}
	var pieces []piece.Piece

	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cfg.Width {
			return board.State{}, &MalformedInputError{
				Line: row,
				Msg:  fmt.Sprintf("expected %d columns, got %d", cfg.Width, len(runes)),
			}
		}

		var waveCells []geometry.Position
		for column, ch := range runes {
			pos := geometry.Position{Row: row, Column: column}

			switch {
			case ch == '#':
				waveCells = append(waveCells, pos)
			case ch == '-':
				// empty cell, nothing to record
			case unicode.IsLetter(ch):
				id := strings.ToUpper(string(ch))
				acc := boats[id]
				if acc == nil {
					acc = &boatAccumulator{}
					boats[id] = acc
				}
				if unicode.IsLower(ch) {
					if acc.front != nil {
						return board.State{}, &MalformedInputError{
							Line: row,
							Msg:  fmt.Sprintf("boat %q has more than one front cell", id),
						}
					}
					frontPos := pos
					acc.front = &frontPos
				} else {
					acc.rest = append(acc.rest, pos)
				}
			default:
				return board.State{}, &MalformedInputError{
					Line: row,
					Msg:  fmt.Sprintf("unrecognized cell character %q", ch),
				}
			}
		}

		// Waves are numbered by row starting at 1, matching solution-notation
		// convention; every row gets a Wave piece even if it has no blocks.
		pieces = append(pieces, piece.NewWave(strconv.Itoa(row+1), waveCells))
	}

	boatIDs := make([]string, 0, len(boats))
	for id := range boats {
		boatIDs = append(boatIDs, id)
	}
	sort.Strings(boatIDs)

	for _, id := range boatIDs {
		acc := boats[id]
		if acc.front == nil {
			return board.State{}, &MalformedInputError{
				Line: -1,
				Msg:  fmt.Sprintf("boat %q has no front cell", id),
			}
		}
		pieces = append(pieces, piece.NewBoat(id, *acc.front, acc.rest))
	}

	return board.New(cfg, pieces), nil
}

// readNonBlankLines reads every line from r and strips leading and trailing
// blank lines, per the input grammar's "H non-empty lines after stripping"
// rule.
func readNonBlankLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parser: reading input: %w", err)
	}

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end], nil
}
