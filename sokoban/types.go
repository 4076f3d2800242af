// Package sokoban defines core types, sentinel errors and the position-set
// representation for the sliding-block puzzle state space.
package sokoban

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for level parsing and state-space operations.
var (
	// ErrEmptyLevel indicates the level text contains no cells at all.
	ErrEmptyLevel = errors.New("sokoban: level is empty")

	// ErrNoPlayer indicates the level text defines no player cell.
	ErrNoPlayer = errors.New("sokoban: level defines no player")

	// ErrDuplicatePlayer indicates the level text defines more than one player.
	ErrDuplicatePlayer = errors.New("sokoban: level defines more than one player")

	// ErrBoxGoalMismatch indicates the box count differs from the goal count,
	// which makes the exact-cover goal predicate unsatisfiable by construction.
	ErrBoxGoalMismatch = errors.New("sokoban: box count does not match goal count")

	// ErrUnknownAction indicates a Direction outside Up/Down/Left/Right was
	// passed to Apply. This is a caller bug, not a search outcome.
	ErrUnknownAction = errors.New("sokoban: unknown direction")

	// ErrUnknownHeuristic indicates an unrecognized heuristic name.
	ErrUnknownHeuristic = errors.New("sokoban: unknown heuristic name")
)

// Pos is a grid cell addressed by row and column, both zero-based.
type Pos struct {
	Row, Col int
}

// Direction is one of the four unit moves available to the player.
type Direction uint8

// The four directions, in the fixed enumeration order used by
// Problem.Actions.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all four directions in enumeration order.
func Directions() [4]Direction {
	return [4]Direction{Up, Down, Left, Right}
}

// Delta returns the row/column displacement of one step in direction d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}

	return 0, 0
}

// String returns the full uppercase name of d ("UP", "DOWN", "LEFT",
// "RIGHT"), or a diagnostic form for invalid values.
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Letter returns the single-letter code of d ('U', 'D', 'L', 'R'), or '?'
// for invalid values.
func (d Direction) Letter() byte {
	switch d {
	case Up:
		return 'U'
	case Down:
		return 'D'
	case Left:
		return 'L'
	case Right:
		return 'R'
	}

	return '?'
}

// ParseDirection maps a full name or single-letter code back to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "UP", "U":
		return Up, nil
	case "DOWN", "D":
		return Down, nil
	case "LEFT", "L":
		return Left, nil
	case "RIGHT", "R":
		return Right, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// posBytes is the packed width of one Pos inside a PosSet.
const posBytes = 4

// PosSet is an immutable, canonical set of grid cells: positions packed as
// big-endian (row, col) uint16 pairs in sorted order. Because the encoding
// is canonical, PosSet is comparable — two sets are == iff they contain the
// same cells — which lets it key maps and serve as part of a search state.
type PosSet string

// NewPosSet builds the canonical set of the given positions. Duplicates
// collapse; the input slice is not retained. Coordinates must lie in
// [0, 65535]: Parse only produces cells inside that range, and the closed
// grid boundary keeps every reachable state there.
func NewPosSet(positions []Pos) PosSet {
	sorted := make([]Pos, len(positions))
	copy(sorted, positions)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}

		return sorted[i].Col < sorted[j].Col
	})

	buf := make([]byte, 0, len(sorted)*posBytes)
	var prev Pos
	for i, p := range sorted {
		if i > 0 && p == prev {
			continue
		}
		prev = p
		var cell [posBytes]byte
		binary.BigEndian.PutUint16(cell[0:2], uint16(p.Row))
		binary.BigEndian.PutUint16(cell[2:4], uint16(p.Col))
		buf = append(buf, cell[:]...)
	}

	return PosSet(buf)
}

// Len returns the number of cells in the set.
func (s PosSet) Len() int { return len(s) / posBytes }

// at decodes the i-th cell.
func (s PosSet) at(i int) Pos {
	off := i * posBytes

	return Pos{
		Row: int(binary.BigEndian.Uint16([]byte(s[off : off+2]))),
		Col: int(binary.BigEndian.Uint16([]byte(s[off+2 : off+4]))),
	}
}

// Contains reports whether p is in the set. Binary search over the sorted
// packed records: O(log n).
func (s PosSet) Contains(p Pos) bool {
	lo, hi := 0, s.Len()
	for lo < hi {
		mid := (lo + hi) / 2
		q := s.at(mid)
		switch {
		case q == p:
			return true
		case q.Row < p.Row || (q.Row == p.Row && q.Col < p.Col):
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return false
}

// Positions decodes the set into a freshly allocated slice, in canonical
// (row, then column) order.
func (s PosSet) Positions() []Pos {
	out := make([]Pos, s.Len())
	for i := range out {
		out[i] = s.at(i)
	}

	return out
}

// With returns a new set that additionally contains p.
func (s PosSet) With(p Pos) PosSet {
	return NewPosSet(append(s.Positions(), p))
}

// Without returns a new set with p removed.
func (s PosSet) Without(p Pos) PosSet {
	kept := make([]Pos, 0, s.Len())
	for _, q := range s.Positions() {
		if q != p {
			kept = append(kept, q)
		}
	}

	return NewPosSet(kept)
}

// State is the search-relevant part of a puzzle configuration: the player's
// cell and the canonical box set. Walls and goals are fixed per Problem and
// deliberately excluded, so two States are equal iff their players and box
// sets are equal.
type State struct {
	Player Pos
	Boxes  PosSet
}
