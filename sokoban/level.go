package sokoban

import (
	"strings"
)

// Canned levels kept for examples and tests.
const (
	// Level1 is the minimal solvable instance: one push to the right.
	Level1 = `
#####
#@$.#
#####
`

	// Level2 is a small open room with two boxes and two goals.
	Level2 = `
#######
#.@   #
# $   #
#     #
#   $.#
#######
`
)

// Parse builds a Problem from a rectangular block of glyphs, row and column
// indexed. Recognized glyphs:
//
//	wall            '#'  '🧱'  '⬛'
//	box             '$'  'B'  '📦'
//	goal            '.'  'G'  '⭐'  '🎯'
//	player          '@'  'P'  '🧑'  '👷'
//	box on goal     '*'
//	player on goal  '+'
//	floor           anything else (conventionally ' ')
//
// The combined glyphs insert into both relevant sets. Column indices count
// runes, so the emoji aliases occupy one cell each.
//
// Returns ErrEmptyLevel if the text holds no cells, ErrNoPlayer or
// ErrDuplicatePlayer for a missing or repeated player glyph, and
// ErrBoxGoalMismatch when box and goal counts differ — the exact-cover goal
// predicate can never hold on such a level, so the mismatch is surfaced
// instead of silently tolerated.
func Parse(level string) (*Problem, error) {
	lines := strings.Split(strings.Trim(level, "\n"), "\n")

	var (
		walls     = make(map[Pos]struct{})
		boxes     []Pos
		goals     []Pos
		player    Pos
		hasPlayer bool
		cols      int
	)

	for r, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		c := 0
		for _, glyph := range line {
			pos := Pos{Row: r, Col: c}
			c++
			switch glyph {
			case '#', '🧱', '⬛':
				walls[pos] = struct{}{}
			case '$', 'B', '📦':
				boxes = append(boxes, pos)
			case '.', 'G', '⭐', '🎯':
				goals = append(goals, pos)
			case '@', 'P', '🧑', '👷':
				if hasPlayer {
					return nil, ErrDuplicatePlayer
				}
				player = pos
				hasPlayer = true
			case '*':
				boxes = append(boxes, pos)
				goals = append(goals, pos)
			case '+':
				if hasPlayer {
					return nil, ErrDuplicatePlayer
				}
				player = pos
				hasPlayer = true
				goals = append(goals, pos)
			}
		}
		if c > cols {
			cols = c
		}
	}

	if cols == 0 {
		return nil, ErrEmptyLevel
	}
	if !hasPlayer {
		return nil, ErrNoPlayer
	}
	if len(boxes) != len(goals) {
		return nil, ErrBoxGoalMismatch
	}

	goalSet := NewPosSet(goals)
	p := &Problem{
		walls:    walls,
		goals:    goalSet,
		goalList: goalSet.Positions(),
		rows:     len(lines),
		cols:     cols,
		initial: State{
			Player: player,
			Boxes:  NewPosSet(boxes),
		},
	}

	return p, nil
}

// Render draws state over the Problem's fixed walls and goals as a glyph
// grid using the canonical ASCII set ('#', '$', '.', '@', '*', '+', ' ').
// Parsing the rendered text again reproduces an equivalent instance.
func (p *Problem) Render(state State) string {
	var sb strings.Builder
	for r := 0; r < p.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		line := make([]byte, 0, p.cols)
		for c := 0; c < p.cols; c++ {
			pos := Pos{Row: r, Col: c}
			onGoal := p.goals.Contains(pos)
			switch {
			case p.IsWall(pos):
				line = append(line, '#')
			case state.Boxes.Contains(pos) && onGoal:
				line = append(line, '*')
			case state.Boxes.Contains(pos):
				line = append(line, '$')
			case state.Player == pos && onGoal:
				line = append(line, '+')
			case state.Player == pos:
				line = append(line, '@')
			case onGoal:
				line = append(line, '.')
			default:
				line = append(line, ' ')
			}
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
	}

	return sb.String()
}
