// Package sokoban_test contains unit tests for level parsing, rendering,
// the position-set representation and the push-transition semantics.
package sokoban_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velzan/sokosearch/sokoban"
)

// ------------------------------------------------------------------------
// 1. Parsing: glyph mapping and structural validation.
// ------------------------------------------------------------------------

func TestParse_Level1(t *testing.T) {
	p, err := sokoban.Parse(sokoban.Level1)
	require.NoError(t, err)

	s := p.InitialState()
	require.Equal(t, sokoban.Pos{Row: 1, Col: 1}, s.Player)
	require.Equal(t, 1, s.Boxes.Len())
	require.True(t, s.Boxes.Contains(sokoban.Pos{Row: 1, Col: 2}))
	require.True(t, p.Goals().Contains(sokoban.Pos{Row: 1, Col: 3}))
	require.True(t, p.IsWall(sokoban.Pos{Row: 0, Col: 0}))
	require.True(t, p.IsWall(sokoban.Pos{Row: 1, Col: 0}))
	require.False(t, p.IsWall(sokoban.Pos{Row: 1, Col: 1}))

	rows, cols := p.Size()
	require.Equal(t, 3, rows)
	require.Equal(t, 5, cols)
}

func TestParse_CombinedGlyphs(t *testing.T) {
	// '*' is a box already on a goal, '+' the player on a goal: both must
	// insert into every relevant set.
	p, err := sokoban.Parse("####\n#+*#\n####")
	require.NoError(t, err)

	s := p.InitialState()
	player := sokoban.Pos{Row: 1, Col: 1}
	boxed := sokoban.Pos{Row: 1, Col: 2}
	require.Equal(t, player, s.Player)
	require.True(t, p.Goals().Contains(player))
	require.True(t, p.Goals().Contains(boxed))
	require.True(t, s.Boxes.Contains(boxed))
}

func TestParse_AliasGlyphs(t *testing.T) {
	// Letter and emoji aliases parse to the same sets as the canonical
	// ASCII glyphs.
	ascii, err := sokoban.Parse("#####\n#@$.#\n#####")
	require.NoError(t, err)
	letters, err := sokoban.Parse("#####\n#PBG#\n#####")
	require.NoError(t, err)
	emoji, err := sokoban.Parse("🧱🧱🧱🧱🧱\n🧱🧑📦⭐🧱\n🧱🧱🧱🧱🧱")
	require.NoError(t, err)

	require.Equal(t, ascii.InitialState(), letters.InitialState())
	require.Equal(t, ascii.Goals(), letters.Goals())
	require.Equal(t, ascii.InitialState(), emoji.InitialState())
	require.Equal(t, ascii.Goals(), emoji.Goals())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		level string
		want  error
	}{
		{name: "empty", level: "", want: sokoban.ErrEmptyLevel},
		{name: "blank lines", level: "\n\n", want: sokoban.ErrEmptyLevel},
		{name: "no player", level: "####\n#$.#\n####", want: sokoban.ErrNoPlayer},
		{name: "two players", level: "#####\n#@@.#\n#####", want: sokoban.ErrDuplicatePlayer},
		{name: "box without goal", level: "#####\n#@$ #\n#####", want: sokoban.ErrBoxGoalMismatch},
		{name: "goal without box", level: "#####\n#@..#\n#####", want: sokoban.ErrBoxGoalMismatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sokoban.Parse(tc.level)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Parse(%q): got %v, want %v", tc.level, err, tc.want)
			}
		})
	}
}

// ------------------------------------------------------------------------
// 2. Rendering: Parse∘Render reproduces an equivalent instance.
// ------------------------------------------------------------------------

func TestRender_RoundTrip(t *testing.T) {
	for _, level := range []string{sokoban.Level1, sokoban.Level2, "####\n#+*#\n####"} {
		p, err := sokoban.Parse(level)
		require.NoError(t, err)

		back, err := sokoban.Parse(p.Render(p.InitialState()))
		require.NoError(t, err)

		require.Equal(t, p.InitialState(), back.InitialState())
		require.Equal(t, p.Goals(), back.Goals())
		rows, cols := p.Size()
		backRows, backCols := back.Size()
		require.Equal(t, rows, backRows)
		require.Equal(t, cols, backCols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pos := sokoban.Pos{Row: r, Col: c}
				require.Equal(t, p.IsWall(pos), back.IsWall(pos), "wall mismatch at %v", pos)
			}
		}
	}
}

func TestRender_AfterMove(t *testing.T) {
	p, err := sokoban.Parse(sokoban.Level1)
	require.NoError(t, err)

	next, _, err := p.Apply(p.InitialState(), sokoban.Right)
	require.NoError(t, err)

	require.Equal(t, "#####\n# @*#\n#####", p.Render(next))
}
