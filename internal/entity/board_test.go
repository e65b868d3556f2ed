package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("String renders players and empty cells", func(t *testing.T) {
		assert.Equal(t, "X", PlayerX.String())
		assert.Equal(t, "O", PlayerO.String())
		assert.Equal(t, ".", Empty.String())
	})

	t.Run("Opponent swaps players and keeps Empty", func(t *testing.T) {
		assert.Equal(t, PlayerO, PlayerX.Opponent())
		assert.Equal(t, PlayerX, PlayerO.Opponent())
		assert.Equal(t, Empty, Empty.Opponent())
	})

	t.Run("Empty is never a player", func(t *testing.T) {
		assert.True(t, PlayerX.IsPlayer())
		assert.True(t, PlayerO.IsPlayer())
		assert.False(t, Empty.IsPlayer())
	})

	t.Run("ParseMark rejects unknown runes", func(t *testing.T) {
		_, err := ParseMark('#')
		assert.ErrorIs(t, err, ErrUnknownMark)
	})
}

func TestBoard_With(t *testing.T) {
	// Given: an empty board
	var board Board

	// When: a mark is placed
	next := board.With(Move{Row: 1, Col: 2}, PlayerX)

	// Then: only the copy changes
	assert.Equal(t, PlayerX, next.At(Move{Row: 1, Col: 2}))
	assert.Equal(t, Empty, board.At(Move{Row: 1, Col: 2}))
	assert.Equal(t, 1, next.Count(PlayerX))
	assert.Equal(t, 0, board.Count(PlayerX))
}

func TestBoard_StringAndParse(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		// Given: a board with both marks
		board := Board{
			{PlayerX, PlayerO, Empty},
			{Empty, PlayerX, Empty},
			{Empty, Empty, PlayerO},
		}

		// When: rendering and parsing it back
		rendered := board.String()
		parsed, err := ParseBoard(rendered)

		// Then: the rendering is row by row and parsing restores the board
		require.NoError(t, err)
		assert.Equal(t, "XO.\n.X.\n..O", rendered)
		assert.Equal(t, board, parsed)
	})

	t.Run("Slash separated rows", func(t *testing.T) {
		parsed, err := ParseBoard("xx./oo./...")

		require.NoError(t, err)
		assert.Equal(t, 2, parsed.Count(PlayerX))
		assert.Equal(t, 2, parsed.Count(PlayerO))
	})

	t.Run("Wrong row count", func(t *testing.T) {
		_, err := ParseBoard("XO./...")
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Wrong row width", func(t *testing.T) {
		_, err := ParseBoard("XO/.../...")
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Unknown cell", func(t *testing.T) {
		_, err := ParseBoard("XO?/.../...")
		require.ErrorIs(t, err, ErrInvalidBoard)
		assert.ErrorIs(t, err, ErrUnknownMark)
	})
}

func TestParseMove(t *testing.T) {
	t.Run("Valid notation", func(t *testing.T) {
		move, err := ParseMove(" 2, 0 ")

		require.NoError(t, err)
		assert.Equal(t, Move{Row: 2, Col: 0}, move)
		assert.True(t, move.InBounds())
		assert.Equal(t, "(2,0)", move.String())
	})

	t.Run("Missing comma", func(t *testing.T) {
		_, err := ParseMove("11")
		assert.ErrorIs(t, err, ErrInvalidMoveNotation)
	})

	t.Run("Not a number", func(t *testing.T) {
		_, err := ParseMove("a,1")
		assert.ErrorIs(t, err, ErrInvalidMoveNotation)
	})

	t.Run("Out of range is parsed but not in bounds", func(t *testing.T) {
		move, err := ParseMove("3,-1")

		require.NoError(t, err)
		assert.False(t, move.InBounds())
	})

	t.Run("ParseMoves reports the failing index", func(t *testing.T) {
		_, err := ParseMoves([]string{"0,0", "bad"})

		require.ErrorIs(t, err, ErrInvalidMoveNotation)
		assert.Contains(t, err.Error(), "move #1")
	})
}
