package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Allocates an empty board", func(t *testing.T) {
		// When: a 4x4 board is created
		board, err := NewBoard(4)

		// Then: every cell should be empty
		require.NoError(t, err)
		assert.Equal(t, 4, board.Size())
		assert.Equal(t, 16, board.CountEmpty())
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				assert.Equal(t, Empty, board.Get(row, col))
			}
		}
	})

	t.Run("Rejects non-positive size", func(t *testing.T) {
		for _, size := range []int{0, -1, -10} {
			// When: a board with non-positive size is created
			board, err := NewBoard(size)

			// Then: ErrInvalidDimension should be returned
			require.ErrorIs(t, err, apperror.ErrInvalidDimension)
			assert.Nil(t, board)
		}
	})

	t.Run("Rejects size above the limit", func(t *testing.T) {
		_, err := NewBoard(MaxBoardSize + 1)

		require.ErrorIs(t, err, apperror.ErrInvalidDimension)
	})

	t.Run("MustNewBoard panics on invalid size", func(t *testing.T) {
		assert.Panics(t, func() { MustNewBoard(0) })
	})
}

func TestBoard_GetSet(t *testing.T) {
	t.Run("Set then Get", func(t *testing.T) {
		// Given: an empty 3x3 board
		board := MustNewBoard(3)

		// When: marks are set
		board.Set(0, 2, MarkX)
		board.Set(2, 0, MarkO)

		// Then: they should be readable at the same coordinates only
		assert.Equal(t, MarkX, board.Get(0, 2))
		assert.Equal(t, MarkO, board.Get(2, 0))
		assert.Equal(t, Empty, board.Get(2, 2))
		assert.Equal(t, 7, board.CountEmpty())
	})

	t.Run("Out of range access panics", func(t *testing.T) {
		board := MustNewBoard(3)

		cases := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}}
		for _, c := range cases {
			assert.Panics(t, func() { board.Get(c[0], c[1]) })
			assert.Panics(t, func() { board.Set(c[0], c[1], MarkX) })
		}
	})

	t.Run("Unknown mark panics", func(t *testing.T) {
		board := MustNewBoard(3)

		assert.Panics(t, func() { board.Set(0, 0, Mark(7)) })
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places on an empty cell", func(t *testing.T) {
		board := MustNewBoard(3)

		err := board.Place(1, 1, MarkX)

		require.NoError(t, err)
		assert.Equal(t, MarkX, board.Get(1, 1))
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board where the center is taken
		board := MustNewBoard(3)
		require.NoError(t, board.Place(1, 1, MarkX))

		// When: the other player tries the same cell
		err := board.Place(1, 1, MarkO)

		// Then: ErrCellOccupied should be returned and the cell unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, MarkX, board.Get(1, 1))
	})

	t.Run("Error on out of range coordinates", func(t *testing.T) {
		board := MustNewBoard(3)

		err := board.Place(3, 0, MarkX)

		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		board := MustNewBoard(3)

		err := board.Place(0, 0, Empty)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	// Given: a 2x2 board with the top-left taken
	board := MustNewBoard(2)
	board.Set(0, 0, MarkO)

	// When: listing empty cells
	moves := board.EmptyCells()

	// Then: they should come in row-major order
	assert.Equal(t, []Move{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, moves)
}

func TestBoard_CloneAndEqual(t *testing.T) {
	// Given: a board with one mark
	board := MustNewBoard(3)
	board.Set(1, 2, MarkO)

	// When: it is cloned and the clone is modified
	clone := board.Clone()
	require.True(t, board.Equal(clone))
	clone.Set(0, 0, MarkX)

	// Then: the original should be untouched
	assert.False(t, board.Equal(clone))
	assert.Equal(t, Empty, board.Get(0, 0))
	assert.False(t, board.Equal(MustNewBoard(4)))
	assert.False(t, board.Equal(nil))
}

func TestBoard_Key(t *testing.T) {
	board := MustNewBoard(3)
	board.Set(0, 0, MarkX)
	board.Set(1, 1, MarkO)

	assert.Equal(t, "3:X...O....", board.Key())
}

func TestMark(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
	assert.Equal(t, "X", MarkX.String())
	assert.Equal(t, "O", MarkO.String())
	assert.Equal(t, " ", Empty.String())
	assert.Equal(t, "(1, 3)", Move{Row: 0, Col: 2}.String())
}
