package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/require"
)

// parseBoard builds a board from rows of 'X', 'O' and '.'.
func parseBoard(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	board, err := entity.NewBoard(len(rows))
	require.NoError(t, err)

	for row, line := range rows {
		require.Len(t, line, len(rows))
		for col, ch := range line {
			switch ch {
			case 'X':
				board.Set(row, col, entity.MarkX)
			case 'O':
				board.Set(row, col, entity.MarkO)
			case '.':
			default:
				t.Fatalf("unexpected cell %q", ch)
			}
		}
	}

	return board
}

// plainMinimax is an unpruned reference used to check the alpha-beta results.
func plainMinimax(board *entity.Board, depth int, maximizing bool, maxDepth int) int {
	if HasWon(board, entity.Bot) {
		return WinScore - depth
	}
	if HasWon(board, entity.Human) {
		return depth - WinScore
	}
	if IsFull(board) || depth >= maxDepth {
		return 0
	}

	best := MaxScore
	mark := entity.Human
	if maximizing {
		best = MinScore
		mark = entity.Bot
	}

	for _, move := range board.EmptyCells() {
		board.Set(move.Row, move.Col, mark)
		score := plainMinimax(board, depth+1, !maximizing, maxDepth)
		board.Set(move.Row, move.Col, entity.Empty)

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
