package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// HasWon reports whether some full row, full column or either full diagonal holds only mark.
// Rows and columns are checked in a single pass, diagonals afterwards.
func HasWon(board *entity.Board, mark entity.Mark) bool {
	size := board.Size()

	for i := 0; i < size; i++ {
		rowWin, colWin := true, true
		for j := 0; j < size; j++ {
			if board.Get(i, j) != mark {
				rowWin = false
			}
			if board.Get(j, i) != mark {
				colWin = false
			}
		}

		if rowWin || colWin {
			return true
		}
	}

	mainDiag, antiDiag := true, true
	for i := 0; i < size; i++ {
		if board.Get(i, i) != mark {
			mainDiag = false
		}
		if board.Get(i, size-1-i) != mark {
			antiDiag = false
		}
	}

	return mainDiag || antiDiag
}

// IsFull reports whether no empty cell remains.
func IsFull(board *entity.Board) bool {
	size := board.Size()

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board.Get(row, col) == entity.Empty {
				return false
			}
		}
	}

	return true
}

// DetermineOutcome checks the human's win first, then the bot's, then a full board.
func DetermineOutcome(board *entity.Board) entity.Outcome {
	switch {
	case HasWon(board, entity.Human):
		return entity.HumanWins
	case HasWon(board, entity.Bot):
		return entity.BotWins
	case IsFull(board):
		return entity.Draw
	default:
		return entity.InProgress
	}
}
