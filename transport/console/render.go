package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// RenderBoard draws the board with 1-indexed row and column labels.
func RenderBoard(board *entity.Board) string {
	size := board.Size()

	var sb strings.Builder

	sb.WriteString("\n   ")
	for col := 1; col <= size; col++ {
		fmt.Fprintf(&sb, " %d  ", col)
	}
	sb.WriteString("\n")

	for row := 0; row < size; row++ {
		fmt.Fprintf(&sb, " %d ", row+1)
		for col := 0; col < size; col++ {
			fmt.Fprintf(&sb, " %s ", board.Get(row, col))
			if col < size-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		if row < size-1 {
			sb.WriteString("   ")
			for col := 0; col < size; col++ {
				sb.WriteString("---")
				if col < size-1 {
					sb.WriteString("|")
				}
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")

	return sb.String()
}
