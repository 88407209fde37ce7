package entity

import "fmt"

// Move is a 0-indexed (row, column) pair.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the move 1-indexed, the way players see it.
func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row+1, m.Col+1)
}

// CachedMove is a selector result stored for a position.
type CachedMove struct {
	Move  Move `json:"move"`
	Score int  `json:"score"`
}
