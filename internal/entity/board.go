package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// MaxBoardSize bounds the board side; the search cost grows exponentially with the cell count.
const MaxBoardSize = 16

// Board is a square grid of marks stored in row-major order.
// The size is fixed at creation and every cell is always allocated.
type Board struct {
	size  int
	cells []Mark
}

// NewBoard allocates an empty size x size board.
func NewBoard(size int) (*Board, error) {
	if size < 1 || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: size %d, expected 1..%d", apperror.ErrInvalidDimension, size, MaxBoardSize)
	}

	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}, nil
}

// MustNewBoard is like NewBoard but panics on an invalid size.
func MustNewBoard(size int) *Board {
	board, err := NewBoard(size)
	if err != nil {
		panic(err)
	}

	return board
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InRange(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// Get returns the mark at (row, col). Out-of-range access is a programming error and panics.
func (that *Board) Get(row, col int) Mark {
	return that.cells[that.index(row, col)]
}

// Set overwrites the cell at (row, col). It panics on out-of-range coordinates or an unknown mark.
func (that *Board) Set(row, col int, mark Mark) {
	if !mark.Valid() {
		panic(fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark))
	}

	that.cells[that.index(row, col)] = mark
}

// Place is the checked variant of Set for externally supplied coordinates.
func (that *Board) Place(row, col int, mark Mark) error {
	if !that.InRange(row, col) {
		return fmt.Errorf("%w: row %d, col %d on a %dx%d board", apperror.ErrOutOfRange, row, col, that.size, that.size)
	}

	if mark == Empty || !mark.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if that.Get(row, col) != Empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, Move{Row: row, Col: col})
	}

	that.Set(row, col, mark)

	return nil
}

// CountEmpty returns the number of empty cells.
func (that *Board) CountEmpty() int {
	count := 0
	for _, cell := range that.cells {
		if cell == Empty {
			count++
		}
	}

	return count
}

// EmptyCells lists the empty cells in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == Empty {
			moves = append(moves, Move{Row: i / that.size, Col: i % that.size})
		}
	}

	return moves
}

// Clone returns a private deep copy.
func (that *Board) Clone() *Board {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)

	return &Board{size: that.size, cells: cells}
}

// Equal reports whether both boards have the same size and contents.
func (that *Board) Equal(other *Board) bool {
	if other == nil || that.size != other.size {
		return false
	}

	for i := range that.cells {
		if that.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// Key encodes the board as "<size>:<cells>", one of '.', 'X', 'O' per cell.
func (that *Board) Key() string {
	buf := make([]byte, 0, len(that.cells)+4)
	buf = fmt.Appendf(buf, "%d:", that.size)
	for _, cell := range that.cells {
		buf = append(buf, cell.symbol())
	}

	return string(buf)
}

func (that *Board) index(row, col int) int {
	if !that.InRange(row, col) {
		panic(fmt.Errorf("%w: row %d, col %d on a %dx%d board", apperror.ErrOutOfRange, row, col, that.size, that.size))
	}

	return row*that.size + col
}
