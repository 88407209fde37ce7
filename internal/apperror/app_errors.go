package apperror

import "errors"

var (
	ErrInvalidDimension = errors.New("invalid board dimension")
	ErrOutOfRange       = errors.New("cell coordinates out of range")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrBoardFull        = errors.New("board is full")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
)
