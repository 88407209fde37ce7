package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Outcome int

const (
	InProgress Outcome = iota
	HumanWins
	BotWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case HumanWins:
		return "human wins"
	case BotWins:
		return "bot wins"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Session is one game between the human and the bot. It owns its board for the game's lifetime.
type Session struct {
	ID       string
	Board    *Board
	Turn     Mark
	Outcome  Outcome
	Moves    int
	LastMove *Move
}

func NewSession(id string, board *Board) *Session {
	return &Session{
		ID:      id,
		Board:   board,
		Turn:    Human,
		Outcome: InProgress,
	}
}

func (that *Session) IsFinished() bool {
	return that.Outcome != InProgress
}

// ConfirmTurn checks that the game is still running and that mark is to move.
func (that *Session) ConfirmTurn(mark Mark) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// Record registers an applied move and its resulting outcome.
func (that *Session) Record(move Move, outcome Outcome) {
	that.Moves++
	that.LastMove = &move
	that.Outcome = outcome

	if outcome == InProgress {
		that.Turn = that.Turn.Opponent()
	} else {
		that.Turn = Empty
	}
}
