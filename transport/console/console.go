package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameManager interface {
	MaxBoardSize() int
	NewSession(size int) (*entity.Session, error)
	PlayHuman(ctx context.Context, session *entity.Session, row, col int) error
	PlayBot(ctx context.Context, session *entity.Session) (entity.Move, error)
}

// Console plays one game over line-based text input and output.
type Console struct {
	logger    *slog.Logger
	manager   gameManager
	in        *bufio.Reader
	out       io.Writer
	boardSize int
}

// New builds a console. A boardSize of 0 makes it ask the player.
func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer, boardSize int) *Console {
	return &Console{
		logger:    logger.With("component", "console"),
		manager:   manager,
		in:        bufio.NewReader(in),
		out:       out,
		boardSize: boardSize,
	}
}

// Run plays a full game and announces the result.
func (that *Console) Run(ctx context.Context) (entity.Outcome, error) {
	size := that.boardSize
	if size == 0 {
		var err error
		if size, err = that.readBoardSize(); err != nil {
			return entity.InProgress, err
		}
	}

	session, err := that.manager.NewSession(size)
	if err != nil {
		return entity.InProgress, fmt.Errorf("failed to start game: %w", err)
	}

	that.printf("\nStarting a %d x %d Tic-Tac-Toe game with a total of %d cells.\n", size, size, size*size)

	for !session.IsFinished() {
		if err = ctx.Err(); err != nil {
			return session.Outcome, fmt.Errorf("game interrupted: %w", err)
		}

		that.printf("%s", RenderBoard(session.Board))

		if err = that.playHuman(ctx, session); err != nil {
			return session.Outcome, err
		}

		if session.IsFinished() {
			break
		}

		if _, err = that.manager.PlayBot(ctx, session); err != nil {
			return session.Outcome, fmt.Errorf("computer move failed: %w", err)
		}
	}

	that.printf("%s", RenderBoard(session.Board))
	that.announce(session.Outcome)

	return session.Outcome, nil
}

func (that *Console) readBoardSize() (int, error) {
	maxSize := that.manager.MaxBoardSize()

	for {
		that.printf("Enter the size of the board (N): ")

		size, err := that.readInt()
		if err != nil && !errors.Is(err, strconv.ErrSyntax) {
			return 0, err
		}

		if err == nil && size >= 1 && size <= maxSize {
			return size, nil
		}

		that.printf("Invalid input. Please enter a board size from 1 to %d.\n", maxSize)
	}
}

// playHuman keeps asking until the player's move is accepted.
func (that *Console) playHuman(ctx context.Context, session *entity.Session) error {
	size := session.Board.Size()

	for {
		row, ok, err := that.readCoordinate("row", size)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		col, ok, err := that.readCoordinate("column", size)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		err = that.manager.PlayHuman(ctx, session, row-1, col-1)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperror.ErrCellOccupied):
			that.printf("Cell already taken. Try again.\n")
		default:
			return fmt.Errorf("player move failed: %w", err)
		}
	}
}

// readCoordinate returns a 1-indexed value; ok is false after an invalid entry.
func (that *Console) readCoordinate(name string, size int) (int, bool, error) {
	that.printf("Enter your move (%s number from 1 to %d): ", name, size)

	value, err := that.readInt()
	if err != nil && !errors.Is(err, strconv.ErrSyntax) {
		return 0, false, err
	}

	if err != nil || value < 1 || value > size {
		that.printf("Invalid input. Please enter a valid %s number.\n", name)
		return 0, false, nil
	}

	return value, true, nil
}

// readInt reads one line and parses its first field. Malformed input wraps strconv.ErrSyntax.
func (that *Console) readInt() (int, error) {
	line, err := that.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("input closed: %w", io.ErrUnexpectedEOF)
		}
		return 0, fmt.Errorf("failed to read input: %w", err)
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty input: %w", strconv.ErrSyntax)
	}

	value, err := strconv.Atoi(fields[0])
	if err != nil {
		that.logger.Debug("rejected input", "input", fields[0])
		return 0, fmt.Errorf("parse %q: %w", fields[0], strconv.ErrSyntax)
	}

	return value, nil
}

func (that *Console) announce(outcome entity.Outcome) {
	switch outcome {
	case entity.HumanWins:
		that.printf("Player wins!\n")
	case entity.BotWins:
		that.printf("Computer wins!\n")
	default:
		that.printf("It's a draw!\n")
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
