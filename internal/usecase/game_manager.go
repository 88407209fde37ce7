package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type moveCache interface {
	Get(ctx context.Context, key string) (*entity.CachedMove, error)
	Set(ctx context.Context, key string, move *entity.CachedMove) error
}

type Options struct {
	MaxDepth     int
	MaxBoardSize int
	Parallel     bool
}

// GameManager runs human versus bot sessions on top of the search engine.
type GameManager struct {
	logger   *slog.Logger
	cache    moveCache
	selector *tictactoe.Selector
	options  Options
}

func NewGameManager(logger *slog.Logger, cache moveCache, options Options) *GameManager {
	if options.MaxDepth < 1 {
		options.MaxDepth = tictactoe.DefaultMaxDepth
	}

	if options.MaxBoardSize < 1 || options.MaxBoardSize > entity.MaxBoardSize {
		options.MaxBoardSize = entity.MaxBoardSize
	}

	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		cache:    cache,
		selector: tictactoe.NewSelector(options.MaxDepth),
		options:  options,
	}
}

func (that *GameManager) MaxBoardSize() int {
	return that.options.MaxBoardSize
}

// NewSession starts a game on an empty size x size board with the human to move.
func (that *GameManager) NewSession(size int) (*entity.Session, error) {
	if size > that.options.MaxBoardSize {
		return nil, fmt.Errorf("%w: size %d exceeds the configured limit %d", apperror.ErrInvalidDimension, size, that.options.MaxBoardSize)
	}

	board, err := entity.NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	session := entity.NewSession(uuid.NewString(), board)

	that.logger.Info("session started", "session", session.ID, "size", size, "max_depth", that.options.MaxDepth)

	return session, nil
}

// PlayHuman applies the human's move at 0-indexed (row, col).
func (that *GameManager) PlayHuman(_ context.Context, session *entity.Session, row, col int) error {
	if err := session.ConfirmTurn(entity.Human); err != nil {
		return err
	}

	if err := session.Board.Place(row, col, entity.Human); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	that.record(session, entity.Move{Row: row, Col: col})

	return nil
}

// PlayBot picks the bot's move, from the cache when possible, and applies it.
func (that *GameManager) PlayBot(ctx context.Context, session *entity.Session) (entity.Move, error) {
	log := that.logger.With("method", "PlayBot", "session", session.ID)

	if err := session.ConfirmTurn(entity.Bot); err != nil {
		return entity.Move{}, err
	}

	if tictactoe.IsFull(session.Board) {
		return entity.Move{}, apperror.ErrBoardFull
	}

	key := that.cacheKey(session.Board)

	move, ok := that.cachedMove(ctx, log, key, session.Board)
	if !ok {
		result, err := that.selectMove(ctx, session.Board)
		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to select move: %w", err)
		}

		log.Debug("move selected", "move", result.Move.String(), "score", result.Score,
			"nodes", result.Stats.Nodes, "cutoffs", result.Stats.Cutoffs)

		move = result.Move
		that.storeMove(ctx, log, key, &entity.CachedMove{Move: result.Move, Score: result.Score})
	}

	session.Board.Set(move.Row, move.Col, entity.Bot)
	that.record(session, move)

	return move, nil
}

func (that *GameManager) selectMove(ctx context.Context, board *entity.Board) (tictactoe.Result, error) {
	if that.options.Parallel {
		result, err := that.selector.BestMoveParallel(ctx, board)
		if err != nil {
			return tictactoe.Result{}, fmt.Errorf("parallel search: %w", err)
		}

		return result, nil
	}

	return that.selector.BestMove(board), nil
}

func (that *GameManager) cachedMove(ctx context.Context, log *slog.Logger, key string, board *entity.Board) (entity.Move, bool) {
	if that.cache == nil {
		return entity.Move{}, false
	}

	cached, err := that.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrMoveNotFound) {
			log.Warn("failed to read move cache", "error", err)
		}

		return entity.Move{}, false
	}

	move := cached.Move
	if !board.InRange(move.Row, move.Col) || board.Get(move.Row, move.Col) != entity.Empty {
		log.Warn("ignoring cached move for an unavailable cell", "move", move.String())

		return entity.Move{}, false
	}

	log.Debug("move cache hit", "move", move.String(), "score", cached.Score)

	return move, true
}

func (that *GameManager) storeMove(ctx context.Context, log *slog.Logger, key string, move *entity.CachedMove) {
	if that.cache == nil {
		return
	}

	if err := that.cache.Set(ctx, key, move); err != nil {
		log.Warn("failed to write move cache", "error", err)
	}
}

func (that *GameManager) record(session *entity.Session, move entity.Move) {
	outcome := tictactoe.DetermineOutcome(session.Board)
	session.Record(move, outcome)

	if outcome != entity.InProgress {
		that.logger.Info("session finished", "session", session.ID, "outcome", outcome.String(), "moves", session.Moves)
	}
}

func (that *GameManager) cacheKey(board *entity.Board) string {
	return fmt.Sprintf("%s:%d", board.Key(), that.options.MaxDepth)
}
