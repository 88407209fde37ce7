package tictactoe

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Result is the move picked for the bot together with its evaluation.
type Result struct {
	Move  entity.Move
	Score int
	Stats Stats
}

type Selector struct {
	maxDepth int
}

func NewSelector(maxDepth int) *Selector {
	return &Selector{maxDepth: maxDepth}
}

func (that *Selector) MaxDepth() int {
	return that.maxDepth
}

// BestMove tries the bot's mark on every empty cell in row-major order and keeps the
// strictly highest score, so ties go to the first candidate. The board is left unchanged.
// It panics on a full board; callers check IsFull first.
func (that *Selector) BestMove(board *entity.Board) Result {
	searcher := NewSearcher(that.maxDepth)

	result := Result{Score: MinScore}
	found := false

	for _, move := range board.EmptyCells() {
		board.Set(move.Row, move.Col, entity.Bot)
		score := searcher.Minimax(board, 0, false, MinScore, MaxScore)
		board.Set(move.Row, move.Col, entity.Empty)

		if !found || score > result.Score {
			result.Move = move
			result.Score = score
			found = true
		}
	}

	if !found {
		panic(fmt.Errorf("select move: %w", apperror.ErrBoardFull))
	}

	result.Stats = searcher.Stats()

	return result
}

// BestMoveParallel scores every top-level candidate in its own goroutine on a private
// copy of the board. It returns the same move as BestMove.
func (that *Selector) BestMoveParallel(ctx context.Context, board *entity.Board) (Result, error) {
	candidates := board.EmptyCells()
	if len(candidates) == 0 {
		panic(fmt.Errorf("select move: %w", apperror.ErrBoardFull))
	}

	scores := make([]int, len(candidates))
	stats := make([]Stats, len(candidates))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, move := range candidates {
		private := board.Clone()

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return fmt.Errorf("search candidate %s: %w", move, err)
			}

			searcher := NewSearcher(that.maxDepth)
			private.Set(move.Row, move.Col, entity.Bot)
			scores[i] = searcher.Minimax(private, 0, false, MinScore, MaxScore)
			stats[i] = searcher.Stats()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{Move: candidates[0], Score: scores[0]}
	for i := range candidates {
		if scores[i] > result.Score {
			result.Move = candidates[i]
			result.Score = scores[i]
		}
		result.Stats = result.Stats.Add(stats[i])
	}

	return result, nil
}

// ChooseAndApplyMove picks the bot's move and commits it to the board.
func (that *Selector) ChooseAndApplyMove(board *entity.Board) Result {
	result := that.BestMove(board)
	board.Set(result.Move.Row, result.Move.Col, entity.Bot)

	return result
}

// ChooseAndApplyMove selects and applies the bot's move with the default depth limit.
func ChooseAndApplyMove(board *entity.Board) entity.Move {
	return NewSelector(DefaultMaxDepth).ChooseAndApplyMove(board).Move
}
