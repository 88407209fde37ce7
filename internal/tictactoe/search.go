package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

const (
	// WinScore is the value of a bot win found at depth 0.
	WinScore = 10
	// MinScore and MaxScore bound every evaluation and seed the alpha-beta window.
	MinScore = -1000
	MaxScore = 1000

	DefaultMaxDepth = 6
)

// Stats counts the work done by a Searcher.
type Stats struct {
	Nodes   int
	Cutoffs int
}

func (s Stats) Add(other Stats) Stats {
	return Stats{Nodes: s.Nodes + other.Nodes, Cutoffs: s.Cutoffs + other.Cutoffs}
}

// Searcher runs a depth-limited minimax with alpha-beta pruning.
// It mutates the board it is given and restores every cell before returning,
// so one board must not be searched from several goroutines at once.
type Searcher struct {
	maxDepth int
	stats    Stats
}

func NewSearcher(maxDepth int) *Searcher {
	return &Searcher{maxDepth: maxDepth}
}

func (that *Searcher) MaxDepth() int {
	return that.maxDepth
}

func (that *Searcher) Stats() Stats {
	return that.stats
}

func (that *Searcher) ResetStats() {
	that.stats = Stats{}
}

// Minimax scores the position for the bot. maximizing is true when the bot is to move.
// Bot wins score WinScore-depth, human wins depth-WinScore, and a full board or the
// depth horizon scores 0.
func (that *Searcher) Minimax(board *entity.Board, depth int, maximizing bool, alpha, beta int) int {
	that.stats.Nodes++

	if HasWon(board, entity.Bot) {
		return WinScore - depth
	}

	if HasWon(board, entity.Human) {
		return depth - WinScore
	}

	if IsFull(board) || depth >= that.maxDepth {
		return 0
	}

	size := board.Size()

	if maximizing {
		best := MinScore
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				if board.Get(row, col) != entity.Empty {
					continue
				}

				board.Set(row, col, entity.Bot)
				score := that.Minimax(board, depth+1, false, alpha, beta)
				board.Set(row, col, entity.Empty)

				best = max(best, score)
				alpha = max(alpha, best)
				if beta <= alpha {
					that.stats.Cutoffs++
					return best
				}
			}
		}

		return best
	}

	best := MaxScore
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board.Get(row, col) != entity.Empty {
				continue
			}

			board.Set(row, col, entity.Human)
			score := that.Minimax(board, depth+1, true, alpha, beta)
			board.Set(row, col, entity.Empty)

			best = min(best, score)
			beta = min(beta, best)
			if beta <= alpha {
				that.stats.Cutoffs++
				return best
			}
		}
	}

	return best
}

// Minimax is the stateless form of Searcher.Minimax.
func Minimax(board *entity.Board, depth int, maximizing bool, alpha, beta, maxDepth int) int {
	return NewSearcher(maxDepth).Minimax(board, depth, maximizing, alpha, beta)
}
