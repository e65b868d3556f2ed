// Package minimax solves tic-tac-toe positions exactly with alpha-beta pruned minimax.
//
// X is the maximizing side and O the minimizing side; values are tictactoe.Score
// (+1 X wins, -1 O wins, 0 draw). Moves are tried in row-major order and only a
// strictly better value replaces the current best, so among equally good moves the
// first one in that order is returned. Any value-optimal move is a correct answer.
package minimax

import (
	"log/slog"
	"math"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const (
	negInf tictactoe.Score = math.MinInt
	posInf tictactoe.Score = math.MaxInt
)

// Searcher holds no per-search state and is safe for concurrent use.
type Searcher struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Searcher {
	return &Searcher{
		logger: logger.With("component", "minimax"),
	}
}

// search carries the counters of a single invocation.
type search struct {
	nodes int
}

// BestMove returns the optimal move for the side to move. It returns false for terminal boards.
func (that *Searcher) BestMove(board entity.Board) (entity.Move, bool) {
	if tictactoe.Terminal(board) {
		return entity.Move{}, false
	}

	s := &search{}
	mover := tictactoe.Player(board)

	bestValue := posInf
	if mover == entity.PlayerX {
		bestValue = negInf
	}

	var bestMove entity.Move
	for _, move := range tictactoe.Actions(board) {
		next, err := tictactoe.Result(board, move)
		if err != nil {
			continue
		}

		// Inspects the board before the move, so it only fires on an already won position.
		if tictactoe.Winner(board) == mover {
			return move, true
		}

		value := s.value(next, negInf, posInf)
		if (mover == entity.PlayerX && value > bestValue) || (mover == entity.PlayerO && value < bestValue) {
			bestValue = value
			bestMove = move
		}
	}

	that.logger.Debug("best move found",
		"board", board.String(),
		"mover", mover.String(),
		"move", bestMove.String(),
		"value", int(bestValue),
		"nodes", s.nodes,
	)

	return bestMove, true
}

// Evaluate returns the game-theoretic value of board under optimal play.
func (that *Searcher) Evaluate(board entity.Board) tictactoe.Score {
	s := &search{}
	return s.value(board, negInf, posInf)
}

func (that *search) value(board entity.Board, alpha, beta tictactoe.Score) tictactoe.Score {
	that.nodes++

	if tictactoe.Terminal(board) {
		return tictactoe.Utility(board)
	}

	if tictactoe.Player(board) == entity.PlayerX {
		best := negInf
		for _, move := range tictactoe.Actions(board) {
			next, err := tictactoe.Result(board, move)
			if err != nil {
				continue
			}

			best = max(best, that.value(next, alpha, beta))
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := posInf
	for _, move := range tictactoe.Actions(board) {
		next, err := tictactoe.Result(board, move)
		if err != nil {
			continue
		}

		best = min(best, that.value(next, alpha, beta))
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}

	return best
}
