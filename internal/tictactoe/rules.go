package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// Score is the outcome of a finished game from X's point of view.
type Score int

const (
	ScoreOWins Score = -1
	ScoreDraw  Score = 0
	ScoreXWins Score = 1
)

// WinLines lists every line in the order Winner checks them:
// row i and column i interleaved, then the main and the anti diagonal.
var WinLines = [8][3]entity.Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// InitialState returns the empty board.
func InitialState() entity.Board {
	return entity.Board{}
}

// Player returns the mark to move. X moves when counts are equal and, by convention, on a full board.
func Player(board entity.Board) entity.Mark {
	if board.Count(entity.Empty) == 0 {
		return entity.PlayerX
	}

	if board.Count(entity.PlayerX) == board.Count(entity.PlayerO) {
		return entity.PlayerX
	}

	return entity.PlayerO
}

// Actions returns the empty cells in row-major order.
// The order is only fixed for reproducibility; treat the result as a set.
func Actions(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, entity.Size*entity.Size)
	for i, row := range board {
		for j, cell := range row {
			if cell == entity.Empty {
				moves = append(moves, entity.Move{Row: i, Col: j})
			}
		}
	}

	return moves
}

// Result returns the board after the side to move plays move. The input board is not modified.
func Result(board entity.Board, move entity.Move) (entity.Board, error) {
	if !move.InBounds() {
		return board, fmt.Errorf("%w: %s is off the board", apperror.ErrInvalidMove, move)
	}

	if board.At(move) != entity.Empty {
		return board, fmt.Errorf("%w: %s is occupied by %s", apperror.ErrInvalidMove, move, board.At(move))
	}

	return board.With(move, Player(board)), nil
}

// Winner returns the mark owning the first complete line, or entity.Empty.
func Winner(board entity.Board) entity.Mark {
	for _, line := range WinLines {
		a, b, c := board.At(line[0]), board.At(line[1]), board.At(line[2])
		if a != entity.Empty && a == b && b == c {
			return a
		}
	}

	return entity.Empty
}

// Terminal reports whether the game is over.
func Terminal(board entity.Board) bool {
	if Winner(board) != entity.Empty {
		return true
	}

	return board.Count(entity.Empty) == 0
}

// Utility scores a finished board. Non-terminal boards score as a draw.
func Utility(board entity.Board) Score {
	switch Winner(board) {
	case entity.PlayerX:
		return ScoreXWins
	case entity.PlayerO:
		return ScoreOWins
	default:
		return ScoreDraw
	}
}
