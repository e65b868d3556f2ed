package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the length of a board side.
const Size = 3

var ErrInvalidBoard = errors.New("invalid board")

// Board is a row-major 3x3 grid. It is a value: assigning or passing a Board copies the grid.
type Board [Size][Size]Mark

func (that Board) At(move Move) Mark {
	return that[move.Row][move.Col]
}

// With returns a copy of the board with mark placed at move.
func (that Board) With(move Move, mark Mark) Board {
	that[move.Row][move.Col] = mark
	return that
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

// String renders the board as three newline-separated rows, e.g. "XO.\n.X.\n..O".
func (that Board) String() string {
	var sb strings.Builder
	for i, row := range that {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}

// ParseBoard is the inverse of Board.String. Rows may be separated by newlines or slashes.
func ParseBoard(s string) (Board, error) {
	var board Board

	rows := strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '/' || r == ' ' || r == '\t' || r == '\r'
	})
	if len(rows) != Size {
		return board, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}

	for i, row := range rows {
		cells := []rune(row)
		if len(cells) != Size {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, i, len(cells))
		}

		for j, r := range cells {
			mark, err := ParseMark(r)
			if err != nil {
				return board, fmt.Errorf("%w: row %d: %w", ErrInvalidBoard, i, err)
			}
			board[i][j] = mark
		}
	}

	return board, nil
}
