package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidMoveNotation = errors.New("invalid move notation")

// Move addresses a cell by zero-based row and column.
type Move struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// ParseMove reads the "row,col" notation used in config files.
func ParseMove(s string) (Move, error) {
	rowStr, colStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMoveNotation, s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return Move{}, fmt.Errorf("%w: row %q: %w", ErrInvalidMoveNotation, rowStr, err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return Move{}, fmt.Errorf("%w: col %q: %w", ErrInvalidMoveNotation, colStr, err)
	}

	return Move{Row: row, Col: col}, nil
}

// ParseMoves parses every entry with ParseMove and stops at the first error.
func ParseMoves(list []string) ([]Move, error) {
	moves := make([]Move, 0, len(list))
	for i, s := range list {
		move, err := ParseMove(s)
		if err != nil {
			return nil, fmt.Errorf("move #%d: %w", i, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}
